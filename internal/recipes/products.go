package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/buurtmarkt/backend/internal/fault"
)

// ProductRef is the slice of a product record needed for the ingredient join.
type ProductRef struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	InSeason      bool    `json:"inSeason"`
	CarbonDioxide float64 `json:"carbonDioxide"`
}

// ProductsClient lists the products owned by the products sibling service.
type ProductsClient interface {
	List(ctx context.Context) ([]ProductRef, error)
}

type httpProductsClient struct {
	url    string
	client *http.Client
}

func NewProductsClient(baseURL string) ProductsClient {
	return &httpProductsClient{url: baseURL, client: &http.Client{Timeout: 10 * time.Second}}
}

func (c *httpProductsClient) List(ctx context.Context) ([]ProductRef, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"/products", nil)
	if err != nil {
		return nil, fault.Upstream("Failed to fetch products data", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fault.Upstream("Failed to fetch products data", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fault.Upstream("Failed to fetch products data", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	var out []ProductRef
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fault.Upstream("Failed to fetch products data", err)
	}
	return out, nil
}

// ingredientsPayload is the slice of the upstream ingredient widget this
// service needs for the join.
type ingredientsPayload struct {
	Ingredients []struct {
		Name string `json:"name"`
	} `json:"ingredients"`
}

// matchProducts returns the products whose name matches one of the
// ingredient names, case-insensitively and in either direction of
// containment ("tomaat" matches ingredient "tomaten").
func matchProducts(ingredients ingredientsPayload, products []ProductRef) []ProductRef {
	out := []ProductRef{}
	for _, p := range products {
		pname := strings.ToLower(p.Name)
		for _, ing := range ingredients.Ingredients {
			iname := strings.ToLower(ing.Name)
			if strings.Contains(iname, pname) || strings.Contains(pname, iname) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
