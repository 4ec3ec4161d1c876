package shops

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/buurtmarkt/backend/internal/fault"
)

// ProductRef is the slice of a product record this service needs from the
// products sibling service.
type ProductRef struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	InSeason      bool    `json:"inSeason"`
	CarbonDioxide float64 `json:"carbonDioxide"`
}

// ProductsClient lists the products owned by the products service.
type ProductsClient interface {
	List(ctx context.Context) ([]ProductRef, error)
}

// HTTPProductsClient reaches the products service over plain HTTP.
type HTTPProductsClient struct {
	URL    string
	Client *http.Client
}

func NewProductsClient(baseURL string) *HTTPProductsClient {
	return &HTTPProductsClient{
		URL:    baseURL,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPProductsClient) List(ctx context.Context) ([]ProductRef, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL+"/products", nil)
	if err != nil {
		return nil, fault.Upstream("Failed to fetch products data", err)
	}
	resp, err := c.Client.Do(req)
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
