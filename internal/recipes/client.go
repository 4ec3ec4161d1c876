package recipes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"context"

	"github.com/buurtmarkt/backend/internal/fault"
	"github.com/buurtmarkt/backend/pkg/logger"
)

// Client calls the upstream recipe API. Responses pass through as raw JSON;
// this service adds caching and cross-service joins, not reshaping.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cache   Cache
	ttl     time.Duration
}

func NewClient(baseURL, apiKey string, cache Cache, ttl time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
		cache:   cache,
		ttl:     ttl,
	}
}

// get fetches path with the given query, serving from cache when possible.
// failMessage is the client-facing body used when the upstream call fails.
func (c *Client) get(ctx context.Context, path string, query url.Values, failMessage string) (json.RawMessage, error) {
	key := path + "?" + query.Encode()
	if body, ok := c.cache.Get(ctx, key); ok {
		logger.Debugf("recipe cache hit: %s", key)
		return body, nil
	}

	q := url.Values{}
	for k, vs := range query {
		q[k] = vs
	}
	q.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fault.Upstream(failMessage, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fault.Upstream(failMessage, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fault.Upstream(failMessage, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fault.Upstream(failMessage, err)
	}

	c.cache.Set(ctx, key, body, c.ttl)
	return body, nil
}

// Search queries recipes by search term; number bounds the result count.
func (c *Client) Search(ctx context.Context, query string, number int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("number", strconv.Itoa(number))
	if query != "" {
		q.Set("query", query)
	}
	return c.get(ctx, "/complexSearch", q, "Something went wrong while fetching recipes.")
}

// Information fetches the full details of one recipe.
func (c *Client) Information(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, "/"+id+"/information", url.Values{}, "Something went wrong while fetching the recipe details.")
}

// Ingredients fetches the ingredient list of one recipe.
func (c *Client) Ingredients(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, "/"+id+"/ingredientWidget.json", url.Values{}, "Something went wrong while fetching the recipe ingredients.")
}

// Instructions fetches the step-by-step instructions of one recipe.
func (c *Client) Instructions(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, "/"+id+"/analyzedInstructions", url.Values{}, "Something went wrong while fetching the recipe instructions.")
}
