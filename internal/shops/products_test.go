package shops

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buurtmarkt/backend/internal/fault"
	"github.com/stretchr/testify/require"
)

func TestHTTPProductsClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"p-1","name":"Pompoen","inSeason":true,"carbonDioxide":0.2}]`))
	}))
	defer srv.Close()

	c := NewProductsClient(srv.URL)
	list, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "p-1", list[0].ID)
	require.True(t, list[0].InSeason)
}

func TestHTTPProductsClient_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewProductsClient(srv.URL)
	_, err := c.List(context.Background())
	require.Error(t, err)
	var ue *fault.UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, "Failed to fetch products data", ue.Message)
}
