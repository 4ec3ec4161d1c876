package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/buurtmarkt/backend/internal/fault"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubProducts struct {
	list []ProductRef
	err  error
}

func (p *stubProducts) List(_ context.Context) ([]ProductRef, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.list, nil
}

func newTestRouter(t *testing.T, upstream http.HandlerFunc, products ProductsClient) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, "testkey", NewMemoryCache(), time.Minute)
	r := gin.New()
	RegisterRoutes(r, client, products)
	return r
}

func do(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSearchRecipes(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/complexSearch", req.URL.Path)
		require.Equal(t, "soep", req.URL.Query().Get("query"))
		require.Equal(t, "10", req.URL.Query().Get("number"))
		_, _ = w.Write([]byte(`{"results":[{"id":716429,"title":"Pompoensoep"}]}`))
	}, &stubProducts{})

	w := do(r, "/recipes?query=soep")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"results":[{"id":716429,"title":"Pompoensoep"}]}`, w.Body.String())
}

func TestSearchRecipes_UpstreamFailure(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}, &stubProducts{})

	w := do(r, "/recipes?query=soep")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"Something went wrong while fetching recipes."}`, w.Body.String())
}

func TestRecipeInformation(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/716429/information", req.URL.Path)
		_, _ = w.Write([]byte(`{"id":716429,"title":"Pompoensoep"}`))
	}, &stubProducts{})

	w := do(r, "/recipes/716429")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":716429,"title":"Pompoensoep"}`, w.Body.String())
}

func TestRecipeInstructions_UpstreamFailure(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, &stubProducts{})

	w := do(r, "/recipes/716429/instructions")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"Something went wrong while fetching the recipe instructions."}`, w.Body.String())
}

func TestRecipeProducts(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/716429/ingredientWidget.json", req.URL.Path)
		_, _ = w.Write([]byte(`{"ingredients":[{"name":"pompoen"},{"name":"uien"}]}`))
	}, &stubProducts{list: []ProductRef{
		{ID: "p-1", Name: "Pompoen", InSeason: true, CarbonDioxide: 0.2},
		{ID: "p-2", Name: "Prei", InSeason: false, CarbonDioxide: 0.1},
		{ID: "p-3", Name: "Ui", InSeason: true, CarbonDioxide: 0.1},
	}})

	w := do(r, "/recipes/716429/products")
	require.Equal(t, http.StatusOK, w.Code)
	var got []ProductRef
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "Pompoen", got[0].Name)
	require.Equal(t, "Ui", got[1].Name)
}

func TestRecipeProducts_ProductsServiceDown(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"ingredients":[]}`))
	}, &stubProducts{err: fault.Upstream("Failed to fetch products data", errors.New("connection refused"))})

	w := do(r, "/recipes/716429/products")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"Failed to fetch products data"}`, w.Body.String())
}
