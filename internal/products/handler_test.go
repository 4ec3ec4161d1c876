package products

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/buurtmarkt/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(filepath.Join(t.TempDir(), "products.json"), DefaultDatabase())
	require.NoError(t, err)

	svc := NewService(st)
	r := gin.New()
	RegisterRoutes(r, svc)
	return r, svc
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProduct(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/products", map[string]any{
		"name": "Pompoen", "inSeason": true, "carbonDioxide": 0.2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string  `json:"message"`
		Product Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Product created successfully.", resp.Message)
	require.Equal(t, "Pompoen", resp.Product.Name)
	require.True(t, resp.Product.InSeason)

	// ids are UUIDs, not counters
	_, err := uuid.Parse(resp.Product.ID)
	require.NoError(t, err)
}

func TestCreateProduct_MissingField(t *testing.T) {
	r, _ := newTestRouter(t)

	// carbonDioxide absent entirely
	w := doJSON(r, http.MethodPost, "/products", map[string]any{
		"name": "Pompoen", "inSeason": true,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Missing required fields: 'name', 'inSeason', 'carbonDioxide'.", resp["error"])

	// explicit false and zero are valid values, not missing ones
	w = doJSON(r, http.MethodPost, "/products", map[string]any{
		"name": "Pompoen", "inSeason": false, "carbonDioxide": 0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestGetProduct_ByIDAndName(t *testing.T) {
	r, svc := newTestRouter(t)
	inSeason, co2 := true, 0.2
	created, err := svc.Create(CreateProductRequest{Name: "Pompoen", InSeason: &inSeason, CarbonDioxide: &co2})
	require.NoError(t, err)

	for _, param := range []string{created.ID, "Pompoen"} {
		w := doJSON(r, http.MethodGet, "/products/"+param, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var p Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		require.Equal(t, created.ID, p.ID)
	}

	w := doJSON(r, http.MethodGet, "/products/onbekend", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Product not found for parameter: onbekend", resp["error"])
}

func TestUpdateProduct(t *testing.T) {
	r, svc := newTestRouter(t)
	inSeason, co2 := true, 0.2
	_, err := svc.Create(CreateProductRequest{Name: "Pompoen", InSeason: &inSeason, CarbonDioxide: &co2})
	require.NoError(t, err)

	w := doJSON(r, http.MethodPut, "/products/Pompoen", map[string]any{"inSeason": false})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Message string  `json:"message"`
		Product Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Product with ID: Pompoen updated successfully.", resp.Message)
	require.False(t, resp.Product.InSeason)
	require.Equal(t, "Pompoen", resp.Product.Name)
	require.Equal(t, 0.2, resp.Product.CarbonDioxide)

	w = doJSON(r, http.MethodPut, "/products/onbekend", map[string]any{"name": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
	var errResp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	require.Equal(t, "Product with ID: onbekend not found.", errResp["error"])
}

func TestDeleteProduct(t *testing.T) {
	r, svc := newTestRouter(t)
	inSeason, co2 := true, 0.2
	created, err := svc.Create(CreateProductRequest{Name: "Pompoen", InSeason: &inSeason, CarbonDioxide: &co2})
	require.NoError(t, err)

	w := doJSON(r, http.MethodDelete, "/products/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Message string  `json:"message"`
		Product Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Product with identifier: "+created.ID+" deleted successfully.", resp.Message)
	require.Equal(t, created.ID, resp.Product.ID)

	w = doJSON(r, http.MethodDelete, "/products/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	var errResp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	require.Equal(t, "Product with identifier: "+created.ID+" not found.", errResp["error"])
}

func TestListProducts(t *testing.T) {
	r, svc := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", w.Body.String())

	inSeason, co2 := true, 0.2
	_, err := svc.Create(CreateProductRequest{Name: "Pompoen", InSeason: &inSeason, CarbonDioxide: &co2})
	require.NoError(t, err)
	_, err = svc.Create(CreateProductRequest{Name: "Prei", InSeason: &inSeason, CarbonDioxide: &co2})
	require.NoError(t, err)

	w = doJSON(r, http.MethodGet, "/products", nil)
	var list []*Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
}
