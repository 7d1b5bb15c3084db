package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devteamsyntacticsinc/custom-product-designer/internal/handlers"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/logger"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/models"
)

type stubCatalogStore struct {
	types    []models.ProductType
	typesErr error
	sizes    []models.Size
}

func (s *stubCatalogStore) ListProductTypes() ([]models.ProductType, error) {
	return s.types, s.typesErr
}
func (s *stubCatalogStore) ListBrands(typeID uuid.UUID) ([]models.Brand, error) {
	return nil, nil
}

func (s *stubCatalogStore) ListColors() ([]models.Color, error) {
	return nil, nil
}

func (s *stubCatalogStore) ListSizes() ([]models.Size, error) {
	return s.sizes, nil
}

func (s *stubCatalogStore) ListAvailableSizes(typeID, brandID uuid.UUID) ([]models.Size, error) {
	return s.sizes, nil
}

func (s *stubCatalogStore) ListProducts() ([]models.Product, error) {
	return nil, nil
}

func (s *stubCatalogStore) GetProduct(id uuid.UUID) (*models.Product, error) {
	return nil, nil
}

// Request validation happens before any database access, so these paths
// are exercised without a backing database.
func catalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewCatalogHandler(nil, logger.NewNop())

	router := gin.New()
	router.GET("/api/brands", handler.GetBrands)
	router.GET("/api/sizes-by-type", handler.GetSizesByType)
	router.GET("/api/products", handler.GetProducts)
	return router
}

func TestGetSizesByType_MissingTypeID(t *testing.T) {
	router := catalogRouter()

	req, _ := http.NewRequest("GET", "/api/sizes-by-type", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "typeId is required")
}

func TestGetSizesByType_InvalidTypeID(t *testing.T) {
	router := catalogRouter()

	req, _ := http.NewRequest("GET", "/api/sizes-by-type?typeId=not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid typeId")
}

func TestGetSizesByType_InvalidBrandID(t *testing.T) {
	router := catalogRouter()

	req, _ := http.NewRequest("GET", "/api/sizes-by-type?typeId=0f2d7e6a-3f9b-4e89-9df5-0f6b2f4f2c11&brandId=bogus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid brandId")
}

func TestGetBrands_InvalidTypeID(t *testing.T) {
	router := catalogRouter()

	req, _ := http.NewRequest("GET", "/api/brands?typeId=bogus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProducts_InvalidID(t *testing.T) {
	router := catalogRouter()

	req, _ := http.NewRequest("GET", "/api/products?id=bogus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func catalogRouterWith(store handlers.CatalogStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewCatalogHandler(store, logger.NewNop())

	router := gin.New()
	router.GET("/api/product-types", handler.GetProductTypes)
	router.GET("/api/sizes-by-type", handler.GetSizesByType)
	return router
}

func TestGetProductTypes_FallbackOnLookupFailure(t *testing.T) {
	router := catalogRouterWith(&stubCatalogStore{typesErr: errors.New("connection refused")})

	req, _ := http.NewRequest("GET", "/api/product-types", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// A failed lookup still answers 200 with the static set so the first
	// dropdown renders.
	assert.Equal(t, http.StatusOK, w.Code)

	var types []models.ProductType
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &types))
	require.Len(t, types, 3)
	assert.Equal(t, "T-Shirt", types[0].Name)
	assert.Equal(t, "Hoodie", types[1].Name)
	assert.Equal(t, "Mug", types[2].Name)
}

func TestGetProductTypes_FromStore(t *testing.T) {
	stored := []models.ProductType{{ID: uuid.New(), Name: "Cap"}}
	router := catalogRouterWith(&stubCatalogStore{types: stored})

	req, _ := http.NewRequest("GET", "/api/product-types", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cap")
	assert.NotContains(t, w.Body.String(), "Mug")
}

func TestGetSizesByType_OK(t *testing.T) {
	sizes := []models.Size{{ID: uuid.New(), Value: "Medium"}}
	router := catalogRouterWith(&stubCatalogStore{sizes: sizes})

	req, _ := http.NewRequest("GET", "/api/sizes-by-type?typeId="+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Medium")
}
