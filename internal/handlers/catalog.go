package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devteamsyntacticsinc/custom-product-designer/internal/models"
)

// CatalogStore is the slice of DatabaseClient the lookup endpoints read.
type CatalogStore interface {
	ListProductTypes() ([]models.ProductType, error)
	ListBrands(typeID uuid.UUID) ([]models.Brand, error)
	ListColors() ([]models.Color, error)
	ListSizes() ([]models.Size, error)
	ListAvailableSizes(typeID, brandID uuid.UUID) ([]models.Size, error)
	ListProducts() ([]models.Product, error)
	GetProduct(id uuid.UUID) (*models.Product, error)
}

type CatalogHandler struct {
	dbClient CatalogStore
	logger   *zap.Logger
}

func NewCatalogHandler(dbClient CatalogStore, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		dbClient: dbClient,
		logger:   logger,
	}
}

// fallbackProductTypes is served when the product-type lookup fails so
// the storefront can still render its first dropdown.
var fallbackProductTypes = []models.ProductType{
	{ID: uuid.MustParse("6f1f3a62-0000-4000-8000-000000000001"), Name: "T-Shirt"},
	{ID: uuid.MustParse("6f1f3a62-0000-4000-8000-000000000002"), Name: "Hoodie"},
	{ID: uuid.MustParse("6f1f3a62-0000-4000-8000-000000000003"), Name: "Mug"},
}

// GetProductTypes godoc
// @Summary     List product types
// @Description Returns all product types sorted by name. Falls back to a static set when the backend is unavailable.
// @Tags        catalog
// @Produce     json
// @Success     200 {array} models.ProductType
// @Router      /api/product-types [get]
func (h *CatalogHandler) GetProductTypes(c *gin.Context) {
	types, err := h.dbClient.ListProductTypes()
	if err != nil {
		h.logger.Error("product type lookup failed, serving fallback set", zap.Error(err))
		c.JSON(http.StatusOK, fallbackProductTypes)
		return
	}

	if types == nil {
		types = []models.ProductType{}
	}
	c.JSON(http.StatusOK, types)
}

// GetBrands godoc
// @Summary     List brands
// @Description Returns brands sorted by name, optionally scoped to a product type.
// @Tags        catalog
// @Produce     json
// @Param       typeId query string false "Product type ID"
// @Success     200 {array} models.Brand
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/brands [get]
func (h *CatalogHandler) GetBrands(c *gin.Context) {
	typeID := uuid.Nil
	if raw := c.Query("typeId"); raw != "" {
		var err error
		typeID, err = uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid typeId"})
			return
		}
	}

	brands, err := h.dbClient.ListBrands(typeID)
	if err != nil {
		h.logger.Error("brand lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
		return
	}

	if brands == nil {
		brands = []models.Brand{}
	}
	c.JSON(http.StatusOK, brands)
}

// GetColors godoc
// @Summary     List colors
// @Tags        catalog
// @Produce     json
// @Success     200 {array} models.Color
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/colors [get]
func (h *CatalogHandler) GetColors(c *gin.Context) {
	colors, err := h.dbClient.ListColors()
	if err != nil {
		h.logger.Error("color lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
		return
	}

	if colors == nil {
		colors = []models.Color{}
	}
	c.JSON(http.StatusOK, colors)
}

// GetSizes godoc
// @Summary     List sizes
// @Description Returns all sizes in the apparel display order, not alphabetical.
// @Tags        catalog
// @Produce     json
// @Success     200 {array} models.Size
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/sizes [get]
func (h *CatalogHandler) GetSizes(c *gin.Context) {
	sizes, err := h.dbClient.ListSizes()
	if err != nil {
		h.logger.Error("size lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
		return
	}

	if sizes == nil {
		sizes = []models.Size{}
	}
	c.JSON(http.StatusOK, sizes)
}

// GetSizesByType godoc
// @Summary     List available sizes for a brand/type selection
// @Description Returns the sizes orderable for the given product type, optionally narrowed to one brand.
// @Tags        catalog
// @Produce     json
// @Param       typeId query string true "Product type ID"
// @Param       brandId query string false "Brand ID"
// @Success     200 {array} models.Size
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/sizes-by-type [get]
func (h *CatalogHandler) GetSizesByType(c *gin.Context) {
	rawType := c.Query("typeId")
	if rawType == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "typeId is required"})
		return
	}

	typeID, err := uuid.Parse(rawType)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid typeId"})
		return
	}

	brandID := uuid.Nil
	if raw := c.Query("brandId"); raw != "" {
		brandID, err = uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid brandId"})
			return
		}
	}

	sizes, err := h.dbClient.ListAvailableSizes(typeID, brandID)
	if err != nil {
		h.logger.Error("size availability lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
		return
	}

	if sizes == nil {
		sizes = []models.Size{}
	}
	c.JSON(http.StatusOK, sizes)
}

// GetProducts godoc
// @Summary     List catalog products
// @Description Returns the catalog, or a single product when id is given.
// @Tags        catalog
// @Produce     json
// @Param       id query string false "Product ID"
// @Success     200 {array} models.Product
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/products [get]
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	if raw := c.Query("id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
			return
		}

		product, err := h.dbClient.GetProduct(id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "product not found"})
				return
			}
			h.logger.Error("product lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "Internal server error",
				Message: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, product)
		return
	}

	products, err := h.dbClient.ListProducts()
	if err != nil {
		h.logger.Error("product list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}
