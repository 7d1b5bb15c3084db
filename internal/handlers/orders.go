package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devteamsyntacticsinc/custom-product-designer/internal/models"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/services"
)

const maxOrderFormMemory = 32 << 20 // 32MB

type OrdersHandler struct {
	orderService *services.OrderService
	logger       *zap.Logger
}

func NewOrdersHandler(orderService *services.OrderService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// SubmitOrder godoc
// @Summary     Submit a composed order
// @Description Accepts a multipart payload with an orderData JSON field and up to four design asset files,
// @Description one per placement slot (front-top-left, front-center, back-top, back-bottom). Absent or
// @Description zero-byte files mean no asset for that slot.
// @Tags        orders
// @Accept      multipart/form-data
// @Produce     json
// @Param       orderData formData string true "Order descriptor (JSON)"
// @Param       front-top-left formData file false "Front top-left asset"
// @Param       front-center formData file false "Front center asset"
// @Param       back-top formData file false "Back top asset"
// @Param       back-bottom formData file false "Back bottom asset"
// @Success     200 {object} models.OrderSubmitResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/orders [post]
func (h *OrdersHandler) SubmitOrder(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxOrderFormMemory); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return
	}

	rawOrder := c.Request.FormValue("orderData")
	if rawOrder == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "orderData field is required"})
		return
	}

	var order models.OrderData
	if err := json.Unmarshal([]byte(rawOrder), &order); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid orderData",
			Message: err.Error(),
		})
		return
	}

	assetFiles := h.collectAssets(c)

	result, err := h.orderService.ProcessOrder(order, assetFiles)
	if err != nil {
		h.logger.Error("order submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.OrderSubmitResponse{
		Success:    true,
		OrderID:    result.OrderID.String(),
		CustomerID: result.CustomerID.String(),
	})
}

// collectAssets reads the four slot fields out of the multipart form.
// A slot with no field or an empty file simply has no asset; a file
// that cannot be read is treated the same way and logged.
func (h *OrdersHandler) collectAssets(c *gin.Context) map[string]models.AssetFile {
	assets := make(map[string]models.AssetFile)

	form := c.Request.MultipartForm
	if form == nil {
		return assets
	}

	for _, slot := range models.AssetSlots {
		files := form.File[slot]
		if len(files) == 0 || files[0].Size == 0 {
			continue
		}

		src, err := files[0].Open()
		if err != nil {
			h.logger.Warn("failed to open uploaded asset",
				zap.String("slot", slot), zap.Error(err))
			continue
		}

		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			h.logger.Warn("failed to read uploaded asset",
				zap.String("slot", slot), zap.Error(err))
			continue
		}

		if len(data) == 0 {
			continue
		}

		assets[slot] = models.AssetFile{
			Filename: files[0].Filename,
			Data:     data,
		}
	}

	return assets
}
