package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devteamsyntacticsinc/custom-product-designer/internal/models"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/supabase"
)

// OrderStore is the slice of DatabaseClient the submission flow writes
// through.
type OrderStore interface {
	CreateCustomer(contact models.ContactInformation) (*models.Customer, error)
	GetBrandTypeID(brandID, typeID uuid.UUID) (uuid.UUID, error)
	CreateProductOrder(customerID, brandTypeID, colorID uuid.UUID) (*models.ProductOrder, error)
	CreateOrderSizes(lines []models.OrderSize) error
	CreateOrderAsset(asset models.OrderAsset) error
}

// AssetStore uploads asset bytes and returns a public URL.
type AssetStore interface {
	UploadFile(key string, data []byte, contentType string) (string, error)
}

// Notifier delivers the operator notification for a placed order.
type Notifier interface {
	SendOrderNotification(order models.OrderData, assets map[string]models.AssetFile, customerID string) error
}

// EventPublisher pushes admin-feed events.
type EventPublisher interface {
	PublishDashboardEvent(event string, payload map[string]interface{}) error
}

type OrderResult struct {
	OrderID    uuid.UUID
	CustomerID uuid.UUID
}

// OrderService runs the order submission sequence. The steps are
// strictly sequential and not transactional: a customer row committed
// before a later fatal step is left behind.
type OrderService struct {
	store     OrderStore
	assets    AssetStore
	notifier  Notifier
	publisher EventPublisher
	logger    *zap.Logger
}

func NewOrderService(store OrderStore, assets AssetStore, notifier Notifier, publisher EventPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		store:     store,
		assets:    assets,
		notifier:  notifier,
		publisher: publisher,
		logger:    logger,
	}
}

// ProcessOrder persists one composed order: customer, brand/type
// resolution, order row, size lines with positive quantities, then the
// attached assets. Steps 1-3 are fatal; sizes may legitimately be empty;
// asset failures are logged and skipped.
func (s *OrderService) ProcessOrder(order models.OrderData, assetFiles map[string]models.AssetFile) (*OrderResult, error) {
	customer, err := s.store.CreateCustomer(order.ContactInformation)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	brandID, err := uuid.Parse(order.BrandID)
	if err != nil {
		return nil, fmt.Errorf("invalid brand id: %w", err)
	}
	typeID, err := uuid.Parse(order.ProductTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid product type id: %w", err)
	}
	colorID, err := uuid.Parse(order.ColorID)
	if err != nil {
		return nil, fmt.Errorf("invalid color id: %w", err)
	}

	brandTypeID, err := s.store.GetBrandTypeID(brandID, typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve brand type: %w", err)
	}

	productOrder, err := s.store.CreateProductOrder(customer.ID, brandTypeID, colorID)
	if err != nil {
		return nil, fmt.Errorf("failed to create product order: %w", err)
	}

	if err := s.createSizeLines(productOrder.ID, order.SizeSelection); err != nil {
		return nil, err
	}

	s.uploadAssets(productOrder.ID, assetFiles)

	// Notification and admin-feed event are detached from the response
	// and best-effort.
	go s.notify(order, assetFiles, customer.ID)
	if err := s.publisher.PublishDashboardEvent("order_created",
		supabase.OrderCreatedPayload(productOrder.ID, customer.ID, customer.Name, productOrder.CreatedAt)); err != nil {
		s.logger.Warn("failed to publish order event", zap.Error(err))
	}
	if err := s.publisher.PublishDashboardEvent("customer_created",
		supabase.CustomerCreatedPayload(customer.ID, customer.Email)); err != nil {
		s.logger.Warn("failed to publish customer event", zap.Error(err))
	}

	return &OrderResult{OrderID: productOrder.ID, CustomerID: customer.ID}, nil
}

// createSizeLines writes one row per size with a positive quantity. An
// order where every quantity is zero is still accepted.
func (s *OrderService) createSizeLines(orderID uuid.UUID, selection []models.SizeSelection) error {
	var lines []models.OrderSize
	for _, item := range selection {
		if item.Quantity <= 0 {
			continue
		}
		sizeID, err := uuid.Parse(item.SizeID)
		if err != nil {
			return fmt.Errorf("invalid size id %q: %w", item.SizeID, err)
		}
		lines = append(lines, models.OrderSize{
			ProductOrderID: orderID,
			SizeID:         sizeID,
			Quantity:       item.Quantity,
		})
	}

	if len(lines) == 0 {
		return nil
	}

	if err := s.store.CreateOrderSizes(lines); err != nil {
		return fmt.Errorf("failed to create size lines: %w", err)
	}
	return nil
}

// uploadAssets stores each attached slot under a timestamp-prefixed key
// and records its placement. One slot failing never aborts the others
// or the order.
func (s *OrderService) uploadAssets(orderID uuid.UUID, assetFiles map[string]models.AssetFile) {
	for _, slot := range models.AssetSlots {
		file, ok := assetFiles[slot]
		if !ok || len(file.Data) == 0 {
			continue
		}

		key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), file.Filename)
		url, err := s.assets.UploadFile(key, file.Data, contentTypeFor(file.Filename))
		if err != nil {
			s.logger.Warn("failed to upload asset",
				zap.String("slot", slot),
				zap.String("filename", file.Filename),
				zap.Error(err))
			continue
		}

		asset := models.OrderAsset{
			ProductOrderID: orderID,
			URL:            url,
			Placement:      models.PlacementLabel(slot),
		}
		if err := s.store.CreateOrderAsset(asset); err != nil {
			s.logger.Warn("failed to record asset",
				zap.String("slot", slot),
				zap.String("url", url),
				zap.Error(err))
		}
	}
}

func (s *OrderService) notify(order models.OrderData, assets map[string]models.AssetFile, customerID uuid.UUID) {
	if err := s.notifier.SendOrderNotification(order, assets, customerID.String()); err != nil {
		s.logger.Error("failed to send order notification", zap.Error(err))
	}
}

func contentTypeFor(filename string) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".webp"):
		return "image/webp"
	case strings.HasSuffix(lower, ".svg"):
		return "image/svg+xml"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
