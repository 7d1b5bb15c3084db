package handlers

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devteamsyntacticsinc/custom-product-designer/internal/models"
)

const (
	recentOrdersLimit    = 3
	recentCustomersLimit = 2
	activityLimit        = 5
)

// DashboardStore is the slice of DatabaseClient the dashboard reads.
type DashboardStore interface {
	CountOrders() (int, error)
	CountCustomers() (int, error)
	CountBrandTypes() (int, error)
	CountBrands() (int, error)
	CountColors() (int, error)
	CountProductTypes() (int, error)
	RecentOrders(limit int) ([]models.RecentOrder, error)
	RecentCustomers(limit int) ([]models.RecentCustomer, error)
}

type DashboardHandler struct {
	dbClient DashboardStore
	logger   *zap.Logger
}

func NewDashboardHandler(dbClient DashboardStore, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dbClient: dbClient,
		logger:   logger,
	}
}

// GetDashboard godoc
// @Summary     Admin dashboard aggregate
// @Description Returns order/customer/catalog counts and a merged recent-activity feed.
// @Description Counts degrade to zero and the feed to empty when the backend is unreachable.
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} models.DashboardResponse
// @Router      /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var stats models.DashboardStats

	// The six counts target disjoint metrics, so they run concurrently
	// and each failure independently degrades to zero.
	counts := []struct {
		dest  *int
		count func() (int, error)
		name  string
	}{
		{&stats.TotalOrders, h.dbClient.CountOrders, "orders"},
		{&stats.TotalUsers, h.dbClient.CountCustomers, "customers"},
		{&stats.ActiveProducts, h.dbClient.CountBrandTypes, "brand types"},
		{&stats.TotalBrands, h.dbClient.CountBrands, "brands"},
		{&stats.TotalColors, h.dbClient.CountColors, "colors"},
		{&stats.TotalTypes, h.dbClient.CountProductTypes, "product types"},
	}

	var wg sync.WaitGroup
	for _, metric := range counts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := metric.count()
			if err != nil {
				h.logger.Warn("dashboard count failed", zap.String("metric", metric.name), zap.Error(err))
				return
			}
			*metric.dest = n
		}()
	}
	wg.Wait()

	c.JSON(http.StatusOK, models.DashboardResponse{
		Success: true,
		Data: models.DashboardData{
			Stats:          stats,
			RecentActivity: h.recentActivity(),
		},
	})
}

type activityEntry struct {
	item models.ActivityItem
	at   time.Time
}

// recentActivity merges the newest orders and customers into one feed,
// newest first, capped at five entries. Lookup failures degrade to an
// empty feed.
func (h *DashboardHandler) recentActivity() []models.ActivityItem {
	var entries []activityEntry

	orders, err := h.dbClient.RecentOrders(recentOrdersLimit)
	if err != nil {
		h.logger.Warn("recent orders lookup failed", zap.Error(err))
	}
	for _, o := range orders {
		name := o.CustomerName
		if name == "" {
			name = "Unknown Customer"
		}
		entries = append(entries, activityEntry{
			at: o.CreatedAt,
			item: models.ActivityItem{
				ID:          "order-" + o.ID.String(),
				Type:        "order",
				Title:       "New order received",
				Description: "Order #" + shortID(o.ID.String()) + " - " + name,
				Timestamp:   o.CreatedAt.UTC().Format(time.RFC3339),
			},
		})
	}

	customers, err := h.dbClient.RecentCustomers(recentCustomersLimit)
	if err != nil {
		h.logger.Warn("recent customers lookup failed", zap.Error(err))
	}
	for _, cust := range customers {
		entries = append(entries, activityEntry{
			at: cust.CreatedAt,
			item: models.ActivityItem{
				ID:          "user-" + cust.ID.String(),
				Type:        "user",
				Title:       "New user registered",
				Description: cust.Email,
				Timestamp:   cust.CreatedAt.UTC().Format(time.RFC3339),
			},
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].at.After(entries[j].at)
	})
	if len(entries) > activityLimit {
		entries = entries[:activityLimit]
	}

	items := make([]models.ActivityItem, len(entries))
	for i, e := range entries {
		items[i] = e.item
	}
	return items
}

func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}
