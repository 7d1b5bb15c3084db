package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID            uuid.UUID
	Name          string
	Email         string
	ContactNumber string
	Address       string
	CreatedAt     time.Time
}

type ProductOrder struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	BrandTypeID uuid.UUID
	ColorID     uuid.UUID
	CreatedAt   time.Time
}

// OrderSize is one per-size line of an order. Rows are only ever written
// for quantities greater than zero.
type OrderSize struct {
	ProductOrderID uuid.UUID
	SizeID         uuid.UUID
	Quantity       int
}

// OrderAsset records an uploaded design file and where it is printed.
type OrderAsset struct {
	ProductOrderID uuid.UUID
	URL            string
	Placement      string
}

// RecentOrder is the joined order row behind the admin activity feed.
type RecentOrder struct {
	ID           uuid.UUID
	CustomerName string
	CreatedAt    time.Time
}

type RecentCustomer struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

// AssetSlots are the four fixed print locations, in display order.
var AssetSlots = []string{
	"front-top-left",
	"front-center",
	"back-top",
	"back-bottom",
}

var placementLabels = map[string]string{
	"front-top-left": "Front - Top Left",
	"front-center":   "Front - Center",
	"back-top":       "Back - Top",
	"back-bottom":    "Back - Bottom",
}

// PlacementLabel maps a slot key to its human-readable label. Unknown
// keys pass through unchanged.
func PlacementLabel(slot string) string {
	if label, ok := placementLabels[slot]; ok {
		return label
	}
	return slot
}
