package composer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/devteamsyntacticsinc/custom-product-designer/internal/models"
)

// Step is the composer's position in the two-step order flow.
type Step int

const (
	StepCustomizing Step = iota
	StepReviewingContact
)

func (s Step) String() string {
	switch s {
	case StepCustomizing:
		return "customizing"
	case StepReviewingContact:
		return "reviewing-contact"
	default:
		return "unknown"
	}
}

// Lookup is the slice of catalog reads the composer depends on.
// *supabase.DatabaseClient satisfies it.
type Lookup interface {
	ListProductTypes() ([]models.ProductType, error)
	ListBrands(typeID uuid.UUID) ([]models.Brand, error)
	ListColors() ([]models.Color, error)
	ListSizes() ([]models.Size, error)
	ListAvailableSizes(typeID, brandID uuid.UUID) ([]models.Size, error)
}

// SizeRow is one entry of the per-size quantity array. Rows exist for
// every known size regardless of availability.
type SizeRow struct {
	Size     models.Size
	Quantity int
}

// Composer holds an in-progress order across the Customize and
// Contact/Confirm steps and assembles the submission payload.
type Composer struct {
	lookup Lookup
	step   Step

	productTypes []models.ProductType
	brands       []models.Brand
	colors       []models.Color
	sizes        []models.Size

	productTypeID uuid.UUID
	brandID       uuid.UUID
	colorID       uuid.UUID

	rows      []SizeRow
	available map[uuid.UUID]bool
	assets    map[string]*models.AssetFile
	contact   models.ContactInformation
}

// New enters the Customizing step with the reference lists loaded and
// every size row seeded at quantity zero.
func New(lookup Lookup) (*Composer, error) {
	c := &Composer{lookup: lookup}

	types, err := lookup.ListProductTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to load product types: %w", err)
	}
	colors, err := lookup.ListColors()
	if err != nil {
		return nil, fmt.Errorf("failed to load colors: %w", err)
	}
	sizes, err := lookup.ListSizes()
	if err != nil {
		return nil, fmt.Errorf("failed to load sizes: %w", err)
	}

	c.productTypes = types
	c.colors = colors
	c.sizes = sizes
	c.enterCustomizing()

	return c, nil
}

func (c *Composer) enterCustomizing() {
	c.step = StepCustomizing
	c.productTypeID = uuid.Nil
	c.brandID = uuid.Nil
	c.colorID = uuid.Nil
	c.brands = nil
	c.available = nil
	c.contact = models.ContactInformation{}

	c.rows = make([]SizeRow, len(c.sizes))
	for i, s := range c.sizes {
		c.rows[i] = SizeRow{Size: s}
	}

	c.assets = make(map[string]*models.AssetFile, len(models.AssetSlots))
	for _, slot := range models.AssetSlots {
		c.assets[slot] = nil
	}
}

// Reset returns the composer to its initial Customizing state. Called
// after a successful submission; a failed one keeps everything for retry.
func (c *Composer) Reset() {
	c.enterCustomizing()
}

func (c *Composer) Step() Step { return c.step }

// SelectProductType scopes the brand list to the chosen type. The brand
// selection is cleared since its scoping type changed.
func (c *Composer) SelectProductType(id uuid.UUID) error {
	if c.step != StepCustomizing {
		return fmt.Errorf("cannot change product type while %s", c.step)
	}

	brands, err := c.lookup.ListBrands(id)
	if err != nil {
		return fmt.Errorf("failed to load brands: %w", err)
	}

	c.productTypeID = id
	c.brandID = uuid.Nil
	c.brands = brands

	return c.refreshAvailability()
}

func (c *Composer) SelectBrand(id uuid.UUID) error {
	if c.step != StepCustomizing {
		return fmt.Errorf("cannot change brand while %s", c.step)
	}

	c.brandID = id
	return c.refreshAvailability()
}

func (c *Composer) SelectColor(id uuid.UUID) {
	c.colorID = id
}

func (c *Composer) refreshAvailability() error {
	if c.productTypeID == uuid.Nil {
		c.available = nil
		c.disableAll()
		return nil
	}

	sizes, err := c.lookup.ListAvailableSizes(c.productTypeID, c.brandID)
	if err != nil {
		return fmt.Errorf("failed to load size availability: %w", err)
	}

	c.available = make(map[uuid.UUID]bool, len(sizes))
	for _, s := range sizes {
		c.available[s.ID] = true
	}

	// Quantities already entered for sizes that just became unavailable
	// are forced back to zero.
	for i := range c.rows {
		if !c.SizeEnabled(c.rows[i].Size.ID) {
			c.rows[i].Quantity = 0
		}
	}

	return nil
}

func (c *Composer) disableAll() {
	for i := range c.rows {
		c.rows[i].Quantity = 0
	}
}

// SizeEnabled reports whether a size row is editable: both a product
// type and a brand must be chosen and the size must be in the
// availability subset for that pairing.
func (c *Composer) SizeEnabled(sizeID uuid.UUID) bool {
	if c.productTypeID == uuid.Nil || c.brandID == uuid.Nil {
		return false
	}
	return c.available[sizeID]
}

// SetQuantity updates a single size row from raw user input. Anything
// that is not a digit is stripped; an empty or unparsable remainder
// counts as zero. Disabled rows stay at zero.
func (c *Composer) SetQuantity(sizeID uuid.UUID, raw string) {
	qty := sanitizeQuantity(raw)
	for i := range c.rows {
		if c.rows[i].Size.ID != sizeID {
			continue
		}
		if !c.SizeEnabled(sizeID) {
			c.rows[i].Quantity = 0
			return
		}
		c.rows[i].Quantity = qty
		return
	}
}

func sanitizeQuantity(raw string) int {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

// AttachAsset puts a file into one of the four fixed slots, replacing
// whatever was there before.
func (c *Composer) AttachAsset(slot string, filename string, data []byte) error {
	if _, ok := c.assets[slot]; !ok {
		return fmt.Errorf("unknown asset slot %q", slot)
	}
	c.assets[slot] = &models.AssetFile{Filename: filename, Data: data}
	return nil
}

// RemoveAsset clears a slot so the same file can be re-selected.
func (c *Composer) RemoveAsset(slot string) error {
	if _, ok := c.assets[slot]; !ok {
		return fmt.Errorf("unknown asset slot %q", slot)
	}
	c.assets[slot] = nil
	return nil
}

func (c *Composer) SetContact(contact models.ContactInformation) {
	c.contact = contact
}

// Next advances to the contact/confirm step. There is deliberately no
// field-presence gate here; validation happens at submission.
func (c *Composer) Next() error {
	if c.step != StepCustomizing {
		return fmt.Errorf("next is only valid while %s", StepCustomizing)
	}
	c.step = StepReviewingContact
	return nil
}

func (c *Composer) Back() error {
	if c.step != StepReviewingContact {
		return fmt.Errorf("back is only valid while %s", StepReviewingContact)
	}
	c.step = StepCustomizing
	return nil
}

// BuildOrder assembles the submission descriptor, resolving display
// names from the already-fetched lists. Size rows keep their domain
// order; zero quantities are carried and dropped at persistence.
func (c *Composer) BuildOrder() models.OrderData {
	order := models.OrderData{
		ProductTypeID:      idOrEmpty(c.productTypeID),
		BrandID:            idOrEmpty(c.brandID),
		ColorID:            idOrEmpty(c.colorID),
		ContactInformation: c.contact,
	}

	for _, t := range c.productTypes {
		if t.ID == c.productTypeID {
			order.ProductType = t.Name
		}
	}
	for _, b := range c.brands {
		if b.ID == c.brandID {
			order.Brand = b.Name
		}
	}
	for _, col := range c.colors {
		if col.ID == c.colorID {
			order.Color = col.Value
		}
	}

	order.SizeSelection = make([]models.SizeSelection, len(c.rows))
	for i, row := range c.rows {
		order.SizeSelection[i] = models.SizeSelection{
			SizeID:   row.Size.ID.String(),
			Size:     row.Size.Value,
			Quantity: row.Quantity,
		}
	}

	return order
}

// Assets returns the attached files keyed by slot, empty slots omitted.
func (c *Composer) Assets() map[string]models.AssetFile {
	out := make(map[string]models.AssetFile)
	for slot, file := range c.assets {
		if file != nil {
			out[slot] = *file
		}
	}
	return out
}

// Rows exposes the per-size quantity array in domain order.
func (c *Composer) Rows() []SizeRow {
	rows := make([]SizeRow, len(c.rows))
	copy(rows, c.rows)
	return rows
}

// Brands exposes the brand list scoped to the selected product type.
func (c *Composer) Brands() []models.Brand {
	return c.brands
}

func idOrEmpty(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
