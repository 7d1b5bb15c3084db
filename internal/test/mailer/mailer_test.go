package mailer_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devteamsyntacticsinc/custom-product-designer/internal/config"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/mailer"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/models"
)

func newMailer(t *testing.T) *mailer.Mailer {
	t.Helper()
	m, err := mailer.New(&config.Config{
		SMTPHost:      "smtp.example.com",
		SMTPPort:      465,
		SMTPSecure:    true,
		SMTPUser:      "orders@example.com",
		SMTPPass:      "secret",
		MailFrom:      "orders@example.com",
		OperatorEmail: "owner@example.com",
	})
	require.NoError(t, err)
	return m
}

func testOrder() models.OrderData {
	return models.OrderData{
		ProductType: "T-Shirt",
		Brand:       "Acme",
		Color:       "Black",
		SizeSelection: []models.SizeSelection{
			{SizeID: uuid.NewString(), Size: "Small", Quantity: 0},
			{SizeID: uuid.NewString(), Size: "Medium", Quantity: 3},
			{SizeID: uuid.NewString(), Size: "Large", Quantity: 2},
		},
		ContactInformation: models.ContactInformation{
			FullName:      "Dana Cruz",
			Email:         "dana@example.com",
			ContactNumber: "555-0100",
			Address:       "12 Harbor St",
		},
	}
}

func TestRenderOrderNotification_Content(t *testing.T) {
	m := newMailer(t)

	body, err := m.RenderOrderNotification(testOrder(), nil, "cust-42")
	require.NoError(t, err)

	assert.Contains(t, body, "cust-42")
	assert.Contains(t, body, "Dana Cruz")
	assert.Contains(t, body, "dana@example.com")
	assert.Contains(t, body, "555-0100")
	assert.Contains(t, body, "12 Harbor St")
	assert.Contains(t, body, "T-Shirt")
	assert.Contains(t, body, "Acme")
	assert.Contains(t, body, "Black")
}

func TestRenderOrderNotification_SkipsZeroQuantities(t *testing.T) {
	m := newMailer(t)

	body, err := m.RenderOrderNotification(testOrder(), nil, "cust-42")
	require.NoError(t, err)

	assert.Contains(t, body, "Medium")
	assert.Contains(t, body, "Large")
	assert.NotContains(t, body, "Small")

	// Total counts every line, including the zero ones.
	assert.Contains(t, body, "<strong>Total Items:</strong> 5")
}

func TestRenderOrderNotification_Assets(t *testing.T) {
	m := newMailer(t)

	assets := map[string]models.AssetFile{
		"front-center": {Filename: "logo.png", Data: []byte{1}},
		"back-bottom":  {Filename: "art.jpg", Data: []byte{2}},
	}

	body, err := m.RenderOrderNotification(testOrder(), assets, "cust-42")
	require.NoError(t, err)

	assert.Contains(t, body, "logo.png")
	assert.Contains(t, body, "Front - Center")
	assert.Contains(t, body, "art.jpg")
	assert.Contains(t, body, "Back - Bottom")
	assert.NotContains(t, body, "Front - Top Left")
}

func TestRenderOrderNotification_NoAssetsSection(t *testing.T) {
	m := newMailer(t)

	body, err := m.RenderOrderNotification(testOrder(), nil, "cust-42")
	require.NoError(t, err)

	assert.NotContains(t, body, "Uploaded Assets")
}
