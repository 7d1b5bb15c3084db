package supabase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devteamsyntacticsinc/custom-product-designer/internal/supabase"
)

func timeFixture() time.Time {
	return time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)
}

func TestStorageClient_GetPublicURL(t *testing.T) {
	client, err := supabase.NewStorageClient("https://project.supabase.co/", "service-key", "product-images")
	require.NoError(t, err)

	url := client.GetPublicURL("1693526400000-logo.png")
	assert.Equal(t, "https://project.supabase.co/storage/v1/object/public/product-images/1693526400000-logo.png", url)
}

func TestOrderCreatedPayload(t *testing.T) {
	orderID := uuid.New()
	customerID := uuid.New()

	payload := supabase.OrderCreatedPayload(orderID, customerID, "Dana Cruz", timeFixture())

	assert.Equal(t, orderID.String(), payload["order_id"])
	assert.Equal(t, customerID.String(), payload["customer_id"])
	assert.Equal(t, "Dana Cruz", payload["customer_name"])
	assert.Equal(t, "2026-03-14T10:30:00Z", payload["created_at"])
}

func TestCustomerCreatedPayload(t *testing.T) {
	customerID := uuid.New()

	payload := supabase.CustomerCreatedPayload(customerID, "dana@example.com")

	assert.Equal(t, customerID.String(), payload["customer_id"])
	assert.Equal(t, "dana@example.com", payload["email"])
}
