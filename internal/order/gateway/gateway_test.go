package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/config"
	"backoffice/internal/errors"
	"backoffice/internal/infrastructure/upstream"
	"backoffice/internal/testutil"
)

func newTestClient(t *testing.T, fake *testutil.FakeCommerceAPI, token string) *Client {
	up := upstream.New(config.UpstreamConfig{
		BaseURL: fake.URL(),
		Token:   token,
		Timeout: 5 * time.Second,
	})
	return NewClient(up, nil)
}

func TestFetchOrders_DecodesDocuments(t *testing.T) {
	fake := testutil.NewFakeCommerceAPI(t)
	fake.SeedOrders(
		map[string]interface{}{
			"_id":           "665f1c2e9b3a4d0012ab34cd",
			"userId":        map[string]interface{}{"name": "Alice", "email": "alice@example.com"},
			"date":          int64(1704067200000), // 2024-01-01T00:00:00Z in millis
			"items":         []map[string]interface{}{{"productId": "p1", "quantity": 2, "price": 5.0}},
			"amount":        10.0,
			"status":        "pending",
			"paymentStatus": "paid",
			"paymentMethod": "cod",
		},
		map[string]interface{}{
			"_id":           "665f1c2e9b3a4d0012ab34ce",
			"userId":        nil,
			"date":          "2024-01-02T00:00:00Z",
			"items":         []map[string]interface{}{},
			"amount":        20.0,
			"status":        "delivered",
			"paymentStatus": "pending",
			"paymentMethod": "stripe",
		},
	)

	client := newTestClient(t, fake, "")
	orders, err := client.FetchOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)

	first := orders[0]
	assert.Equal(t, "665f1c2e9b3a4d0012ab34cd", first.ID)
	require.NotNil(t, first.Customer)
	assert.Equal(t, "Alice", first.Customer.Name)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 1, first.ItemCount())
	assert.Equal(t, "pending", first.Status.String())

	second := orders[1]
	assert.Nil(t, second.Customer)
	assert.Equal(t, "N/A", second.CustomerName())
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), second.Date)
}

func TestFetchOrders_BareUserIDStringMeansNoCustomer(t *testing.T) {
	fake := testutil.NewFakeCommerceAPI(t)
	fake.SeedOrders(map[string]interface{}{
		"_id":           "o1",
		"userId":        "665f000000000000000000aa",
		"date":          int64(1704067200000),
		"amount":        5.0,
		"status":        "pending",
		"paymentStatus": "pending",
	})

	client := newTestClient(t, fake, "")
	orders, err := client.FetchOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Nil(t, orders[0].Customer)
}

func TestFetchOrders_SuccessFalseSurfacesMessage(t *testing.T) {
	fake := testutil.NewFakeCommerceAPI(t)
	fake.FailPath("/api/order/list", "token expired")

	client := newTestClient(t, fake, "")
	orders, err := client.FetchOrders(context.Background())

	assert.Nil(t, orders)
	ge, ok := errors.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, "token expired", ge.Message)
}

func TestFetchOrders_AttachesBearerToken(t *testing.T) {
	fake := testutil.NewFakeCommerceAPI(t)
	fake.RequireBearer("secret-token")
	fake.SeedOrders()

	authorized := newTestClient(t, fake, "secret-token")
	_, err := authorized.FetchOrders(context.Background())
	assert.NoError(t, err)

	anonymous := newTestClient(t, fake, "")
	_, err = anonymous.FetchOrders(context.Background())
	ge, ok := errors.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, "Not authorized", ge.Message)
}

func TestUpdateOrder_SendsStatusAndOptionalPayment(t *testing.T) {
	fake := testutil.NewFakeCommerceAPI(t)
	client := newTestClient(t, fake, "")

	err := client.UpdateOrder(context.Background(), "o1", "shipped", "paid")
	require.NoError(t, err)

	err = client.UpdateOrder(context.Background(), "o2", "confirmed", "")
	require.NoError(t, err)

	requests := fake.Requests()
	require.Len(t, requests, 2)

	withPayment := requests[0]
	assert.Equal(t, "/api/order/update-status", withPayment.Path)
	assert.Equal(t, "o1", withPayment.Body["orderId"])
	assert.Equal(t, "shipped", withPayment.Body["status"])
	assert.Equal(t, "paid", withPayment.Body["paymentStatus"])

	withoutPayment := requests[1]
	assert.Equal(t, "confirmed", withoutPayment.Body["status"])
	_, present := withoutPayment.Body["paymentStatus"]
	assert.False(t, present, "empty payment status must be omitted")
}

func TestDeleteOrder_FailureSurfacesMessage(t *testing.T) {
	fake := testutil.NewFakeCommerceAPI(t)
	fake.FailPath("/api/order/delete", "Order not found")

	client := newTestClient(t, fake, "")
	err := client.DeleteOrder(context.Background(), "missing")

	ge, ok := errors.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, "Order not found", ge.Message)
}

func TestDeleteOrder_SendsOrderID(t *testing.T) {
	fake := testutil.NewFakeCommerceAPI(t)
	client := newTestClient(t, fake, "")

	require.NoError(t, client.DeleteOrder(context.Background(), "o9"))

	requests := fake.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "/api/order/delete", requests[0].Path)
	assert.Equal(t, "o9", requests[0].Body["orderId"])
}
