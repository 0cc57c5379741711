package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_Creation(t *testing.T) {
	placed := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	order := Order{
		ID: "665f1c2e9b3a4d0012ab34cd",
		Customer: &Customer{
			Name:  "John Doe",
			Email: "john@example.com",
		},
		Date: placed,
		Items: []OrderItem{
			{ProductID: "p1", Name: "Sneakers", Quantity: 1, Price: 59.99},
			{ProductID: "p2", Name: "Socks", Quantity: 3, Price: 4.50},
		},
		Amount:        73.49,
		Status:        StatusPending,
		PaymentStatus: PaymentPaid,
		PaymentMethod: "cod",
	}

	assert.Equal(t, "665f1c2e9b3a4d0012ab34cd", order.ID)
	assert.Equal(t, "John Doe", order.CustomerName())
	assert.Equal(t, "john@example.com", order.CustomerEmail())
	assert.Equal(t, placed, order.Date)
	assert.Equal(t, 2, order.ItemCount())
	assert.Equal(t, 73.49, order.Amount)
	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, PaymentPaid, order.PaymentStatus)
}

func TestOrder_MissingCustomer(t *testing.T) {
	order := Order{ID: "abc", Customer: nil}

	assert.Equal(t, "N/A", order.CustomerName())
	assert.Equal(t, "N/A", order.CustomerEmail())
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}

	assert.False(t, Status("archived").IsValid())
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("Pending").IsValid(), "status values are lowercase")
}

func TestPaymentStatus_IsValid(t *testing.T) {
	for _, p := range PaymentStatuses {
		assert.True(t, p.IsValid(), "expected %q to be valid", p)
	}

	assert.False(t, PaymentStatus("refunded").IsValid())
	assert.False(t, PaymentStatus("").IsValid())
}

func TestStatus_Enumeration(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "confirmed", StatusConfirmed.String())
	assert.Equal(t, "shipped", StatusShipped.String())
	assert.Equal(t, "delivered", StatusDelivered.String())
	assert.Equal(t, "cancelled", StatusCancelled.String())

	assert.Equal(t, "pending", PaymentPending.String())
	assert.Equal(t, "paid", PaymentPaid.String())
	assert.Equal(t, "failed", PaymentFailed.String())
}
