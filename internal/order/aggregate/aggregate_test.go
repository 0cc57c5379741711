package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"backoffice/internal/domain"
	"backoffice/internal/order/query"
)

func TestSummarize_CountsAndRevenue(t *testing.T) {
	orders := []domain.Order{
		{ID: "A1", Status: domain.StatusPending, Amount: 10, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "A2", Status: domain.StatusDelivered, Amount: 20, Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	s := Summarize(orders)

	assert.Equal(t, 2, s.TotalOrders)
	assert.Equal(t, 1, s.ByStatus[domain.StatusPending])
	assert.Equal(t, 1, s.ByStatus[domain.StatusDelivered])
	assert.Equal(t, 0, s.ByStatus[domain.StatusCancelled])
	assert.Equal(t, 30.0, s.Revenue)
	assert.Equal(t, "30.00", s.FormattedRevenue())
}

func TestSummarize_PartitionLaw(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", Status: domain.StatusPending, Amount: 1},
		{ID: "2", Status: domain.StatusPending, Amount: 2},
		{ID: "3", Status: domain.StatusConfirmed, Amount: 3},
		{ID: "4", Status: domain.StatusShipped, Amount: 4},
		{ID: "5", Status: domain.StatusCancelled, Amount: 5},
	}

	s := Summarize(orders)

	sum := 0
	for _, count := range s.ByStatus {
		sum += count
	}
	assert.Equal(t, s.TotalOrders, sum)
}

func TestSummarize_IndependentOfActiveFilter(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", Status: domain.StatusPending, Amount: 10.50},
		{ID: "2", Status: domain.StatusDelivered, Amount: 5.25},
		{ID: "3", Status: domain.StatusDelivered, Amount: 4.25},
	}

	// Filtering the view must not change what the dashboard totals see.
	filtered := query.Apply(orders, query.Query{Status: "delivered"})
	assert.Len(t, filtered, 2)

	s := Summarize(orders)
	assert.Equal(t, 3, s.TotalOrders)
	assert.Equal(t, 20.0, s.Revenue)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.TotalOrders)
	assert.Equal(t, 0.0, s.Revenue)
	assert.Equal(t, "0.00", s.FormattedRevenue())
	for _, status := range domain.Statuses {
		assert.Contains(t, s.ByStatus, status)
	}
}

func TestSummarize_FullPrecisionKept(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", Status: domain.StatusPending, Amount: 0.105},
		{ID: "2", Status: domain.StatusPending, Amount: 0.105},
	}

	s := Summarize(orders)

	assert.InDelta(t, 0.21, s.Revenue, 1e-9)
	assert.Equal(t, "0.21", s.FormattedRevenue())
}
