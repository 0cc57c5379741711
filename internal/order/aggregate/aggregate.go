// Package aggregate computes the dashboard totals. Totals are always taken
// over the full order collection, never a filtered view, so they stay
// stable while the admin searches and filters.
package aggregate

import (
	"fmt"

	"backoffice/internal/domain"
)

type Summary struct {
	TotalOrders int
	ByStatus    map[domain.Status]int
	Revenue     float64
}

// Summarize counts orders per status and sums revenue. Revenue keeps full
// float precision; rounding happens only at presentation.
func Summarize(orders []domain.Order) Summary {
	byStatus := make(map[domain.Status]int, len(domain.Statuses))
	for _, s := range domain.Statuses {
		byStatus[s] = 0
	}

	var revenue float64
	for _, o := range orders {
		byStatus[o.Status]++
		revenue += o.Amount
	}

	return Summary{
		TotalOrders: len(orders),
		ByStatus:    byStatus,
		Revenue:     revenue,
	}
}

// FormattedRevenue renders the revenue with two decimals, the way the
// dashboard displays it.
func (s Summary) FormattedRevenue() string {
	return fmt.Sprintf("%.2f", s.Revenue)
}
