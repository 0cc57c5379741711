// Package query filters and sorts an order collection for display. It is
// pure: the input slice is never mutated and the same collection and query
// always produce the same result.
package query

import (
	"sort"
	"strings"

	"backoffice/internal/domain"
)

// FilterAll is the sentinel that disables a status or payment filter.
const FilterAll = "all"

type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByAmount SortKey = "amount"
	SortByStatus SortKey = "status"
)

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Query is the search term, filters and sort the admin has active.
type Query struct {
	Term      string
	Status    string
	Payment   string
	SortBy    SortKey
	SortOrder SortOrder
}

// Apply retains orders matching the term and filters, then stable-sorts
// by the chosen key. An empty term matches everything; a term is matched
// case-insensitively as a substring of the order id, customer name or
// customer email, and an order with no customer can only match on id.
// Unknown sort keys fall back to date, matching the dashboard default.
func Apply(orders []domain.Order, q Query) []domain.Order {
	term := strings.ToLower(q.Term)

	result := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if !matchesTerm(o, term) {
			continue
		}
		if q.Status != "" && q.Status != FilterAll && string(o.Status) != q.Status {
			continue
		}
		if q.Payment != "" && q.Payment != FilterAll && string(o.PaymentStatus) != q.Payment {
			continue
		}
		result = append(result, o)
	}

	less := lessFunc(q.SortBy)
	sort.SliceStable(result, func(i, j int) bool { return less(result[i], result[j]) })

	// Descending is the exact reverse of ascending, ties included.
	if q.SortOrder == Desc {
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}

	return result
}

func matchesTerm(o domain.Order, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(o.ID), term) {
		return true
	}
	if o.Customer == nil {
		return false
	}
	return strings.Contains(strings.ToLower(o.Customer.Name), term) ||
		strings.Contains(strings.ToLower(o.Customer.Email), term)
}

func lessFunc(key SortKey) func(a, b domain.Order) bool {
	switch key {
	case SortByAmount:
		return func(a, b domain.Order) bool { return a.Amount < b.Amount }
	case SortByStatus:
		// Lexical on the string value, not lifecycle order.
		return func(a, b domain.Order) bool { return a.Status < b.Status }
	default:
		return func(a, b domain.Order) bool { return a.Date.Before(b.Date) }
	}
}
