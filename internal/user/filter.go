package user

import (
	"strings"

	"backoffice/internal/domain"
)

// RoleAll disables the role filter.
const RoleAll = "all"

// Filter retains users whose name or email contains the term
// (case-insensitive, empty term matches all) and whose role equals the
// filter unless it is "all". Like the order view, a role outside the
// known set is not an error: it matches nothing.
func Filter(users []domain.User, term, role string) []domain.User {
	term = strings.ToLower(term)

	result := make([]domain.User, 0, len(users))
	for _, u := range users {
		if term != "" &&
			!strings.Contains(strings.ToLower(u.Name), term) &&
			!strings.Contains(strings.ToLower(u.Email), term) {
			continue
		}
		if role != "" && role != RoleAll && u.Role != role {
			continue
		}
		result = append(result, u)
	}
	return result
}
