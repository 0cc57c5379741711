package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
)

func testUsers() []domain.User {
	return []domain.User{
		{ID: "u1", Name: "Alice Smith", Email: "alice@example.com", Role: domain.RoleAdmin},
		{ID: "u2", Name: "Bob Jones", Email: "bob@example.com", Role: domain.RoleUser},
		{ID: "u3", Name: "Carol White", Email: "carol@shop.io", Role: domain.RoleUser},
	}
}

func userIDs(users []domain.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func TestFilter_EmptyTermAllRoles(t *testing.T) {
	result := Filter(testUsers(), "", RoleAll)

	assert.Equal(t, []string{"u1", "u2", "u3"}, userIDs(result))
}

func TestFilter_TermMatchesNameOrEmail(t *testing.T) {
	byName := Filter(testUsers(), "ALICE", RoleAll)
	require.Len(t, byName, 1)
	assert.Equal(t, "u1", byName[0].ID)

	byEmail := Filter(testUsers(), "shop.io", RoleAll)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "u3", byEmail[0].ID)
}

func TestFilter_RoleEquality(t *testing.T) {
	result := Filter(testUsers(), "", domain.RoleUser)

	assert.Equal(t, []string{"u2", "u3"}, userIDs(result))
}

func TestFilter_TermAndRoleCombine(t *testing.T) {
	result := Filter(testUsers(), "o", domain.RoleUser)

	// "o" matches Bob and Carol by name; Alice is admin anyway.
	assert.Equal(t, []string{"u2", "u3"}, userIDs(result))
}

func TestFilter_UnknownRoleMatchesNothing(t *testing.T) {
	result := Filter(testUsers(), "", "superadmin")

	assert.Empty(t, result)
}
