package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an account managed from the admin dashboard.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
