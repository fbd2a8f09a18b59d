package domain

import "time"

// Service represents a salon service offered to clients.
// Duration drives slot granularity for availability computation.
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Operator represents a staff member who performs services.
type Operator struct {
	ID         int64
	Name       string
	ServiceIDs []int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CanPerform returns true if the operator is qualified for the service.
func (o *Operator) CanPerform(serviceID int64) bool {
	for _, id := range o.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// UserRole is the authorization role of a user.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleClient UserRole = "client"
)

// User carries the identity data the booking core needs: a stable
// identifier and a role flag. Credentials live elsewhere.
type User struct {
	ID   int64
	Name string
	Role UserRole
}

// IsAdmin returns true for administrator users.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
