// internal/domain/user.go
package domain

import "time"

// User represents a registered user of the cost manager.
// User IDs are caller-supplied logical identifiers, not store-generated keys;
// users are created once and never mutated or deleted by this service.
type User struct {
	ID            int64      `db:"id" json:"id"`
	FirstName     string     `db:"first_name" json:"first_name"`
	LastName      string     `db:"last_name" json:"last_name"`
	Birthday      *time.Time `db:"birthday" json:"birthday,omitempty"`
	MaritalStatus *string    `db:"marital_status" json:"marital_status,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// NewUser creates a new User instance.
func NewUser(id int64, firstName, lastName string, birthday *time.Time, maritalStatus *string) *User {
	return &User{
		ID:            id,
		FirstName:     firstName,
		LastName:      lastName,
		Birthday:      birthday,
		MaritalStatus: maritalStatus,
		CreatedAt:     time.Now().UTC(),
	}
}
