// internal/api/types/response.go
package types

// Envelope wraps successful responses with a human-readable message.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// TeamMember is one entry of the static team listing.
type TeamMember struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
