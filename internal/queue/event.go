// Package queue defines message payloads exchanged over the message broker.
package queue

// UserRegisteredEvent is published when a signup completes. It carries
// enough information for downstream consumers to log or notify without
// querying the primary database. The password never leaves the app.
type UserRegisteredEvent struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Role         string `json:"role"`
	RegisteredAt string `json:"registered_at"`
}
