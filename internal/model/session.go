package model

// Session is the typed per-user state kept outside the process in Redis.
// It is created at login or signup, mutated only through the session
// store, and removed at logout or when its TTL expires. The cart lives
// here and nowhere else; it is not persisted to the database.
type Session struct {
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      string     `json:"role"`
	Approved  bool       `json:"approved"`
	Cart      []CartItem `json:"cart,omitempty"`
}
