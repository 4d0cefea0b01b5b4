package model

// CartItem is one line of a session cart. Title, price and image are a
// snapshot taken when the product was first added; later catalog edits
// do not re-sync them. Quantity is always at least 1, an item that
// drops to zero is removed from the cart rather than kept.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}
