// Package cart implements the transitions of the session-backed
// shopping cart. A cart is an ordered slice of line items, unique by
// product id. The functions here are pure: callers read the cart from
// the session, apply one transition and write the whole cart back.
package cart

import "github.com/iliyamo/online-market/internal/model"

// Add puts a product into the cart. If a line item with the same
// product id already exists its quantity grows by one and the stored
// title/price/image snapshot is left untouched. Otherwise a new item is
// appended with quantity 1, snapshotting the product's current fields.
func Add(items []model.CartItem, p *model.Product) []model.CartItem {
	id := p.ID.Hex()
	for i := range items {
		if items[i].ProductID == id {
			items[i].Quantity++
			return items
		}
	}
	return append(items, model.CartItem{
		ProductID: id,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// Increment raises the quantity of the item with the given product id
// by one. An absent id is a defined no-op.
func Increment(items []model.CartItem, productID string) []model.CartItem {
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity++
			break
		}
	}
	return items
}

// Decrement lowers the quantity of the item with the given product id
// by one. An item that reaches zero is removed entirely, never kept at
// quantity zero. An absent id is a no-op.
func Decrement(items []model.CartItem, productID string) []model.CartItem {
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity--
			if items[i].Quantity <= 0 {
				return append(items[:i], items[i+1:]...)
			}
			break
		}
	}
	return items
}

// Remove drops any item matching the product id. An absent id is a no-op.
func Remove(items []model.CartItem, productID string) []model.CartItem {
	out := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}

// Total computes the cart total as the sum of price times quantity over
// all line items. It is recomputed fresh on every view and never stored.
func Total(items []model.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}
