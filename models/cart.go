package models

import "time"

// CartEntry is a denormalized product snapshot, not a live reference to
// catalog data. At most one entry exists per product id; re-adding
// increments Quantity instead of duplicating.
type CartEntry struct {
	Product      Product   `json:"product"`
	Quantity     int       `json:"quantity"`
	SelectedSize string    `json:"selectedSize,omitempty"`
	AddedAt      time.Time `json:"addedAt"`
}

// LineTotal is the entry's contribution to the cart total.
func (e CartEntry) LineTotal() float64 {
	return e.Product.EffectivePrice() * float64(e.Quantity)
}
