package models

import "time"

type Product struct {
	ID          string `json:"_id"`
	ProductID   string `json:"productId,omitempty"` // human-facing product number
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	RegularPrice  float64 `json:"regularPrice,omitempty"`
	DiscountPrice float64 `json:"discountPrice,omitempty"`
	Price         float64 `json:"price,omitempty"` // legacy field on older records

	Images []string `json:"images,omitempty"`
	Image  string   `json:"image,omitempty"` // legacy single image

	Category    Ref[Category]    `json:"category"`
	Subcategory Ref[Subcategory] `json:"subcategory"`
	Fit         Ref[Fit]         `json:"fit,omitempty"`

	Sizes []string `json:"sizes,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// EffectivePrice is the price a buyer pays: discount price when set,
// otherwise regular price, otherwise the legacy price field.
func (p Product) EffectivePrice() float64 {
	switch {
	case p.DiscountPrice > 0:
		return p.DiscountPrice
	case p.RegularPrice > 0:
		return p.RegularPrice
	case p.Price > 0:
		return p.Price
	}
	return 0
}

// Number is the identifier shown to the seller in order messages,
// preferring the explicit product number over the database id.
func (p Product) Number() string {
	if p.ProductID != "" {
		return p.ProductID
	}
	return p.ID
}

// FitName resolves the fit display name, falling back to "Standard" when the
// fit is absent or arrived as a bare reference.
func (p Product) FitName() string {
	if fit, ok := p.Fit.Populated(); ok && fit.Name != "" {
		return fit.Name
	}
	return "Standard"
}

// HasSize reports whether the product is offered in the given size label.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
