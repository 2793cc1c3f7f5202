// Package catalog is the pure filtering layer over the product list and the
// three-level taxonomy (category → subcategory → fit) plus a size facet.
// Everything here is a plain function of its inputs; no I/O.
package catalog

import "github.com/trendora/storefront-api/models"

// Selection is the current filter state. Empty string means "unset".
type Selection struct {
	Category    string `form:"category" json:"category"`
	Subcategory string `form:"subcategory" json:"subcategory"`
	Fit         string `form:"fit" json:"fit"`
	Size        string `form:"size" json:"size"`
}

// WithCategory changes the category and resets the descendant selections,
// the way the storefront's category dropdown does. The size facet is not
// part of the hierarchy and survives.
func (s Selection) WithCategory(categoryID string) Selection {
	s.Category = categoryID
	s.Subcategory = ""
	s.Fit = ""
	return s
}

// WithSubcategory changes the subcategory and resets the fit selection.
func (s Selection) WithSubcategory(subcategoryID string) Selection {
	s.Subcategory = subcategoryID
	s.Fit = ""
	return s
}

// Clear unsets every filter, restoring the full product list.
func (s Selection) Clear() Selection {
	return Selection{}
}

// Filter returns the products passing every set predicate. Reference fields
// may arrive populated or as bare ids; Ref.Key normalizes both shapes before
// comparing.
func Filter(products []models.Product, sel Selection) []models.Product {
	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if sel.Category != "" && p.Category.Key() != sel.Category {
			continue
		}
		if sel.Subcategory != "" && p.Subcategory.Key() != sel.Subcategory {
			continue
		}
		if sel.Fit != "" && p.Fit.Key() != sel.Fit {
			continue
		}
		if sel.Size != "" && !p.HasSize(sel.Size) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

// SubcategoryOptions returns the valid subcategory choices for a category
// selection: the selection's children, or every subcategory when none is
// selected.
func SubcategoryOptions(subcategories []models.Subcategory, categoryID string) []models.Subcategory {
	if categoryID == "" {
		return subcategories
	}
	options := make([]models.Subcategory, 0, len(subcategories))
	for _, sub := range subcategories {
		if sub.Category.Key() == categoryID {
			options = append(options, sub)
		}
	}
	return options
}

// FitOptions returns the valid fit choices for a subcategory selection.
// With no subcategory selected every fit is offered — deliberately the same
// loose fallback the storefront shipped with, even though a category may be
// selected that would narrow them further.
func FitOptions(fits []models.Fit, subcategoryID string) []models.Fit {
	if subcategoryID == "" {
		return fits
	}
	options := make([]models.Fit, 0, len(fits))
	for _, fit := range fits {
		if fit.Subcategory.Key() == subcategoryID {
			options = append(options, fit)
		}
	}
	return options
}
