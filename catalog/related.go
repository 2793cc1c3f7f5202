package catalog

import "github.com/trendora/storefront-api/models"

// Related picks up to limit products related to focus: products sharing its
// fit first, and only when no product shares the fit, products sharing its
// category. The fallback is the entire recommendation algorithm.
func Related(all []models.Product, focus models.Product, limit int) []models.Product {
	var related []models.Product

	if fitID := focus.Fit.Key(); fitID != "" {
		related = matching(all, focus.ID, func(p models.Product) bool {
			return p.Fit.Key() == fitID
		})
	}
	if len(related) == 0 {
		if categoryID := focus.Category.Key(); categoryID != "" {
			related = matching(all, focus.ID, func(p models.Product) bool {
				return p.Category.Key() == categoryID
			})
		}
	}

	if len(related) > limit {
		related = related[:limit]
	}
	return related
}

func matching(all []models.Product, excludeID string, match func(models.Product) bool) []models.Product {
	var out []models.Product
	for _, p := range all {
		if p.ID == excludeID {
			continue
		}
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}
