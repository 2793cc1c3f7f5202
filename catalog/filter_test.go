package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendora/storefront-api/models"
)

func testProducts() []models.Product {
	return []models.Product{
		{
			ID:       "p1",
			Name:     "Slim Tee",
			Category: models.Ref[models.Category]{ID: "shirts"},
			Subcategory: models.Ref[models.Subcategory]{
				Value: &models.Subcategory{ID: "tees", Name: "Tees"},
			},
			Fit:   models.Ref[models.Fit]{ID: "slim"},
			Sizes: []string{"S", "M"},
		},
		{
			ID:          "p2",
			Name:        "Oversized Tee",
			Category:    models.Ref[models.Category]{ID: "shirts"},
			Subcategory: models.Ref[models.Subcategory]{ID: "tees"},
			Fit:         models.Ref[models.Fit]{ID: "oversized"},
			Sizes:       []string{"L", "XL"},
		},
		{
			ID:       "p3",
			Name:     "Cargo Pants",
			Category: models.Ref[models.Category]{ID: "pants"},
			Subcategory: models.Ref[models.Subcategory]{
				Value: &models.Subcategory{ID: "cargos", Name: "Cargos"},
			},
			Fit:   models.Ref[models.Fit]{ID: "relaxed"},
			Sizes: []string{"M", "L"},
		},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterNoSelectionReturnsAll(t *testing.T) {
	got := Filter(testProducts(), Selection{})
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(got))
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(testProducts(), Selection{Category: "shirts"})
	assert.Equal(t, []string{"p1", "p2"}, ids(got))
}

func TestFilterMatchesPopulatedAndBareRefs(t *testing.T) {
	// p1 carries a populated subcategory object, p2 a bare id; both must
	// match the same selection.
	got := Filter(testProducts(), Selection{Subcategory: "tees"})
	assert.Equal(t, []string{"p1", "p2"}, ids(got))
}

func TestFilterCombinesPredicates(t *testing.T) {
	got := Filter(testProducts(), Selection{Category: "shirts", Fit: "slim", Size: "M"})
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestFilterBySizeExcludesProductsWithoutIt(t *testing.T) {
	got := Filter(testProducts(), Selection{Size: "XL"})
	assert.Equal(t, []string{"p2"}, ids(got))
}

func TestFilterNoMatchesReturnsEmptyNotNil(t *testing.T) {
	got := Filter(testProducts(), Selection{Category: "shoes"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWithCategoryResetsDescendants(t *testing.T) {
	sel := Selection{Category: "shirts", Subcategory: "tees", Fit: "slim", Size: "M"}
	got := sel.WithCategory("pants")

	assert.Equal(t, "pants", got.Category)
	assert.Empty(t, got.Subcategory)
	assert.Empty(t, got.Fit)
	assert.Equal(t, "M", got.Size, "size facet is independent of the hierarchy")
}

func TestWithSubcategoryResetsFitOnly(t *testing.T) {
	sel := Selection{Category: "shirts", Subcategory: "tees", Fit: "slim"}
	got := sel.WithSubcategory("polos")

	assert.Equal(t, "shirts", got.Category)
	assert.Equal(t, "polos", got.Subcategory)
	assert.Empty(t, got.Fit)
}

func TestClear(t *testing.T) {
	sel := Selection{Category: "shirts", Subcategory: "tees", Fit: "slim", Size: "M"}
	assert.Equal(t, Selection{}, sel.Clear())
}

func TestSubcategoryOptions(t *testing.T) {
	subs := []models.Subcategory{
		{ID: "tees", Category: models.Ref[models.Category]{ID: "shirts"}},
		{ID: "polos", Category: models.Ref[models.Category]{ID: "shirts"}},
		{ID: "cargos", Category: models.Ref[models.Category]{ID: "pants"}},
	}

	got := SubcategoryOptions(subs, "shirts")
	require.Len(t, got, 2)
	assert.Equal(t, "tees", got[0].ID)
	assert.Equal(t, "polos", got[1].ID)

	// No category selected offers everything.
	assert.Len(t, SubcategoryOptions(subs, ""), 3)
}

func TestFitOptions(t *testing.T) {
	fits := []models.Fit{
		{ID: "slim", Subcategory: models.Ref[models.Subcategory]{ID: "tees"}},
		{ID: "oversized", Subcategory: models.Ref[models.Subcategory]{ID: "tees"}},
		{ID: "relaxed", Subcategory: models.Ref[models.Subcategory]{ID: "cargos"}},
	}

	got := FitOptions(fits, "cargos")
	require.Len(t, got, 1)
	assert.Equal(t, "relaxed", got[0].ID)

	// No subcategory selected offers every fit, even with a category chosen
	// elsewhere in the selection.
	assert.Len(t, FitOptions(fits, ""), 3)
}
