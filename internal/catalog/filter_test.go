package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"swipeshop/internal/model"
)

func named(names ...string) []model.Product {
	products := make([]model.Product, 0, len(names))
	for _, n := range names {
		products = append(products, model.Product{Name: n})
	}
	return products
}

func TestFilter_DenyList(t *testing.T) {
	got := Filter(named("Ripped Jeans", "Denim Jacket", "ripped jeans", "RIPPED JEANS "))

	assert.Len(t, got, 1)
	assert.Equal(t, "Denim Jacket", got[0].Name)
}

func TestFilter_DedupFirstWins(t *testing.T) {
	got := Filter(named("Sneakers", "sneakers", " Sneakers ", "Boots"))

	assert.Len(t, got, 2)
	assert.Equal(t, "Sneakers", got[0].Name)
	assert.Equal(t, "Boots", got[1].Name)
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(named("C", "A", "B"))

	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}

func TestFilter_Empty(t *testing.T) {
	assert.Empty(t, Filter(nil))
	assert.Empty(t, Filter([]model.Product{}))
}

func TestDenied(t *testing.T) {
	assert.True(t, Denied("Ripped Jeans"))
	assert.True(t, Denied("  ripped jeans  "))
	assert.False(t, Denied("Jeans"))
}
