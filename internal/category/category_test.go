package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plaincents/plaincents/internal/category"
)

func TestAll(t *testing.T) {
	got := category.All()
	assert.Len(t, got, 8)
	assert.Equal(t, category.FoodDining, got[0])
	assert.Equal(t, category.Other, got[7])

	got[0] = "mutated"
	assert.Equal(t, category.FoodDining, category.All()[0])
}

func TestCategory_Valid(t *testing.T) {
	assert.True(t, category.Subscriptions.Valid())
	assert.False(t, category.Category("Groceries").Valid())
}

func TestPalette(t *testing.T) {
	p := category.DefaultPalette()

	for _, c := range category.All() {
		assert.Regexp(t, `^#[0-9A-F]{6}$`, p.Color(c), c)
	}

	assert.Equal(t, p[category.AccentKey], p.Color("Unknown"))
}
