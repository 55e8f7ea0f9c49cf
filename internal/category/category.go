// Package category holds the spending category labels and their chart colours.
package category

import "slices"

type Category string

const (
	FoodDining    Category = "Food & Dining"
	Transport     Category = "Transport"
	RentUtilities Category = "Rent & Utilities"
	Entertainment Category = "Entertainment"
	Healthcare    Category = "Healthcare"
	Shopping      Category = "Shopping"
	Subscriptions Category = "Subscriptions"
	Other         Category = "Other"
)

// all is the fixed label order used by reports and the fixture generator.
var all = [...]Category{
	FoodDining,
	Transport,
	RentUtilities,
	Entertainment,
	Healthcare,
	Shopping,
	Subscriptions,
	Other,
}

// All returns the eight category labels in display order.
func All() []Category {
	return slices.Clone(all[:])
}

// Valid reports whether c is one of the known labels.
func (c Category) Valid() bool {
	return slices.Contains(all[:], c)
}

// Palette maps each category, plus the accent key, to a hex colour.
type Palette map[string]string

// AccentKey is the palette entry for highlight elements that belong to no category.
const AccentKey = "accent"

// DefaultPalette returns a fresh copy of the chart colours.
func DefaultPalette() Palette {
	return Palette{
		string(FoodDining):    "#E07A5F",
		string(Transport):     "#3D405B",
		string(RentUtilities): "#81B29A",
		string(Entertainment): "#F2CC8F",
		string(Healthcare):    "#6D597A",
		string(Shopping):      "#B56576",
		string(Subscriptions): "#355070",
		string(Other):         "#A5A58D",
		AccentKey:             "#2A9D8F",
	}
}

// Color returns the colour for c, falling back to the accent colour.
func (p Palette) Color(c Category) string {
	if hex, ok := p[string(c)]; ok {
		return hex
	}

	return p[AccentKey]
}
