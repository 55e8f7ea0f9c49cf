// Package synth generates a reproducible year of synthetic bank transactions
// in TD export format, for use as a test fixture.
package synth

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/plaincents/plaincents/internal/category"
)

// DateLayout is the TD export date format the fixture is written in.
const DateLayout = "01/02/2006"

const (
	minRows = 300
	maxRows = 400
)

// Row is one generated transaction.
type Row struct {
	Date     time.Time
	Category category.Category
	Merchant string
	Amount   decimal.Decimal
}

// Options controls generation. Equal options always yield equal output.
type Options struct {
	Seed uint64
	Year int
}

type amountRange struct {
	lo, hi float64
}

var merchants = map[category.Category][]string{
	category.FoodDining:    {"Tim Hortons", "McDonald's", "Subway", "Loblaws", "Metro"},
	category.Transport:     {"Uber", "Presto", "Shell", "Esso", "GO Transit"},
	category.RentUtilities: {"Rogers", "Bell", "Hydro One", "Enbridge", "Toronto Hydro"},
	category.Entertainment: {"Netflix", "Spotify", "Steam", "Cineplex", "Amazon Prime"},
	category.Healthcare:    {"Shoppers Drug Mart", "Rexall", "Maple", "Telehealth"},
	category.Shopping:      {"Amazon", "Zara", "H&M", "IKEA", "Best Buy"},
	category.Subscriptions: {"Adobe", "Microsoft 365", "iCloud", "YouTube Premium"},
	category.Other:         {"ATM Withdrawal", "Miscellaneous", "Bank Fee"},
}

var amountRanges = map[category.Category]amountRange{
	category.FoodDining:    {8, 120},
	category.Transport:     {5, 80},
	category.RentUtilities: {80, 180},
	category.Entertainment: {10, 60},
	category.Healthcare:    {15, 90},
	category.Shopping:      {20, 200},
	category.Subscriptions: {10, 20},
	category.Other:         {20, 100},
}

// fillerCategories are drawn at random once the recurring charges are in place.
var fillerCategories = []category.Category{
	category.FoodDining,
	category.Transport,
	category.Entertainment,
	category.Healthcare,
	category.Shopping,
	category.Other,
}

// MonthMultiplier scales filler amounts: quieter summers, a heavier December.
func MonthMultiplier(m time.Month) float64 {
	switch m {
	case time.June, time.July, time.August:
		return 0.85
	case time.December:
		return 1.4
	default:
		return 1.0
	}
}

type generator struct {
	rng  *rand.Rand
	year int
}

// Generate builds the synthetic history: recurring rent/utility and
// subscription charges every month, then random filler up to a target of
// 300-400 rows, shuffled.
func Generate(opts Options) []Row {
	g := &generator{
		rng:  rand.New(rand.NewPCG(opts.Seed, opts.Seed)),
		year: opts.Year,
	}

	var rows []Row

	rentAmounts := g.fixedAmounts(category.RentUtilities, 4)
	subMerchants := merchants[category.Subscriptions]
	subAmounts := g.fixedAmounts(category.Subscriptions, len(subMerchants))

	for m := time.January; m <= time.December; m++ {
		for n := g.intRange(3, 4); n > 0; n-- {
			rows = append(rows, Row{
				Date:     g.dateIn(m),
				Category: category.RentUtilities,
				Merchant: g.pick(merchants[category.RentUtilities]),
				Amount:   rentAmounts[len(rows)%len(rentAmounts)],
			})
		}

		for i, name := range subMerchants {
			rows = append(rows, Row{
				Date:     g.dateIn(m),
				Category: category.Subscriptions,
				Merchant: name,
				Amount:   subAmounts[i],
			})
		}
	}

	target := g.intRange(minRows, maxRows)
	for len(rows) < target {
		c := fillerCategories[g.rng.IntN(len(fillerCategories))]
		merchant := g.pick(merchants[c])
		m := time.Month(g.intRange(1, 12))

		rows = append(rows, Row{
			Date:     g.dateIn(m),
			Category: c,
			Merchant: merchant,
			Amount:   g.amount(c, MonthMultiplier(m)),
		})
	}

	g.rng.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})

	return rows
}

func (g *generator) fixedAmounts(c category.Category, n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = g.amount(c, 1.0)
	}

	return out
}

func (g *generator) amount(c category.Category, mult float64) decimal.Decimal {
	r := amountRanges[c]
	base := r.lo + g.rng.Float64()*(r.hi-r.lo)

	return decimal.NewFromFloat(base * mult).Round(2)
}

// intRange returns a uniform integer in [lo, hi].
func (g *generator) intRange(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *generator) pick(options []string) string {
	return options[g.rng.IntN(len(options))]
}

// dateIn returns a random day of month m.
func (g *generator) dateIn(m time.Month) time.Time {
	last := time.Date(g.year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()

	return time.Date(g.year, m, g.intRange(1, last), 0, 0, 0, 0, time.UTC)
}

// csvRow is the on-disk layout of a generated row.
type csvRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
}

// WriteCSV writes rows as a TD-style export with a Date,Description,Amount header.
func WriteCSV(w io.Writer, rows []Row) error {
	out := make([]*csvRow, len(rows))
	for i, r := range rows {
		out[i] = &csvRow{
			Date:        r.Date.Format(DateLayout),
			Description: r.Merchant,
			Amount:      r.Amount.StringFixed(2),
		}
	}

	return gocsv.Marshal(out, w)
}
