package ingest

import (
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// CleanMerchant upper-cases s, drops every rune that is not a letter, digit,
// space, '-' or '&', and collapses whitespace. Cleaning is idempotent.
func CleanMerchant(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))

	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' || r == '&' {
			return r
		}

		return -1
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

// parseDate parses s with layout, or with best-effort heuristics when layout is empty.
// The result carries no time zone; only the calendar date matters.
func parseDate(s, layout string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	var (
		t   time.Time
		err error
	)

	if layout != "" {
		t, err = time.Parse(layout, s)
	} else {
		t, err = dateparse.ParseIn(s, time.UTC)
	}

	// dateparse reads fragments like "1:" as a time of day on the zero date.
	if err != nil || t.Year() < 1 {
		return time.Time{}, false
	}

	return t, true
}

// parseAmount coerces a cell to a decimal. Empty and non-numeric cells fail.
func parseAmount(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}
