package bank

import (
	"slices"
	"strings"
)

// Mapping maps each logical field to the source header carrying it.
type Mapping map[Field]string

// Complete reports whether every logical field is mapped.
func (m Mapping) Complete() bool {
	return len(m.Missing()) == 0 && len(m) == len(Fields)
}

// Missing returns the unmapped fields in output order.
func (m Mapping) Missing() []Field {
	var missing []Field

	for _, f := range Fields {
		if _, ok := m[f]; !ok {
			missing = append(missing, f)
		}
	}

	return missing
}

// amountHints are substrings that mark a column as an amount column when no alias matches.
var amountHints = []string{"amount", "debit", "credit"}

// headerIndex maps normalized header names to the header as it appears in the file.
// A later header wins when two normalize to the same key.
type headerIndex map[string]string

func newHeaderIndex(headers []string) headerIndex {
	idx := make(headerIndex, len(headers))
	for _, h := range headers {
		idx[normalizeHeader(h)] = h
	}

	return idx
}

func normalizeHeader(h string) string {
	return strings.ToUpper(strings.TrimSpace(h))
}

// resolve returns the header for the first alias present in the index.
func (idx headerIndex) resolve(aliases []string) (string, bool) {
	for _, a := range aliases {
		if h, ok := idx[normalizeHeader(a)]; ok {
			return h, true
		}
	}

	return "", false
}

func resolveAliases(s Schema, idx headerIndex) Mapping {
	m := make(Mapping, len(Fields))

	for _, f := range Fields {
		if h, ok := idx.resolve(s.Aliases(f)); ok {
			m[f] = h
		}
	}

	return m
}

// Detect returns the first bank in registry order whose aliases resolve all three fields.
func Detect(reg *Registry, headers []string) (string, bool) {
	idx := newHeaderIndex(headers)

	for _, s := range reg.schemas {
		if resolveAliases(s, idx).Complete() {
			return s.Name, true
		}
	}

	return "", false
}

// MapColumns resolves the source header for each logical field of the schema.
// When no amount alias matches, the first header (in column order) containing
// "amount", "debit" or "credit" is used. The result may be incomplete.
func MapColumns(s Schema, headers []string) Mapping {
	m := resolveAliases(s, newHeaderIndex(headers))

	if _, ok := m[FieldAmount]; !ok {
		i := slices.IndexFunc(headers, func(h string) bool {
			lower := strings.ToLower(h)
			return slices.ContainsFunc(amountHints, func(hint string) bool {
				return strings.Contains(lower, hint)
			})
		})
		if i >= 0 {
			m[FieldAmount] = headers[i]
		}
	}

	return m
}
