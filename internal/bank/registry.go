package bank

import (
	"errors"
	"fmt"
	"strings"
)

// Field is one of the canonical output columns, independent of the source header name.
type Field string

const (
	FieldDate     Field = "date"
	FieldMerchant Field = "merchant"
	FieldAmount   Field = "amount"
)

// Fields lists the logical fields in output column order.
var Fields = []Field{FieldDate, FieldMerchant, FieldAmount}

// Schema describes the CSV export layout of one bank.
// Aliases are tried in order; the first one present in the file wins.
type Schema struct {
	Name     string   `yaml:"name"`
	Date     []string `yaml:"date"`
	Merchant []string `yaml:"merchant"`
	Amount   []string `yaml:"amount"`
	// DateLayout is a Go reference layout. Empty means best-effort parsing.
	DateLayout string `yaml:"date_layout"`
}

// Aliases returns the candidate header names for the given field.
func (s Schema) Aliases(f Field) []string {
	switch f {
	case FieldDate:
		return s.Date
	case FieldMerchant:
		return s.Merchant
	case FieldAmount:
		return s.Amount
	}

	return nil
}

func (s Schema) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("bank name is required")
	}

	for _, f := range Fields {
		if len(s.Aliases(f)) == 0 {
			return fmt.Errorf("bank %s: no aliases for %s", s.Name, f)
		}
	}

	return nil
}

// Registry is an ordered, read-only set of bank schemas.
// Declaration order decides detection ties.
type Registry struct {
	schemas []Schema
}

// NewRegistry validates the schemas and returns a registry preserving their order.
func NewRegistry(schemas ...Schema) (*Registry, error) {
	seen := make(map[string]struct{}, len(schemas))
	out := make([]Schema, 0, len(schemas))

	for _, s := range schemas {
		if err := s.validate(); err != nil {
			return nil, err
		}

		key := strings.ToUpper(s.Name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate bank: %s", s.Name)
		}

		seen[key] = struct{}{}

		out = append(out, s)
	}

	return &Registry{schemas: out}, nil
}

// Default returns the built-in registry of supported banks.
func Default() *Registry {
	r, err := NewRegistry(builtin()...)
	if err != nil {
		panic("invalid built-in bank registry: " + err.Error())
	}

	return r
}

func builtin() []Schema {
	amount := []string{"Amount", "Debit", "Credit", "AMOUNT"}

	return []Schema{
		{
			Name:       "TD",
			Date:       []string{"Date", "Transaction Date", "Posting Date", "DATE"},
			Merchant:   []string{"Description", "Transaction Description", "Merchant", "DESCRIPTION"},
			Amount:     amount,
			DateLayout: "1/2/2006",
		},
		{
			Name:       "RBC",
			Date:       []string{"Transaction Date", "Date", "Posting Date", "DATE"},
			Merchant:   []string{"Description", "Merchant", "Transaction", "DESCRIPTION"},
			Amount:     amount,
			DateLayout: "2006-1-2",
		},
		{
			Name:       "Scotiabank",
			Date:       []string{"Date", "Transaction Date", "Posting Date", "DATE"},
			Merchant:   []string{"Description", "Merchant", "Transaction", "DESCRIPTION"},
			Amount:     amount,
			DateLayout: "2 Jan 2006",
		},
	}
}

// With returns a new registry where schemas sharing a name with an existing
// entry replace it in place and the rest are appended.
func (r *Registry) With(extra ...Schema) (*Registry, error) {
	merged := r.Schemas()

	for _, s := range extra {
		replaced := false

		for i := range merged {
			if strings.EqualFold(merged[i].Name, s.Name) {
				merged[i] = s
				replaced = true

				break
			}
		}

		if !replaced {
			merged = append(merged, s)
		}
	}

	return NewRegistry(merged...)
}

// Lookup finds a schema by name, ignoring case.
func (r *Registry) Lookup(name string) (Schema, bool) {
	for _, s := range r.schemas {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}

	return Schema{}, false
}

// Names returns the bank names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.schemas))
	for i, s := range r.schemas {
		names[i] = s.Name
	}

	return names
}

// Schemas returns a copy of the registered schemas in order.
func (r *Registry) Schemas() []Schema {
	out := make([]Schema, len(r.schemas))
	copy(out, r.schemas)

	return out
}
