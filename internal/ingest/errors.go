package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plaincents/plaincents/internal/bank"
)

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrUnknownBank      = errors.New("unknown bank")
	ErrBankUndetectable = errors.New("bank undetectable")
	ErrMissingColumns   = errors.New("missing columns")
)

// MissingColumnsError reports which logical fields could not be mapped for a bank.
type MissingColumnsError struct {
	Bank    string
	Missing []bank.Field
	Headers []string
}

func (e *MissingColumnsError) Error() string {
	missing := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		missing[i] = string(f)
	}

	return fmt.Sprintf("missing columns for %s: need %s, got %q",
		e.Bank, strings.Join(missing, ", "), e.Headers)
}

func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingColumns
}
