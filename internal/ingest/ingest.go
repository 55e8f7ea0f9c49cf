// Package ingest loads bank CSV exports and normalizes them into clean
// (date, merchant, amount) records.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/plaincents/plaincents/internal/bank"
	enc "github.com/plaincents/plaincents/internal/encoding"
)

// Record is one normalized transaction.
type Record struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
}

// Drops counts rows excluded from the result, by cause.
type Drops struct {
	UnparseableDate int `json:"unparseable_date"`
	InvalidAmount   int `json:"invalid_amount"`
	EmptyMerchant   int `json:"empty_merchant"`
	Duplicate       int `json:"duplicate"`
}

// Total is the number of dropped rows.
func (d Drops) Total() int {
	return d.UnparseableDate + d.InvalidAmount + d.EmptyMerchant + d.Duplicate
}

// Result is the clean table produced by one ingestion run.
type Result struct {
	ID      uuid.UUID
	Bank    string
	Records []Record
	Dropped Drops
}

// Service normalizes bank CSV exports using a fixed bank registry.
type Service struct {
	banks  *bank.Registry
	rawDir string
}

// NewService creates a Service. Relative paths given to Normalize are resolved against rawDir.
func NewService(banks *bank.Registry, rawDir string) *Service {
	return &Service{
		banks:  banks,
		rawDir: rawDir,
	}
}

// Normalize reads the CSV at path and returns its clean records.
// bankHint forces a registered bank; when empty the bank is detected from the headers.
func (s *Service) Normalize(path, bankHint string) (*Result, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.rawDir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return s.normalize(f, path, bankHint)
}

// NormalizeReader is Normalize for an already opened CSV stream.
func (s *Service) NormalizeReader(r io.Reader, bankHint string) (*Result, error) {
	return s.normalize(r, "stream", bankHint)
}

func (s *Service) normalize(r io.Reader, source, bankHint string) (*Result, error) {
	runID := uuid.New()
	log := slog.With("run_id", runID, "source", source)

	headers, rows, err := readTable(r, log)
	if err != nil {
		return nil, err
	}

	result := &Result{ID: runID, Records: []Record{}}

	if len(rows) == 0 {
		log.Warn("csv is empty")
		return result, nil
	}

	schema, err := s.resolveBank(headers, bankHint)
	if err != nil {
		return nil, err
	}

	result.Bank = schema.Name

	mapping := bank.MapColumns(schema, headers)
	if !mapping.Complete() {
		return nil, &MissingColumnsError{
			Bank:    schema.Name,
			Missing: mapping.Missing(),
			Headers: headers,
		}
	}

	result.Records, result.Dropped = cleanRows(project(headers, rows, mapping), schema.DateLayout)

	logDrops(log, result.Dropped)
	log.Info("csv normalized", "bank", schema.Name, "records", len(result.Records))

	return result, nil
}

func (s *Service) resolveBank(headers []string, hint string) (bank.Schema, error) {
	if hint != "" {
		schema, ok := s.banks.Lookup(hint)
		if !ok {
			return bank.Schema{}, fmt.Errorf("%w: %s, use one of %s",
				ErrUnknownBank, hint, strings.Join(s.banks.Names(), ", "))
		}

		return schema, nil
	}

	name, ok := bank.Detect(s.banks, headers)
	if !ok {
		return bank.Schema{}, fmt.Errorf("%w from columns %q, pass one of %s explicitly",
			ErrBankUndetectable, headers, strings.Join(s.banks.Names(), ", "))
	}

	schema, _ := s.banks.Lookup(name)

	return schema, nil
}

// readTable decodes r to UTF-8 and splits it into the header row and data rows.
// A zero-byte input yields no headers and no rows.
func readTable(r io.Reader, log *slog.Logger) ([]string, [][]string, error) {
	utf8r, charset, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("detect encoding: %w", err)
	}

	if charset != enc.UTF8 {
		log.Info("decoding csv", "charset", charset)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, nil, nil
	}

	return records[0], records[1:], nil
}

// rawRecord holds the three mapped cells of one data row.
type rawRecord struct {
	date, merchant, amount string
}

// project keeps only the mapped columns of each row.
func project(headers []string, rows [][]string, m bank.Mapping) []rawRecord {
	dateIdx := columnIndex(headers, m[bank.FieldDate])
	merchantIdx := columnIndex(headers, m[bank.FieldMerchant])
	amountIdx := columnIndex(headers, m[bank.FieldAmount])

	out := make([]rawRecord, len(rows))
	for i, row := range rows {
		out[i] = rawRecord{
			date:     cellValue(row, dateIdx),
			merchant: cellValue(row, merchantIdx),
			amount:   cellValue(row, amountIdx),
		}
	}

	return out
}

func columnIndex(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}

	return -1
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// recordKey identifies a record for deduplication; amounts compare numerically.
type recordKey struct {
	date, merchant, amount string
}

// cleanRows parses, cleans and deduplicates the projected rows, keeping first occurrences in order.
func cleanRows(raw []rawRecord, layout string) ([]Record, Drops) {
	var drops Drops

	records := make([]Record, 0, len(raw))
	seen := make(map[recordKey]struct{}, len(raw))

	for _, rr := range raw {
		date, ok := parseDate(rr.date, layout)
		if !ok {
			drops.UnparseableDate++
			continue
		}

		merchant := CleanMerchant(rr.merchant)

		amount, ok := parseAmount(rr.amount)
		if !ok {
			drops.InvalidAmount++
			continue
		}

		if merchant == "" {
			drops.EmptyMerchant++
			continue
		}

		rec := Record{
			Date:     date.Format(time.DateOnly),
			Merchant: merchant,
			Amount:   amount,
		}

		key := recordKey{date: rec.Date, merchant: rec.Merchant, amount: amount.String()}
		if _, dup := seen[key]; dup {
			drops.Duplicate++
			continue
		}

		seen[key] = struct{}{}

		records = append(records, rec)
	}

	return records, drops
}

func logDrops(log *slog.Logger, d Drops) {
	if d.UnparseableDate > 0 {
		log.Warn("dropped rows with unparseable dates", "count", d.UnparseableDate)
	}

	if d.InvalidAmount > 0 {
		log.Warn("dropped rows with non-numeric amounts", "count", d.InvalidAmount)
	}

	if d.EmptyMerchant > 0 {
		log.Warn("dropped rows with empty merchants", "count", d.EmptyMerchant)
	}

	if d.Duplicate > 0 {
		log.Info("dropped duplicate rows", "count", d.Duplicate)
	}
}
