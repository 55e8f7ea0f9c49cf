package ingestcsv

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/plaincents/plaincents/internal/bank"
	"github.com/plaincents/plaincents/internal/ingest"
)

//go:generate mockgen -source=handler.go -destination=normalizer_mock.go -package=ingestcsv
type Normalizer interface {
	NormalizeReader(r io.Reader, bankHint string) (*ingest.Result, error)
}

type Handler struct {
	normalizer     Normalizer
	banks          *bank.Registry
	maxUploadBytes int64
}

func NewHandler(normalizer Normalizer, banks *bank.Registry, maxUploadBytes int64) *Handler {
	return &Handler{
		normalizer:     normalizer,
		banks:          banks,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.ingestCSV)
	r.Get("/banks", h.listBanks)
}

type ingestResponse struct {
	ID      uuid.UUID       `json:"id"`
	Bank    string          `json:"bank,omitempty"`
	Count   int             `json:"count"`
	Records []ingest.Record `json:"records"`
	Dropped ingest.Drops    `json:"dropped"`
}

type bankResponse struct {
	Name       string   `json:"name"`
	Date       []string `json:"date"`
	Merchant   []string `json:"merchant"`
	Amount     []string `json:"amount"`
	DateLayout string   `json:"date_layout,omitempty"`
}

func (h *Handler) ingestCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.normalizer.NormalizeReader(file, r.FormValue("bank"))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(toIngestResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listBanks(w http.ResponseWriter, _ *http.Request) {
	schemas := h.banks.Schemas()

	resp := make([]bankResponse, 0, len(schemas))
	for _, s := range schemas {
		resp = append(resp, bankResponse{
			Name:       s.Name,
			Date:       s.Date,
			Merchant:   s.Merchant,
			Amount:     s.Amount,
			DateLayout: s.DateLayout,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// statusFor maps structural ingestion failures to 422 and anything else to 400.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ingest.ErrUnknownBank),
		errors.Is(err, ingest.ErrBankUndetectable),
		errors.Is(err, ingest.ErrMissingColumns):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func toIngestResponse(res *ingest.Result) ingestResponse {
	records := res.Records
	if records == nil {
		records = []ingest.Record{}
	}

	return ingestResponse{
		ID:      res.ID,
		Bank:    res.Bank,
		Count:   len(records),
		Records: records,
		Dropped: res.Dropped,
	}
}
