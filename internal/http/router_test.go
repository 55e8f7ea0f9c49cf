package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plaincents/plaincents/internal/bank"
	"github.com/plaincents/plaincents/internal/category"
	pcHttp "github.com/plaincents/plaincents/internal/http"
	categoryHandler "github.com/plaincents/plaincents/internal/http/category"
	ingestHandler "github.com/plaincents/plaincents/internal/http/ingestcsv"
	"github.com/plaincents/plaincents/internal/ingest"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	banks := bank.Default()
	svc := ingest.NewService(banks, t.TempDir())

	router := pcHttp.New(
		pcHttp.Options{AllowedOrigins: []string{"http://localhost:3000"}, Timeout: 5 * time.Second},
		ingestHandler.NewHandler(svc, banks, 1<<20),
		categoryHandler.NewHandler(category.DefaultPalette()),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func TestRouter_IngestEndToEnd(t *testing.T) {
	srv := newServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("bank", "RBC"))

	fw, err := mw.CreateFormFile("file", "rbc.csv")
	require.NoError(t, err)

	_, err = fw.Write([]byte("Transaction Date,Description,Amount,Account\n2024-02-01,Presto!,3.30,chq\n2024-02-01,presto,3.3,chq\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/v1/ingest", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Bank    string `json:"bank"`
		Count   int    `json:"count"`
		Dropped struct {
			Duplicate int `json:"duplicate"`
		} `json:"dropped"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, "RBC", got.Bank)
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, 1, got.Dropped.Duplicate)
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv := newServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/ingest", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouter_Categories(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/categories")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}
