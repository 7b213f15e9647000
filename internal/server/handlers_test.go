package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finecto/internal/journal"
	"finecto/internal/server"
	"finecto/internal/usecase"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Item    json.RawMessage `json:"item"`
	Errors  []fieldError    `json:"errors"`
}

type fieldError struct {
	Item          string `json:"item"`
	PreviousValue string `json:"previousValue"`
	Message       string `json:"message"`
}

func newTestServer(t *testing.T) (*server.Server, string) {
	t.Helper()
	journalPath := filepath.Join(t.TempDir(), "result.jsonl")
	w := journal.NewWriter(journalPath)
	return server.New(usecase.NewInvoiceTransform(w), usecase.NewVendorTransform(w)), journalPath
}

func post(t *testing.T, s *server.Server, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHandleInvoice_Success(t *testing.T) {
	s, journalPath := newTestServer(t)

	rec, env := post(t, s, "/invoice", `{
		"company": "A",
		"invoiceId": "INV-1",
		"invoiceDate": "2024-03-15",
		"lines": [{"description": "craft alcohol", "amount": 45.5}]
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusOK, env.Status)
	assert.Equal(t, "success invoice transform", env.Message)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var item map[string]any
	require.NoError(t, json.Unmarshal(env.Item, &item))
	assert.Equal(t, "ALC-001", item["account"])
	assert.Equal(t, "INV-1", item["invoiceId"])

	records, err := journal.NewReader(journalPath).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "invoice", records[0]["type"])
	assert.Equal(t, "ALC-001", records[0]["account"])
}

func TestHandleInvoice_ValidationErrors(t *testing.T) {
	s, journalPath := newTestServer(t)

	rec, env := post(t, s, "/invoice", `{
		"company": "A",
		"invoiceId": "",
		"invoiceDate": "2024-03-15",
		"lines": [{"description": "", "amount": -5}]
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Incomplete Fields", env.Message)
	require.Len(t, env.Errors, 3, "every violation is reported")
	assert.Equal(t, "invoiceId", env.Errors[0].Item)
	assert.Equal(t, "invoiceId should not be empty", env.Errors[0].Message)
	assert.Equal(t, "lines.description", env.Errors[1].Item)
	assert.Equal(t, "lines.amount", env.Errors[2].Item)
	assert.Equal(t, "-5", env.Errors[2].PreviousValue)

	_, err := journal.NewReader(journalPath).ReadAll()
	assert.Error(t, err, "nothing journaled on rejection")
}

func TestHandleInvoice_UnsupportedCompany(t *testing.T) {
	s, _ := newTestServer(t)

	rec, env := post(t, s, "/invoice", `{
		"company": "C",
		"invoiceId": "INV-1",
		"invoiceDate": "2024-03-15",
		"lines": [{"description": "paper", "amount": 10}]
	}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Unsupported company: C", env.Message)
}

func TestHandleInvoice_MalformedBody(t *testing.T) {
	s, _ := newTestServer(t)

	rec, env := post(t, s, "/invoice", `{"company": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Malformed JSON body", env.Message)
}

func TestHandleInvoiceBatch_Success(t *testing.T) {
	s, journalPath := newTestServer(t)

	rec, env := post(t, s, "/invoice/batch", `[
		{"company": "B", "invoiceId": "INV-1", "invoiceDate": "2024-03-15",
		 "lines": [{"description": "alcohol crate", "amount": 50}]},
		{"company": "B", "invoiceId": "INV-2", "invoiceDate": "2024-03-16",
		 "lines": [{"description": "stationery", "amount": 12}]}
	]`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success invoice transform", env.Message)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(env.Item, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "ALC-B", items[0]["account"])
	assert.Equal(t, "STD-B", items[1]["account"])

	records, err := journal.NewReader(journalPath).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestHandleInvoiceBatch_RejectsNonArray(t *testing.T) {
	s, _ := newTestServer(t)

	for _, body := range []string{
		`{"company": "A", "invoiceId": "INV-1"}`,
		`[]`,
		`"invoice"`,
	} {
		rec, env := post(t, s, "/invoice/batch", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Equal(t, "This endpoint expects an array", env.Message)
	}
}

func TestHandleInvoiceBatch_AnnotatesFailingIndex(t *testing.T) {
	s, _ := newTestServer(t)

	rec, env := post(t, s, "/invoice/batch", `[
		{"company": "A", "invoiceId": "INV-1", "invoiceDate": "2024-03-15",
		 "lines": [{"description": "paper", "amount": 10}]},
		{"company": "", "invoiceId": "INV-2", "invoiceDate": "2024-03-16",
		 "lines": [{"description": "paper", "amount": 10}]}
	]`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Incomplete Fields", env.Message)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "company at index [1]", env.Errors[0].Item)
}

func TestHandleVendor_Success(t *testing.T) {
	s, journalPath := newTestServer(t)

	rec, env := post(t, s, "/vendor", `{
		"company": "B",
		"vendorName": "Acme Corp",
		"country": "US",
		"bank": "Chase",
		"registrationNumber": "REG-1",
		"taxId": "TAX-1"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success vendor transform", env.Message)

	var item map[string]any
	require.NoError(t, json.Unmarshal(env.Item, &item))
	assert.Equal(t, "Verified", item["vendorStatus"])
	assert.NotContains(t, item, "registrationNumber", "documents are never echoed")
	assert.NotContains(t, item, "taxId")

	records, err := journal.NewReader(journalPath).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "vendor", records[0]["type"])
	assert.NotContains(t, records[0], "registrationNumber")
}

func TestHandleVendor_InternationalBank(t *testing.T) {
	s, _ := newTestServer(t)

	rec, env := post(t, s, "/vendor", `{
		"company": "a",
		"vendorName": "Haus GmbH",
		"country": "DE",
		"bank": "Deutsche Bank"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code, "company code matching is case-insensitive")

	var item map[string]any
	require.NoError(t, json.Unmarshal(env.Item, &item))
	assert.Equal(t, "Please confirm international bank details", item["internationalBank"])
}

func TestHandleVendor_ValidationErrors(t *testing.T) {
	s, _ := newTestServer(t)

	rec, env := post(t, s, "/vendor", `{"company": "B"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Incomplete Fields", env.Message)
	require.Len(t, env.Errors, 3)
	assert.Equal(t, "vendorName", env.Errors[0].Item)
	assert.Equal(t, "country", env.Errors[1].Item)
	assert.Equal(t, "bank", env.Errors[2].Item)
}

func TestHandleVendor_SanitizesInput(t *testing.T) {
	s, journalPath := newTestServer(t)

	rec, env := post(t, s, "/vendor", `{
		"company": "A",
		"vendorName": "O'Brien Supplies",
		"country": "US",
		"bank": "Chase"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var item map[string]any
	require.NoError(t, json.Unmarshal(env.Item, &item))
	assert.Equal(t, `O\'Brien Supplies`, item["vendorName"])

	records, err := journal.NewReader(journalPath).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, `O\'Brien Supplies`, records[0]["vendorName"])
}

func TestHandleHealth(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRequestID_Honoured(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "req-abc-123", rec.Header().Get("X-Request-ID"))
}
