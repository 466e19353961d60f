package quotations

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	svc, _ := newTestService()
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

	r := chi.NewRouter()
	r.Route("/quotations", handler.MountRoutes)
	return r
}

func createRequestBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"company_id": 1,
		"client_id":  10,
		"issue_date": "2026-03-15T00:00:00Z",
		"tax_rate":   10,
		"items": []map[string]any{
			{"description": "Design work", "quantity": 2, "unit_price": 250},
		},
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestHandlerCreateQuotation(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/quotations/", createRequestBody(t))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var got Quotation
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "QT-0001", got.QuoteNumber)
	assert.Equal(t, StatusDraft, got.Status)
	assert.InDelta(t, 550.0, got.Total, 1e-9)
	require.Len(t, got.Items, 1)
}

func TestHandlerCreateQuotationValidationError(t *testing.T) {
	router := newTestRouter(t)

	body, err := json.Marshal(map[string]any{
		"company_id": 1,
		"client_id":  10,
		"issue_date": "2026-03-15T00:00:00Z",
		"items":      []map[string]any{},
	})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/quotations/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestHandlerCreateQuotationMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/quotations/", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandlerShowQuotationNotFound(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/quotations/999", nil)
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandlerLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// Create
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/quotations/", createRequestBody(t))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created Quotation
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	path := fmt.Sprintf("/quotations/%d", created.ID)

	// Show
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	// Update to a single revised item
	body, err := json.Marshal(map[string]any{
		"company_id": 1,
		"client_id":  10,
		"status":     "sent",
		"issue_date": "2026-03-15T00:00:00Z",
		"items": []map[string]any{
			{"description": "Revised scope", "quantity": 3, "unit_price": 100},
		},
	})
	require.NoError(t, err)

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var updated Quotation
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, created.QuoteNumber, updated.QuoteNumber)
	assert.Equal(t, StatusSent, updated.Status)
	require.Len(t, updated.Items, 1)
	assert.InDelta(t, 300.0, updated.Subtotal, 1e-9)

	// List filtered by status
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/quotations/?status=sent", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var listed struct {
		Quotations []Quotation `json:"quotations"`
		Total      int         `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	assert.Equal(t, 1, listed.Total)

	// Delete
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, path, nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
