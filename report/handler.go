package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/singleflight"

	"github.com/quotedesk/quotedesk/internal/observability"
	"github.com/quotedesk/quotedesk/internal/platform/cache"
	"github.com/quotedesk/quotedesk/internal/platform/httpx"
	"github.com/quotedesk/quotedesk/internal/pricing"
	"github.com/quotedesk/quotedesk/internal/quotations"
)

// Handler serves quotation PDF downloads. Identical concurrent renders
// collapse into one via singleflight, and rendered bytes are cached
// keyed by (id, updated_at) so a stale document can never be served
// after an edit.
type Handler struct {
	logger    *slog.Logger
	service   *quotations.Service
	generator *Generator
	cache     *cache.Bytes
	metrics   *observability.Metrics
	group     singleflight.Group
}

func NewHandler(logger *slog.Logger, service *quotations.Service, generator *Generator, pdfCache *cache.Bytes, metrics *observability.Metrics) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		generator: generator,
		cache:     pdfCache,
		metrics:   metrics,
	}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/{id}/pdf", h.Download)
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid quotation id")
		return
	}

	quotation, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, quotations.ErrNotFound) {
			httpx.RespondError(w, httpx.ErrNotFound)
			return
		}
		h.logger.Error("fetch quotation for pdf failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}

	data, err := h.render(r.Context(), quotation)
	if err != nil {
		if errors.Is(err, ErrIncomplete) || errors.Is(err, pricing.ErrFormat) {
			httpx.Problem(w, http.StatusUnprocessableEntity, "Unprocessable", err.Error())
			return
		}
		h.logger.Error("render pdf failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", Filename(quotation)))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) render(ctx context.Context, q *quotations.Quotation) ([]byte, error) {
	key := fmt.Sprintf("pdf:%d:%d", q.ID, q.UpdatedAt.UnixNano())

	if data, ok := h.cache.Get(ctx, key); ok {
		h.metrics.ObservePDFRender("cache_hit")
		return data, nil
	}

	resultChan := h.group.DoChan(key, func() (interface{}, error) {
		data, err := h.generator.Generate(q)
		if err != nil {
			h.metrics.ObservePDFRender("error")
			return nil, err
		}
		h.metrics.ObservePDFRender("success")
		h.cache.Set(ctx, key, data)
		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultChan:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}
