package ruleserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/ruleset"
)

const defaultMaxBody = 1 << 20

// HandlerOption configures NewHandler.
type HandlerOption func(*handler)

// WithHandlerLogger sets the logger for request diagnostics.
func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMaxBodySize caps the validate request body. Non-positive values keep the 1 MiB default.
func WithMaxBodySize(n int64) HandlerOption {
	return func(h *handler) {
		if n > 0 {
			h.maxBody = n
		}
	}
}

type handler struct {
	sets    map[string]*ruleset.Ruleset
	names   []string
	maxBody int64
	logger  *slog.Logger
}

// NewHandler exposes sets over HTTP:
//
//	GET  /healthz                  liveness probe
//	GET  /rulesets                 names of the loaded rulesets
//	POST /rulesets/{name}/validate validates a JSON object against a ruleset
func NewHandler(sets map[string]*ruleset.Ruleset, opts ...HandlerOption) http.Handler {
	h := &handler{
		sets:    maps.Clone(sets),
		names:   slices.Sorted(maps.Keys(sets)),
		maxBody: defaultMaxBody,
		logger:  logger.Discard(),
	}
	if h.names == nil {
		h.names = []string{}
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Get("/healthz", h.health)
	r.Get("/rulesets", h.list)
	r.Post("/rulesets/{name}/validate", h.validate)
	return r
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, listResponse{Rulesets: h.names})
}

func (h *handler) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	rs, ok := h.sets[name]
	if !ok {
		_ = writeError(w, http.StatusNotFound, "ruleset_not_found", "unknown ruleset "+name)
		return
	}

	var values map[string]any
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody)).Decode(&values)
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		_ = writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", err.Error())
		return
	case err != nil:
		h.logger.DebugContext(ctx, "invalid request body", requestAttr(r), logger.Ruleset(name), logger.Error(err))
		_ = writeError(w, http.StatusBadRequest, "invalid_body", "request body must be a JSON object")
		return
	case values == nil:
		_ = writeError(w, http.StatusBadRequest, "invalid_body", "request body must be a JSON object")
		return
	}

	res := rs.Validate(ctx, values)
	status, body := resultResponse(res)
	h.logger.InfoContext(ctx, "validation request",
		requestAttr(r),
		logger.Ruleset(name),
		logger.Outcome(body.Outcome),
		logger.Count("errors", res.Errors.Len()),
	)
	if err := writeJSON(w, status, body); err != nil {
		h.logger.ErrorContext(ctx, "failed to write response", logger.Error(err))
	}
}

func requestAttr(r *http.Request) slog.Attr {
	return logger.Group("request",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
}
