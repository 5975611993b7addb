package handlers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/todofuken/api/internal/platform/httpx"
	"github.com/todofuken/api/internal/services"
)

// PrefectureHandlers exposes the prefecture catalog endpoints.
type PrefectureHandlers struct {
	svc     services.PrefectureService
	limiter rateLimiter
}

// PrefectureOption customises the prefecture handler set.
type PrefectureOption func(*PrefectureHandlers)

// WithResolveRateLimit throttles resolve lookups per client within the window.
func WithResolveRateLimit(limit int, window time.Duration) PrefectureOption {
	return func(h *PrefectureHandlers) {
		h.limiter = newLookupLimiter(limit, window, nil)
	}
}

// NewPrefectureHandlers constructs a prefecture handler set.
func NewPrefectureHandlers(svc services.PrefectureService, opts ...PrefectureOption) *PrefectureHandlers {
	h := &PrefectureHandlers{svc: svc}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes registers the prefecture endpoints on the provided router.
func (h *PrefectureHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.list)
	r.Get("/resolve", h.resolve)
	r.Get("/{code}", h.get)
}

func (h *PrefectureHandlers) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.svc == nil {
		httpx.WriteError(ctx, w, httpx.NewError("service_unavailable", "prefecture service not available", http.StatusServiceUnavailable))
		return
	}

	filter := services.PrefectureListFilter{
		Class: strings.TrimSpace(r.URL.Query().Get("class")),
	}
	if rawLimit := strings.TrimSpace(r.URL.Query().Get("limit")); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit <= 0 {
			httpx.WriteError(ctx, w, httpx.BadRequest("limit must be a positive integer"))
			return
		}
		filter.Limit = limit
	}

	list, err := h.svc.List(ctx, filter)
	if err != nil {
		writePrefectureError(ctx, w, err)
		return
	}

	payload := prefectureListResponse{
		Prefectures: make([]prefecturePayload, 0, len(list)),
		Count:       len(list),
	}
	for _, pref := range list {
		payload.Prefectures = append(payload.Prefectures, buildPrefecturePayload(pref))
	}
	writeJSONResponse(w, http.StatusOK, payload)
}

func (h *PrefectureHandlers) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.svc == nil {
		httpx.WriteError(ctx, w, httpx.NewError("service_unavailable", "prefecture service not available", http.StatusServiceUnavailable))
		return
	}

	raw := strings.TrimSpace(chi.URLParam(r, "code"))
	code, err := strconv.Atoi(raw)
	if err != nil {
		httpx.WriteError(ctx, w, httpx.BadRequest("code must be an integer"))
		return
	}

	pref, err := h.svc.GetByCode(ctx, code)
	if err != nil {
		writePrefectureError(ctx, w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, prefectureResponse{Prefecture: buildPrefecturePayload(pref)})
}

func (h *PrefectureHandlers) resolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.svc == nil {
		httpx.WriteError(ctx, w, httpx.NewError("service_unavailable", "prefecture service not available", http.StatusServiceUnavailable))
		return
	}

	if h.limiter != nil && !h.limiter.Allow(clientKey(r)) {
		httpx.WriteError(ctx, w, httpx.NewError("rate_limited", "too many lookup requests", http.StatusTooManyRequests))
		return
	}

	query := services.PrefectureResolveQuery{
		Query:  r.URL.Query().Get("q"),
		Script: r.URL.Query().Get("script"),
	}
	if strings.TrimSpace(query.Query) == "" {
		httpx.WriteError(ctx, w, httpx.BadRequest("q is required"))
		return
	}

	pref, err := h.svc.Resolve(ctx, query)
	if err != nil {
		writePrefectureError(ctx, w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, prefectureResponse{Prefecture: buildPrefecturePayload(pref)})
}

type prefectureListResponse struct {
	Prefectures []prefecturePayload `json:"prefectures"`
	Count       int                 `json:"count"`
}

type prefectureResponse struct {
	Prefecture prefecturePayload `json:"prefecture"`
}

type prefecturePayload struct {
	Code          int    `json:"code"`
	Class         string `json:"class"`
	Kanji         string `json:"kanji"`
	KanjiShort    string `json:"kanji_short"`
	Hiragana      string `json:"hiragana"`
	HiraganaShort string `json:"hiragana_short"`
	Katakana      string `json:"katakana"`
	KatakanaShort string `json:"katakana_short"`
	English       string `json:"english"`
}

func buildPrefecturePayload(pref services.Prefecture) prefecturePayload {
	return prefecturePayload{
		Code:          pref.Code,
		Class:         pref.Class,
		Kanji:         pref.Names.Kanji,
		KanjiShort:    pref.Names.KanjiShort,
		Hiragana:      pref.Names.Hiragana,
		HiraganaShort: pref.Names.HiraganaShort,
		Katakana:      pref.Names.Katakana,
		KatakanaShort: pref.Names.KatakanaShort,
		English:       pref.Names.English,
	}
}

func writePrefectureError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, services.ErrPrefectureInvalidInput):
		httpx.WriteError(ctx, w, httpx.BadRequest(err.Error()))
	case errors.Is(err, services.ErrUnsupportedClass):
		httpx.WriteError(ctx, w, httpx.NewError("unsupported_class", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrUnsupportedScript):
		httpx.WriteError(ctx, w, httpx.NewError("unsupported_script", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrPrefectureNotFound):
		httpx.WriteError(ctx, w, httpx.NotFound("prefecture_not_found", err.Error(), nil))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("prefecture_error", "failed to look up prefecture", http.StatusInternalServerError))
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
