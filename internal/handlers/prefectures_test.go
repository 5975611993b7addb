package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/todofuken/api/internal/services"
)

type stubPrefectureService struct {
	list       []services.Prefecture
	listErr    error
	listFilter services.PrefectureListFilter

	get     services.Prefecture
	getErr  error
	getCode int

	resolved     services.Prefecture
	resolveErr   error
	resolveQuery services.PrefectureResolveQuery
}

var _ services.PrefectureService = (*stubPrefectureService)(nil)

func (s *stubPrefectureService) List(_ context.Context, filter services.PrefectureListFilter) ([]services.Prefecture, error) {
	s.listFilter = filter
	return s.list, s.listErr
}

func (s *stubPrefectureService) GetByCode(_ context.Context, code int) (services.Prefecture, error) {
	s.getCode = code
	return s.get, s.getErr
}

func (s *stubPrefectureService) Resolve(_ context.Context, query services.PrefectureResolveQuery) (services.Prefecture, error) {
	s.resolveQuery = query
	return s.resolved, s.resolveErr
}

func tokyoView() services.Prefecture {
	return services.Prefecture{
		Code:  13,
		Class: "metropolis",
		Names: services.PrefectureNames{
			Kanji:         "東京都",
			KanjiShort:    "東京",
			Hiragana:      "とうきょうと",
			HiraganaShort: "とうきょう",
			Katakana:      "トウキョウト",
			KatakanaShort: "トウキョウ",
			English:       "Tokyo",
		},
	}
}

func newPrefectureTestRouter(h *PrefectureHandlers) chi.Router {
	r := chi.NewRouter()
	r.Route("/prefectures", h.Routes)
	return r
}

func TestPrefectureHandlersList(t *testing.T) {
	svc := &stubPrefectureService{list: []services.Prefecture{tokyoView()}}
	router := newPrefectureTestRouter(NewPrefectureHandlers(svc))

	req := httptest.NewRequest(http.MethodGet, "/prefectures?class=metropolis&limit=10", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if svc.listFilter.Class != "metropolis" || svc.listFilter.Limit != 10 {
		t.Fatalf("unexpected filter passed to service: %+v", svc.listFilter)
	}

	var body struct {
		Prefectures []map[string]any `json:"prefectures"`
		Count       int              `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Count != 1 || len(body.Prefectures) != 1 {
		t.Fatalf("expected a single entry, got %+v", body)
	}
	entry := body.Prefectures[0]
	if entry["kanji"] != "東京都" || entry["kanji_short"] != "東京" {
		t.Fatalf("unexpected kanji fields: %v", entry)
	}
	if entry["class"] != "metropolis" {
		t.Fatalf("unexpected class: %v", entry["class"])
	}
}

func TestPrefectureHandlersListInvalidLimit(t *testing.T) {
	svc := &stubPrefectureService{}
	router := newPrefectureTestRouter(NewPrefectureHandlers(svc))

	for _, limit := range []string{"abc", "0", "-1"} {
		req := httptest.NewRequest(http.MethodGet, "/prefectures?limit="+limit, nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400 for limit %q, got %d", limit, rr.Code)
		}
	}
}

func TestPrefectureHandlersListUnsupportedClass(t *testing.T) {
	svc := &stubPrefectureService{listErr: fmt.Errorf("%w: %q", services.ErrUnsupportedClass, "village")}
	router := newPrefectureTestRouter(NewPrefectureHandlers(svc))

	req := httptest.NewRequest(http.MethodGet, "/prefectures?class=village", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["error"] != "unsupported_class" {
		t.Fatalf("expected unsupported_class error, got %v", body["error"])
	}
}

func TestPrefectureHandlersGet(t *testing.T) {
	svc := &stubPrefectureService{get: tokyoView()}
	router := newPrefectureTestRouter(NewPrefectureHandlers(svc))

	req := httptest.NewRequest(http.MethodGet, "/prefectures/13", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if svc.getCode != 13 {
		t.Fatalf("expected service called with code 13, got %d", svc.getCode)
	}

	var body struct {
		Prefecture map[string]any `json:"prefecture"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Prefecture["english"] != "Tokyo" {
		t.Fatalf("unexpected english name: %v", body.Prefecture["english"])
	}
}

func TestPrefectureHandlersGetErrors(t *testing.T) {
	t.Run("non numeric code", func(t *testing.T) {
		router := newPrefectureTestRouter(NewPrefectureHandlers(&stubPrefectureService{}))

		req := httptest.NewRequest(http.MethodGet, "/prefectures/tokyo", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rr.Code)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		svc := &stubPrefectureService{getErr: fmt.Errorf("%w: code 48", services.ErrPrefectureNotFound)}
		router := newPrefectureTestRouter(NewPrefectureHandlers(svc))

		req := httptest.NewRequest(http.MethodGet, "/prefectures/48", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rr.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if body["error"] != "prefecture_not_found" {
			t.Fatalf("expected prefecture_not_found error, got %v", body["error"])
		}
	})
}

func TestPrefectureHandlersResolve(t *testing.T) {
	svc := &stubPrefectureService{resolved: tokyoView()}
	router := newPrefectureTestRouter(NewPrefectureHandlers(svc))

	req := httptest.NewRequest(http.MethodGet, "/prefectures/resolve?q=%E6%9D%B1%E4%BA%AC&script=kanji", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if svc.resolveQuery.Query != "東京" || svc.resolveQuery.Script != "kanji" {
		t.Fatalf("unexpected query passed to service: %+v", svc.resolveQuery)
	}
}

func TestPrefectureHandlersResolveErrors(t *testing.T) {
	t.Run("missing query", func(t *testing.T) {
		router := newPrefectureTestRouter(NewPrefectureHandlers(&stubPrefectureService{}))

		req := httptest.NewRequest(http.MethodGet, "/prefectures/resolve", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rr.Code)
		}
	})

	t.Run("unsupported script", func(t *testing.T) {
		svc := &stubPrefectureService{resolveErr: fmt.Errorf("%w: %q", services.ErrUnsupportedScript, "romaji")}
		router := newPrefectureTestRouter(NewPrefectureHandlers(svc))

		req := httptest.NewRequest(http.MethodGet, "/prefectures/resolve?q=tokyo&script=romaji", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rr.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if body["error"] != "unsupported_script" {
			t.Fatalf("expected unsupported_script error, got %v", body["error"])
		}
	})

	t.Run("no match", func(t *testing.T) {
		svc := &stubPrefectureService{resolveErr: fmt.Errorf("%w: %q", services.ErrPrefectureNotFound, "none")}
		router := newPrefectureTestRouter(NewPrefectureHandlers(svc))

		req := httptest.NewRequest(http.MethodGet, "/prefectures/resolve?q=none", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rr.Code)
		}
	})
}

func TestPrefectureHandlersResolveRateLimit(t *testing.T) {
	svc := &stubPrefectureService{resolved: tokyoView()}
	router := newPrefectureTestRouter(NewPrefectureHandlers(svc, WithResolveRateLimit(2, time.Minute)))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/prefectures/resolve?q=tokyo", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: expected status 200, got %d", i+1, rr.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/prefectures/resolve?q=tokyo", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rr.Code)
	}

	// A different client is not affected.
	req = httptest.NewRequest(http.MethodGet, "/prefectures/resolve?q=tokyo", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rr = httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200 for distinct client, got %d", rr.Code)
	}
}
