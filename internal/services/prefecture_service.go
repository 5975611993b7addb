package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/todofuken/api/internal/platform/observability"
	"github.com/todofuken/api/internal/platform/textutil"
	"github.com/todofuken/api/prefecture"
)

// Errors returned by the prefecture service.
var (
	ErrPrefectureInvalidInput = errors.New("prefecture service: invalid input")
	ErrPrefectureNotFound     = errors.New("prefecture service: prefecture not found")
	ErrUnsupportedClass       = errors.New("prefecture service: unsupported administrative class")
	ErrUnsupportedScript      = errors.New("prefecture service: unsupported script")
)

const defaultListLimit = prefecture.Count

// Scripts accepted by Resolve.
const (
	ScriptKanji    = "kanji"
	ScriptHiragana = "hiragana"
	ScriptKatakana = "katakana"
	ScriptEnglish  = "english"
)

// PrefectureServiceDeps wires the dependencies required by the prefecture service.
type PrefectureServiceDeps struct {
	// ListLimit caps the page size of List. Zero falls back to the full table.
	ListLimit int
	// NormalizeQueries enables NFKC folding of resolve queries before lookup.
	NormalizeQueries bool
	Logger           func(ctx context.Context, event string, fields map[string]any)
}

type prefectureService struct {
	listLimit int
	normalize bool
	logger    func(ctx context.Context, event string, fields map[string]any)
}

var _ PrefectureService = (*prefectureService)(nil)

// NewPrefectureService constructs a PrefectureService backed by the compiled-in catalog.
func NewPrefectureService(deps PrefectureServiceDeps) (PrefectureService, error) {
	limit := deps.ListLimit
	if limit <= 0 {
		limit = defaultListLimit
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}

	return &prefectureService{
		listLimit: limit,
		normalize: deps.NormalizeQueries,
		logger:    logger,
	}, nil
}

func (s *prefectureService) List(ctx context.Context, filter PrefectureListFilter) ([]Prefecture, error) {
	if ctx == nil {
		return nil, errors.New("prefecture service: context is required")
	}

	var (
		class     prefecture.Class
		hasClass  bool
		rawClass  = strings.TrimSpace(filter.Class)
		limit     = filter.Limit
		collected []Prefecture
	)

	if rawClass != "" {
		parsed, ok := prefecture.ParseClass(strings.ToLower(rawClass))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedClass, rawClass)
		}
		class = parsed
		hasClass = true
	}

	if limit <= 0 || limit > s.listLimit {
		limit = s.listLimit
	}

	for _, pref := range prefecture.All() {
		if hasClass && pref.Class() != class {
			continue
		}
		collected = append(collected, buildPrefectureView(pref))
		if len(collected) >= limit {
			break
		}
	}

	return collected, nil
}

func (s *prefectureService) GetByCode(ctx context.Context, code int) (Prefecture, error) {
	if ctx == nil {
		return Prefecture{}, errors.New("prefecture service: context is required")
	}

	pref, err := prefecture.FindByCode(code)
	if err != nil {
		var invalid *prefecture.InvalidCodeError
		if errors.As(err, &invalid) {
			return Prefecture{}, fmt.Errorf("%w: code %d", ErrPrefectureNotFound, invalid.Code)
		}
		return Prefecture{}, err
	}

	return buildPrefectureView(pref), nil
}

func (s *prefectureService) Resolve(ctx context.Context, query PrefectureResolveQuery) (Prefecture, error) {
	if ctx == nil {
		return Prefecture{}, errors.New("prefecture service: context is required")
	}

	raw := strings.TrimSpace(query.Query)
	if raw == "" {
		return Prefecture{}, fmt.Errorf("%w: query is required", ErrPrefectureInvalidInput)
	}
	if s.normalize {
		raw = textutil.NormalizeQuery(raw)
	}

	script := strings.ToLower(strings.TrimSpace(query.Script))

	var (
		pref prefecture.Prefecture
		err  error
	)
	switch script {
	case "":
		pref, err = prefecture.Find(raw)
	case ScriptKanji:
		pref, err = prefecture.FindByKanji(raw)
	case ScriptHiragana:
		pref, err = prefecture.FindByHiragana(raw)
	case ScriptKatakana:
		pref, err = prefecture.FindByKatakana(raw)
	case ScriptEnglish:
		pref, err = prefecture.FindByEnglish(raw)
	default:
		return Prefecture{}, fmt.Errorf("%w: %q", ErrUnsupportedScript, query.Script)
	}
	if err != nil {
		var invalid *prefecture.InvalidNameError
		if errors.As(err, &invalid) {
			s.logger(ctx, "prefecture.resolve.miss", map[string]any{
				"query":  observability.SanitizeQuery(raw),
				"script": script,
			})
			return Prefecture{}, fmt.Errorf("%w: %q", ErrPrefectureNotFound, invalid.Name)
		}
		return Prefecture{}, err
	}

	return buildPrefectureView(pref), nil
}

func buildPrefectureView(pref prefecture.Prefecture) Prefecture {
	return Prefecture{
		Code:  pref.Code(),
		Class: pref.Class().String(),
		Names: PrefectureNames{
			Kanji:         pref.Kanji(),
			KanjiShort:    pref.KanjiShort(),
			Hiragana:      pref.Hiragana(),
			HiraganaShort: pref.HiraganaShort(),
			Katakana:      pref.Katakana(),
			KatakanaShort: pref.KatakanaShort(),
			English:       pref.English(),
		},
	}
}
