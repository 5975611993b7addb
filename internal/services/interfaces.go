package services

import (
	"context"
	"time"
)

// BuildInfo captures runtime metadata exposed via health endpoints.
type BuildInfo struct {
	Version     string
	CommitSHA   string
	Environment string
	StartedAt   time.Time
}

// PrefectureNames bundles every representation of a prefecture name.
type PrefectureNames struct {
	Kanji         string
	KanjiShort    string
	Hiragana      string
	HiraganaShort string
	Katakana      string
	KatakanaShort string
	English       string
}

// Prefecture is the service-level view of a single catalog entry.
type Prefecture struct {
	Code  int
	Class string
	Names PrefectureNames
}

// PrefectureListFilter narrows the catalog listing.
type PrefectureListFilter struct {
	// Class restricts the listing to a single administrative class label.
	// Empty means all classes.
	Class string
	// Limit caps the number of entries returned. Zero means the configured
	// default.
	Limit int
}

// PrefectureResolveQuery describes a reverse lookup request.
type PrefectureResolveQuery struct {
	Query string
	// Script optionally restricts matching to a single writing system:
	// kanji, hiragana, katakana or english. Empty matches all of them.
	Script string
}

// PrefectureService exposes read access to the prefecture catalog.
type PrefectureService interface {
	List(ctx context.Context, filter PrefectureListFilter) ([]Prefecture, error)
	GetByCode(ctx context.Context, code int) (Prefecture, error)
	Resolve(ctx context.Context, query PrefectureResolveQuery) (Prefecture, error)
}
