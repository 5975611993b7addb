// Package prefecture models the 47 first-order administrative divisions of
// Japan and provides lossless conversion between their JIS X 0401 code, the
// kanji/hiragana/katakana spellings (full and short), and the romanized name.
//
// The dataset is fixed by law and convention; the package exposes it as a
// read-only table with multi-key reverse lookup. All operations are pure and
// safe for concurrent use.
package prefecture

import (
	"strings"
	"unicode"
)

// Prefecture identifies one of the 47 prefectures. The zero value is not a
// valid prefecture; the defined constants carry their JIS X 0401 code as the
// underlying value.
type Prefecture int

// The 47 prefectures in JIS X 0401 order, north to south.
const (
	Hokkaido Prefecture = iota + 1
	Aomori
	Iwate
	Miyagi
	Akita
	Yamagata
	Fukushima
	Ibaraki
	Tochigi
	Gunma
	Saitama
	Chiba
	Tokyo
	Kanagawa
	Niigata
	Toyama
	Ishikawa
	Fukui
	Yamanashi
	Nagano
	Gifu
	Shizuoka
	Aichi
	Mie
	Shiga
	Kyoto
	Osaka
	Hyogo
	Nara
	Wakayama
	Tottori
	Shimane
	Okayama
	Hiroshima
	Yamaguchi
	Tokushima
	Kagawa
	Ehime
	Kochi
	Fukuoka
	Saga
	Nagasaki
	Kumamoto
	Oita
	Miyazaki
	Kagoshima
	Okinawa
)

// Count is the number of prefectures.
const Count = 47

// Class identifies the administrative suffix category of a prefecture. The
// category governs which suffix the short name drops; dispatching on it keeps
// the derivation independent of the literal name data.
type Class int

const (
	// ClassCircuit is Hokkaido: the single 道 entity whose name carries no
	// strippable suffix.
	ClassCircuit Class = iota
	// ClassMetropolis is Tokyo, suffixed 都.
	ClassMetropolis
	// ClassUrban covers Kyoto and Osaka, suffixed 府.
	ClassUrban
	// ClassPrefecture covers the remaining 43 entities, suffixed 県.
	ClassPrefecture
)

// String returns the lowercase label used in API payloads and filters.
func (c Class) String() string {
	switch c {
	case ClassCircuit:
		return "circuit"
	case ClassMetropolis:
		return "metropolis"
	case ClassUrban:
		return "urban"
	case ClassPrefecture:
		return "prefecture"
	default:
		return "unknown"
	}
}

// ParseClass maps a label back to its Class. The second return value reports
// whether the label named a known class.
func ParseClass(label string) (Class, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "circuit":
		return ClassCircuit, true
	case "metropolis":
		return ClassMetropolis, true
	case "urban":
		return ClassUrban, true
	case "prefecture":
		return ClassPrefecture, true
	default:
		return 0, false
	}
}

// All returns the 47 prefectures in JIS code order. The slice is freshly
// allocated; callers may modify it.
func All() []Prefecture {
	out := make([]Prefecture, Count)
	for i := range out {
		out[i] = Prefecture(i + 1)
	}
	return out
}

// Valid reports whether p is one of the 47 defined prefectures.
func (p Prefecture) Valid() bool {
	return p >= Hokkaido && p <= Okinawa
}

// Code returns the JIS X 0401 prefecture code, in [1, 47].
func (p Prefecture) Code() int {
	return int(p)
}

// Class returns the administrative class of p. Classification is fixed by
// entity identity, never inferred from the name strings.
func (p Prefecture) Class() Class {
	switch p {
	case Hokkaido:
		return ClassCircuit
	case Tokyo:
		return ClassMetropolis
	case Kyoto, Osaka:
		return ClassUrban
	default:
		return ClassPrefecture
	}
}

// Kanji returns the full formal name in kanji, e.g. 東京都.
func (p Prefecture) Kanji() string {
	return p.record().kanji
}

// KanjiShort returns the kanji name with the administrative suffix removed,
// e.g. 東京. Hokkaido has no suffix and is returned unchanged.
func (p Prefecture) KanjiShort() string {
	kanji := p.Kanji()
	switch p.Class() {
	case ClassCircuit:
		return kanji
	case ClassMetropolis:
		return strings.TrimSuffix(kanji, "都")
	case ClassUrban:
		return strings.TrimSuffix(kanji, "府")
	default:
		return strings.TrimSuffix(kanji, "県")
	}
}

// Hiragana returns the full reading in hiragana, e.g. とうきょうと.
func (p Prefecture) Hiragana() string {
	return p.record().hiragana
}

// HiraganaShort returns the hiragana reading with the administrative suffix
// removed, e.g. とうきょう.
func (p Prefecture) HiraganaShort() string {
	hiragana := p.Hiragana()
	switch p.Class() {
	case ClassCircuit:
		return hiragana
	case ClassMetropolis:
		return strings.TrimSuffix(hiragana, "と")
	case ClassUrban:
		return strings.TrimSuffix(hiragana, "ふ")
	default:
		return strings.TrimSuffix(hiragana, "けん")
	}
}

// Katakana returns the full reading in katakana, e.g. トウキョウト.
func (p Prefecture) Katakana() string {
	return p.record().katakana
}

// KatakanaShort returns the katakana reading with the administrative suffix
// removed, e.g. トウキョウ.
func (p Prefecture) KatakanaShort() string {
	katakana := p.Katakana()
	switch p.Class() {
	case ClassCircuit:
		return katakana
	case ClassMetropolis:
		return strings.TrimSuffix(katakana, "ト")
	case ClassUrban:
		return strings.TrimSuffix(katakana, "フ")
	default:
		return strings.TrimSuffix(katakana, "ケン")
	}
}

// English returns the romanized name with a capitalized initial, e.g. Tokyo.
// The table stores romaji in lowercase; comparisons elsewhere always fold
// case, so the presentation casing here is cosmetic.
func (p Prefecture) English() string {
	return capitalize(p.record().english)
}

// String implements fmt.Stringer using the romanized name.
func (p Prefecture) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return p.English()
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
