package prefecture

import (
	"fmt"
	"strings"
	"sync"
)

// Reverse indexes are built once on first lookup and shared by all callers.
// The table is immutable, so the indexes never go stale.
var (
	indexOnce  sync.Once
	byKanji    map[string]Prefecture
	byHiragana map[string]Prefecture
	byKatakana map[string]Prefecture
	byEnglish  map[string]Prefecture
	byAnyName  map[string]Prefecture
)

func buildIndexes() {
	byKanji = make(map[string]Prefecture, Count*2)
	byHiragana = make(map[string]Prefecture, Count*2)
	byKatakana = make(map[string]Prefecture, Count*2)
	byEnglish = make(map[string]Prefecture, Count)
	byAnyName = make(map[string]Prefecture, Count*7)

	insert := func(m map[string]Prefecture, key string, p Prefecture) {
		if existing, ok := m[key]; ok && existing != p {
			// Two prefectures sharing a literal name would make reverse
			// lookup ambiguous. The shipped table never does this; hitting
			// it means the data was corrupted at build time.
			panic(fmt.Sprintf("prefecture: name %q maps to both %s and %s", key, existing, p))
		}
		m[key] = p
	}

	for _, p := range All() {
		insert(byKanji, p.Kanji(), p)
		insert(byKanji, p.KanjiShort(), p)
		insert(byHiragana, p.Hiragana(), p)
		insert(byHiragana, p.HiraganaShort(), p)
		insert(byKatakana, p.Katakana(), p)
		insert(byKatakana, p.KatakanaShort(), p)
		insert(byEnglish, strings.ToLower(p.English()), p)

		insert(byAnyName, p.Kanji(), p)
		insert(byAnyName, p.KanjiShort(), p)
		insert(byAnyName, p.Hiragana(), p)
		insert(byAnyName, p.HiraganaShort(), p)
		insert(byAnyName, p.Katakana(), p)
		insert(byAnyName, p.KatakanaShort(), p)
		insert(byAnyName, strings.ToLower(p.English()), p)
	}
}

// FindByCode resolves a JIS X 0401 code. Codes outside [1, 47] fail with
// *InvalidCodeError.
func FindByCode(code int) (Prefecture, error) {
	p := Prefecture(code)
	if !p.Valid() {
		return 0, &InvalidCodeError{Code: code}
	}
	return p, nil
}

// FindByKanji resolves a kanji name, full (東京都) or short (東京). Matching
// is exact; kanji has no case to fold.
func FindByKanji(name string) (Prefecture, error) {
	indexOnce.Do(buildIndexes)
	if p, ok := byKanji[name]; ok {
		return p, nil
	}
	return 0, &InvalidNameError{Name: name}
}

// FindByHiragana resolves a hiragana reading, full (とうきょうと) or short
// (とうきょう).
func FindByHiragana(name string) (Prefecture, error) {
	indexOnce.Do(buildIndexes)
	if p, ok := byHiragana[name]; ok {
		return p, nil
	}
	return 0, &InvalidNameError{Name: name}
}

// FindByKatakana resolves a katakana reading, full (トウキョウト) or short
// (トウキョウ).
func FindByKatakana(name string) (Prefecture, error) {
	indexOnce.Do(buildIndexes)
	if p, ok := byKatakana[name]; ok {
		return p, nil
	}
	return 0, &InvalidNameError{Name: name}
}

// FindByEnglish resolves a romanized name. Matching is case-insensitive:
// tokyo, Tokyo, and TOKYO all resolve to the same prefecture.
func FindByEnglish(name string) (Prefecture, error) {
	indexOnce.Do(buildIndexes)
	if p, ok := byEnglish[strings.ToLower(name)]; ok {
		return p, nil
	}
	return 0, &InvalidNameError{Name: name}
}

// Find resolves a query against every representation: full and short names
// in all three scripts plus the romanized name. The romanized comparison
// folds case; the kana and kanji comparisons are exact. Every literal name
// in the table is globally unique, so a match is never ambiguous.
func Find(query string) (Prefecture, error) {
	indexOnce.Do(buildIndexes)
	if p, ok := byAnyName[strings.ToLower(query)]; ok {
		return p, nil
	}
	return 0, &InvalidNameError{Name: query}
}
