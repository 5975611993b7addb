package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeQuery canonicalises a user-supplied lookup string before it is
// matched against the prefecture table. NFKC folds half-width katakana and
// full-width Latin to their canonical forms; surrounding and repeated
// whitespace is collapsed. The table itself is matched byte-exact, so all
// forgiveness lives here at the transport edge.
func NormalizeQuery(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Join(strings.Fields(s), " ")
	return norm.NFKC.String(s)
}
