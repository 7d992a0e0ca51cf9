// Package slug builds URL-safe identifiers from display names.
package slug

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Make lowercases s, transliterates it to ASCII and collapses every run of
// non-alphanumeric characters into a single hyphen. Leading and trailing
// hyphens are trimmed.
func Make(s string) string {
	s = strings.ToLower(unidecode.Unidecode(s))

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
