// Package slug builds the URL-safe identifiers behind public
// invitation pages.
package slug

import (
	"strings"

	"github.com/google/uuid"
)

// Make derives a slug from a wedding title: lowercased, non-alphanumerics
// collapsed into single hyphens, plus a short random suffix so two
// weddings with the same title never collide. Slugs are assigned once
// and never change.
func Make(title string) string {
	base := normalize(title)
	suffix := uuid.NewString()[:8]
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

func normalize(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
