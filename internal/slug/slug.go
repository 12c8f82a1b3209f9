// Package slug derives URL-safe identifiers from artwork titles.
package slug

import "strings"

// Make converts a title into a slug: lowercase, runs of non-alphanumeric
// characters collapsed to single hyphens, no leading or trailing hyphen.
func Make(title string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
