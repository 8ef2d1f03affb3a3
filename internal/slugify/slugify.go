// Package slugify builds URL-safe identifiers for accounts.
package slugify

import (
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const (
	// UsernameMaxLength is the size of the auth_user.username column.
	UsernameMaxLength = 150
	// SlugMaxLength bounds generated profile slugs.
	SlugMaxLength = 64
	// SlugSuffixLength is the number of hex characters appended to a profile slug.
	SlugSuffixLength = 12
)

// separators become dashes before transliteration; "@" and "&" are not spelled out.
var separators = strings.NewReplacer("@", "-", "&", "-", "_", "-")

// Slugify returns a lowercase ASCII slug of s where every run of characters other
// than letters and digits is a single dash. Empty input gives an empty slug.
func Slugify(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return slug.Make(separators.Replace(s))
}

// Username generates "<first>-<last>-<email>-<uuid>" from slugified components.
// Empty components are skipped and the prefix is shortened so the result fits
// UsernameMaxLength. The uuid suffix is always kept whole.
func Username(firstName, lastName, email string) string {
	suffix := uuid.NewString()

	parts := make([]string, 0, 3)
	for _, p := range []string{firstName, lastName, email} {
		if s := Slugify(p); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return suffix
	}

	prefix := truncate(strings.Join(parts, "-"), UsernameMaxLength-len(suffix)-1)
	return prefix + "-" + suffix
}

// ProfileSlug generates "<first>-<12 hex chars>". When the first name has no
// sluggable characters the hex suffix alone is returned.
func ProfileSlug(firstName string) string {
	suffix := RandomSuffix()

	base := truncate(Slugify(firstName), SlugMaxLength-SlugSuffixLength-1)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

// RandomSuffix returns SlugSuffixLength lowercase hex characters taken from a v4 uuid.
func RandomSuffix() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:SlugSuffixLength]
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimRight(s[:max], "-")
}
