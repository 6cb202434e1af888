package genealogy

import (
	"fmt"
	"strings"
)

// Locale selects the language of generation labels
type Locale string

const (
	LocaleIndonesian Locale = "id"
	LocaleEnglish    Locale = "en"
)

// DefaultLocale is used by Label
const DefaultLocale = LocaleIndonesian

// Javanese-Indonesian kinship terms counted from the ancestor downwards
var indonesianLabels = [...]string{
	"Leluhur",
	"Anak",
	"Cucu",
	"Cicit",
	"Canggah",
	"Wareng",
	"Udeg-udeg",
	"Gantung Siwur",
}

var englishLabels = [...]string{
	"Ancestor",
	"Child",
	"Grandchild",
	"Great-grandchild",
	"Great-great-grandchild",
	"3rd great-grandchild",
	"4th great-grandchild",
	"5th great-grandchild",
}

// ParseLocale accepts "id" or "en", case-insensitively
func ParseLocale(s string) (Locale, error) {
	switch l := Locale(strings.ToLower(strings.TrimSpace(s))); l {
	case LocaleIndonesian, LocaleEnglish:
		return l, nil
	default:
		return "", fmt.Errorf("unknown locale %q (want id or en)", s)
	}
}

// Label returns the Indonesian label for a generation
func Label(depth int) string {
	return LabelFor(DefaultLocale, depth)
}

// LabelFor returns the label for a generation in the given locale. Depths
// past the fixed table fall back to a numbered label; non-positive depths
// (including Unknown) have no label. Unrecognized locales use Indonesian.
func LabelFor(locale Locale, depth int) string {
	if depth < 1 {
		return ""
	}

	switch locale {
	case LocaleEnglish:
		if depth <= len(englishLabels) {
			return englishLabels[depth-1]
		}
		return fmt.Sprintf("Generation %d", depth)
	default:
		if depth <= len(indonesianLabels) {
			return indonesianLabels[depth-1]
		}
		return fmt.Sprintf("Generasi ke-%d", depth)
	}
}
