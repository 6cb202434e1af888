package lontara

import "strings"

// keyboardRows follows the traditional ka-ga-nga order of the syllabary.
// The trailing space key types a word separator.
var keyboardRows = [3][8]string{
	{"ka", "ga", "nga", "ngka", "pa", "ba", "ma", "mpa"},
	{"ta", "da", "na", "nra", "ca", "ja", "nya", "nca"},
	{"ya", "ra", "la", "wa", "sa", "a", "ha", " "},
}

// chartVowels are the columns of the syllable chart
var chartVowels = [5]string{"a", "i", "u", "e", "o"}

// KeyboardRows returns the syllable keys of the on-screen keyboard
func KeyboardRows() [][]string {
	rows := make([][]string, len(keyboardRows))
	for i, row := range keyboardRows {
		rows[i] = append([]string(nil), row[:]...)
	}
	return rows
}

// SyllableGlyph resolves a keyboard syllable such as "nga" or "ngka" to the
// single glyph it types. It reports false when the syllable does not map to
// exactly one trace entry.
func SyllableGlyph(syllable string) (string, bool) {
	if syllable == " " {
		return " ", true
	}

	res := Transliterate(syllable)
	if len(res.Details) != 1 || res.Details[0].Latin != strings.ToLower(syllable) {
		return "", false
	}
	return res.Lontara, true
}

// ChartCell is one syllable of the chart
type ChartCell struct {
	Latin   string `json:"latin"`
	Lontara string `json:"lontara"`
}

// ChartRow holds a base consonant (empty for the vowel carrier) across all vowels
type ChartRow struct {
	Base  string       `json:"base"`
	Cells [5]ChartCell `json:"cells"`
}

// Chart builds the consonant by vowel syllable grid in keyboard order
func Chart() []ChartRow {
	rows := make([]ChartRow, 0, len(keyboardRows)*len(keyboardRows[0]))
	for _, kr := range keyboardRows {
		for _, syllable := range kr {
			if strings.TrimSpace(syllable) == "" {
				continue
			}

			base := strings.TrimSuffix(syllable, "a")
			row := ChartRow{Base: base}
			for i, v := range chartVowels {
				latin := base + v
				row.Cells[i] = ChartCell{
					Latin:   latin,
					Lontara: Transliterate(latin).Lontara,
				}
			}
			rows = append(rows, row)
		}
	}
	return rows
}
