package lontara

// Category identifies the rule family that produced a trace entry
type Category string

const (
	CategoryCluster     Category = "cluster"
	CategoryForeign     Category = "foreign"
	CategoryDigraph     Category = "digraph"
	CategoryConsonant   Category = "consonant"
	CategoryVowel       Category = "vowel"
	CategoryPunctuation Category = "punctuation"
	CategoryNumber      Category = "number"
)

// CarriesVowel reports whether glyphs of this category carry the inherent "a"
// and accept a vowel marker.
func (c Category) CarriesVowel() bool {
	switch c {
	case CategoryCluster, CategoryForeign, CategoryDigraph, CategoryConsonant:
		return true
	default:
		return false
	}
}

// Rule maps a Latin grapheme to its Lontara output
type Rule struct {
	Latin    string   `json:"latin" yaml:"latin"`
	Lontara  string   `json:"lontara" yaml:"lontara"`
	Category Category `json:"category" yaml:"category"`
	Note     string   `json:"note,omitempty" yaml:"note,omitempty"`
}

// Detail is one entry of the transliteration trace. Pos is the rune offset of
// Latin within the lower-cased input.
type Detail struct {
	Latin    string   `json:"latin"`
	Lontara  string   `json:"lontara"`
	Category Category `json:"category"`
	Note     string   `json:"note,omitempty"`
	Pos      int      `json:"pos"`
}

// Result is the output of a transliteration: the rendered script and the
// positional trace that produced it.
type Result struct {
	Lontara string   `json:"lontara"`
	Details []Detail `json:"details"`

	// Dropped counts input runes that matched no rule
	Dropped int `json:"-"`
}

// Clone returns a copy that shares no memory with r
func (r Result) Clone() Result {
	details := make([]Detail, len(r.Details))
	copy(details, r.Details)
	return Result{
		Lontara: r.Lontara,
		Details: details,
		Dropped: r.Dropped,
	}
}

// CategoryCounts tallies trace entries per category
func (r Result) CategoryCounts() map[Category]int {
	counts := make(map[Category]int)
	for _, d := range r.Details {
		counts[d.Category]++
	}
	return counts
}
