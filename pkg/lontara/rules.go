package lontara

// Rule tables. Each table is scanned in declaration order, which matters only
// for clusters: "ngk" must be tried before the two-letter clusters.
var (
	clusterRules = [...]Rule{
		{Latin: "ngk", Lontara: "ᨃ", Category: CategoryCluster},
		{Latin: "mp", Lontara: "ᨇ", Category: CategoryCluster},
		{Latin: "nr", Lontara: "ᨋ", Category: CategoryCluster},
		{Latin: "nc", Lontara: "ᨏ", Category: CategoryCluster},
	}

	foreignDigraphRules = [...]Rule{
		{Latin: "sy", Lontara: "ᨔ", Category: CategoryForeign, Note: "SY → SA"},
		{Latin: "kh", Lontara: "ᨖ", Category: CategoryForeign, Note: "KH → HA"},
		{Latin: "gh", Lontara: "ᨁ", Category: CategoryForeign, Note: "GH → GA"},
		{Latin: "th", Lontara: "ᨈ", Category: CategoryForeign, Note: "TH → TA"},
		{Latin: "dh", Lontara: "ᨉ", Category: CategoryForeign, Note: "DH → DA"},
		{Latin: "ts", Lontara: "ᨌ", Category: CategoryForeign, Note: "TS → CA"},
	}

	nasalDigraphRules = [...]Rule{
		{Latin: "ng", Lontara: "ᨂ", Category: CategoryDigraph},
		{Latin: "ny", Lontara: "ᨎ", Category: CategoryDigraph},
	}

	foreignLetterRules = [...]Rule{
		{Latin: "f", Lontara: "ᨄ", Category: CategoryForeign, Note: "F → PA"},
		{Latin: "v", Lontara: "ᨅ", Category: CategoryForeign, Note: "V → BA"},
		{Latin: "z", Lontara: "ᨍ", Category: CategoryForeign, Note: "Z → JA"},
		{Latin: "x", Lontara: "ᨀᨔ", Category: CategoryForeign, Note: "X → KS"},
		{Latin: "q", Lontara: "ᨀ", Category: CategoryForeign, Note: "Q → KA"},
	}

	consonantRules = [...]Rule{
		{Latin: "k", Lontara: "ᨀ", Category: CategoryConsonant},
		{Latin: "g", Lontara: "ᨁ", Category: CategoryConsonant},
		{Latin: "p", Lontara: "ᨄ", Category: CategoryConsonant},
		{Latin: "b", Lontara: "ᨅ", Category: CategoryConsonant},
		{Latin: "m", Lontara: "ᨆ", Category: CategoryConsonant},
		{Latin: "t", Lontara: "ᨈ", Category: CategoryConsonant},
		{Latin: "d", Lontara: "ᨉ", Category: CategoryConsonant},
		{Latin: "n", Lontara: "ᨊ", Category: CategoryConsonant},
		{Latin: "c", Lontara: "ᨌ", Category: CategoryConsonant},
		{Latin: "j", Lontara: "ᨍ", Category: CategoryConsonant},
		{Latin: "y", Lontara: "ᨐ", Category: CategoryConsonant},
		{Latin: "r", Lontara: "ᨑ", Category: CategoryConsonant},
		{Latin: "l", Lontara: "ᨒ", Category: CategoryConsonant},
		{Latin: "w", Lontara: "ᨓ", Category: CategoryConsonant},
		{Latin: "s", Lontara: "ᨔ", Category: CategoryConsonant},
		{Latin: "h", Lontara: "ᨖ", Category: CategoryConsonant},
	}

	vowelRules = [...]Rule{
		{Latin: "a", Lontara: "ᨕ", Category: CategoryVowel},
		{Latin: "i", Lontara: "ᨕᨗ", Category: CategoryVowel},
		{Latin: "u", Lontara: "ᨕᨘ", Category: CategoryVowel},
		{Latin: "e", Lontara: "ᨕᨙ", Category: CategoryVowel},
		{Latin: "o", Lontara: "ᨕᨚ", Category: CategoryVowel},
	}

	punctuationRules = [...]Rule{
		{Latin: ".", Lontara: "᨞", Category: CategoryPunctuation},
		{Latin: ",", Lontara: "᨟", Category: CategoryPunctuation},
		{Latin: " ", Lontara: " ", Category: CategoryPunctuation},
	}
)

// vowelMarker returns the diacritic that replaces the inherent "a".
// "a" itself has no marker.
func vowelMarker(r rune) (string, bool) {
	switch r {
	case 'i':
		return "ᨗ", true
	case 'u':
		return "ᨘ", true
	case 'e':
		return "ᨙ", true
	case 'o':
		return "ᨚ", true
	default:
		return "", false
	}
}

// VowelMarker exposes the diacritic for a non-"a" vowel letter
func VowelMarker(vowel rune) (string, bool) {
	return vowelMarker(vowel)
}

// Rules lists every grapheme rule in scan priority order
func Rules() []Rule {
	tables := [][]Rule{
		clusterRules[:],
		foreignDigraphRules[:],
		nasalDigraphRules[:],
		foreignLetterRules[:],
		consonantRules[:],
		vowelRules[:],
		punctuationRules[:],
	}

	n := 0
	for _, t := range tables {
		n += len(t)
	}
	rules := make([]Rule, 0, n)
	for _, t := range tables {
		rules = append(rules, t...)
	}
	return rules
}

// Lookup finds the rule for an exact Latin key within a category
func Lookup(category Category, latin string) (Rule, bool) {
	var table []Rule
	switch category {
	case CategoryCluster:
		table = clusterRules[:]
	case CategoryForeign:
		if len(latin) == 2 {
			table = foreignDigraphRules[:]
		} else {
			table = foreignLetterRules[:]
		}
	case CategoryDigraph:
		table = nasalDigraphRules[:]
	case CategoryConsonant:
		table = consonantRules[:]
	case CategoryVowel:
		table = vowelRules[:]
	case CategoryPunctuation:
		table = punctuationRules[:]
	default:
		return Rule{}, false
	}

	for _, r := range table {
		if r.Latin == latin {
			return r, true
		}
	}
	return Rule{}, false
}
