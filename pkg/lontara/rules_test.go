package lontara

import "testing"

func TestRules_NoDuplicateKeysWithinCategory(t *testing.T) {
	seen := make(map[Category]map[string]bool)
	for _, r := range Rules() {
		if seen[r.Category] == nil {
			seen[r.Category] = make(map[string]bool)
		}
		if seen[r.Category][r.Latin] {
			t.Errorf("duplicate key %q in category %s", r.Latin, r.Category)
		}
		seen[r.Category][r.Latin] = true
	}
}

func TestRules_KeyShapes(t *testing.T) {
	for _, r := range Rules() {
		n := len([]rune(r.Latin))
		if n < 1 || n > 3 {
			t.Errorf("rule %q has key length %d, want 1..3", r.Latin, n)
		}
		if r.Lontara == "" {
			t.Errorf("rule %q has empty output", r.Latin)
		}
		if r.Category == CategoryForeign && r.Note == "" {
			t.Errorf("foreign rule %q has no note", r.Latin)
		}
		if r.Category != CategoryForeign && r.Note != "" {
			t.Errorf("native rule %q carries note %q", r.Latin, r.Note)
		}
	}
}

func TestRules_NativeConsonantInventory(t *testing.T) {
	native := 0
	for _, r := range Rules() {
		if r.Category == CategoryConsonant || r.Category == CategoryDigraph {
			native++
		}
	}
	if native != 18 {
		t.Errorf("native consonants = %d, want 18", native)
	}
}

func TestRules_ClusterPrecedence(t *testing.T) {
	// the three letter cluster must be scanned before any shorter rule sharing its prefix
	rules := Rules()
	if rules[0].Latin != "ngk" || rules[0].Category != CategoryCluster {
		t.Errorf("first rule = %+v, want the ngk cluster", rules[0])
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		category Category
		latin    string
		want     string
		found    bool
	}{
		{CategoryConsonant, "k", "ᨀ", true},
		{CategoryDigraph, "ny", "ᨎ", true},
		{CategoryCluster, "mp", "ᨇ", true},
		{CategoryForeign, "th", "ᨈ", true},
		{CategoryForeign, "z", "ᨍ", true},
		{CategoryVowel, "e", "ᨕᨙ", true},
		{CategoryPunctuation, ".", "᨞", true},
		{CategoryConsonant, "ng", "", false},
		{CategoryNumber, "1", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category)+"/"+tt.latin, func(t *testing.T) {
			r, ok := Lookup(tt.category, tt.latin)
			if ok != tt.found || r.Lontara != tt.want {
				t.Errorf("Lookup(%s, %q) = %q, %v; want %q, %v", tt.category, tt.latin, r.Lontara, ok, tt.want, tt.found)
			}
		})
	}
}

func TestVowelMarker(t *testing.T) {
	if _, ok := VowelMarker('a'); ok {
		t.Error("'a' must not have a marker")
	}
	for _, v := range "iueo" {
		if m, ok := VowelMarker(v); !ok || m == "" {
			t.Errorf("VowelMarker(%q) = %q, %v", v, m, ok)
		}
	}
}

func TestCategory_CarriesVowel(t *testing.T) {
	carrying := []Category{CategoryCluster, CategoryForeign, CategoryDigraph, CategoryConsonant}
	for _, c := range carrying {
		if !c.CarriesVowel() {
			t.Errorf("%s should carry the inherent vowel", c)
		}
	}
	for _, c := range []Category{CategoryVowel, CategoryPunctuation, CategoryNumber} {
		if c.CarriesVowel() {
			t.Errorf("%s should not carry the inherent vowel", c)
		}
	}
}
