package lontara

import (
	"strings"
)

// scanner walks the lower-cased input once, left to right, never backtracking
type scanner struct {
	input   []rune
	pos     int
	out     strings.Builder
	details []Detail
	dropped int
}

// Transliterate converts Latin text to Lontara script. It never fails:
// characters that match no rule are skipped and left out of the trace.
func Transliterate(text string) Result {
	if text == "" {
		return Result{Details: []Detail{}}
	}

	s := &scanner{
		input:   []rune(strings.ToLower(text)),
		details: make([]Detail, 0, len(text)),
	}
	s.run()

	return Result{
		Lontara: s.out.String(),
		Details: s.details,
		Dropped: s.dropped,
	}
}

func (s *scanner) run() {
	for s.pos < len(s.input) {
		// 1. clusters ("ngk" is tried before the two-letter ones)
		if r, ok := s.match(clusterRules[:]); ok {
			s.syllable(r)
			continue
		}

		// 2. foreign digraphs
		if r, ok := s.match(foreignDigraphRules[:]); ok {
			s.syllable(r)
			continue
		}

		// 3. nasal digraphs; "ngk" never reaches here
		if r, ok := s.match(nasalDigraphRules[:]); ok {
			s.syllable(r)
			continue
		}

		// 4. foreign single letters
		if r, ok := s.match(foreignLetterRules[:]); ok {
			s.syllable(r)
			continue
		}

		// 5. native consonants
		if r, ok := s.match(consonantRules[:]); ok {
			s.syllable(r)
			continue
		}

		// 6. independent vowels
		if r, ok := s.match(vowelRules[:]); ok {
			s.single(r)
			continue
		}

		// 7. punctuation
		if r, ok := s.match(punctuationRules[:]); ok {
			s.single(r)
			continue
		}

		// 8. digits pass through
		ch := s.input[s.pos]
		if ch >= '0' && ch <= '9' {
			s.emit(1, string(ch), CategoryNumber, "")
			continue
		}

		s.pos++
		s.dropped++
	}
}

// match returns the first rule whose key starts at the cursor
func (s *scanner) match(table []Rule) (Rule, bool) {
	for _, r := range table {
		if s.hasPrefix(r.Latin) {
			return r, true
		}
	}
	return Rule{}, false
}

func (s *scanner) hasPrefix(key string) bool {
	i := s.pos
	for _, k := range key {
		if i >= len(s.input) || s.input[i] != k {
			return false
		}
		i++
	}
	return true
}

// peekAt returns the rune offset runes past the cursor
func (s *scanner) peekAt(offset int) (rune, bool) {
	i := s.pos + offset
	if i >= len(s.input) {
		return 0, false
	}
	return s.input[i], true
}

// syllable emits a consonant-bearing glyph and absorbs the vowel after it.
// A following "a" and the end of input are the same case: the bare glyph
// already carries the inherent vowel.
func (s *scanner) syllable(r Rule) {
	n := len([]rune(r.Latin))
	next, ok := s.peekAt(n)

	if ok {
		if marker, isMarker := vowelMarker(next); isMarker {
			s.emit(n+1, r.Lontara+marker, r.Category, r.Note)
			return
		}
		if next == 'a' {
			s.emit(n+1, r.Lontara, r.Category, r.Note)
			return
		}
	}

	s.emit(n, r.Lontara, r.Category, r.Note)
}

func (s *scanner) single(r Rule) {
	s.emit(len([]rune(r.Latin)), r.Lontara, r.Category, r.Note)
}

// emit consumes n runes and appends one trace entry for them
func (s *scanner) emit(n int, lontara string, category Category, note string) {
	s.out.WriteString(lontara)
	s.details = append(s.details, Detail{
		Latin:    string(s.input[s.pos : s.pos+n]),
		Lontara:  lontara,
		Category: category,
		Note:     note,
		Pos:      s.pos,
	})
	s.pos += n
}
