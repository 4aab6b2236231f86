// Package textnum finds decimal literals in free text and spells them out
// in English.
//
// A literal is an optional '-', digits, and an optional '.' followed by
// digits (".5" is also accepted). The whole part may be grouped in
// thousands with commas ("1,250,000"). It must stand on its own: literals glued
// to letters ("4x4", "1e5"), to underscores, or to further ".digit" groups
// ("10.0.0.1", "1.2.3") are left alone. A trailing sentence period is not
// part of the literal, so "I have 5." becomes "I have five.".
package textnum

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/trvswgnr/num2english"
)

// Literal is a decimal literal located in a string.
type Literal struct {
	Text  string // s[Start:End]
	Start int    // Byte offset in the original string (inclusive)
	End   int    // Byte offset in the original string (exclusive)
}

// Scan returns the decimal literals in s in order of appearance.
// The invariant s[l.Start:l.End] == l.Text holds for every literal.
func Scan(s string) []Literal {
	var lits []Literal

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !startsLiteral(s, i, r) {
			i += size
			continue
		}

		end := scanLiteral(s, i)
		if end < len(s) && !boundaryAt(s, end) {
			// Part of a larger token such as a version string or identifier.
			i = skipToken(s, end)
			continue
		}

		lits = append(lits, Literal{Text: s[i:end], Start: i, End: end})
		i = end
	}

	return lits
}

// Rewrite replaces every literal Scan finds in s with its English words
// and reports how many were replaced. Literals that cannot be converted,
// such as integers beyond the largest magnitude word, are kept verbatim.
func Rewrite(s string) (string, int) {
	lits := Scan(s)
	if len(lits) == 0 {
		return s, 0
	}

	var b strings.Builder
	b.Grow(len(s) * 4)

	replaced := 0
	last := 0
	for _, lit := range lits {
		b.WriteString(s[last:lit.Start])
		words, err := num2english.FromString(strings.ReplaceAll(lit.Text, ",", ""))
		if err != nil {
			b.WriteString(lit.Text)
		} else {
			b.WriteString(words)
			replaced++
		}
		last = lit.End
	}
	b.WriteString(s[last:])

	return b.String(), replaced
}

// startsLiteral reports whether a literal can begin at byte offset i,
// where r is the rune at i.
func startsLiteral(s string, i int, r rune) bool {
	if i > 0 {
		prev, _ := utf8.DecodeLastRuneInString(s[:i])
		if isWordRune(prev) || prev == '.' {
			return false
		}
	}

	switch {
	case isDigit(r):
		return true
	case r == '-':
		return digitAt(s, i+1) || (i+1 < len(s) && s[i+1] == '.' && digitAt(s, i+2))
	case r == '.':
		return digitAt(s, i+1)
	}
	return false
}

// scanLiteral consumes a literal that startsLiteral accepted at pos and
// returns its end offset.
func scanLiteral(s string, pos int) int {
	end := pos
	if s[end] == '-' {
		end++
	}
	start := end
	end = skipDigits(s, end)
	if n := end - start; n >= 1 && n <= 3 {
		for isGroup(s, end) {
			end += 4
		}
	}
	if end < len(s) && s[end] == '.' && digitAt(s, end+1) {
		end = skipDigits(s, end+1)
	}
	return end
}

// isGroup reports whether s[i:] starts with a comma and exactly three
// digits, as in the ",000" of "1,000".
func isGroup(s string, i int) bool {
	return i < len(s) && s[i] == ',' &&
		digitAt(s, i+1) && digitAt(s, i+2) && digitAt(s, i+3) && !digitAt(s, i+4)
}

// boundaryAt reports whether a literal may end just before byte offset i.
func boundaryAt(s string, i int) bool {
	if s[i] == '.' && digitAt(s, i+1) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

// skipToken advances past word runes and dots starting at pos.
func skipToken(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !isWordRune(r) && r != '.' {
			break
		}
		pos += size
	}
	return pos
}

func skipDigits(s string, pos int) int {
	for pos < len(s) && isDigit(rune(s[pos])) {
		pos++
	}
	return pos
}

func digitAt(s string, i int) bool {
	return i < len(s) && isDigit(rune(s[i]))
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isWordRune reports whether r continues an identifier-like token.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
