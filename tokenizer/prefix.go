package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// hasASCIILetter reports whether s contains a letter in [a-zA-Z].
func hasASCIILetter(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return r < utf8.RuneSelf && unicode.IsLetter(r)
	})
}

// isDigits reports whether s is non-empty and consists of digits only.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// tokenSeq is a whitespace-split token sequence with bounds-checked lookahead.
type tokenSeq []string

// nextFirst returns the first rune of the token after index i.
// ok is false when i is the last token.
func (ts tokenSeq) nextFirst(i int) (r rune, ok bool) {
	if i+1 >= len(ts) {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(ts[i+1])
	return r, true
}

// keepsPeriod decides whether the period ending ts[i] belongs to the token.
// dotless is ts[i] without its final period. The rules are checked in order
// and the first one that applies wins.
func (t *Tokenizer) keepsPeriod(ts tokenSeq, i int, dotless string) bool {
	if isDigits(dotless) {
		return false
	}

	next, hasNext := ts.nextFirst(i)
	nextLower := hasNext && unicode.IsLower(next)
	nextDigit := hasNext && unicode.IsDigit(next)
	mode, listed := t.prefixes[dotless]

	switch {
	case strings.Contains(dotless, ".") && hasASCIILetter(dotless):
		return true // initials and dotted abbreviations: U.S.
	case listed && mode == Always:
		return true
	case nextLower:
		return true
	case listed && mode == NumericOnly && nextDigit:
		return true
	case nextDigit:
		return true
	default:
		return false
	}
}

// resolvePrefixes splits the final period off every token that ends a
// sentence and keeps it on abbreviations, initials, and prefixes of numbers.
// Tokens are rejoined with single spaces plus a trailing space.
func (t *Tokenizer) resolvePrefixes(text string) string {
	ts := tokenSeq(strings.Fields(text))

	var b strings.Builder
	b.Grow(len(text) + len(ts))
	for i, tok := range ts {
		if dotless, ok := strings.CutSuffix(tok, "."); ok && !t.keepsPeriod(ts, i, dotless) {
			b.WriteString(dotless)
			b.WriteString(" .")
		} else {
			b.WriteString(tok)
		}
		b.WriteByte(' ')
	}
	return b.String()
}
