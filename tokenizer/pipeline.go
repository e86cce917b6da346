package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// normalizePunct replaces curly quotes and special hyphens by ASCII.
func normalizePunct(s string) string {
	return punctReplacer.Replace(s)
}

// separateSymbols surrounds punctuation and symbol characters with spaces
// and deletes C0 control characters.
func separateSymbols(s string) string {
	for _, re := range unicodeClasses {
		s = re.ReplaceAllString(s, " $0 ")
	}
	s = controlChars.ReplaceAllString(s, "")
	return asciiSymbols.ReplaceAllString(s, " $0 ")
}

// encodeMultiDots replaces every run of two or more dots by a single
// DOT...DOTMULTI token. A run is only encoded when a non-dot follows it,
// which always holds on masked text because of its trailing space.
func encodeMultiDots(s string) string {
	return multiDot.ReplaceAllStringFunc(s, func(m string) string {
		_, size := utf8.DecodeLastRuneInString(m)
		dots := len(m) - size
		return " " + strings.Repeat(dotMarker, dots) + multiDotSuffix + " " + m[dots:]
	})
}

// decodeMultiDots reverses encodeMultiDots.
func decodeMultiDots(s string) string {
	return encodedDots.ReplaceAllStringFunc(s, func(m string) string {
		return strings.Repeat(".", (len(m)-len(multiDotSuffix))/len(dotMarker))
	})
}

// splitCommas spaces out commas that are not between two digits.
func splitCommas(s string) string {
	s = commaAfterText.ReplaceAllString(s, "${1} , ")
	return commaBeforeText.ReplaceAllString(s, " , ${1}")
}

// splitApostrophes separates apostrophes by letter context: a free-standing
// apostrophe becomes its own token, one before letters stays with the letters
// (don't -> don 't), one after letters stays with them. An apostrophe between
// a digit and letters is left alone, except digit-'s, which becomes digit 's.
// Doubled apostrophes are split in two.
func splitApostrophes(s string) string {
	s = aposBetweenNonLetters.ReplaceAllString(s, "${1} ' ${2}")
	s = aposBeforeLetter.ReplaceAllString(s, "${1} '${2}")
	s = aposAfterLetter.ReplaceAllString(s, "${1}' ${2}")
	s = aposBetweenLetters.ReplaceAllString(s, "${1} '${2}")
	s = aposDigitS.ReplaceAllString(s, "${1} 's")
	return strings.ReplaceAll(s, "''", " ' ' ")
}

// splitLeadingDots separates dots at the start of a token from the text that
// follows them, unless a digit follows (.5 stays whole).
func splitLeadingDots(s string) string {
	return leadingDots.ReplaceAllString(s, " ${1} ${2}")
}

// splitHyphens spaces out every hyphen of a run, re-spaces hyphens inside
// numeric ranges, and splits hyphens next to non-alphanumeric characters.
// A hyphen between two letters is left in place.
func splitHyphens(s string) string {
	s = hyphenRun.ReplaceAllStringFunc(s, func(m string) string {
		return strings.Join(strings.Split(m, ""), " ")
	})
	s = hyphenInNumber.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ReplaceAll(m, "-", " - ")
	})
	s = hyphenBeforeSymbol.ReplaceAllString(s, "${1} - ${2}")
	return hyphenAfterSymbol.ReplaceAllString(s, "${1} - ${2}")
}

// splitSentenceBoundaries puts a line break after a "." or "?" token that is
// followed by a capitalized token, keeping quote and bracket tokens on the
// side of the boundary they belong to.
func splitSentenceBoundaries(s string) string {
	s = sentenceBoundary.ReplaceAllString(s, " ${1}\n${2}")
	s = sentenceBoundaryOpenQuote.ReplaceAllString(s, " ${1}\n${2} ${3}")
	return sentenceBoundaryClosingQuote.ReplaceAllString(s, " ${1} ${2}\n${3}")
}
