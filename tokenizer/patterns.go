package tokenizer

import (
	"regexp"
	"strings"
)

// Multi-dot encoding: a run of n dots becomes dotMarker repeated n times
// followed by multiDotSuffix. The decoder divides by len(dotMarker).
const (
	dotMarker      = "DOT"
	multiDotSuffix = "MULTI"
)

// letterClass is the set of characters treated as letters around apostrophes:
// ASCII letters plus U+0080..U+024F (Latin-1 Supplement through Latin Extended-B).
const letterClass = `a-zA-Z\x{80}-\x{24f}`

// punctReplacer maps look-alike Unicode punctuation to ASCII.
var punctReplacer = strings.NewReplacer(
	"\u2010", "-", // hyphen
	"\u2043", "-", // hyphen bullet
	"\u2018", "'",
	"\u2019", "'",
	"\u201c", `"`,
	"\u201d", `"`,
)

// Character classes spaced out by separateSymbols, applied in this order.
// The C0 control deletion runs between the Unicode classes and asciiSymbols.
var (
	latin1Punct   = regexp.MustCompile(`[\x{a1}-\x{bf}\x{d7}\x{f7}]`)
	generalPunct  = regexp.MustCompile(`[\x{2012}-\x{2018}\x{201a}-\x{206f}]`) // excludes U+2019
	mathOperators = regexp.MustCompile(`[\x{2200}-\x{2211}\x{2213}-\x{22ff}]`) // excludes U+2212 minus
	fractions     = regexp.MustCompile(`[\x{2150}-\x{2160}]`)
	supSubScripts = regexp.MustCompile(`[\x{2070}-\x{209f}]`)
	currency      = regexp.MustCompile(`[\x{20a0}-\x{20cf}]`)
	controlChars  = regexp.MustCompile(`[\x00-\x1f]`)
	asciiSymbols  = regexp.MustCompile("[\\\\!@#$%^&*()_+={\\[}\\]|\";:<>?`~/]")

	unicodeClasses = []*regexp.Regexp{
		latin1Punct, generalPunct, mathOperators, fractions, supSubScripts, currency,
	}
)

// Dots and commas.
var (
	multiDot        = regexp.MustCompile(`\.\.+[^.]`)
	commaAfterText  = regexp.MustCompile(`([^0-9]),`)
	commaBeforeText = regexp.MustCompile(`,([^0-9])`)
	leadingDots     = regexp.MustCompile(` (\.+)([^0-9])`)
	encodedDots     = regexp.MustCompile(`(?:` + dotMarker + `)+` + multiDotSuffix)
)

// Apostrophes, applied in this order. The four contexts are mutually exclusive.
var (
	aposBetweenNonLetters = regexp.MustCompile(`([^` + letterClass + `])'([^` + letterClass + `])`)
	aposBeforeLetter      = regexp.MustCompile(`([^0-9` + letterClass + `])'([` + letterClass + `])`)
	aposAfterLetter       = regexp.MustCompile(`([` + letterClass + `])'([^` + letterClass + `])`)
	aposBetweenLetters    = regexp.MustCompile(`([` + letterClass + `])'([` + letterClass + `])`)
	aposDigitS            = regexp.MustCompile(`([0-9])'s`)
)

// Hyphens, applied in this order.
var (
	hyphenRun          = regexp.MustCompile(`-+`)
	hyphenInNumber     = regexp.MustCompile(`(?:-?[0-9]-+[0-9]-?)*`)
	hyphenBeforeSymbol = regexp.MustCompile(`(.)-([^a-zA-Z0-9])`)
	hyphenAfterSymbol  = regexp.MustCompile(`([^a-zA-Z0-9])-(.)`)
)

// Sentence boundaries, applied in this order when sentence splitting is on.
var (
	sentenceBoundary             = regexp.MustCompile(` ([.?]) ([A-Z])`)
	sentenceBoundaryOpenQuote    = regexp.MustCompile(` ([.?]) (['"({\[< ]+) ([A-Z])`)
	sentenceBoundaryClosingQuote = regexp.MustCompile(` ([.?]) (['")}\]> ]+) ([A-Z])`)
)

// placeholderShape matches a placeholder prefix followed by its first index digit.
var placeholderShape = regexp.MustCompile(`(?:` + emoticonPlaceholder + `|` + urlPlaceholder + `)[0-9]`)
