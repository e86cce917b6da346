package tokenizer

import (
	"strconv"
	"strings"
)

// Placeholder prefixes. A placeholder is a prefix followed by a decimal index.
// They contain only ASCII letters and digits, which no pipeline stage splits.
const (
	emoticonPlaceholder = "eMoTiCoN"
	urlPlaceholder      = "sItEuRl"
)

// maskTable records the original text behind each placeholder of one
// Tokenize call.
type maskTable struct {
	emoticons []string
	urls      []string
}

// mask replaces emoticon and URL tokens with placeholders. Tokens are
// rejoined with single spaces and the result is padded with one space on
// each side.
//
// Tokens that already contain a placeholder prefix followed by a digit (once
// control characters, which a later stage deletes, are dropped) are masked
// like URLs, so that input text can never be mistaken for a placeholder.
func (t *Tokenizer) mask(text string) (string, maskTable) {
	var m maskTable
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		switch {
		case t.IsEmoticon(tok):
			tokens[i] = emoticonPlaceholder + strconv.Itoa(len(m.emoticons))
			m.emoticons = append(m.emoticons, tok)
		case isURL(tok) || hasPlaceholder(tok):
			tokens[i] = urlPlaceholder + strconv.Itoa(len(m.urls))
			m.urls = append(m.urls, tok)
		}
	}
	return " " + strings.Join(tokens, " ") + " ", m
}

// unmask replaces placeholders with the text recorded in m. Tokens that do
// not name a recorded placeholder are kept as they are. Tokens are rejoined
// with single spaces.
func (m maskTable) unmask(text string) string {
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		if orig, ok := lookupPlaceholder(tok, emoticonPlaceholder, m.emoticons); ok {
			tokens[i] = orig
		} else if orig, ok := lookupPlaceholder(tok, urlPlaceholder, m.urls); ok {
			tokens[i] = orig
		}
	}
	return strings.Join(tokens, " ")
}

// lookupPlaceholder parses tok as prefix+index and returns originals[index].
func lookupPlaceholder(tok, prefix string, originals []string) (string, bool) {
	digits, ok := strings.CutPrefix(tok, prefix)
	if !ok || !isASCIIDigits(digits) {
		return "", false
	}
	idx, err := strconv.Atoi(digits)
	if err != nil || idx >= len(originals) {
		return "", false
	}
	return originals[idx], true
}

func isURL(tok string) bool {
	return strings.HasPrefix(tok, "http://") || strings.HasPrefix(tok, "www.")
}

// hasPlaceholder reports whether tok contains a placeholder prefix followed
// by a digit, once control characters are dropped.
func hasPlaceholder(tok string) bool {
	if strings.ContainsFunc(tok, func(r rune) bool { return r < 0x20 }) {
		tok = controlChars.ReplaceAllString(tok, "")
	}
	return placeholderShape.MatchString(tok)
}

func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
