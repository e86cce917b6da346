// Package tokenizer splits Roman-script text into whitespace-separated tokens
// (words, punctuation, numbers, contractions) and optionally into sentences.
//
// Tokenization is a fixed, ordered pipeline of pattern substitutions:
//
//   - Emoticons and URLs are masked with placeholders.
//   - Look-alike Unicode punctuation is normalized to ASCII.
//   - Punctuation and symbol characters are spaced out.
//   - Ellipses are encoded, commas outside numbers are split off.
//   - Apostrophes and hyphens are split according to their context.
//   - A trailing period is split off unless a non-breaking prefix table or
//     the following token says it belongs to an abbreviation or number.
//   - Ellipses and masked tokens are restored.
//   - In sentence mode, line breaks are inserted at sentence boundaries.
//
// A Tokenizer is immutable after construction. All methods are safe for
// concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Only http:// and www. URLs are masked; https:// links are tokenized.
//   - Hyphens between two letters are kept (state-of-the-art stays one token).
//   - Input words containing the internal marker "DOT...MULTI" are decoded
//     as ellipses.
//   - Input words containing a placeholder name followed by a digit, such as
//     "eMoTiCoN0", are passed through unchanged like URLs.
package tokenizer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/avineshpvs/indic-tokenizer/data"
	"github.com/avineshpvs/indic-tokenizer/internal/textnorm"
)

// PrefixMode tells how a non-breaking prefix protects its trailing period.
type PrefixMode int

const (
	Always      PrefixMode = iota + 1 // period never split off
	NumericOnly                       // period kept only before a token starting with a digit
)

// String returns the name of the prefix mode.
func (m PrefixMode) String() string {
	switch m {
	case Always:
		return "Always"
	case NumericOnly:
		return "NumericOnly"
	default:
		return fmt.Sprintf("PrefixMode(%d)", int(m))
	}
}

// Tokenizer holds the read-only tables used by Tokenize.
type Tokenizer struct {
	splitSentences bool
	nfc            bool
	prefixes       map[string]PrefixMode
	emoticons      map[string]struct{}
	logger         *zap.Logger
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithLogger sets the logger used while loading data. Tokenize never logs.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tokenizer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithNFC composes input to Unicode NFC before tokenizing, so that
// decomposed accented letters are treated as letters.
func WithNFC(enabled bool) Option {
	return func(t *Tokenizer) {
		t.nfc = enabled
	}
}

// New builds a Tokenizer from a non-breaking prefix list and an emoticon list.
//
// The prefix list is read line by line: blank lines and lines starting with
// '#' are skipped, a line containing "#NUMERIC_ONLY#" maps its first field to
// NumericOnly, any other line is trimmed and mapped to Always. The emoticon
// list is a whitespace-separated list of literal tokens.
//
// Read or parse failures are reported as *InitializationError.
func New(splitSentences bool, prefixes, emoticons io.Reader, opts ...Option) (*Tokenizer, error) {
	t := &Tokenizer{
		splitSentences: splitSentences,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	if prefixes == nil {
		return nil, newInitializationError(SourcePrefixes, errors.New("nil reader"))
	}
	if emoticons == nil {
		return nil, newInitializationError(SourceEmoticons, errors.New("nil reader"))
	}

	var err error
	t.prefixes, err = parsePrefixes(prefixes)
	if err != nil {
		return nil, newInitializationError(SourcePrefixes, err)
	}
	t.emoticons, err = parseEmoticons(emoticons)
	if err != nil {
		return nil, newInitializationError(SourceEmoticons, err)
	}

	t.logger.Debug("tokenizer initialized",
		zap.Int("prefixes", len(t.prefixes)),
		zap.Int("emoticons", len(t.emoticons)),
		zap.Bool("splitSentences", splitSentences),
		zap.Bool("nfc", t.nfc))
	return t, nil
}

// Default builds a Tokenizer from the embedded English prefix list and
// emoticon list.
func Default(splitSentences bool, opts ...Option) (*Tokenizer, error) {
	return New(splitSentences,
		bytes.NewReader(data.NonbreakingPrefixes),
		bytes.NewReader(data.Emoticons),
		opts...)
}

// MustDefault is like Default but panics if the embedded data cannot be parsed.
func MustDefault(splitSentences bool) *Tokenizer {
	t, err := Default(splitSentences)
	if err != nil {
		panic(err)
	}
	return t
}

// WithSplitSentences returns a Tokenizer sharing t's tables with sentence
// splitting set to enabled. t itself is not modified.
func (t *Tokenizer) WithSplitSentences(enabled bool) *Tokenizer {
	if t.splitSentences == enabled {
		return t
	}
	c := *t
	c.splitSentences = enabled
	return &c
}

// SplitSentences reports whether Tokenize inserts line breaks between sentences.
func (t *Tokenizer) SplitSentences() bool { return t.splitSentences }

// Prefix returns the mode of a non-breaking prefix. Lookups are case-sensitive
// and p must not include the trailing period.
func (t *Tokenizer) Prefix(p string) (PrefixMode, bool) {
	m, ok := t.prefixes[p]
	return m, ok
}

// IsEmoticon reports whether s is a known emoticon.
func (t *Tokenizer) IsEmoticon(s string) bool {
	_, ok := t.emoticons[s]
	return ok
}

// NumPrefixes returns the number of non-breaking prefixes.
func (t *Tokenizer) NumPrefixes() int { return len(t.prefixes) }

// NumEmoticons returns the number of known emoticons.
func (t *Tokenizer) NumEmoticons() int { return len(t.emoticons) }

// Tokenize returns text with tokens separated by single spaces. When sentence
// splitting is enabled, sentences are separated by '\n'.
// Tokenize never fails; text without any matching rule is only re-spaced.
func (t *Tokenizer) Tokenize(text string) string {
	if t.nfc {
		text = textnorm.ComposeNFC(text)
	}

	text, masks := t.mask(text)
	text = normalizePunct(text)
	text = separateSymbols(text)
	text = encodeMultiDots(text)
	text = splitCommas(text)
	text = splitApostrophes(text)
	text = splitLeadingDots(text)
	text = splitHyphens(text)
	text = t.resolvePrefixes(text)
	text = decodeMultiDots(text)
	text = masks.unmask(text)

	if t.splitSentences {
		text = splitSentenceBoundaries(text)
	}
	return text
}

// Tokens returns the tokens of text as a slice.
// Returns nil if text contains no tokens.
func (t *Tokenizer) Tokens(text string) []string {
	fields := strings.Fields(t.Tokenize(text))
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Sentences tokenizes text with sentence splitting enabled, regardless of the
// Tokenizer's mode, and returns one tokenized sentence per element.
func (t *Tokenizer) Sentences(text string) []string {
	out := t.WithSplitSentences(true).Tokenize(text)
	if out == "" {
		return nil
	}

	var sentences []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			sentences = append(sentences, line)
		}
	}
	return sentences
}
