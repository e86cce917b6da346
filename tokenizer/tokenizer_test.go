package tokenizer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// testPrefixes is a small prefix list exercising every line form.
const testPrefixes = `# titles
Mr
Dr
  St

#NUMERIC_ONLY# prefixes
No #NUMERIC_ONLY#
pp #NUMERIC_ONLY#
`

const testEmoticons = ":) :-( <3\n;)"

func newTestTokenizer(t *testing.T, splitSentences bool) *Tokenizer {
	t.Helper()
	tok, err := New(splitSentences, strings.NewReader(testPrefixes), strings.NewReader(testEmoticons))
	require.NoError(t, err)
	return tok
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

func TestNewParsesPrefixes(t *testing.T) {
	tok := newTestTokenizer(t, false)

	tests := []struct {
		prefix string
		mode   PrefixMode
		ok     bool
	}{
		{"Mr", Always, true},
		{"Dr", Always, true},
		{"St", Always, true},
		{"No", NumericOnly, true},
		{"pp", NumericOnly, true},
		{"mr", 0, false},
		{"Mr.", 0, false},
		{"# titles", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			mode, ok := tok.Prefix(tt.prefix)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.mode, mode)
		})
	}
	assert.Equal(t, 5, tok.NumPrefixes())
}

func TestNewLastDefinitionWins(t *testing.T) {
	prefixes := "No\nNo #NUMERIC_ONLY#\nMr #NUMERIC_ONLY#\nMr\n"
	tok, err := New(false, strings.NewReader(prefixes), strings.NewReader(""))
	require.NoError(t, err)

	mode, _ := tok.Prefix("No")
	assert.Equal(t, NumericOnly, mode)
	mode, _ = tok.Prefix("Mr")
	assert.Equal(t, Always, mode)
}

func TestNewSkipsCommentedMarker(t *testing.T) {
	tok, err := New(false, strings.NewReader("#NUMERIC_ONLY#\n#NUMERIC_ONLY# No\nMr\n"), strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, 1, tok.NumPrefixes())
	_, ok := tok.Prefix("No")
	assert.False(t, ok)
	_, ok = tok.Prefix("#NUMERIC_ONLY#")
	assert.False(t, ok)
}

func TestNewParsesEmoticons(t *testing.T) {
	tok := newTestTokenizer(t, false)

	for _, e := range []string{":)", ":-(", "<3", ";)"} {
		assert.True(t, tok.IsEmoticon(e), e)
	}
	assert.False(t, tok.IsEmoticon(":("))
	assert.Equal(t, 4, tok.NumEmoticons())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, fmt.Errorf("disk on fire") }

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name      string
		prefixes  func() *strings.Reader
		emoticons func() *strings.Reader
		source    string
	}{
		{"numeric marker without prefix",
			func() *strings.Reader { return strings.NewReader("Mr\n #NUMERIC_ONLY#\n") },
			func() *strings.Reader { return strings.NewReader("") },
			SourcePrefixes},
		{"indented numeric marker without prefix",
			func() *strings.Reader { return strings.NewReader("   #NUMERIC_ONLY#   \n") },
			func() *strings.Reader { return strings.NewReader(":)") },
			SourcePrefixes},
		{"prefix line too long",
			func() *strings.Reader { return strings.NewReader(strings.Repeat("x", maxLineBytes+1)) },
			func() *strings.Reader { return strings.NewReader("") },
			SourcePrefixes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := New(false, tt.prefixes(), tt.emoticons())
			require.Error(t, err)
			assert.Nil(t, tok)
			assert.ErrorIs(t, err, ErrInitialization)

			var initErr *InitializationError
			require.ErrorAs(t, err, &initErr)
			assert.Equal(t, tt.source, initErr.Source)
			assert.Contains(t, err.Error(), tt.source)
		})
	}
}

func TestNewReaderFailures(t *testing.T) {
	_, err := New(false, failingReader{}, strings.NewReader(""))
	require.ErrorIs(t, err, ErrInitialization)
	assert.Contains(t, err.Error(), "disk on fire")

	_, err = New(false, strings.NewReader("Mr"), failingReader{})
	var initErr *InitializationError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, SourceEmoticons, initErr.Source)

	_, err = New(false, nil, strings.NewReader(""))
	require.ErrorIs(t, err, ErrInitialization)
	_, err = New(false, strings.NewReader(""), nil)
	require.ErrorIs(t, err, ErrInitialization)
}

func TestNewLogsTableSizes(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	_, err := New(true, strings.NewReader(testPrefixes), strings.NewReader(testEmoticons),
		WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("tokenizer initialized").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 5, fields["prefixes"])
	assert.EqualValues(t, 4, fields["emoticons"])
	assert.Equal(t, true, fields["splitSentences"])
}

func TestDefault(t *testing.T) {
	tok, err := Default(false)
	require.NoError(t, err)

	mode, ok := tok.Prefix("Mr")
	assert.True(t, ok)
	assert.Equal(t, Always, mode)
	mode, ok = tok.Prefix("No")
	assert.True(t, ok)
	assert.Equal(t, NumericOnly, mode)
	assert.True(t, tok.IsEmoticon(":)"))
	assert.Greater(t, tok.NumPrefixes(), 50)

	assert.NotPanics(t, func() { MustDefault(true) })
}

func TestWithSplitSentences(t *testing.T) {
	tok := newTestTokenizer(t, false)
	split := tok.WithSplitSentences(true)

	assert.False(t, tok.SplitSentences())
	assert.True(t, split.SplitSentences())
	assert.Same(t, tok, tok.WithSplitSentences(false))
	assert.Same(t, split, split.WithSplitSentences(true))

	in := "He left. She stayed."
	assert.Equal(t, "He left . She stayed .", tok.Tokenize(in))
	assert.Equal(t, "He left .\nShe stayed .", split.Tokenize(in))
}

func TestPrefixModeString(t *testing.T) {
	assert.Equal(t, "Always", Always.String())
	assert.Equal(t, "NumericOnly", NumericOnly.String())
	assert.Equal(t, "PrefixMode(7)", PrefixMode(7).String())
}

// ---------------------------------------------------------------------------
// Tokenize
// ---------------------------------------------------------------------------

func TestTokenize(t *testing.T) {
	tok := newTestTokenizer(t, false)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		// -- Empty and whitespace --

		{"empty", "", ""},
		{"spaces only", "   ", ""},
		{"newlines collapse", "one\n\ntwo\tthree", "one two three"},
		{"control chars deleted", "Hello\x00 wor\x01ld", "Hello world"},

		// -- Non-breaking prefixes --

		{"always prefix", "Mr. Smith", "Mr. Smith"},
		{"digit period", "3.", "3 ."},
		{"digit period mid text", "Chapter 3. Then", "Chapter 3 . Then"},
		{"lowercase next keeps period", "end. and more", "end. and more"},
		{"capital next splits period", "end. Next", "end . Next"},
		{"last token splits period", "the end.", "the end ."},
		{"digit next keeps period", "end. 5", "end. 5"},
		{"numeric only before digit", "No. 5", "No. 5"},
		{"numeric only before word", "No. Five", "No . Five"},
		{"numeric only at end", "Say No.", "Say No ."},
		{"dotted initials", "U.S.A. is big.", "U.S.A. is big ."},
		{"dotted digits split", "1.2. Next", "1.2 . Next"},
		{"prefix is case sensitive", "MR. Smith", "MR . Smith"},
		{"trimmed prefix line", "St. Louis", "St. Louis"},
		{"lone period", ".", "."},

		// -- Dots --

		{"ellipsis", "Wait... really", "Wait ... really"},
		{"two dots", "okay..", "okay .."},
		{"four dots", "Hmm.... okay", "Hmm .... okay"},
		{"leading ellipsis", "...and so on", "... and so on"},
		{"leading decimal kept", ".5 is half", ".5 is half"},
		{"decimal kept", "pi is 3.14 or so", "pi is 3.14 or so"},

		// -- Commas --

		{"thousands separator", "$1,000,000", "$ 1,000,000"},
		{"comma after word", "yes, no", "yes , no"},
		{"comma between words", "a,b", "a , b"},
		{"comma after digit", "5, then", "5 , then"},
		{"comma between digits", "3,5", "3,5"},
		{"comma after space", "then ,5", "then , 5"},

		// -- Apostrophes --

		{"contraction", "don't", "don 't"},
		{"possessive", "John's car", "John 's car"},
		{"decade", "the 90's", "the 90 's"},
		{"digit before letters", "rock'n 3'b", "rock 'n 3'b"},
		{"quoted letter", "rock 'n' roll", "rock 'n' roll"},
		{"leading apostrophe", "'tis fine", "'tis fine"},
		{"trailing apostrophe", "the dogs' bowls", "the dogs' bowls"},
		{"free apostrophe", "rock ' roll", "rock ' roll"},
		{"doubled apostrophe", "''", "' '"},
		{"curly apostrophe", "don’t", "don 't"},
		{"accented letters", "café's", "café 's"},

		// -- Hyphens --

		{"numeric range", "5-10 runs", "5 - 10 runs"},
		{"year range", "1990-2000", "1990 - 2000"},
		{"score", "3-2-1", "3 - 2 - 1"},
		{"word hyphen kept", "well-known", "well-known"},
		{"double hyphen", "a--b", "a - - b"},
		{"dash between spaces", "yes -- no", "yes - - no"},
		{"negative number", "-5", "- 5"},
		{"unicode hyphen normalized", "a‐b", "a-b"},

		// -- Symbols --

		{"ascii symbols", "a@b#c", "a @ b # c"},
		{"question mark", "Why? Because", "Why ? Because"},
		{"curly quotes", "“hello”", "\" hello \""},
		{"latin1 symbol", "©2020", "© 2020"},
		{"currency", "€5", "€ 5"},
		{"fraction", "½ cup", "½ cup"},
		{"subscript", "H₂O", "H ₂ O"},
		{"math operator", "x≤y", "x ≤ y"},
		{"minus sign kept", "x−y", "x−y"},
		{"ellipsis char", "left…", "left …"},

		// -- Masking --

		{"emoticon", "check :) now", "check :) now"},
		{"emoticon with punctuation", "fine :-( .", "fine :-( ."},
		{"emoticon not in list", "sad :(", "sad : ("},
		{"http url", "see http://x.com/a-b?q=1 now", "see http://x.com/a-b?q=1 now"},
		{"www url", "see www.x.com. Next", "see www.x.com. Next"},
		{"https not masked", "https://x.com", "https : / / x.com"},
		{"placeholder lookalike", "eMoTiCoN0 :)", "eMoTiCoN0 :)"},
		{"placeholder lookalike with period", "sItEuRl1. Next", "sItEuRl1. Next"},
		{"placeholder prefix without index", "xeMoTiCoNy. Next", "xeMoTiCoNy . Next"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tok.Tokenize(tt.input), "Tokenize(%q)", tt.input)
		})
	}
}

func TestTokenizeSplitSentences(t *testing.T) {
	tok := newTestTokenizer(t, true)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"two sentences", "He left. She stayed.", "He left .\nShe stayed ."},
		{"question", "Why? Because.", "Why ?\nBecause ."},
		{"abbreviation no break", "Mr. Smith left.", "Mr. Smith left ."},
		{"lowercase no break", "end. and more", "end. and more"},
		{"closing quote stays", "He said \"Go.\" Then left.", "He said \" Go .\n\" Then left ."},
		{"closing bracket stays", "(See below.) Then", "( See below . )\nThen"},
		{"exclamation no break", "Stop! Now.", "Stop ! Now ."},
		{"emoticon before capital", "I love it :-( . Really", "I love it :-( .\nReally"},
		{"single sentence", "Hello world.", "Hello world ."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tok.Tokenize(tt.input))
		})
	}
}

func TestTokenizeNFC(t *testing.T) {
	in := "the cafe\u0301' menu"

	plain, err := Default(false)
	require.NoError(t, err)
	composed, err := Default(false, WithNFC(true))
	require.NoError(t, err)

	assert.Equal(t, "the cafe\u0301 ' menu", plain.Tokenize(in))
	assert.Equal(t, "the caf\u00e9' menu", composed.Tokenize(in))
}

func TestTokens(t *testing.T) {
	tok := newTestTokenizer(t, true)

	assert.Nil(t, tok.Tokens(""))
	assert.Nil(t, tok.Tokens(" \t "))
	assert.Equal(t, []string{"I", "don", "'t", "know", ",", "Mr.", "Smith", "."},
		tok.Tokens("I don't know, Mr. Smith."))
	assert.Equal(t, []string{"He", "left", ".", "She", "stayed", "."},
		tok.Tokens("He left. She stayed."))
}

func TestSentences(t *testing.T) {
	tok := newTestTokenizer(t, false)

	assert.Nil(t, tok.Sentences(""))
	assert.Nil(t, tok.Sentences("   "))
	assert.Equal(t, []string{"He left .", "She stayed ."}, tok.Sentences("He left. She stayed."))
	assert.Equal(t, []string{"Mr. Smith left ."}, tok.Sentences("Mr. Smith left."))
	assert.False(t, tok.SplitSentences(), "Sentences must not change the receiver")
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

const benchText = "Mr. Smith didn't pay $1,000,000 for the 90's house... " +
	"He said “no” :) see http://x.com/a-b. No. 5 is 5-10 km. "

func BenchmarkTokenize(b *testing.B) {
	tok := MustDefault(false)
	input := strings.Repeat(benchText, 100)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for b.Loop() {
		tok.Tokenize(input)
	}
}

func BenchmarkTokenizeSplitSentences(b *testing.B) {
	tok := MustDefault(true)
	input := strings.Repeat(benchText, 100)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for b.Loop() {
		tok.Tokenize(input)
	}
}

// ---------------------------------------------------------------------------
// Examples
// ---------------------------------------------------------------------------

func ExampleTokenizer_Tokenize() {
	tok := MustDefault(false)
	fmt.Println(tok.Tokenize("I don't know, Mr. Smith... it's 5-10 km."))
	// Output:
	// I don 't know , Mr. Smith ... it 's 5 - 10 km .
}

func ExampleTokenizer_Sentences() {
	tok := MustDefault(false)
	for _, s := range tok.Sentences("He left. She stayed. No. 5 won.") {
		fmt.Println(s)
	}
	// Output:
	// He left .
	// She stayed .
	// No. 5 won .
}
