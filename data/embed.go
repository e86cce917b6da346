// Package data embeds the default tokenizer data files.
package data

import _ "embed"

// NonbreakingPrefixes is the English non-breaking prefix list.
// One prefix per line; '#' starts a comment line; "#NUMERIC_ONLY#" marks
// prefixes that only keep their period before a number.
//
//go:embed nonbreaking_prefixes.en
var NonbreakingPrefixes []byte

// Emoticons is a whitespace-separated list of emoticons.
//
//go:embed emoticons.txt
var Emoticons []byte
