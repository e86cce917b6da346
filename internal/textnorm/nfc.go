// Package textnorm composes text to Unicode NFC before tokenization.
//
// The tokenizer classifies letters by code point (U+0080..U+024F for
// accented Latin letters). A decomposed letter such as "e" + U+0301 falls
// outside that range, so the combining mark would be treated as a non-letter.
// Composing first gives decomposed and precomposed input the same tokens.
//
// All functions are safe for concurrent use.
package textnorm

import "golang.org/x/text/unicode/norm"

// ComposeNFC returns s in Unicode Normalization Form C.
// Strings that are already NFC are returned unchanged without copying.
func ComposeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
