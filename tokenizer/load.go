package tokenizer

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// numericOnlyMarker flags a prefix line as NumericOnly.
const numericOnlyMarker = "#NUMERIC_ONLY#"

// maxLineBytes bounds a single line of the prefix list.
const maxLineBytes = 1 << 16 // 64 KiB

// parsePrefixes reads a non-breaking prefix list. Later definitions of the
// same prefix replace earlier ones.
func parsePrefixes(r io.Reader) (map[string]PrefixMode, error) {
	prefixes := make(map[string]PrefixMode, 128) //nolint:mnd

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes) //nolint:mnd
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		if strings.Contains(line, numericOnlyMarker) {
			fields := strings.Fields(strings.ReplaceAll(line, numericOnlyMarker, ""))
			if len(fields) == 0 {
				return nil, errors.Newf("line %d: %s marker without a prefix", lineNo, numericOnlyMarker)
			}
			prefixes[fields[0]] = NumericOnly
			continue
		}

		prefixes[strings.TrimSpace(line)] = Always
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading line %d", lineNo+1)
	}
	return prefixes, nil
}

// parseEmoticons reads a whitespace-separated emoticon list.
func parseEmoticons(r io.Reader) (map[string]struct{}, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading emoticon list")
	}
	return lo.SliceToMap(strings.Fields(string(raw)), func(e string) (string, struct{}) {
		return e, struct{}{}
	}), nil
}
