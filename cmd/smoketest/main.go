// Command smoketest runs the tokenizer over every .txt file below a
// directory and checks invariants that must hold for any input:
//
//   - no characters are lost or invented (whitespace, control characters
//     and the curly quotes and hyphens that are folded to ASCII aside)
//   - sentence splitting only inserts line breaks
//
// Usage:
//
//	go run ./cmd/smoketest <directory>
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/avineshpvs/indic-tokenizer/tokenizer"
)

const (
	maxWorkers     = 4
	expectedArgs   = 2
	maxLineBytes   = 16 << 20
	bytesToMBShift = 20
	outlierFactor  = 3
)

type fileRatio struct {
	path      string
	sentences int
	lines     int
	ratio     float64
}

type Stats struct {
	mu               sync.Mutex
	filesScanned     int
	totalBytes       int64
	totalLines       int
	totalTokens      int
	reconOK          int
	reconFail        int
	splitOK          int
	splitFail        int
	sentenceOutliers int
	fileRatios       []fileRatio
}

type fileState struct {
	path        string
	totalBytes  int64
	lines       int
	tokens      int
	sentences   int
	reconFailed bool
	splitFailed bool
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	dirPath := os.Args[1]
	filePaths, err := collectFiles(dirPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	plain := tokenizer.MustDefault(false)
	split := plain.WithSplitSentences(true)
	stats := &Stats{}

	var g errgroup.Group
	g.SetLimit(maxWorkers)
	for _, path := range filePaths {
		g.Go(func() error {
			state, err := processFile(path, plain, split)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
				return nil
			}
			mergeFileState(state, stats)
			return nil
		})
	}
	_ = g.Wait()

	flagSentenceOutliers(stats)

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)

	if stats.reconFail > 0 || stats.splitFail > 0 {
		os.Exit(1)
	}
}

func collectFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	return paths, err
}

func processFile(path string, plain, split *tokenizer.Tokenizer) (*fileState, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	fileStart := time.Now()
	state := &fileState{path: path}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		state.processLine(sc.Text(), plain, split)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (%d MB processed)\n",
		filepath.Base(path), time.Since(fileStart).Round(time.Millisecond), state.totalBytes>>bytesToMBShift)
	return state, nil
}

func (fs *fileState) processLine(line string, plain, split *tokenizer.Tokenizer) {
	fs.totalBytes += int64(len(line)) + 1
	fs.lines++

	out := plain.Tokenize(line)
	tokens := strings.Fields(out)
	fs.tokens += len(tokens)

	if !fs.reconFailed {
		want, got := squash(line), squash(out)
		if got != want {
			fs.reconFailed = true
			logDivergence("RECON_FAIL", fs.path, fs.lines, want, got)
		}
	}

	splitOut := split.Tokenize(line)
	fs.sentences += len(nonEmptyLines(splitOut))
	if !fs.splitFailed {
		if got := strings.Join(strings.Fields(splitOut), " "); got != out {
			fs.splitFailed = true
			logDivergence("SPLIT_FAIL", fs.path, fs.lines, out, got)
		}
	}
}

// squash drops whitespace and control characters and folds the
// punctuation the tokenizer maps to ASCII.
func squash(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < 0x20 || unicode.IsSpace(r):
		case r == '\u2010' || r == '\u2043':
			b.WriteByte('-')
		case r == '\u2018' || r == '\u2019':
			b.WriteByte('\'')
		case r == '\u201c' || r == '\u201d':
			b.WriteByte('"')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func nonEmptyLines(s string) []string {
	var lines []string
	for line := range strings.SplitSeq(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.totalBytes
	stats.totalLines += fs.lines
	stats.totalTokens += fs.tokens

	if fs.reconFailed {
		stats.reconFail++
	} else {
		stats.reconOK++
	}
	if fs.splitFailed {
		stats.splitFail++
	} else {
		stats.splitOK++
	}

	ratio := 0.0
	if fs.lines > 0 {
		ratio = float64(fs.sentences) / float64(fs.lines)
	}
	stats.fileRatios = append(stats.fileRatios, fileRatio{
		path:      fs.path,
		sentences: fs.sentences,
		lines:     fs.lines,
		ratio:     ratio,
	})
}

func logDivergence(kind, path string, line int, want, got string) {
	pos, g, w := firstDivergence(want, got)
	fmt.Fprintf(os.Stderr, "%s: %s:%d: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
		kind, path, line, pos, g, w)
}

// flagSentenceOutliers computes the median sentences-per-line ratio across
// all files and flags any file whose ratio exceeds 3x the median.
func flagSentenceOutliers(stats *Stats) {
	if len(stats.fileRatios) == 0 {
		return
	}

	ratios := make([]float64, len(stats.fileRatios))
	for i, fr := range stats.fileRatios {
		ratios[i] = fr.ratio
	}
	med := computeMedian(ratios)

	for _, fr := range stats.fileRatios {
		if med > 0 && fr.ratio > outlierFactor*med {
			stats.sentenceOutliers++
			fmt.Fprintf(os.Stderr, "SENTENCE_OUTLIER: %s: %d sentences / %d lines (ratio %.2f, median %.2f)\n",
				fr.path, fr.sentences, fr.lines, fr.ratio, med)
		}
	}
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func computeMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2 //nolint:mnd // arithmetic mean of two middle values
	}
	return sorted[mid]
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Total lines:             %d\n", stats.totalLines)
	fmt.Printf("Total tokens:            %d\n", stats.totalTokens)
	fmt.Printf("Reconstruction OK:       %d\n", stats.reconOK)
	fmt.Printf("Reconstruction FAIL:     %d\n", stats.reconFail)
	fmt.Printf("Sentence split OK:       %d\n", stats.splitOK)
	fmt.Printf("Sentence split FAIL:     %d\n", stats.splitFail)
	fmt.Printf("Sentence outliers:       %d\n", stats.sentenceOutliers)

	if stats.totalLines > 0 {
		fmt.Printf("Tokens per line:         %.1f\n", float64(stats.totalTokens)/float64(stats.totalLines))
	}
}
