package main

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avineshpvs/indic-tokenizer/data"
	"github.com/avineshpvs/indic-tokenizer/tokenizer"
)

const (
	maxLineBytes = 16 << 20
	tokSuffix    = ".tok"
)

func run(ctx context.Context, cfg *config, logger *zap.Logger) error {
	tok, err := buildTokenizer(cfg, logger)
	if err != nil {
		return err
	}

	if len(cfg.Files) == 0 {
		lines, err := process(ctx, os.Stdin, os.Stdout, tok)
		logger.Debug("stdin done", zap.Int("lines", lines))
		return err
	}
	return processFiles(ctx, cfg, tok, logger)
}

// buildTokenizer loads the prefix and emoticon lists named in cfg and falls
// back to the embedded lists for the ones that are not set.
func buildTokenizer(cfg *config, logger *zap.Logger) (*tokenizer.Tokenizer, error) {
	prefixes, err := openOrEmbedded(cfg.Prefixes, data.NonbreakingPrefixes)
	if err != nil {
		return nil, err
	}
	defer prefixes.Close()

	emoticons, err := openOrEmbedded(cfg.Emoticons, data.Emoticons)
	if err != nil {
		return nil, err
	}
	defer emoticons.Close()

	return tokenizer.New(cfg.SplitSentences, prefixes, emoticons,
		tokenizer.WithLogger(logger),
		tokenizer.WithNFC(cfg.NFC),
	)
}

func openOrEmbedded(path string, embedded []byte) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(bytes.NewReader(embedded)), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	return f, nil
}

// processFiles tokenizes every input file into its .tok counterpart,
// cfg.Workers files at a time. The first failure cancels the rest.
func processFiles(ctx context.Context, cfg *config, tok *tokenizer.Tokenizer, logger *zap.Logger) error {
	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return errors.Wrapf(err, "creating output directory %s", cfg.OutDir)
		}
	}

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for _, in := range cfg.Files {
		out := outputPath(in, cfg.OutDir)
		g.Go(func() error {
			lines, err := processFile(ctx, in, out, tok)
			if err != nil {
				return err
			}
			logger.Info("tokenized", zap.String("input", in), zap.String("output", out), zap.Int("lines", lines))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("done",
		zap.Int("files", len(cfg.Files)),
		zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)),
	)
	return nil
}

// outputPath is in+".tok", placed in outDir when one is given.
func outputPath(in, outDir string) string {
	if outDir == "" {
		return in + tokSuffix
	}
	return filepath.Join(outDir, filepath.Base(in)+tokSuffix)
}

func processFile(ctx context.Context, in, out string, tok *tokenizer.Tokenizer) (n int, err error) {
	src, err := os.Open(in)
	if err != nil {
		return 0, errors.Wrapf(err, "opening %s", in)
	}
	defer src.Close()

	dst, err := os.Create(out)
	if err != nil {
		return 0, errors.Wrapf(err, "creating %s", out)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing %s", out)
		}
	}()

	n, err = process(ctx, src, dst, tok)
	if err != nil {
		return n, errors.Wrapf(err, "tokenizing %s", in)
	}
	return n, nil
}

// process tokenizes r line by line and writes one output line per input
// line. In sentence-splitting mode an input line may yield several output
// lines. It returns the number of input lines read.
func process(ctx context.Context, r io.Reader, w io.Writer, tok *tokenizer.Tokenizer) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	bw := bufio.NewWriter(w)

	n := 0
	for sc.Scan() {
		if n%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return n, err
			}
		}
		n++
		if _, err := bw.WriteString(tok.Tokenize(sc.Text())); err != nil {
			return n, errors.Wrap(err, "writing output")
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, errors.Wrap(err, "writing output")
		}
	}
	if err := sc.Err(); err != nil {
		return n, errors.Wrapf(err, "reading line %d", n+1)
	}
	if err := bw.Flush(); err != nil {
		return n, errors.Wrap(err, "writing output")
	}
	return n, nil
}
