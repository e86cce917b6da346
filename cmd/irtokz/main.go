// Command irtokz tokenizes Roman-script text, one input line per output line.
//
// With no file arguments it reads stdin and writes stdout:
//
//	echo "Mr. Smith didn't pay." | irtokz
//	irtokz --split-sentences < book.txt > book.tok
//
// With file arguments each file is written to <file>.tok (or into --out-dir),
// several files at a time:
//
//	irtokz --workers 8 --out-dir tok/ corpus/*.txt
//
// Settings may also come from a config file (--config) or IRTOKZ_*
// environment variables; flags take precedence over both.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "irtokz: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "irtokz: building logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("tokenization failed", zap.Error(err))
		os.Exit(1)
	}
}

// newLogger logs to stderr so that stdout stays reserved for tokens.
func newLogger(verbose bool) (*zap.Logger, error) {
	var zc zap.Config
	if verbose {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
		zc.Encoding = "console"
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

// newApp declares the command line. Flag names double as config keys.
func newApp() *kingpin.Application {
	app := kingpin.New("irtokz", "Rule-based tokenizer for Roman-script text.")
	app.HelpFlag.Short('h')
	app.Flag(keyConfig, "config file (yaml, toml or json)").String()
	app.Flag(keySplitSentences, "put each sentence on its own line").Short('s').Bool()
	app.Flag(keyPrefixes, "non-breaking prefix list (default: built-in English list)").String()
	app.Flag(keyEmoticons, "emoticon list (default: built-in list)").String()
	app.Flag(keyNFC, "compose input to Unicode NFC first").Bool()
	app.Flag(keyWorkers, "files tokenized concurrently").Short('j').Int()
	app.Flag(keyOutDir, "directory for .tok files (default: next to each input)").String()
	app.Flag(keyVerbose, "debug logging").Short('v').Bool()
	app.Arg("files", "input files (default: stdin)").Strings()
	return app
}
