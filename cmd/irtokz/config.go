package main

import (
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	keyConfig         = "config"
	keySplitSentences = "split-sentences"
	keyPrefixes       = "prefixes"
	keyEmoticons      = "emoticons"
	keyNFC            = "nfc"
	keyWorkers        = "workers"
	keyOutDir         = "out-dir"
	keyVerbose        = "verbose"

	envPrefix = "IRTOKZ"
)

type config struct {
	SplitSentences bool
	Prefixes       string
	Emoticons      string
	NFC            bool
	Workers        int
	OutDir         string
	Verbose        bool
	Files          []string
}

// loadConfig merges defaults, the config file, IRTOKZ_* environment
// variables and command-line flags, in increasing order of precedence.
// Only flags given on the command line override the other sources.
func loadConfig(args []string) (*config, error) {
	app := newApp()
	// Parse handles --help and reports unknown flags; the context below
	// tells which flags were actually given.
	if _, err := app.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parsing arguments")
	}
	pc, err := app.ParseContext(args)
	if err != nil {
		return nil, errors.Wrap(err, "parsing arguments")
	}

	v := viper.New()
	v.SetDefault(keySplitSentences, false)
	v.SetDefault(keyNFC, false)
	v.SetDefault(keyWorkers, runtime.GOMAXPROCS(0))
	v.SetDefault(keyVerbose, false)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var files []string
	for _, el := range pc.Elements {
		if el.Value == nil {
			continue
		}
		switch clause := el.Clause.(type) {
		case *kingpin.FlagClause:
			v.Set(clause.Model().Name, *el.Value)
		case *kingpin.ArgClause:
			files = append(files, *el.Value)
		}
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	cfg := &config{
		SplitSentences: v.GetBool(keySplitSentences),
		Prefixes:       v.GetString(keyPrefixes),
		Emoticons:      v.GetString(keyEmoticons),
		NFC:            v.GetBool(keyNFC),
		Workers:        v.GetInt(keyWorkers),
		OutDir:         v.GetString(keyOutDir),
		Verbose:        v.GetBool(keyVerbose),
		Files:          lo.Uniq(lo.Compact(files)),
	}
	if cfg.Workers < 1 {
		return nil, errors.Newf("--%s must be at least 1, got %d", keyWorkers, cfg.Workers)
	}
	return cfg, nil
}
