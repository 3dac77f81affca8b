package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/typetools/glyphsift"
	"github.com/typetools/glyphsift/filter"
	"github.com/typetools/glyphsift/vocab"
)

var (
	flagGlyphs string
	flagSeed   int64
	flagVocab  string
	flagData   string
	flagMeta   string
	flagRaise  bool
)

var rootCmd = &cobra.Command{
	Use:   "glyphsift",
	Short: "Generate glyph-constrained proofing text for typefaces",
	Long: `glyphsift generates proofing text limited to a chosen glyph set, for
evaluating typefaces that do not yet have a full character complement.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagGlyphs, "glyphs", "g", "", "available glyphs (empty = unconstrained)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = fixed default stream)")
	pf.StringVar(&flagVocab, "vocab", "", "vocabulary name (default: built-in English)")
	pf.StringVar(&flagData, "vocab-data", "", "path to a vocabulary TSV or word list")
	pf.StringVar(&flagMeta, "vocab-meta", "", "path to the vocabulary YAML metadata sidecar")
	pf.BoolVar(&flagRaise, "raise-errors", false, "fail on no-match instead of shortening output")

	rootCmd.AddCommand(wordsCmd, sentCmd, textCmd, vocabsCmd)
}

// newGenerator builds a Generator from environment config overridden by
// flags. A custom vocabulary file replaces the built-in English one.
func newGenerator(cmd *cobra.Command) (*glyphsift.Generator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	glyphSet := cfg.Glyphs
	if cmd.Flags().Changed("glyphs") {
		glyphSet = flagGlyphs
	}
	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed = flagSeed
	}
	dataPath, metaPath := cfg.VocabData, cfg.VocabMeta
	if cmd.Flags().Changed("vocab-data") {
		dataPath, metaPath = flagData, flagMeta
	}
	raise := cfg.RaiseErrors || flagRaise

	opts := []glyphsift.Option{
		glyphsift.WithGlyphs(glyphSet),
		glyphsift.WithSeed(seed),
		glyphsift.WithLogger(newLogger(cfg.LogLevel)),
	}
	if raise {
		opts = append(opts, glyphsift.WithRaiseErrors())
	}

	if dataPath != "" {
		if metaPath == "" {
			return nil, fmt.Errorf("--vocab-meta is required with --vocab-data")
		}
		v, err := vocab.LoadFile(dataPath, metaPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, glyphsift.WithVocab(v.Lang(), v))
	}

	return glyphsift.New(opts...), nil
}

// parseCaseFlag converts the --case flag, defaulting to the cascade mode.
func parseCaseFlag(s string) (filter.Case, error) {
	if s == "" {
		return filter.CaseAny, nil
	}

	return filter.ParseCase(s)
}

func printErr(err error) {
	fmt.Fprintf(os.Stderr, "glyphsift: %v\n", err)
}
