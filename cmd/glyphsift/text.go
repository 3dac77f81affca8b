package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typetools/glyphsift"
)

var (
	sentCase       string
	sentRandomness float64
	sentPunctRnd   float64
	sentNoPunct    bool
	sentNumberProb float64

	textParas      int
	textSents      int
	textWords      int
	textCase       string
	textRandomness float64
	textPunctRnd   float64
)

var sentCmd = &cobra.Command{
	Use:   "sent",
	Short: "Generate one punctuated sentence",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newGenerator(cmd)
		if err != nil {
			printErr(err)
			return err
		}
		caseMode, err := parseCaseFlag(sentCase)
		if err != nil {
			printErr(err)
			return err
		}

		opts := glyphsift.DefaultSentenceOptions()
		opts.Words.Word.Vocab = flagVocab
		opts.Words.Word.Case = caseMode
		opts.Words.Word.Randomness = sentRandomness
		opts.Words.NumberProb = sentNumberProb
		opts.NoPunct = sentNoPunct
		opts.PunctRandomness = sentPunctRnd

		s, err := gen.Sentence(opts)
		if err != nil {
			printErr(err)
			return err
		}

		fmt.Println(s)
		return nil
	},
}

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Generate a multi-paragraph text block",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newGenerator(cmd)
		if err != nil {
			printErr(err)
			return err
		}
		caseMode, err := parseCaseFlag(textCase)
		if err != nil {
			printErr(err)
			return err
		}

		opts := glyphsift.DefaultTextOptions()
		opts.Paragraphs.N = textParas
		opts.Paragraphs.Paragraph.Sentences.N = textSents
		sent := &opts.Paragraphs.Paragraph.Sentences.Sentence
		sent.Words.N = textWords
		sent.Words.Word.Vocab = flagVocab
		sent.Words.Word.Case = caseMode
		sent.Words.Word.Randomness = textRandomness
		sent.PunctRandomness = textPunctRnd

		s, err := gen.Text(opts)
		if err != nil {
			printErr(err)
			return err
		}

		fmt.Println(s)
		return nil
	},
}

func init() {
	sf := sentCmd.Flags()
	sf.StringVar(&sentCase, "case", "", "case mode (see 'words --help')")
	sf.Float64Var(&sentRandomness, "rnd", 0, "word randomness 0-1")
	sf.Float64Var(&sentPunctRnd, "rnd-punc", 0, "punctuation randomness 0-1")
	sf.Float64Var(&sentNumberProb, "numbers", 0, "probability 0-1 of a numeral token per position")
	sf.BoolVar(&sentNoPunct, "no-punc", false, "space-join words without punctuation")

	tf := textCmd.Flags()
	tf.IntVar(&textParas, "paras", 0, "paragraph count (0 = default 3)")
	tf.IntVar(&textSents, "sents", 0, "sentences per paragraph (0 = random 4-7)")
	tf.IntVar(&textWords, "words", 0, "words per sentence (0 = random 10-20)")
	tf.StringVar(&textCase, "case", "", "case mode (see 'words --help')")
	tf.Float64Var(&textRandomness, "rnd", 0, "word randomness 0-1")
	tf.Float64Var(&textPunctRnd, "rnd-punc", 0, "punctuation randomness 0-1")
}
