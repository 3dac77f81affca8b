package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/typetools/glyphsift"
	"github.com/typetools/glyphsift/filter"
)

var (
	wordsN          int
	wordsCase       string
	wordsRandomness float64
	wordsNumberProb float64
	wordsMinLen     int
	wordsMaxLen     int
	wordsStarts     string
	wordsEnds       string
	wordsContains   []string
	wordsTop        bool
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Generate a list of words",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newGenerator(cmd)
		if err != nil {
			printErr(err)
			return err
		}
		caseMode, err := parseCaseFlag(wordsCase)
		if err != nil {
			printErr(err)
			return err
		}

		criteria := filter.Criteria{
			MinLength:  wordsMinLen,
			MaxLength:  wordsMaxLen,
			StartsWith: wordsStarts,
			EndsWith:   wordsEnds,
			Contains:   wordsContains,
		}

		var list []string
		if wordsTop {
			opts := glyphsift.DefaultTopWordsOptions()
			opts.N = wordsN
			opts.TopWord.Vocab = flagVocab
			opts.TopWord.Case = caseMode
			if !criteria.Empty() {
				opts.TopWord.Criteria = criteria
			}
			list, err = gen.TopWords(opts)
		} else {
			opts := glyphsift.DefaultWordsOptions()
			opts.N = wordsN
			opts.NumberProb = wordsNumberProb
			opts.Word.Vocab = flagVocab
			opts.Word.Case = caseMode
			opts.Word.Criteria = criteria
			opts.Word.Randomness = wordsRandomness
			list, err = gen.Words(opts)
		}
		if err != nil {
			printErr(err)
			return err
		}

		fmt.Println(strings.Join(list, " "))
		return nil
	},
}

func init() {
	f := wordsCmd.Flags()
	f.IntVarP(&wordsN, "count", "n", 0, "number of words (0 = random 10-20)")
	f.StringVar(&wordsCase, "case", "", "case mode: any, any_og, lc, lc_force, cap, cap_og, cap_force, uc, uc_og, uc_force")
	f.Float64Var(&wordsRandomness, "rnd", 0, "randomness 0-1 (0 = frequency-weighted, 1 = uniform)")
	f.Float64Var(&wordsNumberProb, "numbers", 0, "probability 0-1 of a numeral token per position")
	f.IntVar(&wordsMinLen, "min-length", 0, "minimum word length in letters")
	f.IntVar(&wordsMaxLen, "max-length", 0, "maximum word length in letters")
	f.StringVar(&wordsStarts, "startswith", "", "required word prefix")
	f.StringVar(&wordsEnds, "endswith", "", "required word suffix")
	f.StringArrayVar(&wordsContains, "contains", nil, "required substring (repeatable, AND-combined)")
	f.BoolVar(&wordsTop, "top", false, "list the most frequent matches instead of sampling")
}
