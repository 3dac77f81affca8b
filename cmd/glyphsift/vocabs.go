package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var vocabsCmd = &cobra.Command{
	Use:   "vocabs",
	Short: "List registered vocabularies",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newGenerator(cmd)
		if err != nil {
			printErr(err)
			return err
		}

		for _, name := range gen.Vocabs() {
			v, err := gen.GetVocab(name)
			if err != nil {
				printErr(err)
				return err
			}
			kind := "unicameral"
			if v.Bicameral() {
				kind = "bicameral"
			}
			fmt.Printf("%s\t%s\t%s\t%d words\n", name, v.Lang(), kind, v.Len())
		}
		return nil
	},
}
