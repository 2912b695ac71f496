package main

import (
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"

	"github.com/aretext/bashscan/internal/lexer"
	"github.com/aretext/bashscan/internal/scanner"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <path>",
		Short: "Tokenize a whole script file and print the emitted token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := ioutil.ReadFile(args[0])
			if err != nil {
				return err
			}

			lex := lexer.NewStringLexer(string(data))
			sc := scanner.Create()
			defer sc.Destroy()

			for _, tok := range tokenize(sc, lex) {
				fmt.Printf("%-28s %q\n", tok.Symbol, tok.Text)
			}
			return nil
		},
	}
	return cmd
}
