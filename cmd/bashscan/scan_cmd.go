package main

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/aretext/bashscan/internal/lexer"
	"github.com/aretext/bashscan/internal/scanner"
)

func newScanCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "scan [text]",
		Short: "Run a single scan() call over text and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lex := lexer.NewStringLexer(args[0])
			sc := scanner.Create()
			defer sc.Destroy()

			valid := permissiveValidSymbols()
			if raw {
				valid.Set(scanner.HeredocStart)
			}

			if !sc.Scan(lex, valid) {
				fmt.Println("no match")
				return nil
			}

			tok := Token{
				Symbol: sc.ResultSymbol(),
				Text:   lex.Text(0, lex.EndPos()),
				Start:  0,
				End:    lex.EndPos(),
			}
			repr.Println(tok)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "heredoc-start", false, "set HEREDOC_START in the valid-symbols set (the default set already includes it)")
	return cmd
}
