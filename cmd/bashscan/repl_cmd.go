package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/aretext/bashscan/internal/lexer"
	"github.com/aretext/bashscan/internal/scanner"
)

// newReplCmd opens an interactive loop: each line is tokenized against a
// persistent Scanner instance, so heredoc state carries across lines the
// way it would across calls from a real host parser. Lines are split with
// shlex to spot a leading ":" command; ":quit" is the only command, and any
// other ":" command is reported as unknown.
func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive scanner REPL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(os.Stdin, os.Stdout)
		},
	}
	return cmd
}

func historyPath() string {
	path, err := xdg.DataFile(filepath.Join("bashscan", "repl_history"))
	if err != nil {
		return ""
	}
	return path
}

func runRepl(in *os.File, out *os.File) error {
	sc := scanner.Create()
	defer sc.Destroy()

	histPath := historyPath()
	var histFile *os.File
	if histPath != "" {
		var err error
		histFile, err = os.OpenFile(histPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			defer histFile.Close()
		}
	}

	fmt.Fprintln(out, "bashscan repl. Type a line of shell to tokenize it, or :quit to exit.")
	input := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !input.Scan() {
			return nil
		}
		line := input.Text()
		if histFile != nil {
			fmt.Fprintln(histFile, line)
		}

		fields, err := shlex.Split(line)
		if err == nil && len(fields) > 0 && strings.HasPrefix(fields[0], ":") {
			if fields[0] == ":quit" {
				return nil
			}
			fmt.Fprintf(out, "unknown command %q\n", fields[0])
			continue
		}

		lex := lexer.NewStringLexer(line)
		for _, tok := range tokenize(sc, lex) {
			fmt.Fprintf(out, "  %-28s %q\n", tok.Symbol, tok.Text)
		}
	}
}
