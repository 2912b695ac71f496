package main

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/aretext/bashscan/config"
	"github.com/aretext/bashscan/internal/lexer"
	"github.com/aretext/bashscan/internal/scanner"
)

// newReplayCmd tokenizes a script twice: once straight through, once by
// checkpointing (serialize/deserialize) after every token into a fresh
// Scanner instance, and reports whether the two token streams diverge.
// This exercises the round-trip law in spec.md §8 directly.
func newReplayCmd() *cobra.Command {
	var bufferCapacity int
	var configPath string
	cmd := &cobra.Command{
		Use:   "replay <path>",
		Short: "Tokenize a file twice, replaying through serialize/deserialize, and diff the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := ioutil.ReadFile(args[0])
			if err != nil {
				return err
			}
			cfg := config.DefaultConfig()
			if configPath != "" {
				cfg, err = config.LoadConfig(configPath)
				if err != nil {
					return errors.Wrapf(err, "config.LoadConfig")
				}
			}
			if bufferCapacity > 0 {
				cfg.BufferCapacity = bufferCapacity
			}

			direct := tokenize(scanner.Create(), lexer.NewStringLexer(string(data)))
			replayed, err := tokenizeThroughCheckpoints(string(data), cfg.BufferCapacity)
			if err != nil {
				return err
			}

			if len(direct) != len(replayed) {
				return errors.Errorf("token count diverged after replay: direct=%d replayed=%d", len(direct), len(replayed))
			}
			for i := range direct {
				if direct[i] != replayed[i] {
					return errors.Errorf("token %d diverged after replay: direct=%+v replayed=%+v", i, direct[i], replayed[i])
				}
			}
			fmt.Printf("replay matched: %d tokens\n", len(direct))
			return nil
		},
	}
	cmd.Flags().IntVar(&bufferCapacity, "buffer-capacity", 0, "serialization buffer capacity override (0 = config default)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file applied as an overlay on the defaults")
	return cmd
}

// tokenizeThroughCheckpoints re-derives a fresh Scanner from a serialized
// checkpoint after every token, the way a host parser clones scanner state
// along a speculative parse path (spec.md §5).
func tokenizeThroughCheckpoints(text string, bufferCapacity int) ([]Token, error) {
	lex := lexer.NewStringLexer(text)
	sc := scanner.Create()
	valid := permissiveValidSymbols()

	var tokens []Token
	buf := make([]byte, bufferCapacity)

	for !lex.EOF() {
		startPos := lex.Pos()
		if !sc.Scan(lex, valid) {
			lex.Advance(true)
			continue
		}
		endPos := lex.EndPos()
		tokens = append(tokens, Token{
			Symbol: sc.ResultSymbol(),
			Text:   lex.Text(startPos, endPos),
			Start:  startPos,
			End:    endPos,
		})

		n := sc.Serialize(buf)
		if n == 0 {
			return nil, errors.Errorf("serialization buffer too small (capacity %d) at offset %d", bufferCapacity, endPos)
		}
		sc = scanner.Create()
		sc.Deserialize(buf[:n])

		lex.ResetToMarkEnd()
		if endPos == startPos {
			lex.Advance(true)
		}
	}
	return tokens, nil
}
