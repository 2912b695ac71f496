package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gofrs/uuid"
	"github.com/google/renameio/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aretext/bashscan/internal/lexer"
	"github.com/aretext/bashscan/internal/scanner"
)

// corpusResult is one file's outcome in a corpus run.
type corpusResult struct {
	Path      string `json:"path"`
	NumTokens int    `json:"numTokens"`
	Error     string `json:"error,omitempty"`
}

// newCorpusCmd walks a corpus of scripts matched by a doublestar glob,
// tokenizes each one, and reports failures. The run gets a uuid so repeated
// invocations can be told apart in the saved report.
func newCorpusCmd() *cobra.Command {
	var reportPath string
	cmd := &cobra.Command{
		Use:   "corpus <glob>",
		Short: "Tokenize every file matching a glob and report failures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return fmt.Errorf("doublestar.FilepathGlob: %w", err)
			}

			runID, err := uuid.NewV4()
			if err != nil {
				return fmt.Errorf("uuid.NewV4: %w", err)
			}
			logrus.WithField("run", runID.String()).WithField("files", len(matches)).Info("starting corpus run")

			results := make([]corpusResult, 0, len(matches))
			failures := 0
			for _, path := range matches {
				res := scanCorpusFile(path)
				if res.Error != "" {
					failures++
					logrus.WithField("path", path).WithError(fmt.Errorf("%s", res.Error)).Warn("corpus file failed")
				}
				results = append(results, res)
			}

			fmt.Printf("run %s: %d files, %d failures\n", runID.String(), len(results), failures)

			if reportPath != "" {
				if err := writeReport(reportPath, runID.String(), results); err != nil {
					return err
				}
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d corpus files failed", failures, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&reportPath, "report", "", "path to write a JSON report (atomic write)")
	return cmd
}

func scanCorpusFile(path string) (res corpusResult) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return corpusResult{Path: path, Error: err.Error()}
	}

	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("path", path).WithField("panic", r).Error("scanner panicked on corpus file")
			res = corpusResult{Path: path, Error: fmt.Sprintf("scanner panic: %v", r)}
		}
	}()

	lex := lexer.NewStringLexer(string(data))
	sc := scanner.Create()
	defer sc.Destroy()

	tokens := tokenize(sc, lex)
	return corpusResult{Path: path, NumTokens: len(tokens)}
}

// writeReport saves results as JSON, using renameio for an atomic
// write-then-rename so a crash mid-write never leaves a truncated report.
func writeReport(path, runID string, results []corpusResult) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "{\"run\":%q,\"results\":[", runID)
	for i, r := range results {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "{\"path\":%q,\"numTokens\":%d,\"error\":%q}", r.Path, r.NumTokens, r.Error)
	}
	buf.WriteString("]}")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return renameio.WriteFile(path, buf.Bytes(), 0644)
}
