// Command bashscan drives the external scanner outside of a real
// tree-sitter host: it is a standalone harness for exercising and
// inspecting scan, tokens, replay, and corpus runs.
package main

import (
	"os"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// version is set automatically as part of the release process.
var version = "dev"

var (
	vcsRevision string
	vcsTime     time.Time
	vcsModified bool
)

func init() {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			vcsRevision = setting.Value
		case "vcs.time":
			vcsTime, _ = time.Parse(time.RFC3339, setting.Value)
		case "vcs.modified":
			vcsModified = setting.Value == "true"
		}
	}
}

var logLevel string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bashscan",
		Short:         "Exercise the bash external scanner outside of a tree-sitter host",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				lvl = logrus.InfoLevel
			}
			logrus.SetLevel(lvl)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "logrus level: trace, debug, info, warn, error")

	root.AddCommand(newScanCmd())
	root.AddCommand(newTokensCmd())
	root.AddCommand(newReplayCmd())
	root.AddCommand(newCorpusCmd())
	root.AddCommand(newReplCmd())

	return root
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("bashscan failed")
		os.Exit(1)
	}
}
