package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/morse"
	"github.com/npillmayer/morse/codetable"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "morse",
		Short: "Morse converts text to and from Morse code",
		Long: `Morse encodes text to Morse code and decodes it back, using a binary trie
where every dot leads left and every dash leads right.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("trace")
			return configureTracing(level)
		},
	}
	cmd.PersistentFlags().String("table", "", "Code table file to use instead of the built-in table")
	cmd.PersistentFlags().String("trace", "Error", "Trace level (Error, Info, Debug)")
	cmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newTreeCmd(),
		newCompleteCmd(),
		newShellCmd(),
	)
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configureTracing routes tracing to a Go logger on stderr.
func configureTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"tracelevel.root":  level,
		"tracelevel.morse": level,
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// sessionFor sets up a session from the --table flag.
func sessionFor(cmd *cobra.Command) (*session, error) {
	path, _ := cmd.Flags().GetString("table")
	if path == "" {
		return newSession(morse.BuildDefaultTree(), morse.BuildTreeForCharacters), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tree, err := codetable.LoadTrie(path, f)
	if err != nil {
		return nil, fmt.Errorf("loading code table %s: %w", path, err)
	}
	return newSession(tree, subsetOf(tree)), nil
}
