package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/morse"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode TEXT...",
		Short: "Encode text to Morse code",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFor(cmd)
			if err != nil {
				return err
			}
			out, err := s.encode(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode CODE...",
		Short: "Decode Morse code, one code per argument or blank separated",
		Long: `Decodes Morse code. Codes which cannot be decoded show up as '?'.
Codes starting with a dash must follow a "--" argument, e.g.

	morse decode -- ... --- ...`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFor(cmd)
			if err != nil {
				return err
			}
			out, err := s.decode(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the structure of the Morse trie",
		Long: `Prints the Morse trie as an indented tree. With --chars only the codes
of the given characters are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFor(cmd)
			if err != nil {
				return err
			}
			chars, _ := cmd.Flags().GetString("chars")
			s.last = morse.UniqueCharacters(chars)
			header, dump := s.structure()
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", header, dump)
			return nil
		},
	}
	cmd.Flags().String("chars", "", "Restrict the trie to these characters")
	return cmd
}

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete PREFIX",
		Short: "List all codes starting with a prefix",
		Long: `Lists all table entries whose code starts with PREFIX.
A prefix starting with a dash must follow a "--" argument.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), completions(args[0]))
			return nil
		},
	}
}
