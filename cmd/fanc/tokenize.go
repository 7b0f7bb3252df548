package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fanc/internal/diagfmt"
	"fanc/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.fanc",
		Short: "Tokenize a FanC source file",
		Long:  `Tokenize breaks a FanC source file into tokens and reports every lexical error`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Lexical errors go to stderr so the token stream stays parseable.
	if result.Bag.HasErrors() {
		useColor, err := colorFlag(cmd, os.Stderr)
		if err != nil {
			return err
		}
		opts := diagfmt.PrettyOpts{Color: useColor, Context: 1}
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, opts); err != nil {
			return err
		}
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
