package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fanc/internal/diagfmt"
	"fanc/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.fanc",
		Short: "Parse a FanC source file and print its AST",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().Bool("dump", false, "print the raw node structures instead of the tree")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	dump, err := cmd.Flags().GetBool("dump")
	if err != nil {
		return fmt.Errorf("failed to get dump flag: %w", err)
	}

	res, err := driver.Parse(path)
	if err != nil {
		if handled, rerr := reportLanguageError(cmd, err, path, formatShort); handled {
			return rerr
		}
		return err
	}
	if dump {
		return diagfmt.FormatASTDump(cmd.OutOrStdout(), res.Builder, res.Program)
	}
	return diagfmt.FormatASTTree(cmd.OutOrStdout(), res.Builder, res.Program)
}
