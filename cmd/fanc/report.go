package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fanc/internal/diag"
	"fanc/internal/diagfmt"
	"fanc/internal/source"
)

type diagFormat string

const (
	formatShort  diagFormat = "short"
	formatPretty diagFormat = "pretty"
	formatJSON   diagFormat = "json"
)

func readDiagFormat(value string) (diagFormat, error) {
	switch f := diagFormat(value); f {
	case formatShort, formatPretty, formatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (expected short|pretty|json)", value)
}

// reportLanguageError prints err when it is a language error and reports
// whether it did. The process still exits 0 in that case; anything else is
// left to the caller.
func reportLanguageError(cmd *cobra.Command, err error, path string, format diagFormat) (bool, error) {
	var de *diag.Error
	if !errors.As(err, &de) {
		return false, nil
	}
	out := cmd.OutOrStdout()
	switch format {
	case formatPretty:
		useColor, cerr := colorFlag(cmd, os.Stdout)
		if cerr != nil {
			return true, cerr
		}
		return true, diagfmt.Pretty(out, diagfmt.FromError(de), reloadForDiagnostics(path), diagfmt.PrettyOpts{
			Color:   useColor,
			Context: 1,
		})
	case formatJSON:
		return true, diagfmt.JSON(out, diagfmt.FromError(de), reloadForDiagnostics(path), diagfmt.JSONOpts{
			IncludePositions: true,
		})
	default:
		_, werr := diagfmt.Short(out, de)
		return true, werr
	}
}

// reloadForDiagnostics loads path as the first file of a fresh set so the
// file IDs in a compile error resolve against it. Nil when unreadable.
func reloadForDiagnostics(path string) *source.FileSet {
	fs := source.NewFileSet()
	if _, err := fs.Load(path); err != nil {
		return nil
	}
	return fs
}

func colorFlag(cmd *cobra.Command, f *os.File) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	return colorMode(value, f)
}

func quietFlag(cmd *cobra.Command) bool {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return quiet
}

func timingsFlag(cmd *cobra.Command) bool {
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	return timings
}

func infof(cmd *cobra.Command, format string, args ...any) {
	if quietFlag(cmd) {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}

