package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fanc/internal/driver"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] file.fanc",
		Short: "Analyse a FanC file and report its first error",
		Long: `Check runs the full analysis and lowering of one file without writing IR.
A language error is printed as "line <n>: <message>"; the exit status stays 0.`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().Bool("scopes", false, "print the scope listing")
	cmd.Flags().Bool("emit-ir", false, "print the generated IR")
	cmd.Flags().Bool("verify", false, "parse the generated IR with the LLVM assembly parser")
	cmd.Flags().String("format", string(formatShort), "diagnostic format (short|pretty|json)")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	scopes, err := cmd.Flags().GetBool("scopes")
	if err != nil {
		return fmt.Errorf("failed to get scopes flag: %w", err)
	}
	emitIR, err := cmd.Flags().GetBool("emit-ir")
	if err != nil {
		return fmt.Errorf("failed to get emit-ir flag: %w", err)
	}
	verify, err := cmd.Flags().GetBool("verify")
	if err != nil {
		return fmt.Errorf("failed to get verify flag: %w", err)
	}
	formatValue, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := readDiagFormat(formatValue)
	if err != nil {
		return err
	}

	res, err := driver.CompileFile(cmd.Context(), path, driver.Options{Verify: verify, Scopes: scopes})
	if err != nil {
		if handled, rerr := reportLanguageError(cmd, err, path, format); handled {
			return rerr
		}
		return err
	}

	out := cmd.OutOrStdout()
	if scopes {
		io.WriteString(out, res.Scopes)
	}
	if emitIR {
		io.WriteString(out, res.IR)
	}
	if timingsFlag(cmd) {
		printPhaseTimings(cmd.ErrOrStderr(), res.Timer)
	}
	return nil
}
