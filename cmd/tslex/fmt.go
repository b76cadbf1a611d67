package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palantir/tslint-sub000/internal/driver"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <file|dir>...",
	Short: "Pretty-print sources in the parsable statement subset",
	Long: `Fmt parses each file and reprints it with the configured indentation
(indent, use_tabs). Files with syntax errors are reported and left as they are.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "only report files that would change")
	fmtCmd.Flags().Bool("stdout", false, "print the result instead of rewriting files")
	fmtCmd.Flags().Int("indent", 0, "spaces per indentation level (overrides config)")
	fmtCmd.Flags().Bool("tabs", false, "indent with tabs (overrides config)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	opts := driver.FormatOptions{Options: driverOptions(), Format: sess.cfg.FormatOptions()}
	opts.Check, _ = cmd.Flags().GetBool("check")
	opts.Stdout, _ = cmd.Flags().GetBool("stdout")
	if cmd.Flags().Changed("indent") {
		opts.Format.IndentWidth, _ = cmd.Flags().GetInt("indent")
	}
	if cmd.Flags().Changed("tabs") {
		opts.Format.UseTabs, _ = cmd.Flags().GetBool("tabs")
	}

	results, err := driver.FormatPaths(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var failed, changed int
	for _, r := range results {
		switch {
		case errors.Is(r.Err, driver.ErrParse):
			failed++
			if err := printDiagnostics(cmd.ErrOrStderr(), r.File, r.Bag); err != nil {
				return err
			}
		case r.Err != nil:
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
		case opts.Stdout:
			if _, err := out.Write(r.Formatted); err != nil {
				return err
			}
		case r.Changed:
			changed++
			fmt.Fprintln(out, r.Path)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d files could not be formatted", failed)
	}
	if opts.Check && changed > 0 {
		return fmt.Errorf("%d files need formatting", changed)
	}
	return nil
}
