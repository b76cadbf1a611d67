package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/diagfmt"
	"github.com/palantir/tslint-sub000/internal/driver"
	"github.com/palantir/tslint-sub000/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|dir>...",
	Short: "Print the token stream of JavaScript/TypeScript sources",
	Long: `Tokenize scans each file into tokens with their leading and trailing trivia.
Directories are searched for .js/.ts sources; node_modules and hidden
directories are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Bool("check-regex", false, "validate regular expression literals")
	tokenizeCmd.Flags().Bool("trivia", false, "show trivia kinds of each token")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	trivia, _ := cmd.Flags().GetBool("trivia")

	opts := driverOptions()
	if cmd.Flags().Changed("check-regex") {
		opts.CheckRegex, _ = cmd.Flags().GetBool("check-regex")
	}

	results, err := tokenizeArgs(cmd, args, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	tokOpts := diagfmt.TokenOpts{Color: sess.color.useColor(out), Trivia: trivia || format != "pretty"}
	for _, res := range results {
		if format == "pretty" {
			if err := printDiagnostics(cmd.ErrOrStderr(), res.File, res.Bag); err != nil {
				return err
			}
			if len(results) > 1 {
				fmt.Fprintf(out, "== %s\n", res.Path)
			}
			if err := diagfmt.FormatTokensPretty(out, res.File, res.Tokens, tokOpts); err != nil {
				return err
			}
			continue
		}
		dump := diagfmt.BuildTokensOutput(res.File, res.Tokens,
			diagfmt.BuildDiagnostics(res.File, res.Bag, diagfmt.JSONOpts{IncludePositions: true}), tokOpts)
		if format == "json" {
			err = diagfmt.FormatTokensJSON(out, dump)
		} else {
			err = diagfmt.FormatTokensMsgpack(out, dump)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// tokenizeArgs scans a single file directly and expands anything else
// through the parallel driver.
func tokenizeArgs(cmd *cobra.Command, args []string, opts driver.Options) ([]*driver.TokenizeResult, error) {
	ctx := cmd.Context()
	if len(args) == 1 {
		if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
			res, err := driver.Tokenize(ctx, args[0], opts)
			if err != nil {
				return nil, fmt.Errorf("tokenization failed: %w", err)
			}
			return []*driver.TokenizeResult{res}, nil
		}
	}
	return driver.TokenizeDir(ctx, args, opts)
}

// printDiagnostics выводит диагностику в w, если есть.
func printDiagnostics(w io.Writer, file *source.File, bag *diag.Bag) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	return diagfmt.Pretty(w, file, bag, diagfmt.PrettyOpts{
		Color:   sess.color.useColor(w),
		Context: 1,
	})
}
