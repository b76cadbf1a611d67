package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/diagfmt"
	"github.com/palantir/tslint-sub000/internal/driver"
	"github.com/palantir/tslint-sub000/internal/logging"
)

var errDiagnostics = errors.New("errors found")

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|dir>...",
	Short: "Report lexical diagnostics",
	Long: `Check scans every source file and prints only the diagnostics. With --cache
the results are stored by content hash under the user cache directory and
unchanged files are not scanned again.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Bool("check-regex", false, "validate regular expression literals")
	checkCmd.Flags().Bool("cache", false, "reuse results of unchanged files")
	checkCmd.Flags().Bool("clear-cache", false, "drop the cache before checking")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	opts := driverOptions()
	if cmd.Flags().Changed("check-regex") {
		opts.CheckRegex, _ = cmd.Flags().GetBool("check-regex")
	}

	useCache, _ := cmd.Flags().GetBool("cache")
	clearCache, _ := cmd.Flags().GetBool("clear-cache")
	if useCache || clearCache {
		cache, err := driver.OpenDiskCache("tslex")
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		if clearCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
		}
		if useCache {
			opts.Cache = cache
		}
	}

	results, err := driver.Check(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	total := diag.NewBag(0)
	cached := 0
	for _, res := range results {
		total.Merge(res.Bag)
		if res.Cached {
			cached++
		}
		if format == "json" {
			err = diagfmt.JSON(cmd.OutOrStdout(), res.File, res.Bag, diagfmt.JSONOpts{IncludePositions: true})
		} else {
			err = printDiagnostics(cmd.OutOrStdout(), res.File, res.Bag)
		}
		if err != nil {
			return err
		}
	}
	logging.FromContext(cmd.Context()).Info("checked", logging.KeyFiles, len(results), "cached", cached)

	if format == "pretty" {
		if err := diagfmt.Summary(cmd.ErrOrStderr(), total, sess.color.useColor(cmd.ErrOrStderr())); err != nil {
			return err
		}
	}
	if total.HasErrors() {
		return errDiagnostics
	}
	return nil
}
