package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/palantir/tslint-sub000/internal/driver"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip <file|dir>...",
	Short: "Verify that tokens and trees reproduce the source byte for byte",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRoundtrip,
}

func runRoundtrip(cmd *cobra.Command, args []string) error {
	results, err := tokenizeArgs(cmd, args, driverOptions())
	if err != nil {
		return err
	}

	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed, color.Bold)
	if !sess.color.useColor(cmd.OutOrStdout()) {
		ok.DisableColor()
		bad.DisableColor()
	} else {
		ok.EnableColor()
		bad.EnableColor()
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, res := range results {
		if err := driver.RoundTrip(res); err != nil {
			failed++
			fmt.Fprintf(out, "%s %v\n", bad.Sprint("FAIL"), err)
			continue
		}
		fmt.Fprintf(out, "%s   %s (%d tokens)\n", ok.Sprint("ok"), res.Path, len(res.Tokens))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed the round trip", failed, len(results))
	}
	return nil
}
