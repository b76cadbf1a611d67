package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"github.com/palantir/tslint-sub000/internal/driver"
	"github.com/palantir/tslint-sub000/internal/source"
	"github.com/palantir/tslint-sub000/internal/syntax"
)

var tokenAtCmd = &cobra.Command{
	Use:   "token-at <file> <offset|line:col>",
	Short: "Show the token at a position with its neighbours and enclosing nodes",
	Args:  cobra.ExactArgs(2),
	RunE:  runTokenAt,
}

func runTokenAt(cmd *cobra.Command, args []string) error {
	res, err := driver.Tokenize(cmd.Context(), args[0], driverOptions())
	if err != nil {
		return err
	}
	offset, err := parsePosition(res.File, args[1])
	if err != nil {
		return err
	}
	loc, err := driver.TokenAt(res, offset)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	describeToken(out, res.File, "token", loc.Token)
	describeToken(out, res.File, "previous", loc.Previous)
	describeToken(out, res.File, "next", loc.Next)
	chain := make([]string, len(loc.Chain))
	for i, k := range loc.Chain {
		chain[i] = k.String()
	}
	fmt.Fprintf(out, "%-9s %s\n", "chain:", strings.Join(chain, " < "))
	return nil
}

// parsePosition accepts a byte offset or a 1-based line:col pair.
func parsePosition(file *source.File, arg string) (int, error) {
	lineStr, colStr, ok := strings.Cut(arg, ":")
	if !ok {
		off, err := strconv.Atoi(arg)
		if err != nil {
			return 0, fmt.Errorf("invalid offset %q", arg)
		}
		return off, nil
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return 0, fmt.Errorf("invalid line in %q", arg)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil || col < 1 {
		return 0, fmt.Errorf("invalid column in %q", arg)
	}
	start := 0
	if line > 1 {
		if line-2 >= len(file.LineIdx) {
			return 0, fmt.Errorf("line %d past end of %s", line, file.Path)
		}
		start = int(file.LineIdx[line-2]) + 1
	}
	return start + col - 1, nil
}

func describeToken(w io.Writer, file *source.File, label string, tok *syntax.PositionedToken) {
	if tok == nil {
		fmt.Fprintf(w, "%-9s -\n", label+":")
		return
	}
	t := tok.Token()
	start, err := safecast.Conv[uint32](tok.Start())
	if err != nil {
		panic(fmt.Errorf("token start overflow: %w", err))
	}
	pos := file.Position(start)
	fmt.Fprintf(w, "%-9s %s %q at %d:%d [%d, %d)", label+":", t.Kind(), t.Text(), pos.Line, pos.Col, tok.Start(), tok.End())
	if t.IsMissing() {
		fmt.Fprint(w, " missing")
	}
	fmt.Fprintln(w)
}
