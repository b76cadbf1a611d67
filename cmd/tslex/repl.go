package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/palantir/tslint-sub000/internal/charclass"
	"github.com/palantir/tslint-sub000/internal/diagfmt"
	"github.com/palantir/tslint-sub000/internal/driver"
)

const (
	historyFile = ".tslex_history"
	replPrompt  = "tslex> "
)

const replHelp = `Each line is scanned on its own and printed as tokens.
  :es3 / :es5   switch the identifier tables
  :trivia       toggle trivia kinds
  :regex        toggle regular expression checks
  :quit         exit (Ctrl+D works too)
`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Scan lines interactively",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

type replState struct {
	opts   driver.Options
	trivia bool
}

func runRepl(cmd *cobra.Command, _ []string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		var out []string
		for _, c := range []string{":es3", ":es5", ":trivia", ":regex", ":quit", ":help"} {
			if strings.HasPrefix(c, line) {
				out = append(out, c)
			}
		}
		return out
	})

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tslex REPL (%s). Type :help for commands.\n", sess.cfg.Version())
	st := &replState{opts: driverOptions()}
	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if quit := st.eval(cmd, line); quit {
			return nil
		}
	}
}

// eval runs one REPL line and reports whether the session should end.
func (st *replState) eval(cmd *cobra.Command, line string) bool {
	out := cmd.OutOrStdout()
	switch strings.TrimSpace(line) {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprint(out, replHelp)
		return false
	case ":es3":
		st.opts.Version = charclass.ES3
		fmt.Fprintln(out, "language: es3")
		return false
	case ":es5":
		st.opts.Version = charclass.ES5
		fmt.Fprintln(out, "language: es5")
		return false
	case ":trivia":
		st.trivia = !st.trivia
		fmt.Fprintf(out, "trivia: %t\n", st.trivia)
		return false
	case ":regex":
		st.opts.CheckRegex = !st.opts.CheckRegex
		fmt.Fprintf(out, "check regex: %t\n", st.opts.CheckRegex)
		return false
	}

	res := driver.TokenizeString(cmd.Context(), "<repl>", line, st.opts)
	if err := printDiagnostics(out, res.File, res.Bag); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
	tokOpts := diagfmt.TokenOpts{Color: sess.color.useColor(out), Trivia: st.trivia}
	if err := diagfmt.FormatTokensPretty(out, res.File, res.Tokens, tokOpts); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
	return false
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
