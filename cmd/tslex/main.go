package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/palantir/tslint-sub000/internal/config"
	"github.com/palantir/tslint-sub000/internal/driver"
	"github.com/palantir/tslint-sub000/internal/logging"
	"github.com/palantir/tslint-sub000/internal/observ"
	"github.com/palantir/tslint-sub000/internal/prof"
	"github.com/palantir/tslint-sub000/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tslex",
	Short: "Lossless JavaScript/TypeScript scanner and syntax tools",
	Long: `tslex scans JavaScript and TypeScript sources into a lossless token stream,
checks the round-trip property, looks up tokens by offset and pretty-prints
the statement subset it can parse.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// session is the per-invocation state built by setup.
type session struct {
	cfg   config.Config
	color colorMode
	timer *observ.Timer
	prof  *prof.Session
}

var sess session

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(roundtripCmd)
	rootCmd.AddCommand(tokenAtCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: nearest "+config.FileName+")")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	pf.String("log-level", "warn", "log level (debug|info|warn|error)")
	pf.String("language", "es5", "identifier tables (es3|es5)")
	pf.Int("jobs", 0, "files scanned in parallel (0: GOMAXPROCS)")
	pf.Bool("timings", false, "print phase timings to stderr")
	pf.String("cpuprofile", "", "write a CPU profile to file")
	pf.String("memprofile", "", "write a heap profile to file")
	pf.String("trace", "", "write a runtime trace to file")
}

// main executes the root command. Any returned error exits with status 1.
func main() {
	err := rootCmd.Execute()
	// PersistentPostRunE не вызывается, если команда упала
	if stopErr := stopProfiling(); stopErr != nil {
		fmt.Fprintln(os.Stderr, "profile:", stopErr)
	}
	if err != nil {
		os.Exit(1)
	}
}

// setup resolves the configuration, lets explicitly set flags override it
// and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	explicit, _ := flags.GetString("config")
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(explicit, wd)
	if err != nil {
		return err
	}

	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("max-diagnostics") {
		cfg.MaxDiagnostics, _ = flags.GetInt("max-diagnostics")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("language") {
		cfg.Language, _ = flags.GetString("language")
	}
	if flags.Changed("jobs") {
		cfg.Jobs, _ = flags.GetInt("jobs")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", valueOr(cfg.Path, "flags"), err)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}

	mode, err := readColorMode(cfg.Color)
	if err != nil {
		return err
	}
	sess = session{cfg: cfg, color: mode}
	if timings, _ := flags.GetBool("timings"); timings {
		sess.timer = observ.NewTimer()
	}

	var popts prof.Options
	popts.CPU, _ = flags.GetString("cpuprofile")
	popts.Mem, _ = flags.GetString("memprofile")
	popts.Trace, _ = flags.GetString("trace")
	if popts.Enabled() {
		ps, err := prof.Start(popts)
		if err != nil {
			return err
		}
		sess.prof = ps
	}

	logger := logging.New(cfg.LogLevel)
	logging.SetDefault(logger)
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	logger.Debug("config resolved", logging.KeyConfig, valueOr(cfg.Path, "defaults"))
	return nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	if sess.timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), sess.timer.Summary())
	}
	return stopProfiling()
}

func stopProfiling() error {
	ps := sess.prof
	sess.prof = nil
	return ps.Stop()
}

// driverOptions maps the session onto driver options.
func driverOptions() driver.Options {
	opts := driver.OptionsFromConfig(sess.cfg)
	opts.Timer = sess.timer
	return opts
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
