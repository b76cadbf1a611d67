package driver

import (
	"runtime"

	"github.com/palantir/tslint-sub000/internal/charclass"
	"github.com/palantir/tslint-sub000/internal/config"
	"github.com/palantir/tslint-sub000/internal/observ"
)

const defaultMaxDiagnostics = 256

// Options configures every driver entry point.
type Options struct {
	Version        charclass.Version
	MaxDiagnostics int
	Jobs           int // <= 0: GOMAXPROCS
	CheckRegex     bool
	Intern         bool

	Timer *observ.Timer // optional
	Cache *DiskCache    // optional, used by Check
	Memo  *MemoCache    // optional, used by Check
}

// OptionsFromConfig maps the resolved configuration onto driver options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Version:        cfg.Version(),
		MaxDiagnostics: cfg.MaxDiagnostics,
		Jobs:           cfg.EffectiveJobs(),
		CheckRegex:     cfg.CheckRegex,
		Intern:         cfg.Intern,
	}
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return defaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

func (o Options) jobs(files int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(min(jobs, files), 1)
}
