package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/fatih/color"
)

// Version information for the tslex CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
	labelColor        = color.New(color.FgHiBlack)
)

// Colored renders Version with the major, minor and patch parts colored.
// A pre-release or build suffix is kept plain.
func Colored(enabled bool) string {
	for _, c := range []*color.Color{versionMajorColor, versionMinorColor, versionPatchColor} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	core, suffix := Version, ""
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core, suffix = core[:i], core[i:]
	}
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	return versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2]) + suffix
}

// Describe returns the one-line version plus optional build details.
func Describe(enabled bool) string {
	if enabled {
		labelColor.EnableColor()
	} else {
		labelColor.DisableColor()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "tslex %s", Colored(enabled))
	if GitCommit != "" {
		fmt.Fprintf(&b, "\n%s %s", labelColor.Sprint("commit:"), GitCommit)
	}
	if BuildDate != "" {
		fmt.Fprintf(&b, "\n%s %s", labelColor.Sprint("built:"), BuildDate)
	}
	fmt.Fprintf(&b, "\n%s %s %s/%s", labelColor.Sprint("go:"), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return b.String()
}
