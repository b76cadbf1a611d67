package diagfmt

import (
	"os"
	"path/filepath"
	"strings"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto shows paths under the working directory as relative ones.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	Context  int // строк контекста перед строкой диагностики
	NoSource bool
	PathMode PathMode
	BaseDir  string // для PathModeRelative; пусто - рабочая директория
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	BaseDir          string
	Max              int // обрезка вывода, не Bag
}

// TokenOpts configures token stream output.
type TokenOpts struct {
	Color    bool
	Trivia   bool // печатать виды leading/trailing trivia
	PathMode PathMode
	BaseDir  string
}

func displayPath(path string, mode PathMode, baseDir string) string {
	switch mode {
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
		return path
	case PathModeRelative:
		return relativeTo(path, baseDir)
	}
	if !filepath.IsAbs(path) {
		return path
	}
	rel := relativeTo(path, "")
	if strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func relativeTo(path, baseDir string) string {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return path
		}
		baseDir = wd
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return path
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
