package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const (
	langJavaScript = "JavaScript"
	langTypeScript = "TypeScript"
)

// расширения, которые вообще стоит читать при обходе каталога
var sourceExts = []string{".js", ".mjs", ".cjs", ".ts", ".mts", ".cts"}

// detectLanguage names the language of a source file, or "" when it is
// neither JavaScript nor TypeScript. Qt Linguist .ts files are XML and are
// rejected by the content classifier.
func detectLanguage(path string, content []byte) string {
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return scriptLanguage(lang)
	}
	if lang, safe := enry.GetLanguageByExtension(path); safe {
		return scriptLanguage(lang)
	}
	candidates := enry.GetLanguagesByExtension(path, content, nil)
	if len(candidates) == 0 {
		return ""
	}
	if len(content) == 0 {
		return scriptLanguage(candidates[0])
	}
	lang, _ := enry.GetLanguageByClassifier(content, candidates)
	return scriptLanguage(lang)
}

func scriptLanguage(lang string) string {
	switch lang {
	case langJavaScript, langTypeScript:
		return lang
	}
	return ""
}

func hasSourceExt(path string) bool {
	return slices.Contains(sourceExts, strings.ToLower(filepath.Ext(path)))
}

// collectSourceFiles expands directories into the JavaScript/TypeScript files
// below them, skipping vendored and hidden paths. Explicit file arguments are
// kept as they are. The result is sorted and free of duplicates.
func collectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			rel, relErr := filepath.Rel(p, path)
			if relErr != nil {
				rel = path
			}
			rel = filepath.ToSlash(rel)
			if d.IsDir() {
				if rel != "." && (enry.IsVendor(rel+"/") || enry.IsDotFile(rel)) {
					return filepath.SkipDir
				}
				return nil
			}
			if !hasSourceExt(path) || enry.IsVendor(rel) || enry.IsDotFile(rel) {
				return nil
			}
			content, err := os.ReadFile(path) // #nosec G304 -- path comes from WalkDir
			if err != nil {
				return err
			}
			if detectLanguage(path, content) != "" {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
