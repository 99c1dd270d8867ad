package htmllint

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/dpotapov/go-htmllint/lint"
)

// htmlExts are the extensions of the files linted when a directory is matched.
var htmlExts = []string{".html", ".htm"}

// LintFS lints the files of fsys matching patterns (see fs.Glob) with l, one document
// per file, labelled with its path. A pattern matching a directory selects the HTML
// files below it, skipping hidden files and directories. Records accumulate in l.
//
// Files that cannot be read or tokenized do not stop the run; their errors are joined
// and returned at the end.
func LintFS(l *lint.Linter, fsys fs.FS, patterns ...string) error {
	files, err := matchFS(fsys, patterns)
	if err != nil {
		return err
	}

	var errs []error
	for _, name := range files {
		if err := lintFile(l, fsys, name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func lintFile(l *lint.Linter, fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	l.BeginDocument(name)
	if err := l.Parse(f); err != nil {
		return fmt.Errorf("lint %s: %w", name, err)
	}
	return nil
}

// matchFS expands patterns to a list of files, each listed once, in pattern order.
func matchFS(fsys fs.FS, patterns []string) ([]string, error) {
	var files []string
	seen := map[string]bool{}
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			files = append(files, name)
		}
	}

	for _, p := range patterns {
		matches, err := fs.Glob(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("match %s: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("match %s: %w", p, fs.ErrNotExist)
		}

		for _, m := range matches {
			fi, err := fs.Stat(fsys, m)
			if err != nil {
				return nil, err
			}
			if !fi.IsDir() {
				add(m)
				continue
			}
			err = fs.WalkDir(fsys, m, func(name string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if name != m && strings.HasPrefix(d.Name(), ".") {
					if d.IsDir() {
						return fs.SkipDir
					}
					return nil
				}
				if !d.IsDir() && isHTML(name) {
					add(name)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("read directory %s: %w", m, err)
			}
		}
	}
	return files, nil
}

func isHTML(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range htmlExts {
		if ext == e {
			return true
		}
	}
	return false
}
