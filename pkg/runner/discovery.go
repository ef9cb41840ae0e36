package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/gocsslint/pkg/config"
)

// DiscoverOptions controls expansion of command-line paths into files.
type DiscoverOptions struct {
	// Paths are files or directories. Empty means the working directory.
	Paths []string

	// WorkingDir resolves relative Paths. Empty means the process working directory.
	WorkingDir string

	// Extensions selects files inside directories. Defaults to config.DefaultExtensions().
	Extensions []string

	// ExcludeGlobs skip matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks traverses directory symlinks.
	FollowSymlinks bool
}

// Discover expands opts.Paths into a list of file paths.
//
// Explicit files are kept in the order given, regardless of extension.
// Directories are walked and contribute matching files in lexical order.
// Hidden entries inside directories are skipped and duplicates are dropped.
func Discover(ctx context.Context, opts DiscoverOptions) ([]string, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = config.DefaultExtensions()
	}
	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, input := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := input
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if !info.IsDir() {
			if !isExcluded(relTo(workDir, absPath), opts.ExcludeGlobs) {
				add(absPath)
			}
			continue
		}

		found, err := walkDirectory(ctx, absPath, workDir, extensions, opts)
		if err != nil {
			return nil, err
		}
		slices.Sort(found)
		for _, f := range found {
			add(f)
		}
	}

	return files, nil
}

func walkDirectory(ctx context.Context, root, workDir string, extensions []string, opts DiscoverOptions) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		rel := relTo(workDir, path)
		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || isExcluded(rel, opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			info, statErr := os.Stat(path)
			if statErr != nil {
				return nil //nolint:nilerr // broken symlinks are skipped
			}
			if info.IsDir() {
				if !opts.FollowSymlinks {
					return nil
				}
				target, evalErr := filepath.EvalSymlinks(path)
				if evalErr != nil {
					return nil //nolint:nilerr // unresolvable targets are skipped
				}
				sub, subErr := walkDirectory(ctx, target, workDir, extensions, opts)
				if subErr != nil {
					return subErr
				}
				files = append(files, sub...)
				return nil
			}
		}

		if hasExtension(path, extensions) && !isExcluded(rel, opts.ExcludeGlobs) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

func relTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(extensions, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}

func isExcluded(rel string, patterns []string) bool {
	return slices.ContainsFunc(patterns, func(p string) bool {
		return matchGlob(rel, p)
	})
}

// matchGlob matches a slash-separated path against a glob pattern.
// Patterns without a slash also match the base name; "**" spans directories.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStar(strings.Split(path, "/"), strings.Split(pattern, "/"))
	}

	if ok, _ := filepath.Match(pattern, path); ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		ok, _ := filepath.Match(pattern, filepath.Base(path))
		return ok
	}
	return false
}

// matchDoubleStar matches path segments against pattern segments where a
// "**" segment consumes zero or more path segments. A trailing "**" also
// matches the directory itself.
func matchDoubleStar(path, pattern []string) bool {
	if len(pattern) == 0 {
		return len(path) == 0
	}
	if pattern[0] == "**" {
		rest := pattern[1:]
		for i := 0; i <= len(path); i++ {
			if matchDoubleStar(path[i:], rest) {
				return true
			}
		}
		return false
	}
	if len(path) == 0 {
		return false
	}
	if ok, _ := filepath.Match(pattern[0], path[0]); !ok {
		return false
	}
	return matchDoubleStar(path[1:], pattern[1:])
}
