package theme

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobMatch is the outcome of expanding one content glob.
type GlobMatch struct {
	Pattern string   `json:"pattern" yaml:"pattern"`
	Files   []string `json:"files" yaml:"files"`
}

// Empty reports whether the glob matched nothing.
func (m GlobMatch) Empty() bool {
	return len(m.Files) == 0
}

// CheckContent expands every content glob relative to root. The build tool
// emits no classes for a glob that matches nothing; callers surface those
// as warnings.
func CheckContent(root string, globs []string) ([]GlobMatch, error) {
	matches := make([]GlobMatch, 0, len(globs))
	for _, glob := range globs {
		base, pattern := root, normalizeGlob(glob)
		if strings.HasPrefix(pattern, "/") {
			base, pattern = "/", strings.TrimPrefix(pattern, "/")
		}

		files, err := doublestar.Glob(os.DirFS(base), pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", glob, err)
		}
		if files == nil {
			files = []string{}
		}
		matches = append(matches, GlobMatch{Pattern: glob, Files: files})
	}
	return matches, nil
}

// ContentWarnings turns globs without matches into warnings.
func ContentWarnings(matches []GlobMatch) []Warning {
	var warnings []Warning
	for i, m := range matches {
		if m.Empty() {
			warnings = append(warnings, Warning{
				Field:   fmt.Sprintf("content[%d]", i),
				Message: fmt.Sprintf("%q matches no files", m.Pattern),
			})
		}
	}
	return warnings
}

// normalizeGlob strips a leading "./" and redundant separators so the
// pattern can be matched against an fs.FS.
func normalizeGlob(glob string) string {
	glob = strings.TrimSpace(glob)
	if glob == "" {
		return glob
	}
	cleaned := path.Clean(glob)
	if cleaned == "." {
		return "*"
	}
	return cleaned
}
