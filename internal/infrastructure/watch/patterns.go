package watch

import (
	"path/filepath"
	"strings"
)

// FileFilter decides which workspace files count as data changes.
type FileFilter struct {
	Include []string
	Exclude []string
}

// DataFiles matches the SQLite database and its sidecar files, the audit log and the config.
func DataFiles(dbName string) *FileFilter {
	return &FileFilter{
		Include: []string{dbName, dbName + "-journal", dbName + "-wal", "events.jsonl", "config.yaml"},
		Exclude: []string{"*.tmp", "*~", ".#*"},
	}
}

// Matches reports whether the base name of path passes the filter.
// Excludes win over includes; an empty include list admits everything.
func (f *FileFilter) Matches(path string) bool {
	base := filepath.Base(path)
	if base == "" || strings.HasSuffix(path, string(filepath.Separator)) {
		return false
	}

	for _, pattern := range f.Exclude {
		if matched, _ := filepath.Match(pattern, base); matched {
			return false
		}
	}

	if len(f.Include) == 0 {
		return true
	}
	for _, pattern := range f.Include {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}
