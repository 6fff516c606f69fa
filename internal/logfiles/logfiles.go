package logfiles

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	perrors "github.com/prizmlabs/prizm/internal/errors"
)

// File describes one timestamped log file in a log directory.
type File struct {
	// Path is the full path to the log file.
	Path string

	// Timestamp is the creation instant encoded in the filename.
	Timestamp time.Time

	// Size is the file size in bytes.
	Size int64
}

// Name returns the file's base name.
func (f File) Name() string {
	return filepath.Base(f.Path)
}

// List returns the log files in dir, oldest first. Only files matching the
// <unix-ms>.log naming scheme are returned; anything else in the directory
// is skipped. A missing directory yields an empty list, not an error.
func List(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading log directory %s: %w", dir, err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		stamp, ok := parseName(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// File vanished between ReadDir and Info.
			continue
		}
		files = append(files, File{
			Path:      filepath.Join(dir, entry.Name()),
			Timestamp: stamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Timestamp.Before(files[j].Timestamp)
	})
	return files, nil
}

// Latest returns the newest log file in dir.
// Returns ErrNoLogFiles if the directory holds none.
func Latest(dir string) (File, error) {
	files, err := List(dir)
	if err != nil {
		return File{}, err
	}
	if len(files) == 0 {
		return File{}, fmt.Errorf("%w in %s", perrors.ErrNoLogFiles, dir)
	}
	return files[len(files)-1], nil
}

// Find locates a log file in dir by base name.
// Returns ErrLogFileNotFound if no such file exists.
func Find(dir, name string) (File, error) {
	files, err := List(dir)
	if err != nil {
		return File{}, err
	}
	for _, f := range files {
		if f.Name() == name {
			return f, nil
		}
	}
	return File{}, fmt.Errorf("%w: %s in %s", perrors.ErrLogFileNotFound, name, dir)
}

// ReadLines returns the records in a log file, one per line, without the
// trailing newline. An empty file yields an empty slice.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading log file %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	lines := strings.Split(string(data), "\n")
	// A well-formed log ends with a newline, leaving one empty trailing element.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// PruneCandidates returns the files that Prune would remove: all but the
// newest keep files. files must be sorted oldest first, as List returns them.
func PruneCandidates(files []File, keep int) []File {
	if keep < 0 {
		keep = 0
	}
	if len(files) <= keep {
		return nil
	}
	return files[:len(files)-keep]
}

// Prune removes all but the newest keep log files in dir and returns the
// paths it removed. Removal stops at the first failure, returning the files
// removed so far alongside the error.
func Prune(dir string, keep int) ([]string, error) {
	files, err := List(dir)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, f := range PruneCandidates(files, keep) {
		if err := os.Remove(f.Path); err != nil {
			return removed, fmt.Errorf("removing %s: %w", f.Path, err)
		}
		removed = append(removed, f.Path)
	}
	return removed, nil
}

// parseName extracts the millisecond timestamp from a <unix-ms>.log name.
func parseName(name string) (time.Time, bool) {
	base, ok := strings.CutSuffix(name, ".log")
	if !ok || base == "" {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(base, 10, 64)
	if err != nil || ms < 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}
