// Package media finds input files and names encoder outputs.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var mediaExts = map[string]bool{
	".mkv":  true,
	".mp4":  true,
	".m4v":  true,
	".webm": true,
	".mov":  true,
	".avi":  true,
	".ts":   true,
	".m2ts": true,
	".flv":  true,
	".wmv":  true,
	".mpg":  true,
	".mpeg": true,
}

// IsMedia reports whether path has a recognised media extension.
func IsMedia(path string) bool {
	return mediaExts[strings.ToLower(filepath.Ext(path))]
}

// Discover expands paths into input files. Folders contribute their media
// files (non-recursive, sorted by name); anything else is kept as given so a
// bad path still shows up and fails at probe time. No paths means the
// working directory.
func Discover(paths []string) ([]string, error) {
	if len(paths) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		paths = []string{wd}
	}

	var out []string
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil || !fi.IsDir() {
			out = append(out, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("read folder %s: %w", p, err)
		}
		var found []string
		for _, e := range entries {
			if e.IsDir() || !IsMedia(e.Name()) {
				continue
			}
			found = append(found, filepath.Join(p, e.Name()))
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}
