package media

import (
	"fmt"
	"path/filepath"
	"strings"

	"filmcompressor/internal/util"
)

// OutputDirName is the base name of the folder encoded files are written to.
const OutputDirName = "output"

// NextOutputDir returns the first of "output", "output (1)", "output (2)", ...
// under base that does not exist yet.
func NextOutputDir(base string) string {
	dir := filepath.Join(base, OutputDirName)
	for n := 1; util.Exists(dir); n++ {
		dir = filepath.Join(base, fmt.Sprintf("%s (%d)", OutputDirName, n))
	}
	return dir
}

// OutputPaths maps each input to dir/<basename>. When two inputs share a
// basename the later ones get " (N)" before the extension.
func OutputPaths(dir string, inputs []string) []string {
	out := make([]string, len(inputs))
	used := make(map[string]bool, len(inputs))
	for i, in := range inputs {
		name := filepath.Base(in)
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		candidate := name
		for n := 1; used[candidate]; n++ {
			candidate = fmt.Sprintf("%s (%d)%s", stem, n, ext)
		}
		used[candidate] = true
		out[i] = filepath.Join(dir, candidate)
	}
	return out
}
