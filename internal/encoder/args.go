package encoder

import (
	"fmt"
	"strconv"

	"filmcompressor/internal/catalog"
	"filmcompressor/internal/model"
)

// BuildArgs constructs the ffmpeg arguments (without the binary) for one input file.
//
// Stream selectors use ffmpeg's per-type index within the file, so counters
// advance for every stream of a kind whether or not it is mapped. Every stream
// of the file must have a catalog entry; a missing entry means the catalog is
// out of sync with the file list and BuildArgs panics rather than emit a command
// that silently drops streams.
func BuildArgs(s Settings, file model.InputFile, cat catalog.Catalog, outputPath string) []string {
	args := make([]string, 0, 32)
	args = append(args, s.InitArgs()...)
	args = append(args, "-i", file.Path)

	var counters [model.KindCount]int
	for _, st := range file.Streams {
		i, ok := cat.Lookup(st)
		if !ok {
			panic(fmt.Sprintf("encoder: stream %q of %s has no catalog entry", st, file.Path))
		}
		entry := cat.Settings[i]
		kind := st.Kind()
		n := counters[kind]
		if entry.Enabled {
			args = append(args, "-map", "0:"+kind.Letter()+":"+strconv.Itoa(n))
		}
		if entry.Default {
			args = append(args, "-disposition:"+kind.Letter()+":"+strconv.Itoa(n+1), "default")
		}
		counters[kind]++
	}

	args = append(args, s.CompressArgs()...)
	args = append(args, outputPath)
	return args
}
