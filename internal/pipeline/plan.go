package pipeline

import (
	"filmcompressor/internal/catalog"
	"filmcompressor/internal/encoder"
	"filmcompressor/internal/model"
	"filmcompressor/internal/util/media"
)

// Job is one planned ffmpeg invocation.
type Job struct {
	Input  model.InputFile
	Output string
	Args   []string // ffmpeg arguments without the binary
}

// Plan synthesizes one job per file, writing into outDir.
func Plan(s encoder.Settings, files []model.InputFile, cat catalog.Catalog, outDir string) []Job {
	inputs := make([]string, len(files))
	for i, f := range files {
		inputs[i] = f.Path
	}
	outputs := media.OutputPaths(outDir, inputs)

	jobs := make([]Job, len(files))
	for i, f := range files {
		jobs[i] = Job{
			Input:  f,
			Output: outputs[i],
			Args:   encoder.BuildArgs(s, f, cat, outputs[i]),
		}
	}
	return jobs
}
