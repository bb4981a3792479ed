// Package pipeline loads input files and runs encode batches.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"filmcompressor/internal/encoder"
	xlog "filmcompressor/internal/log"
	"filmcompressor/internal/model"
	"filmcompressor/internal/probe"
	"filmcompressor/internal/progress"
	"filmcompressor/internal/util"
	"filmcompressor/internal/util/media"
)

// DefaultJobs bounds concurrent ffprobe calls when no limit is configured.
const DefaultJobs = 4

// Service orchestrates the load → plan → encode workflow.
type Service struct {
	ffmpegPath  string
	ffprobePath string
	runner      util.CmdRunner
	logger      zerolog.Logger
	reporter    progress.Reporter
	jobs        int
	verbose     bool
}

// Option configures a Service.
type Option func(*Service)

// WithFFmpegPath sets the ffmpeg binary path.
func WithFFmpegPath(p string) Option {
	return func(s *Service) {
		s.ffmpegPath = p
	}
}

// WithFFprobePath sets the ffprobe binary path.
func WithFFprobePath(p string) Option {
	return func(s *Service) {
		s.ffprobePath = p
	}
}

// WithRunner injects a custom command runner (useful for testing).
func WithRunner(r util.CmdRunner) Option {
	return func(s *Service) {
		s.runner = r
	}
}

// WithLogger sets the logger for load and run diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithReporter attaches a batch progress reporter.
func WithReporter(rp progress.Reporter) Option {
	return func(s *Service) {
		s.reporter = rp
	}
}

// WithJobs bounds the number of concurrent probes.
func WithJobs(n int) Option {
	return func(s *Service) {
		s.jobs = n
	}
}

// WithVerbose echoes subprocess command lines.
func WithVerbose(v bool) Option {
	return func(s *Service) {
		s.verbose = v
	}
}

// NewService constructs a new Service with the provided options.
func NewService(opts ...Option) *Service {
	s := &Service{logger: xlog.WithComponent("pipeline")}
	for _, o := range opts {
		o(s)
	}
	if s.runner == nil {
		s.runner = util.NewDefaultRunner()
	}
	if s.reporter == nil {
		s.reporter = progress.Nop{}
	}
	if s.jobs <= 0 {
		s.jobs = DefaultJobs
	}
	return s
}

// Load discovers the input files under paths and probes them concurrently.
// Results keep discovery order. A file that cannot be probed or stat'ed is
// kept with zero streams.
func (s *Service) Load(ctx context.Context, paths []string) ([]model.InputFile, error) {
	found, err := media.Discover(paths)
	if err != nil {
		return nil, err
	}

	prober := probe.New(s.ffprobePath, s.runner)
	files := make([]model.InputFile, len(found))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.jobs)
	for i, p := range found {
		i, p := i, p
		g.Go(func() error {
			files[i] = s.loadOne(gctx, prober, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Info().Int(xlog.FieldFiles, len(files)).Msg("files loaded")
	return files, nil
}

func (s *Service) loadOne(ctx context.Context, prober *probe.Prober, path string) model.InputFile {
	f := model.InputFile{Path: path}
	fi, err := os.Stat(path)
	if err != nil {
		s.logger.Warn().Err(err).Str(xlog.FieldPath, path).Msg("stat failed")
		return f
	}
	f.Size = fi.Size()

	streams, err := prober.Streams(ctx, path)
	if err != nil {
		s.logger.Warn().Err(err).Str(xlog.FieldPath, path).Msg("probe failed")
		return f
	}
	f.Streams = streams
	s.logger.Debug().Str(xlog.FieldPath, path).Int(xlog.FieldStreams, len(streams)).Msg("probed")
	return f
}

// Prepare creates the next free output folder under workdir.
func (s *Service) Prepare(workdir string) (string, error) {
	dir := media.NextOutputDir(workdir)
	if err := util.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("create output folder: %w", err)
	}
	s.logger.Info().Str(xlog.FieldOutput, dir).Msg("output folder created")
	return dir, nil
}

// Failure records a job whose encoder exited unsuccessfully.
type Failure struct {
	Input string
	Code  int
	Err   error
}

// Summary aggregates the outcome of a batch.
type Summary struct {
	Total     int
	Succeeded int
	Failures  []Failure
}

// Run executes jobs one after another. A job whose ffmpeg exits non-zero is
// logged and the batch moves on; an ffmpeg that cannot be started aborts the
// batch.
func (s *Service) Run(ctx context.Context, jobs []Job) (Summary, error) {
	sum := Summary{Total: len(jobs)}
	if s.ffmpegPath == "" {
		return sum, errors.New("ffmpeg path is required")
	}

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		u := progress.Update{Index: i, Total: len(jobs), Input: job.Input.Path, Output: job.Output}
		u.Stage = progress.StageEncoding
		s.reporter.Update(u)
		s.logger.Info().Int(xlog.FieldIndex, i).Str(xlog.FieldPath, job.Input.Path).Str(xlog.FieldOutput, job.Output).Msg("encoding")

		err := encoder.Execute(ctx, job.Args, encoder.Options{
			FFmpegPath: s.ffmpegPath,
			Verbose:    s.verbose,
			Runner:     s.runner,
		})
		switch {
		case err == nil:
			sum.Succeeded++
			u.Stage = progress.StageCompleted
			s.reporter.Update(u)
		case errors.Is(err, encoder.ErrSpawn):
			s.logger.Error().Err(err).Str(xlog.FieldPath, job.Input.Path).Msg("encoder could not start")
			return sum, err
		default:
			code := -1
			var ee *encoder.ExitError
			if errors.As(err, &ee) {
				code = ee.Code
			}
			sum.Failures = append(sum.Failures, Failure{Input: job.Input.Path, Code: code, Err: err})
			u.Stage = progress.StageFailed
			u.Err = err
			s.reporter.Update(u)
			s.logger.Warn().Err(err).Str(xlog.FieldPath, job.Input.Path).Int(xlog.FieldCode, code).Msg("encode failed")
		}
	}
	return sum, nil
}
