package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"filmcompressor/internal/config"
	"filmcompressor/internal/dirs"
	xlog "filmcompressor/internal/log"
	"filmcompressor/internal/pipeline"
	"filmcompressor/internal/progress"
	"filmcompressor/internal/util/deps"
)

// env is everything a command needs after config and dependency resolution.
type env struct {
	cfg    config.Config
	ffmpeg string
	svc    *pipeline.Service
	logger zerolog.Logger
	close  func()
}

// setup loads config, configures logging and resolves ffmpeg/ffprobe.
// Interactive sessions log to a file since the TUI owns the terminal.
func setup(cmd *cobra.Command, interactive bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, &ExitError{Code: ExitCLIError, Err: err}
	}

	e := &env{cfg: cfg, close: func() {}}
	var out io.Writer = cmd.ErrOrStderr()
	if interactive || cfg.Options.LogFile != "" {
		path := cfg.Options.LogFile
		if path == "" {
			path, err = dirs.DefaultLogFile()
		}
		var f *os.File
		if err == nil {
			f, err = xlog.OpenFile(path)
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
			out = io.Discard
		} else {
			out = f
			e.close = func() { _ = f.Close() }
		}
	}
	xlog.Configure(xlog.Config{Level: cfg.Options.LogLevel, Output: out})
	e.logger = xlog.WithComponent("cli")

	ffprobe, err := deps.FindFFprobe(cfg.Options.FFprobePath)
	if err != nil {
		e.close()
		return nil, &ExitError{Code: ExitMissingDep, Err: err}
	}
	ffmpeg, err := deps.FindFFmpeg(cfg.Options.FFmpegPath)
	if err != nil {
		e.close()
		return nil, &ExitError{Code: ExitMissingDep, Err: err}
	}
	e.ffmpeg = ffmpeg

	opts := []pipeline.Option{
		pipeline.WithFFmpegPath(ffmpeg),
		pipeline.WithFFprobePath(ffprobe),
		pipeline.WithJobs(cfg.Options.Jobs),
		pipeline.WithVerbose(cfg.Options.Verbose),
		pipeline.WithLogger(xlog.WithComponent("pipeline")),
		// Batches run after the TUI has released the terminal.
		pipeline.WithReporter(progress.Text{W: cmd.ErrOrStderr()}),
	}
	e.svc = pipeline.NewService(opts...)

	e.logger.Debug().Str("ffmpeg", ffmpeg).Str("ffprobe", ffprobe).Msg("dependencies resolved")
	return e, nil
}

// reportSummary prints the batch outcome. Per-file ffmpeg failures are listed
// but do not change the exit status.
func reportSummary(cmd *cobra.Command, outDir string, sum pipeline.Summary) {
	fmt.Fprintf(cmd.OutOrStdout(), "Encoded %d/%d file(s) into %s\n", sum.Succeeded, sum.Total, outDir)
	for _, f := range sum.Failures {
		fmt.Fprintf(cmd.ErrOrStderr(), "- %s (exit %d): %v\n", f.Input, f.Code, f.Err)
	}
}
