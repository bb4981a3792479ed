package encoder

import (
	"context"
	"errors"
	"fmt"

	"filmcompressor/internal/util"
)

// Options control ffmpeg execution.
type Options struct {
	FFmpegPath string
	Verbose    bool
	Runner     util.CmdRunner
}

// ErrSpawn marks failures to start the encoder process at all, as opposed to
// ffmpeg exiting with a non-zero status.
var ErrSpawn = errors.New("ffmpeg could not be started")

// ExitError reports an ffmpeg process that ran and exited non-zero.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return fmt.Sprintf("ffmpeg exited with status %d: %v", e.Code, e.Err) }
func (e *ExitError) Unwrap() error { return e.Err }

// Execute runs ffmpeg with args and waits for it to exit. ffmpeg's output is
// passed through to the terminal.
func Execute(ctx context.Context, args []string, opts Options) error {
	if opts.FFmpegPath == "" {
		return errors.New("ffmpeg path is required")
	}
	runner := opts.Runner
	if runner == nil {
		runner = util.NewDefaultRunner()
	}
	res, err := runner.Run(ctx, util.CmdSpec{
		Path:        opts.FFmpegPath,
		Args:        args,
		Verbose:     opts.Verbose,
		Passthrough: true,
	})
	if err == nil {
		return nil
	}
	if !res.Started {
		return fmt.Errorf("%w: %v", ErrSpawn, err)
	}
	return &ExitError{Code: res.Code, Err: err}
}
