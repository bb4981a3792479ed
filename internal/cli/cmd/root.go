package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"filmcompressor/internal/catalog"
	"filmcompressor/internal/config"
	"filmcompressor/internal/session"
	"filmcompressor/internal/ui"
)

const (
	ExitOK          = 0
	ExitCLIError    = 1
	ExitMissingDep  = 2
	ExitEncodeError = 3
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "filmcompressor [paths...]",
		Short: "Batch re-encode films with per-stream selection",
		Long: "Film Compressor probes a set of video files, lets you pick which audio, subtitle and " +
			"attachment streams to keep and which are default, then re-encodes every file with one " +
			"set of ffmpeg settings. Paths may be files or folders; none means the current folder.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Init(cmd.Root()); err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			return nil
		},
		RunE: runInteractive,
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newRunCmd())
	root.AddCommand(newPlanCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runInteractive(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return &ExitError{Code: ExitCLIError, Err: errors.New("interactive mode needs a terminal; use 'filmcompressor plan' or 'filmcompressor run'")}
	}
	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.close()

	policy := catalog.PolicyReset
	if e.cfg.Options.PreserveSelections {
		policy = catalog.PolicyPreserve
	}
	sess := session.New(e.cfg.Settings, policy)

	out, err := ui.Run(cmd.Context(), e.svc, args, sess, e.ffmpeg)
	if err != nil {
		return &ExitError{Code: ExitEncodeError, Err: err}
	}
	if !out.Ran {
		return nil
	}
	reportSummary(cmd, out.OutputDir, out.Summary)
	return nil
}
