package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"filmcompressor/internal/catalog"
	"filmcompressor/internal/pipeline"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "run [paths...]",
		Short:         "Encode every input without the interactive picker",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			files, err := e.svc.Load(cmd.Context(), args)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			if len(files) == 0 {
				return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("no input files")}
			}

			wd, err := os.Getwd()
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			dir, err := e.svc.Prepare(wd)
			if err != nil {
				return &ExitError{Code: ExitEncodeError, Err: err}
			}

			jobs := pipeline.Plan(e.cfg.Settings, files, catalog.Recompute(files), dir)
			sum, err := e.svc.Run(cmd.Context(), jobs)
			if err != nil {
				return &ExitError{Code: ExitEncodeError, Err: err}
			}
			reportSummary(cmd, dir, sum)
			return nil
		},
	}
}
