package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"filmcompressor/internal/catalog"
	"filmcompressor/internal/pipeline"
	"filmcompressor/internal/util"
	"filmcompressor/internal/util/media"
)

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "plan [paths...]",
		Short:         "Print the ffmpeg commands without running them",
		Long:          "Plan probes the inputs and prints one ffmpeg command per file, keeping every stream and the probed default flags.",
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
			cat := catalog.Recompute(files)
			jobs := pipeline.Plan(e.cfg.Settings, files, cat, media.OutputDirName)

			w := cmd.OutOrStdout()
			for _, j := range jobs {
				fmt.Fprintf(w, "# %s (%s, %d streams)\n", j.Input.Path, humanize.Bytes(uint64(j.Input.Size)), len(j.Input.Streams))
				fmt.Fprintln(w, util.ShellQuote(e.ffmpeg, j.Args))
			}
			return nil
		},
	}
}
