package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"filmcompressor/internal/util/deps"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "doctor",
		Short:         "Diagnose external dependencies (ffmpeg, ffprobe)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ff, ferr := deps.FindFFmpeg(viper.GetString("ffmpeg"))
			if ferr != nil {
				return &ExitError{Code: ExitMissingDep, Err: ferr}
			}
			fp, perr := deps.FindFFprobe(viper.GetString("ffprobe"))
			if perr != nil {
				return &ExitError{Code: ExitMissingDep, Err: perr}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "FFmpeg:  %s\n", ff)
			fmt.Fprintf(cmd.OutOrStdout(), "FFprobe: %s\n", fp)
			if cfg := viper.ConfigFileUsed(); cfg != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Config:  %s\n", cfg)
			}
			return nil
		},
	}
}
