// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"github.com/gamo/vocab/internal/report"

	"github.com/spf13/cobra"
)

func newStatsCommand(app *App) *cobra.Command {
	var opts report.Options
	var format string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print record counts",
		Long: `Print the number of records per type, in manifest order.

The rename script is not applied. Missing folders and data files are
created, as on every read.`,
		Args: cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			opts.Format = report.Format(format)
			return app.stats(cmd.Context(), opts)
		}),
	}

	cmd.Flags().StringVar(&format, "format", string(report.FormatText), "output format (text, toml)")
	cmd.Flags().BoolVar(&opts.ByFolder, "by-folder", false, "count per data file instead of per type")
	cmd.Flags().BoolVar(&opts.Total, "total", true, "include the total record count")
	return cmd
}

func (a *App) stats(ctx context.Context, opts report.Options) error {
	if err := opts.Format.Validate(); err != nil {
		return err
	}
	sess, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	v, _, err := a.build(ctx, sess)
	if err != nil {
		return err
	}
	return report.Write(a.stdout, v, opts)
}
