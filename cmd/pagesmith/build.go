package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/pagesmith"
)

func newBuildCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every page into the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *pagesmith.App) error {
				_, err := app.Build(ctx)
				return err
			})
		},
	}
	cmd.Flags().Bool("fail-fast", false, "stop at the first record that fails to render")
	_ = opts.v.BindPFlag("fail_fast", cmd.Flags().Lookup("fail-fast"))
	return cmd
}

func newValidateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Decode, validate and render every record without writing files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *pagesmith.App) error {
				_, err := app.Validate(ctx)
				return err
			})
		},
	}
}
