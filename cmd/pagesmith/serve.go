package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/pagesmith"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pages rendered on demand for preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *pagesmith.App) error {
				if err := app.Serve(ctx); err != nil {
					opts.out.PrintError("%v", err)
					return err
				}
				return nil
			})
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	cmd.Flags().String("maps-api-key", "", "Google Static Maps API key")
	_ = opts.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = opts.v.BindPFlag("maps_api_key", cmd.Flags().Lookup("maps-api-key"))
	return cmd
}
