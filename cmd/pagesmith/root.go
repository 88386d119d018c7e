package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/3-lines-studio/pagesmith"
	"github.com/3-lines-studio/pagesmith/internal/adapters/cli"
	"github.com/3-lines-studio/pagesmith/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	cfgFile string
	v       *viper.Viper
	out     *cli.Output
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{v: viper.New(), out: cli.NewOutput()}

	cmd := &cobra.Command{
		Use:           "pagesmith",
		Short:         "Render static business-listing pages",
		Long:          `pagesmith renders a homepage and one page per location from structured business records.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is ./pagesmith.yaml or ./config/pagesmith.yaml)")
	flags.String("data-dir", "", "directory holding site.json and location records")
	flags.String("source", "", "record source: dir or sqlite")
	flags.String("sqlite-path", "", "SQLite database holding the records")
	flags.String("out-dir", "", "output directory")
	flags.Int("concurrency", 0, "pages rendered in parallel")
	flags.String("locale", "", "locale of the documents to render")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Bool("dev", false, "development mode: verbose errors, console logs")

	bindings := map[string]string{
		"data_dir":    "data-dir",
		"source":      "source",
		"sqlite_path": "sqlite-path",
		"out_dir":     "out-dir",
		"concurrency": "concurrency",
		"locale":      "locale",
		"log.level":   "log-level",
		"dev":         "dev",
	}
	for key, flag := range bindings {
		_ = opts.v.BindPFlag(key, flags.Lookup(flag))
	}

	cmd.AddCommand(
		newBuildCommand(opts),
		newValidateCommand(opts),
		newServeCommand(opts),
		newInitCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.v, o.cfgFile)
	if err != nil {
		return nil, err
	}
	if cfg.Dev {
		cfg.Log.Development = true
	}
	return cfg, nil
}

// withApp loads the configuration, opens the app and runs fn with a context
// cancelled on SIGINT or SIGTERM.
func (o *rootOptions) withApp(cmd *cobra.Command, fn func(ctx context.Context, app *pagesmith.App) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := o.loadConfig()
	if err != nil {
		o.out.PrintError("%v", err)
		return err
	}

	app, err := pagesmith.New(ctx, cfg, pagesmith.WithOutput(o.out))
	if err != nil {
		o.out.PrintError("%v", err)
		return err
	}
	defer func() { _ = app.Close() }()

	return fn(ctx, app)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pagesmith version %s\n", version)
		},
	}
}
