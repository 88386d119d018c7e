package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/pagesmith/internal/initcmd"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "init <project-dir>",
		Short: "Create a new project with example records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(args[0])
			if err != nil {
				opts.out.PrintError("Failed to resolve project directory: %v", err)
				return err
			}
			if err := initcmd.Run(dir, initcmd.TemplateData{Name: name}, opts.out); err != nil {
				opts.out.PrintError("%v", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "business name used in the example records")
	return cmd
}
