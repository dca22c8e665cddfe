package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"repomap/internal/app"
)

type lookupOptions struct {
	Map     string
	Project string
}

func newLookupCommand() *cobra.Command {
	opts := lookupOptions{}
	cmd := &cobra.Command{
		Use:   "lookup <project>",
		Short: "Probe mapped indices for a project's release files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Project = args[0]
			}
			return runLookup(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Map, "map", "", "Map file path")
	cmd.Flags().StringVar(&opts.Project, "project", "", "Project name")
	_ = viper.BindPFlag("map", cmd.Flags().Lookup("map"))
	return cmd
}

func runLookup(ctx context.Context, cmd *cobra.Command, opts lookupOptions) error {
	service := newAppService()
	result, err := service.Lookup(ctx, app.LookupRequest{
		MapPath: resolveString(cmd, opts.Map, "map", "map"),
		Project: opts.Project,
	})
	if err != nil {
		return err
	}
	if !result.Found {
		fmt.Printf("%s: not found on any mapped index\n", result.Project)
		return nil
	}
	fmt.Printf("%s: served by %s\n", result.Project, result.IndexURL)
	for _, file := range result.Files {
		if file.Version != "" {
			fmt.Printf("  %s (%s)\n", file.Filename, file.Version)
			continue
		}
		fmt.Printf("  %s\n", file.Filename)
	}
	return nil
}
