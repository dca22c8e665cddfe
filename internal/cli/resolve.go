package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"repomap/internal/app"
)

type resolveOptions struct {
	Map     string
	Project string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve <project>",
		Short: "Resolve a project name to prioritized index groups",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Project = args[0]
			}
			return runResolve(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Map, "map", "", "Map file path")
	cmd.Flags().StringVar(&opts.Project, "project", "", "Project name")
	_ = viper.BindPFlag("map", cmd.Flags().Lookup("map"))
	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		MapPath: resolveString(cmd, opts.Map, "map", "map"),
		Project: opts.Project,
	})
	if err != nil {
		return err
	}
	for _, group := range result.Groups {
		if group.IsSentinel() {
			fmt.Println("no further candidates")
			continue
		}
		fmt.Printf("group: %s\n", strings.Join(group, " "))
	}
	return nil
}
