package cmd

import (
	"github.com/spf13/cobra"

	"catchup.dev/pkg/catchup/internal/domain"
)

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "build <project>",
		Short:        "Build the project's test executable",
		Long:         "Configure and build the project with CMake into <project>/build.\n\n" + projectArgHelp,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			_, err := workflow.Build(c.Context(), domain.BuildArgs{Project: args[0]})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
