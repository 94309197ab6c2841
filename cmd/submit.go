package cmd

import (
	"github.com/spf13/cobra"

	"catchup.dev/pkg/catchup/internal/domain"
)

var submitYesFlag bool

// submitCmd represents the submit command.
var submitCmd = newSubmitCmd()

func newSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "submit <project>",
		Short:        "Submit the solution files to Exercism",
		Long:         "Read .exercism/config.json and submit the listed solution files via the exercism CLI.\n\n" + projectArgHelp,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			return workflow.Submit(c.Context(), domain.SubmitArgs{
				Project: args[0],
				Auto:    submitYesFlag,
			})
		},
	}

	cmd.Flags().BoolVarP(&submitYesFlag, "yes", "y", false, "submit without the confirmation prompt")

	return cmd
}

func init() {
	rootCmd.AddCommand(submitCmd)
}
