package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"catchup.dev/pkg/catchup/internal/domain"
)

var runSubmitFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "run <project>",
		Short:        "Build, test and submit an exercise",
		Long:         runLongDescription,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			return workflow.Run(c.Context(), domain.RunArgs{
				Project:    args[0],
				AutoSubmit: viper.GetBool(submitAutoKey),
				TestSuffix: viper.GetString(testSuffixKey),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&runSubmitFlag, "submit", "s", viper.GetBool(submitAutoKey), "submit to Exercism without prompting when tests pass")
	bindFlagToConfig(cmd.Flags().Lookup("submit"), submitAutoKey)
}
