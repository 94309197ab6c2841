package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"catchup.dev/pkg/catchup/internal/domain"
)

var checkTasksFlag []string
var checkExecutableFlag string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "check <project> [executable]",
		Short:        "Run the project's tests progressively by task tag",
		Long:         checkLongDescription,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			executable := checkExecutableFlag
			if len(args) > 1 {
				executable = args[1]
			}

			return workflow.Check(c.Context(), domain.CheckArgs{
				Project:    args[0],
				Executable: executable,
				Only:       checkTasksFlag,
				TestSuffix: viper.GetString(testSuffixKey),
			})
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&checkTasksFlag, "task", "t", nil, "run only the listed task tags (e.g. task_1,task_3); skips the final full-suite verification")
	cmd.Flags().StringVarP(&checkExecutableFlag, "executable", "e", "", "path to the built test executable (relative paths resolve under <project>/build)")
}
