// Package cmd provides the root command and CLI setup for catchup.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"catchup.dev/pkg/catchup/internal/adapter"
	"catchup.dev/pkg/catchup/internal/controller"
	"catchup.dev/pkg/catchup/internal/domain"
)

var fsAdapter adapter.ProjectFS
var testRunner adapter.TestRunner
var buildRunner adapter.BuildRunner
var submitClient adapter.SubmitClient
var progressive domain.Progressive
var workflow domain.Workflow
var ui controller.UI

// verboseFlag raises the file log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalProjectFS(viper.GetString(workspaceConfigKey))
	testRunner = adapter.NewLocalTestRunner(timeoutFromConfig(testTimeoutKey, adapter.DefaultTestTimeout))
	buildRunner = adapter.NewCMakeBuildRunner(fsAdapter, timeoutFromConfig(buildTimeoutKey, adapter.DefaultBuildTimeout))
	submitClient = adapter.NewExercismClient(timeoutFromConfig(submitTimeoutKey, adapter.DefaultSubmitTimeout))
	progressive = domain.NewProgressive(fsAdapter, testRunner, ui)
	workflow = domain.NewWorkflow(fsAdapter, buildRunner, submitClient, progressive, ui)
}

const projectArgHelp = `The project argument accepts several forms:
  - lasagna            resolved against the working directory or the
                       configured workspace (paths.workspace)
  - cpp/lasagna        workspace-relative with the cpp/ prefix
  - /abs/path/lasagna  used as-is`

const rootLongDescription = `Catchup builds, tests and submits Exercism C++ exercise solutions. Tests run
progressively by task tag ([task_1], [task_2], ...) so a failure points at
the exact task that broke while earlier tasks still pass.

` + projectArgHelp

const checkLongDescription = `Run the project's Catch2 tests one task tag at a time, in ascending order,
stopping at the first failing tag. When every tag passes the complete suite
runs once more to catch cross-tag interactions.

` + projectArgHelp

const runLongDescription = `Build the project, run its tests progressively by task tag and offer to
submit the solution when everything passes.

` + projectArgHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catchup",
		Short: "Build, test and submit C++ exercise solutions",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
