package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/yngvem/briefcase/console"
	platformerrors "github.com/yngvem/briefcase/errors"
	"github.com/yngvem/briefcase/exec"
	"github.com/yngvem/briefcase/logging"
	"github.com/yngvem/briefcase/template"
)

// runtime holds what commands reach outside the process through, so tests
// can replace it.
type runtime struct {
	executor exec.Executor

	// renderer overrides the cookiecutter renderer when set.
	renderer template.Renderer
}

func newRuntime() *runtime {
	return &runtime{executor: exec.New(exec.WithInheritEnv())}
}

func newRootCmd(rt *runtime) *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "briefcase",
		Short: "Generate platform projects from app templates",
		Long: `briefcase turns the application described in pyproject.toml into a
platform-specific project by rendering the matching project template.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCreateCmd(rt))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "briefcase version %s\n", version)
		},
	}
}

// printError prints err as an error banner.
func printError(w io.Writer, err error) {
	title := "ERROR"
	switch platformerrors.GetCode(err) {
	case platformerrors.CodeInvalidTemplate:
		title = "ERROR: Invalid template repository"
	case platformerrors.CodeUnsupportedVersion:
		title = "ERROR: Template does not support this version"
	case platformerrors.CodeNetwork:
		title = "ERROR: Unable to download template"
	}

	if bannerErr := console.Banner(w, console.LevelError, title, "\n"+err.Error()+"\n"); bannerErr != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
