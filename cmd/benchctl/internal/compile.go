package internal

import (
	"fmt"
	"os"

	"github.com/benchkit/benchctl/internal/build"
	"github.com/benchkit/benchctl/internal/env"
	"github.com/benchkit/benchctl/internal/tool"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile all benchmarks",
	Long: `Compile runs "make clean" and then "make" in the benchmarks directory.
A failing step prints a warning; compile itself always succeeds.`,
	Args: cobra.NoArgs,
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	l, err := layout()
	if err != nil {
		return err
	}
	if err := env.RequireDir(l.BenchmarksDir()); err != nil {
		return fmt.Errorf("failed to open benchmarks: %w", err)
	}

	// The build tool writes straight to the terminal, like the warnings.
	runner := &tool.Make{Path: makePath, Stdout: cmd.OutOrStdout(), Stderr: os.Stderr}
	build.Compile(cmd.Context(), runner, l.BenchmarksDir(), cmd.OutOrStdout())
	return nil
}
