package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/benchkit/benchctl/internal/env"
	"github.com/benchkit/benchctl/internal/tool"
	"github.com/benchkit/benchctl/internal/versions"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var versionsOutput string
var versionsTable bool

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Record the version of every benchmarked runtime",
	Long: `Versions runs "make version" and "make version-short" in every benchmark
directory and writes the results to a CSV file in the data directory.
Benchmarks whose version targets fail are left out.`,
	Args: cobra.NoArgs,
	RunE: runVersions,
}

func init() {
	versionsCmd.Flags().StringVarP(&versionsOutput, "output", "o", versions.DefaultFile, "CSV file name inside the data directory")
	versionsCmd.Flags().BoolVar(&versionsTable, "table", false, "Also print the collected versions as a table")
	rootCmd.AddCommand(versionsCmd)
}

func runVersions(cmd *cobra.Command, args []string) error {
	l, err := layout()
	if err != nil {
		return err
	}
	// Fail before querying every benchmark if the result cannot be saved.
	if err := env.RequireWritableDir(l.DataDir()); err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}

	runner := &tool.Make{Path: makePath, Stderr: io.Discard}
	if verbose {
		runner.Stderr = os.Stderr
	}

	stopSpinner := startSpinner()
	set, err := versions.Collect(cmd.Context(), runner, l.BenchmarksDir())
	stopSpinner()
	if err != nil {
		return fmt.Errorf("failed to collect versions: %w", err)
	}

	out := filepath.Join(l.DataDir(), versionsOutput)
	if err := versions.WriteFile(out, set); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	if versionsTable {
		versions.Render(cmd.OutOrStdout(), set)
	}
	return nil
}

// startSpinner shows progress on an interactive stderr. Debug logging
// shares that stream, so verbose runs go without it.
func startSpinner() (stop func()) {
	if verbose || !term.IsTerminal(int(os.Stderr.Fd())) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Querying benchmark versions..."
	s.Start()
	return s.Stop
}
