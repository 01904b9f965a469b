package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/benchkit/benchctl/internal/env"
	"github.com/benchkit/benchctl/internal/tool"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	rootDir  string
	makePath string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "benchctl",
	Short: "benchctl compiles benchmarks and records runtime versions",
	Long: `benchctl drives the build tool of a benchmark tree: it compiles every
benchmark and records the version of each runtime under test.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetOutputLevel(log.Ldebug)
		} else {
			log.SetOutputLevel(log.Linfo)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root containing benchmarks/ and data/")
	rootCmd.PersistentFlags().StringVar(&makePath, "make", tool.DefaultMake, "Build tool to invoke")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging and build tool diagnostics")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

func layout() (*env.Layout, error) {
	l, err := env.New(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}
	return l, nil
}
