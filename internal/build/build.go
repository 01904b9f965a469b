// Package build compiles the benchmark tree with the external build tool.
package build

import (
	"context"
	"fmt"
	"io"

	"github.com/benchkit/benchctl/internal/tool"
	"github.com/qiniu/x/log"
)

// step is a single build tool invocation and the warning printed when it
// exits non-zero.
type step struct {
	args    []string
	warning string
}

var steps = []step{
	{args: []string{"clean"}, warning: "make clean did not exit cleanly."},
	{args: nil, warning: "make could not compile all benchmarks."},
}

// Compile cleans and then builds every benchmark under dir.
//
// Both steps always run. A failing step prints a warning to out and
// compilation carries on; Compile never reports failure to its caller.
func Compile(ctx context.Context, runner tool.Runner, dir string, out io.Writer) {
	for _, s := range steps {
		if err := runner.Run(ctx, dir, s.args...); err != nil {
			log.Debugf("build: %v", err)
			fmt.Fprintln(out, s.warning)
		}
	}
}
