// Package versions gathers the runtime version reported by every benchmark
// and writes them out as CSV.
package versions

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/benchkit/benchctl/internal/tool"
	"github.com/qiniu/x/log"
)

// Build tool targets queried in every benchmark directory.
const (
	LongTarget  = "version"
	ShortTarget = "version-short"
)

// Version is the long and short version string of one runtime.
type Version struct {
	Long  string
	Short string
}

// Set maps a benchmark name to its version.
type Set map[string]Version

// Names returns the benchmark names in ascending order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Collect queries every directory strictly below root for its version.
//
// Directories where either query fails are left out of the result. The
// walk descends into nested directories too; nested directories that
// cannot be read are skipped, and only an error walking root itself is
// returned.
func Collect(ctx context.Context, runner tool.Runner, root string) (Set, error) {
	set := make(Set)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Debugf("versions: skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() || path == root {
			return nil
		}
		v, err := query(ctx, runner, path)
		if err != nil {
			log.Debugf("versions: skipping %s: %v", path, err)
			return nil
		}
		set[filepath.Base(path)] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

func query(ctx context.Context, runner tool.Runner, dir string) (Version, error) {
	long, err := runner.Output(ctx, dir, LongTarget)
	if err != nil {
		return Version{}, err
	}
	short, err := runner.Output(ctx, dir, ShortTarget)
	if err != nil {
		return Version{}, err
	}
	return Version{
		Long:  strings.TrimSpace(string(long)),
		Short: strings.TrimSpace(string(short)),
	}, nil
}
