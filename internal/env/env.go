package env

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	benchmarksDirName = "benchmarks"
	dataDirName       = "data"
)

// Layout locates the directories of a benchmark project.
type Layout struct {
	root string
}

// New returns the layout rooted at root. An empty root means the
// current directory.
func New(root string) (*Layout, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	return &Layout{root: abs}, nil
}

// Root returns the absolute project root.
func (l *Layout) Root() string {
	return l.root
}

// BenchmarksDir holds one subdirectory per benchmarked runtime.
func (l *Layout) BenchmarksDir() string {
	return filepath.Join(l.root, benchmarksDirName)
}

// DataDir is where collected results are written.
func (l *Layout) DataDir() string {
	return filepath.Join(l.root, dataDirName)
}

// RequireDir returns an error unless dir exists and is a directory.
func RequireDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}
