package build

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benchkit/benchctl/internal/tool"
)

// fakeRunner records invocations and fails the targets listed in fail.
type fakeRunner struct {
	calls []string
	dirs  []string
	fail  map[string]bool
}

func (f *fakeRunner) Run(ctx context.Context, dir string, args ...string) error {
	target := strings.Join(args, " ")
	f.calls = append(f.calls, target)
	f.dirs = append(f.dirs, dir)
	if f.fail[target] {
		return errors.New("exit status 2")
	}
	return nil
}

func (f *fakeRunner) Output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	panic("unexpected Output call")
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name string
		fail map[string]bool
		want string
	}{
		{
			name: "both succeed",
		},
		{
			name: "clean fails",
			fail: map[string]bool{"clean": true},
			want: "make clean did not exit cleanly.\n",
		},
		{
			name: "build fails",
			fail: map[string]bool{"": true},
			want: "make could not compile all benchmarks.\n",
		},
		{
			name: "both fail",
			fail: map[string]bool{"clean": true, "": true},
			want: "make clean did not exit cleanly.\nmake could not compile all benchmarks.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{fail: tt.fail}
			var out bytes.Buffer

			Compile(context.Background(), r, "/bench", &out)

			// The build step runs even when clean fails.
			if got := strings.Join(r.calls, ","); got != "clean," {
				t.Errorf("calls = %q, want %q", got, "clean,")
			}
			for _, dir := range r.dirs {
				if dir != "/bench" {
					t.Errorf("ran in %q, want %q", dir, "/bench")
				}
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestCompileE2E(t *testing.T) {
	if _, err := exec.LookPath("make"); err != nil {
		t.Skip("make not found in PATH")
	}
	dir := t.TempDir()
	makefile := "all:\n\ttouch built\n\nclean:\n\texit 1\n"
	if err := os.WriteFile(filepath.Join(dir, "Makefile"), []byte(makefile), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	Compile(context.Background(), &tool.Make{}, dir, &out)

	if want := "make clean did not exit cleanly.\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if _, err := os.Stat(filepath.Join(dir, "built")); err != nil {
		t.Errorf("build step did not run after failed clean: %v", err)
	}
}
