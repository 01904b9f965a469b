//go:build unix

package env

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// RequireWritableDir returns an error unless dir is a directory the
// current user may create files in.
func RequireWritableDir(dir string) error {
	if err := RequireDir(dir); err != nil {
		return err
	}
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return &fs.PathError{Op: "access", Path: dir, Err: err}
	}
	return nil
}
