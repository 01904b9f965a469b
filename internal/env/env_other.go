//go:build !unix

package env

// RequireWritableDir returns an error unless dir is a directory. Write
// permission is left for the write itself to report.
func RequireWritableDir(dir string) error {
	return RequireDir(dir)
}
