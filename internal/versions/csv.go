package versions

import (
	"encoding/csv"
	"io"
	"os"
)

// DefaultFile is the name of the CSV file written to the data directory.
const DefaultFile = "versions.csv"

// Header is the first row of every versions file.
var Header = []string{"Benchmark", "Version", "Version Short"}

// Write writes set to w as CSV: the header, then one row per benchmark in
// name order.
func Write(w io.Writer, set Set) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, name := range set.Names() {
		v := set[name]
		if err := cw.Write([]string{name, v.Long, v.Short}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes set to path, replacing any existing content. The parent
// directory must already exist.
func WriteFile(path string, set Set) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, set); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
