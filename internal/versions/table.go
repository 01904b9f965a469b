package versions

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render draws set as a table on w, one row per benchmark in name order.
func Render(w io.Writer, set Set) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{Header[0], Header[1], Header[2]})
	for _, name := range set.Names() {
		v := set[name]
		t.AppendRow(table.Row{name, v.Long, v.Short})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
