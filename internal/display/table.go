package display

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// PrintTurnsTable prints turns as a numbered table.
func PrintTurnsTable(turns []string, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TURN\tMOVES")
	for i, turn := range turns {
		fmt.Fprintf(w, "%d\t%s\n", i+1, turn)
	}
	return w.Flush()
}
