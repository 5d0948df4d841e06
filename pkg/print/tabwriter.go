package print

import (
	"os"
	"text/tabwriter"
)

func NewTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 10, 5, 3, ' ', 0)
}
