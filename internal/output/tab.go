// Package output provides resolved-variant output formatters.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/inodb/varlift/internal/resolve"
)

// TabWriter writes resolution results in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Input",
			"Status",
			"HGVSp",
			"HGVSc",
			"HGVSg",
			"UCSC",
			"Ensembl",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes one resolution result. Failed resolutions get "-" in the
// descriptor columns.
func (tw *TabWriter) Write(input string, v *resolve.Variant) error {
	fields := []string{input, "-", "-", "-", "-", "-", "-"}

	if v != nil {
		fields[1] = v.State().String()
		if v.Resolved() {
			g, c, p := v.HGVS()
			fields[2] = p
			fields[3] = c
			fields[4] = g
			fields[5] = v.UCSC()
			fields[6] = v.Ensembl()
		}
	}

	_, err := tw.w.WriteString(strings.Join(fields, "\t") + "\n")
	return err
}

// Flush flushes buffered output.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
