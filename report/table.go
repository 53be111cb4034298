// Package report provides the console output building blocks shared by the
// demonstrations: fixed-width left-aligned tables, section rules and banners,
// and summaries of repeated run timings.
package report

import (
	"fmt"
	"io"
	"strings"
)

// Rule returns a horizontal rule of n copies of ch.
func Rule(n int, ch byte) string {
	return strings.Repeat(string(ch), n)
}

// Banner writes a title between two double-line rules of the given width.
func Banner(w io.Writer, width int, title string) {
	rule := Rule(width, '=')
	fmt.Fprintf(w, "%s\n%s\n%s\n", rule, title, rule)
}

// Section writes a section title followed by a single-line rule of the given
// width.
func Section(w io.Writer, width int, title string) {
	fmt.Fprintf(w, "%s\n%s\n", title, Rule(width, '-'))
}

// A Table writes rows of left-aligned fixed-width columns.
type Table struct {
	w      io.Writer
	widths []int
}

// NewTable returns a Table writing to w with the given column widths.
func NewTable(w io.Writer, widths ...int) *Table {
	return &Table{w: w, widths: widths}
}

// width returns the rule length of the table, the sum of its column widths.
func (t *Table) width() int {
	n := 0
	for _, w := range t.widths {
		n += w
	}
	return n
}

// Header writes the column headers followed by a single-line rule.
func (t *Table) Header(cells ...interface{}) {
	t.Row(cells...)
	fmt.Fprintln(t.w, Rule(t.width(), '-'))
}

// GroupHeader writes a first header tier with its own column widths, for
// grouping several table columns under one title. It is followed by a
// regular Header call for the second tier.
func (t *Table) GroupHeader(widths []int, cells ...interface{}) {
	for i, cell := range cells {
		fmt.Fprintf(t.w, "%-*v", widths[i], cell)
	}
	fmt.Fprintln(t.w)
}

// Row writes one table row. Cells are formatted with %v and padded to the
// column widths; a cell wider than its column keeps its full text.
func (t *Table) Row(cells ...interface{}) {
	for i, cell := range cells {
		fmt.Fprintf(t.w, "%-*v", t.widths[i], cell)
	}
	fmt.Fprintln(t.w)
}
