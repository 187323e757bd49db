// Package visualization renders summary data for humans.
package visualization

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table is a model for data.
type Table struct {
	headers []string
	data    [][]string
}

// NewTable creates new model of data representation.
func NewTable(headers []string, data [][]string) *Table {
	return &Table{
		headers,
		data,
	}
}

// Draw renders the table with headers and data rows to the given writer.
func (t *Table) Draw(output io.Writer) {
	table := tablewriter.NewWriter(output)
	table.SetHeader(t.headers)
	for _, row := range t.data {
		table.Append(row)
	}
	table.Render()
}
