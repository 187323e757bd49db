package summarize

import (
	"encoding/csv"
	"io"
	"sort"

	"github.com/pkg/errors"

	"github.com/JongHoB/mqsim-summary/pkg/metrics"
)

// Summary is the rectangular table assembled from a batch of records. The
// header is the sorted union of every field name observed across all records;
// per-record field sets vary by experiment category, and cells absent from a
// record render blank.
type Summary struct {
	records []Record
	header  []string
}

// NewSummary computes the stable header union over the given records. Record
// order is preserved.
func NewSummary(records []Record) *Summary {
	fieldNames := map[string]struct{}{}
	for _, record := range records {
		for name := range record.Fields {
			fieldNames[name] = struct{}{}
		}
	}

	header := make([]string, 0, len(fieldNames))
	for name := range fieldNames {
		header = append(header, name)
	}
	sort.Strings(header)

	return &Summary{
		records: records,
		header:  header,
	}
}

// Header returns the sorted union of all field names.
func (s *Summary) Header() []string {
	return s.header
}

// Records returns the summarized records in row order.
func (s *Summary) Records() []Record {
	return s.records
}

// Rows renders every record as formatted cells in header order.
func (s *Summary) Rows() [][]string {
	rows := make([][]string, 0, len(s.records))
	for _, record := range s.records {
		row := make([]string, len(s.header))
		for i, name := range s.header {
			value, present := record.Fields[name]
			if !present {
				continue
			}
			row[i] = metrics.FormatValue(value)
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteCSV writes the header and all rows as CSV.
func (s *Summary) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(s.header); err != nil {
		return errors.Wrap(err, "writing CSV header failed")
	}
	for _, row := range s.Rows() {
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "writing CSV row failed")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "flushing CSV output failed")
}
