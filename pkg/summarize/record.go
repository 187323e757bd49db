// Package summarize assembles one metric record per MQSim result file and
// drives the batch over a directory of result files. One malformed or
// partially populated result never aborts a batch: document parse failures
// are captured per record in the parse_error field and extraction tolerates
// any missing subtree.
package summarize

import (
	"github.com/JongHoB/mqsim-summary/pkg/experiment"
	"github.com/JongHoB/mqsim-summary/pkg/metrics"
	"github.com/JongHoB/mqsim-summary/pkg/results"
)

// Record is the normalized summary of one result file: the experiment
// identity decoded from the file name plus the flat metric fields extracted
// from the document. Records are immutable once assembled.
type Record struct {
	Path     string
	Identity experiment.Identity
	Fields   metrics.Row
}

// ParseError returns the document parse failure captured for this record,
// or "" when the document parsed cleanly.
func (r Record) ParseError() string {
	message, _ := r.Fields["parse_error"].(string)
	return message
}

// SummarizeFile assembles the record for one result file. Identity always
// resolves; a document parse failure is recorded in the parse_error field and
// leaves every metric field absent. The four extractors write into disjoint
// field prefixes, so merge order carries no meaning.
func SummarizeFile(path string, model metrics.PowerModel) Record {
	identity := experiment.ParseName(path)

	row := metrics.Row{}
	row.Merge(identity.Fields())

	record := Record{
		Path:     path,
		Identity: identity,
		Fields:   row,
	}

	doc, err := results.ParseFile(path)
	if err != nil {
		row["parse_error"] = err.Error()
		return record
	}

	host := metrics.HostMetrics(doc)
	row.Merge(host)

	var hostRequests *int64
	if count, ok := host["host_Request_Count"].(int64); ok {
		hostRequests = &count
	}

	row.Merge(metrics.FTLMetrics(doc))
	row.Merge(metrics.TSUMetrics(doc))
	row.Merge(metrics.ChipMetrics(doc, hostRequests, model))

	return record
}
