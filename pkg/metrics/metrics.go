// Package metrics derives flat metric rows from parsed MQSim result
// documents. Each extractor walks one subtree of a result document and is
// tolerant of missing nodes and attributes: an absent subtree yields an empty
// row, an absent field yields a nil cell, and no ratio is ever computed on a
// missing operand or a zero denominator.
//
// The energy related fields are a relative heuristic. MQSim does not
// guarantee the four chip time fractions to be mutually exclusive, so the
// power index only supports comparisons between runs of the same setup; it is
// not a calibrated energy model.
package metrics

import (
	"fmt"
	"strconv"
)

// Row is a flat mapping of metric names to values. Values are int64, float64,
// string or nil; a key present with a nil value claims a column in the output
// table while signaling "not present in source document".
type Row map[string]interface{}

// Merge copies all fields of other into the row.
func (r Row) Merge(other Row) {
	for key, value := range other {
		r[key] = value
	}
}

// FormatValue renders a metric value as an output table cell. Nil renders
// blank, floats render in their shortest round-trippable form.
func FormatValue(value interface{}) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'g', -1, 64)
	case string:
		return typed
	default:
		return fmt.Sprintf("%v", typed)
	}
}

// PowerModel holds the relative per-state power weights of a flash chip,
// in arbitrary units.
type PowerModel struct {
	Exec     float64 // power while executing flash commands
	DataXfer float64 // power during data transfer
	Overlap  float64 // power when data transfer and execution overlap
	Idle     float64 // idle / background power
}

// DefaultPowerModel returns the weight table used when no override is given.
func DefaultPowerModel() PowerModel {
	return PowerModel{
		Exec:     1.0,
		DataXfer: 0.8,
		Overlap:  1.1,
		Idle:     0.3,
	}
}

// intOrNil lifts a lenient integer lookup into a row cell.
func intOrNil(value int64, ok bool) interface{} {
	if !ok {
		return nil
	}
	return value
}

// floatOrNil lifts a lenient float lookup into a row cell.
func floatOrNil(value float64, ok bool) interface{} {
	if !ok {
		return nil
	}
	return value
}

// hitRate computes hits over queries, defined only when both counters are
// present and the query count is non-zero.
func hitRate(hits int64, okHits bool, queries int64, okQueries bool) interface{} {
	if !okHits || !okQueries || queries == 0 {
		return nil
	}
	return float64(hits) / float64(queries)
}
