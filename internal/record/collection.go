package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// resultsKey is the envelope field some list endpoints wrap records in.
const resultsKey = "results"

// ParseCollection decodes a response body into an ordered list of records.
//
// Two shapes are accepted: a bare array of objects, or an object whose
// "results" field holds that array. An object without "results" (or with a
// null "results") yields an empty collection.
func ParseCollection(body []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return nil, ErrNotJSON
	}

	switch trimmed[0] {
	case '[':
		return parseArray(trimmed)
	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrShape, err)
		}
		results, ok := envelope[resultsKey]
		if !ok || string(bytes.TrimSpace(results)) == "null" {
			return []Record{}, nil
		}
		results = bytes.TrimSpace(results)
		if len(results) == 0 || results[0] != '[' {
			return nil, fmt.Errorf("%w: %q is not an array", ErrShape, resultsKey)
		}
		return parseArray(results)
	default:
		return nil, fmt.Errorf("%w: top-level value is neither an array nor an object", ErrShape)
	}
}

func parseArray(data []byte) ([]Record, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}
	records := make([]Record, 0, len(items))
	for i, item := range items {
		var rec Record
		if err := rec.UnmarshalJSON(item); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrShape, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// DeriveColumns returns the keys of the first record in order, or nil for an
// empty collection. Later records never add columns.
func DeriveColumns(records []Record) []string {
	if len(records) == 0 {
		return nil
	}
	return records[0].Keys()
}

// FormatValue renders a value for display. See Value.Format.
func FormatValue(v Value) string {
	return v.Format()
}

// MarshalRecords encodes records as a compact JSON array in field order. A
// nil slice encodes as [].
func MarshalRecords(records []Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range records {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := r.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
