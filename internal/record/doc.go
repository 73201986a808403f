// Package record models the schema-less rows returned by the OctoFit API.
//
// A Record is an ordered mapping from field name to a small tagged union
// (Value). Nothing about a resource's shape is known in advance: columns are
// taken from the keys of the first record of a collection, in the order the
// API sent them, and every later record is rendered against those columns.
//
//	records, err := record.ParseCollection(body)
//	columns := record.DeriveColumns(records)
//	for _, r := range records {
//	    fmt.Println(r.Row(columns))
//	}
package record
