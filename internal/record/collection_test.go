package record

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCollection_BareArray(t *testing.T) {
	records, err := ParseCollection([]byte(`[{"id":1,"name":"Run"}]`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"id", "name"}, DeriveColumns(records))
	assert.Equal(t, []string{"1", "Run"}, records[0].Row(DeriveColumns(records)))
}

func TestParseCollection_ResultsEnvelopeMatchesBareArray(t *testing.T) {
	items := `[{"id":1,"name":"Run"},{"id":2,"name":"Swim","note":null}]`

	bare, err := ParseCollection([]byte(items))
	require.NoError(t, err)
	wrapped, err := ParseCollection([]byte(`{"count":2,"results":` + items + `}`))
	require.NoError(t, err)

	require.Equal(t, len(bare), len(wrapped))
	for i := range bare {
		assert.Equal(t, mustJSON(t, bare[i]), mustJSON(t, wrapped[i]))
	}
	assert.Equal(t, DeriveColumns(bare), DeriveColumns(wrapped))
}

func TestParseCollection_EmptyShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty array", `[]`},
		{"empty results", `{"results":[]}`},
		{"no results field", `{"detail":"nothing here"}`},
		{"null results", `{"results":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ParseCollection([]byte(tt.body))
			require.NoError(t, err)
			assert.Empty(t, records)
			assert.Empty(t, DeriveColumns(records))
		})
	}
}

func TestParseCollection_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"html body", `<html>502 Bad Gateway</html>`, ErrNotJSON},
		{"empty body", ``, ErrNotJSON},
		{"truncated", `[{"id":1`, ErrNotJSON},
		{"scalar", `42`, ErrShape},
		{"null", `null`, ErrShape},
		{"results not array", `{"results":{"id":1}}`, ErrShape},
		{"array of scalars", `[1,2,3]`, ErrShape},
		{"null element", `[{"id":1},null]`, ErrShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCollection([]byte(tt.body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestDeriveColumns_FirstRecordOnly(t *testing.T) {
	records, err := ParseCollection([]byte(`[{"b":1,"a":2},{"a":3,"c":4},{"b":5}]`))
	require.NoError(t, err)

	cols := DeriveColumns(records)
	assert.Equal(t, []string{"b", "a"}, cols)
	assert.Equal(t, []string{"", "3"}, records[1].Row(cols))
	assert.Equal(t, []string{"5", ""}, records[2].Row(cols))
}

func TestMarshalRecords(t *testing.T) {
	data, err := MarshalRecords(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	records, err := ParseCollection([]byte(`[{"b":"x<y>","a":2},{"c":null}]`))
	require.NoError(t, err)
	data, err = MarshalRecords(records)
	require.NoError(t, err)
	assert.Equal(t, `[{"b":"x<y>","a":2},{"c":null}]`, string(data))
}
