package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// Missing is the zero Kind: the field is not present in the record.
	Missing Kind = iota
	Null
	String
	Number
	Bool
	Object
	Array
)

// String provides a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Null:
		return "null"
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case Object:
		return "object"
	case Array:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a single field value of a schema-less record.
//
// Nested objects and arrays are kept as compact JSON text so that key order
// survives formatting and pretty printing.
type Value struct {
	kind Kind
	str  string
	num  json.Number
	b    bool
	raw  json.RawMessage
}

func NullValue() Value { return Value{kind: Null} }

func StringValue(s string) Value { return Value{kind: String, str: s} }

func NumberValue(n json.Number) Value { return Value{kind: Number, num: n} }

func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Format renders v for a table cell: null and missing become "", objects and
// arrays become compact JSON, everything else uses its plain string form.
func (v Value) Format() string {
	switch v.kind {
	case Missing, Null:
		return ""
	case String:
		return v.str
	case Number:
		return v.num.String()
	case Bool:
		return strconv.FormatBool(v.b)
	case Object, Array:
		return string(v.raw)
	default:
		return ""
	}
}

// MarshalJSON writes v back as JSON. Missing values marshal as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Missing, Null:
		return []byte("null"), nil
	case String:
		return marshalString(v.str)
	case Number:
		return []byte(v.num.String()), nil
	case Bool:
		return []byte(strconv.FormatBool(v.b)), nil
	case Object, Array:
		return v.raw, nil
	default:
		return nil, fmt.Errorf("record: cannot marshal value of kind %d", v.kind)
	}
}

// UnmarshalJSON classifies raw JSON into a Value.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("record: empty value")
	}
	switch data[0] {
	case 'n':
		if string(data) != "null" {
			return fmt.Errorf("record: invalid literal %q", data)
		}
		*v = NullValue()
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = BoolValue(b)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		kind := Object
		if data[0] == '[' {
			kind = Array
		}
		*v = Value{kind: kind, raw: json.RawMessage(buf.Bytes())}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("record: invalid number %q: %w", data, err)
		}
		*v = NumberValue(n)
	}
	return nil
}

// marshalString encodes s as a JSON string, leaving &, < and > unescaped.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
