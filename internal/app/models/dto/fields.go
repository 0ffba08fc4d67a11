package dto

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// NullableString is a string request field that remembers whether its key
// was sent and whether it was sent as null.
type NullableString struct {
	Value string
	Set   bool
	Null  bool
}

// NewNullableString returns a field that was sent with value s
func NewNullableString(s string) NullableString {
	return NullableString{Value: s, Set: true}
}

// NullString returns a field that was sent as null
func NullString() NullableString {
	return NullableString{Set: true, Null: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (n *NullableString) UnmarshalJSON(b []byte) error {
	*n = NullableString{Set: true}
	if bytes.Equal(b, jsonNull) {
		n.Null = true
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

// Trimmed returns the value without surrounding whitespace
func (n NullableString) Trimmed() string {
	return strings.TrimSpace(n.Value)
}

// ValidationValue is what binding rules see: the trimmed value, or nil when
// the field is absent or null so that omitempty skips it.
func (n NullableString) ValidationValue() any {
	if !n.Set || n.Null {
		return nil
	}
	return n.Trimmed()
}

// PrimaryKey references another object by id. It accepts a JSON integer or
// a string holding one.
type PrimaryKey struct {
	Value int64
	Set   bool
	Null  bool
}

// NewPrimaryKey returns a key that was sent with id
func NewPrimaryKey(id int64) PrimaryKey {
	return PrimaryKey{Value: id, Set: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (p *PrimaryKey) UnmarshalJSON(b []byte) error {
	*p = PrimaryKey{Set: true}
	if bytes.Equal(b, jsonNull) {
		p.Null = true
		return nil
	}

	raw := string(b)
	received := jsonKind(b)
	if received == "string" {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: received, Type: reflect.TypeOf(p.Value)}
	}
	p.Value = id
	return nil
}

// jsonKind names the JSON type of a raw value the way encoding/json does
func jsonKind(b []byte) string {
	if len(b) == 0 {
		return "number"
	}
	switch b[0] {
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case '[':
		return "array"
	case '{':
		return "object"
	default:
		return "number"
	}
}
