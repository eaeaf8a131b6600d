// Package jsonx provides JSON scalar types that tolerate missing or
// mistyped values instead of failing the decode of the enclosing object.
package jsonx

import (
	"bytes"
	"encoding/json"
)

var null = []byte("null")

// Int is an optional integer. A missing field, a null, or a value that is
// not a JSON integer all leave Valid false.
type Int struct {
	Value int64
	Valid bool
}

// NewInt returns a valid Int.
func NewInt(v int64) Int {
	return Int{Value: v, Valid: true}
}

// Get returns the value and whether it was present.
func (i Int) Get() (int64, bool) {
	return i.Value, i.Valid
}

// UnmarshalJSON never fails; undecodable input leaves the Int invalid.
func (i *Int) UnmarshalJSON(data []byte) error {
	*i = Int{}
	if bytes.Equal(bytes.TrimSpace(data), null) {
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	*i = Int{Value: v, Valid: true}
	return nil
}

// MarshalJSON encodes an invalid Int as null.
func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return null, nil
	}
	return json.Marshal(i.Value)
}

// String is an optional string with the same leniency as Int.
type String struct {
	Value string
	Valid bool
}

// NewString returns a valid String.
func NewString(v string) String {
	return String{Value: v, Valid: true}
}

// Get returns the value and whether it was present.
func (s String) Get() (string, bool) {
	return s.Value, s.Valid
}

// UnmarshalJSON never fails; undecodable input leaves the String invalid.
func (s *String) UnmarshalJSON(data []byte) error {
	*s = String{}
	if bytes.Equal(bytes.TrimSpace(data), null) {
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	*s = String{Value: v, Valid: true}
	return nil
}

// MarshalJSON encodes an invalid String as null.
func (s String) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return null, nil
	}
	return json.Marshal(s.Value)
}
