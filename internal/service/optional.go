package service

import (
	"bytes"
	"encoding/json"
)

// Optional is a patch field that tells apart a missing key (Set false), an
// explicit null (Set true, Value nil) and a value.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only called for keys present in the document, null
// included.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// column is the value written to the store; nil becomes NULL.
func (o Optional[T]) column() interface{} {
	if o.Value == nil {
		return nil
	}
	return *o.Value
}
