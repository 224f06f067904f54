package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Document is an ordered mapping from top-level configuration keys to
// JSON values in their encoding/json form: nil, bool, json.Number, string,
// []any and map[string]any.
type Document struct {
	keys   []string
	values map[string]any
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{values: make(map[string]any)}
}

// SetJSON stores a value decoded by encoding/json under key. A new key is
// appended after the existing ones; an existing key keeps its position and
// takes the new value.
func (d *Document) SetJSON(key string, v any) {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
}

// Set stores a cty value under key, converted with NativeValue.
func (d *Document) Set(key string, v cty.Value) {
	d.SetJSON(key, NativeValue(v))
}

// Keys returns the top-level keys in insertion order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Lookup returns the value stored under key, or a *MissingKeyError.
func (d *Document) Lookup(key string) (any, error) {
	v, ok := d.values[key]
	if !ok {
		return nil, &MissingKeyError{Key: key}
	}
	return v, nil
}
