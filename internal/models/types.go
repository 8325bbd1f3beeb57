package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Attributes is a decoded JSON object whose shape is owned by the client
type Attributes map[string]interface{}

// DecodeAttributes decodes a JSON object. An empty body decodes to an empty set.
func DecodeAttributes(body []byte) (Attributes, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Attributes{}, nil
	}

	var attrs Attributes
	if err := decodeExact(body, &attrs); err != nil {
		return nil, err
	}
	if attrs == nil {
		return nil, fmt.Errorf("expected a JSON object, got null")
	}
	return attrs, nil
}

// DecodeValue decodes any JSON value. An empty body decodes to an empty object.
func DecodeValue(body []byte) (interface{}, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Attributes{}, nil
	}

	var value interface{}
	if err := decodeExact(body, &value); err != nil {
		return nil, err
	}
	return value, nil
}

// decodeExact decodes a single JSON value, keeping numbers as json.Number so
// they are echoed with their original digits
func decodeExact(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after JSON value")
	}
	return nil
}

// Clone returns a shallow copy
func (a Attributes) Clone() Attributes {
	clone := make(Attributes, len(a))
	for k, v := range a {
		clone[k] = v
	}
	return clone
}

// Overlay returns a copy of a where every key in keys that is present in
// other takes other's value
func (a Attributes) Overlay(other Attributes, keys ...string) Attributes {
	merged := a.Clone()
	for _, key := range keys {
		if v, ok := other[key]; ok {
			merged[key] = v
		}
	}
	return merged
}

// stringPtr returns a pointer to the given string
func stringPtr(s string) *string {
	return &s
}
