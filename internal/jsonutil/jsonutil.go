// Package jsonutil wraps encoding/json for documents stored as text, adding
// context to every error.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext decodes data into a new T and wraps any error with
// the provided context message.
func UnmarshalWithContext[T any](data string, context string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return v, fmt.Errorf("%s: %w", context, err)
	}
	return v, nil
}

// MarshalWithContext encodes v as a JSON string and wraps any error with the
// provided context message.
func MarshalWithContext(v any, context string) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", context, err)
	}
	return string(data), nil
}
