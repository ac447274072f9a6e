package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeList reads a collection the backend may send as a bare array or as
// an array under one of keys. Missing collections decode to an empty list.
func decodeList[T any](body []byte, keys ...string) ([]T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return []T{}, nil
	}
	if body[0] == '[' {
		var list []T
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, fmt.Errorf("failed to decode list: %w", err)
		}
		return list, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	for _, key := range keys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		return decodeList[T](raw, keys...)
	}
	return []T{}, nil
}

// decodeOne reads an object that may be wrapped under one of keys.
func decodeOne[T any](body []byte, keys ...string) (T, error) {
	var out T
	var obj map[string]json.RawMessage
	if err := unmarshal(body, &obj); err != nil {
		return out, fmt.Errorf("failed to decode object: %w", err)
	}
	for _, key := range keys {
		if raw, ok := obj[key]; ok && len(raw) > 0 && raw[0] == '{' {
			body = raw
			break
		}
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("failed to decode object: %w", err)
	}
	return out, nil
}
