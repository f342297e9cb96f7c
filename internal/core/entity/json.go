package entity

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// DecodeWithAttributes unmarshals data into dst, which must point to a
// struct, and returns every key of the JSON object that dst does not declare.
//
// Model types call it from UnmarshalJSON through a method-less alias type:
//
//	type alias Space
//	var a alias
//	attrs, err := entity.DecodeWithAttributes(data, &a)
func DecodeWithAttributes(data []byte, dst any) (Attributes, error) {
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	known := make(map[string]struct{})
	for _, k := range JSONKeys(reflect.TypeOf(dst)) {
		known[k] = struct{}{}
	}

	var attrs Attributes
	for k, v := range raw {
		if _, ok := known[k]; ok {
			continue
		}
		val, err := decodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k, err)
		}
		attrs.Set(k, val)
	}
	return attrs, nil
}

// EncodeWithAttributes marshals v and merges attrs into the resulting
// object. Declared keys win over attributes with the same name.
func EncodeWithAttributes(v any, attrs Attributes) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(attrs) == 0 {
		return data, err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, val := range attrs {
		if _, exists := merged[k]; exists {
			continue
		}
		enc, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k, err)
		}
		merged[k] = enc
	}
	return json.Marshal(merged)
}

func decodeValue(raw json.RawMessage) (any, error) {
	wrapped := make([]byte, 0, len(raw)+6)
	wrapped = append(wrapped, `{"v":`...)
	wrapped = append(wrapped, raw...)
	wrapped = append(wrapped, '}')

	m, err := DecodeAttributes(wrapped)
	if err != nil {
		return nil, err
	}
	return m["v"], nil
}
