package entity

import (
	"reflect"
	"strings"
)

// JSONName returns the json key of a struct field, or "" when the field is
// not serialized.
func JSONName(field reflect.StructField) string {
	if field.PkgPath != "" { // unexported
		return ""
	}
	if tag, ok := field.Tag.Lookup("json"); ok {
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// JSONKeys lists the json keys of a struct type in declaration order.
// Untagged embedded structs are flattened the same way encoding/json does.
func JSONKeys(t reflect.Type) []string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if isFlattened(field) {
			keys = append(keys, JSONKeys(field.Type)...)
			continue
		}
		if name := JSONName(field); name != "" {
			keys = append(keys, name)
		}
	}
	return keys
}

// Property reads the value stored under key on obj: first a struct field
// with that json key, then the object's custom attributes (see
// Attributes.Value). ok is false when obj carries no such property.
func Property(obj any, key string) (any, bool) {
	if obj == nil {
		return nil, false
	}

	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	if v.Kind() == reflect.Struct {
		if fv, ok := fieldByKey(v, key); ok {
			return fv.Interface(), true
		}
	}

	if e, ok := obj.(Entity); ok {
		return e.CustomAttributes().Value(key)
	}
	return nil, false
}

func fieldByKey(v reflect.Value, key string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if isFlattened(field) {
			inner := v.Field(i)
			if inner.Kind() == reflect.Ptr {
				if inner.IsNil() {
					continue
				}
				inner = inner.Elem()
			}
			if fv, ok := fieldByKey(inner, key); ok {
				return fv, true
			}
			continue
		}
		if JSONName(field) == key {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func isFlattened(field reflect.StructField) bool {
	if !field.Anonymous {
		return false
	}
	if _, tagged := field.Tag.Lookup("json"); tagged {
		return false
	}
	t := field.Type
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
