package metadata

import (
	"reflect"
	"sort"

	"floorspace/internal/core/entity"
)

// Inspect lists the property keys of obj: scalar struct properties in json
// order, then custom attribute keys in sorted order. Nested collections
// (slices of objects such as story.images) are left out; they are rendered
// through their own tables.
func Inspect(obj entity.Entity) []string {
	if isNil(obj) {
		return nil
	}

	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	keys := make([]string, 0)
	if t.Kind() == reflect.Struct {
		keys = inspectStruct(t, keys)
	}

	attrs := obj.CustomAttributes()
	custom := make([]string, 0, len(attrs))
	for k := range attrs {
		custom = append(custom, k)
	}
	sort.Strings(custom)

	return append(keys, custom...)
}

func inspectStruct(t reflect.Type, keys []string) []string {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		// Handle embedded structs (flattening)
		if field.Anonymous {
			if _, tagged := field.Tag.Lookup("json"); !tagged {
				ft := field.Type
				if ft.Kind() == reflect.Ptr {
					ft = ft.Elem()
				}
				if ft.Kind() == reflect.Struct {
					keys = inspectStruct(ft, keys)
					continue
				}
			}
		}

		if isTablePart(field.Type) {
			continue
		}

		if name := entity.JSONName(field); name != "" {
			keys = append(keys, name)
		}
	}
	return keys
}

// isTablePart reports whether t is a nested collection of objects.
func isTablePart(t reflect.Type) bool {
	if t.Kind() != reflect.Slice {
		return false
	}
	elem := t.Elem()
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	return elem.Kind() == reflect.Struct
}
