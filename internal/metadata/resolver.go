package metadata

import (
	"floorspace/internal/core/entity"
	"floorspace/internal/domain/model"
)

// DisplayNameForKey returns the label for key on objects of type t.
//
// ok is false when the field is private or has no label; callers must not
// render it. Keys the type does not declare are user-defined attributes and
// are returned verbatim.
func (r *Registry) DisplayNameForKey(t EntityType, key string) (string, bool, error) {
	e, err := r.lookup(t)
	if err != nil {
		return "", false, err
	}

	f, declared := e.field(key)
	if !declared {
		return key, true, nil
	}
	if f.Private || f.DisplayName == "" {
		return "", false, nil
	}
	return f.DisplayName, true, nil
}

// DisplayValueForKey returns the value to render for key on obj.
// Derived fields are computed from obj and state; everything else is a raw
// property read. ok is false when there is no value, which is distinct from
// a zero value such as "" or 0.
func (r *Registry) DisplayValueForKey(obj entity.Entity, state *model.State, t EntityType, key string) (any, bool, error) {
	e, err := r.lookup(t)
	if err != nil {
		return nil, false, err
	}
	if isNil(obj) {
		return nil, false, nil
	}

	if f, declared := e.field(key); declared && f.Value != nil {
		v, ok := f.Value(obj, state)
		return v, ok, nil
	}

	v, ok := entity.Property(obj, key)
	return v, ok, nil
}

// ValueForKeyIsReadonly reports whether UI may edit key. Undeclared keys are
// editable.
func (r *Registry) ValueForKeyIsReadonly(t EntityType, key string) (bool, error) {
	e, err := r.lookup(t)
	if err != nil {
		return false, err
	}
	f, declared := e.field(key)
	return declared && f.ReadOnly, nil
}

// Row is one line of an object inspector table.
type Row struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	Value       any    `json:"value"`
	HasValue    bool   `json:"hasValue"`
	ReadOnly    bool   `json:"readOnly"`
	Custom      bool   `json:"custom,omitempty"`
}

// Rows lists what an inspector renders for obj: declared visible fields in
// declaration order, then the object's undeclared properties.
func (r *Registry) Rows(obj entity.Entity, state *model.State, t EntityType) ([]Row, error) {
	e, err := r.lookup(t)
	if err != nil {
		return nil, err
	}
	if isNil(obj) {
		return nil, nil
	}

	rows := make([]Row, 0, len(e.def.Fields))
	for _, f := range e.def.Fields {
		if f.Private || f.DisplayName == "" {
			continue
		}
		v, ok, err := r.DisplayValueForKey(obj, state, t, f.Key)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{
			Key:         f.Key,
			DisplayName: f.DisplayName,
			Value:       v,
			HasValue:    ok,
			ReadOnly:    f.ReadOnly,
		})
	}

	for _, key := range Inspect(obj) {
		if _, declared := e.fields[key]; declared {
			continue
		}
		v, ok := entity.Property(obj, key)
		rows = append(rows, Row{
			Key:         key,
			DisplayName: key,
			Value:       v,
			HasValue:    ok,
			Custom:      true,
		})
	}
	return rows, nil
}

func isNil(obj entity.Entity) bool {
	return entity.IsNil(obj)
}
