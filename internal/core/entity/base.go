// Package entity provides base types for all model objects.
package entity

import "reflect"

// Entity is implemented by every object the editor state holds.
type Entity interface {
	GetID() string
	GetName() string

	// CustomAttributes returns user-defined keys that are not part of the
	// object's schema. May be nil.
	CustomAttributes() Attributes
}

// Base contains fields common to every model object.
type Base struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Attributes holds user-defined keys. They are flattened into the
	// object's JSON by DecodeWithAttributes / EncodeWithAttributes.
	Attributes Attributes `json:"-"`
}

// GetID returns the object id.
func (b *Base) GetID() string {
	return b.ID
}

// GetName returns the object name.
func (b *Base) GetName() string {
	return b.Name
}

// CustomAttributes returns the user-defined attributes.
func (b *Base) CustomAttributes() Attributes {
	return b.Attributes
}

// SetAttribute is a convenience method for setting custom fields.
func (b *Base) SetAttribute(key string, value any) {
	b.Attributes.Set(key, value)
}

// Names returns the names of items in order.
func Names[T Entity](items []T) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		if IsNil(item) {
			continue
		}
		names = append(names, item.GetName())
	}
	return names
}

// FindByID returns the first item whose id equals id.
func FindByID[T Entity](items []T, id string) (T, bool) {
	for _, item := range items {
		if !IsNil(item) && item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// IsNil reports whether e is nil or a typed nil pointer.
func IsNil(e Entity) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
