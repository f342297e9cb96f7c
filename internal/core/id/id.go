// Package id provides identifier generation for model objects.
// Model ids are opaque strings; new ones are UUIDv7 so that objects created
// in one editing session sort by creation time.
package id

import (
	"github.com/google/uuid"
)

// New generates a new UUIDv7 string.
func New() string {
	v, err := uuid.NewV7()
	if err != nil {
		// Fallback to V4 if V7 fails (should never happen)
		return uuid.NewString()
	}
	return v.String()
}

// Valid reports whether s is a well-formed UUID.
// Ids loaded from older models are free-form, so this is advisory only.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
