// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"floorspace/internal/core/entity"
	"floorspace/internal/domain/model"
	"floorspace/internal/metadata"
)

// --- Object requests ---

// LookupRequest asks to resolve an id inside a model snapshot.
type LookupRequest struct {
	State model.State `json:"state"`
	ID    string      `json:"id" binding:"required"`
}

// DisplayRequest asks for the inspector rows of one object.
// Type is optional; when set the object must be of that type.
type DisplayRequest struct {
	State model.State `json:"state"`
	ID    string      `json:"id" binding:"required"`
	Type  string      `json:"type"`
}

// --- Metadata responses ---

// ListResponse wraps list results.
type ListResponse struct {
	Items      any `json:"items"`
	TotalCount int `json:"totalCount"`
}

// FieldResponse describes how one key of a type is presented.
type FieldResponse struct {
	Type        metadata.EntityType `json:"type"`
	Key         string              `json:"key"`
	DisplayName *string             `json:"displayName"`
	Visible     bool                `json:"visible"`
	ReadOnly    bool                `json:"readOnly"`
	Declared    bool                `json:"declared"`
}

// ObjectResponse wraps a created or resolved object.
type ObjectResponse struct {
	Type    metadata.EntityType `json:"type"`
	Object  entity.Entity       `json:"object"`
	StoryID string              `json:"storyId,omitempty"`
}
