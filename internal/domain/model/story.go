package model

import (
	"floorspace/internal/core/entity"
)

// Story is a vertical building level containing spaces.
type Story struct {
	entity.Base
	Handle                 string  `json:"handle,omitempty"`
	GeometryID             string  `json:"geometry_id,omitempty"`
	ImageID                string  `json:"image_id,omitempty"`
	BelowFloorPlenumHeight float64 `json:"below_floor_plenum_height"`
	FloorToCeilingHeight   float64 `json:"floor_to_ceiling_height"`
	Multiplier             int     `json:"multiplier"`
	Color                  string  `json:"color,omitempty"`

	Spaces  []*Space       `json:"spaces"`
	Windows []*StoryWindow `json:"windows"`
	Shading []*Shading     `json:"shading"`
	Images  []*Image       `json:"images"`
}

// Space is a room or zone on a story. Library definitions are referenced by id.
type Space struct {
	entity.Base
	Handle            string `json:"handle,omitempty"`
	FaceID            string `json:"face_id,omitempty"`
	BuildingUnitID    string `json:"building_unit_id,omitempty"`
	ThermalZoneID     string `json:"thermal_zone_id,omitempty"`
	SpaceTypeID       string `json:"space_type_id,omitempty"`
	ConstructionSetID string `json:"construction_set_id,omitempty"`
	Color             string `json:"color,omitempty"`

	DaylightingControls []*DaylightingControl `json:"daylighting_controls"`
}

// StoryWindow places a library window on the story.
type StoryWindow struct {
	entity.Base
	WindowID string `json:"window_id,omitempty"`
	VertexID string `json:"vertex_id,omitempty"`
}

// Shading is a shading surface drawn on a story.
type Shading struct {
	entity.Base
	FaceID string `json:"face_id,omitempty"`
}

// Image is a background floor plan traced on a story.
type Image struct {
	entity.Base
	Src string `json:"src,omitempty"`
}

func (o *Story) UnmarshalJSON(data []byte) error {
	type alias Story
	var a alias
	attrs, err := entity.DecodeWithAttributes(data, &a)
	if err != nil {
		return err
	}
	*o = Story(a)
	o.Attributes = attrs
	return nil
}

func (o Story) MarshalJSON() ([]byte, error) {
	type alias Story
	return entity.EncodeWithAttributes(alias(o), o.Attributes)
}

func (o *Space) UnmarshalJSON(data []byte) error {
	type alias Space
	var a alias
	attrs, err := entity.DecodeWithAttributes(data, &a)
	if err != nil {
		return err
	}
	*o = Space(a)
	o.Attributes = attrs
	return nil
}

func (o Space) MarshalJSON() ([]byte, error) {
	type alias Space
	return entity.EncodeWithAttributes(alias(o), o.Attributes)
}
