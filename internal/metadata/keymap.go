package metadata

import (
	"strings"

	"floorspace/internal/core/entity"
	"floorspace/internal/domain/model"
)

// Default returns the registry describing the editor's object types.
func Default() *Registry {
	r, err := NewRegistry(defaultDefs()...)
	if err != nil {
		panic("metadata: invalid default keymap: " + err.Error())
	}
	return r
}

func defaultDefs() []EntityDef {
	return []EntityDef{
		libraryDef(TypeBuildingUnits, "Building Unit", func() entity.Entity { return model.NewBuildingUnit() }),
		libraryDef(TypeThermalZones, "Thermal Zone", func() entity.Entity { return model.NewThermalZone() }),
		libraryDef(TypeSpaceTypes, "Space Type", func() entity.Entity { return model.NewSpaceType() }),
		libraryDef(TypeConstructionSets, "Construction Set", func() entity.Entity { return model.NewConstructionSet() }),
		libraryDef(TypeConstructions, "Construction", func() entity.Entity { return model.NewConstruction() }),
		libraryDef(TypeWindows, "Window", func() entity.Entity { return model.NewWindow() }),
		libraryDef(TypeDaylightingControls, "Daylighting Control", func() entity.Entity { return model.NewDaylightingControl() }),
		{
			Type:        TypeStories,
			DisplayName: "Story",
			Fields: []FieldDef{
				idField,
				nameField,
				{Key: "handle", Private: true},
				{Key: "geometry_id", Private: true},
				{Key: "below_floor_plenum_height", DisplayName: "Below Floor Plenum Height"},
				{Key: "floor_to_ceiling_height", DisplayName: "Floor To Ceiling Height"},
				{Key: "multiplier", DisplayName: "Multiplier"},
				{Key: "spaces", DisplayName: "Spaces", ReadOnly: true, Value: valueOf(storySpaces)},
				{Key: "windows", DisplayName: "Windows", ReadOnly: true, Value: valueOf(storyWindows)},
				{Key: "shading", DisplayName: "Shading", ReadOnly: true, Value: valueOf(storyShading)},
				{Key: "image_id", DisplayName: "Image", ReadOnly: true, Value: valueOf(storyImage)},
			},
		},
		{
			Type:        TypeSpaces,
			DisplayName: "Space",
			Fields: []FieldDef{
				idField,
				nameField,
				{Key: "handle", Private: true},
				{Key: "face_id", Private: true},
				{Key: "daylighting_controls", DisplayName: "Daylighting Controls", ReadOnly: true, Value: valueOf(spaceDaylightingControls)},
				{
					Key: "building_unit_id", DisplayName: "Building Unit", ReadOnly: true,
					Value: libraryName(func(l *model.Library) []*model.BuildingUnit { return l.BuildingUnits },
						func(s *model.Space) string { return s.BuildingUnitID }),
				},
				{
					Key: "thermal_zone_id", DisplayName: "Thermal Zone", ReadOnly: true,
					Value: libraryName(func(l *model.Library) []*model.ThermalZone { return l.ThermalZones },
						func(s *model.Space) string { return s.ThermalZoneID }),
				},
				{
					Key: "space_type_id", DisplayName: "Space Type", ReadOnly: true,
					Value: libraryName(func(l *model.Library) []*model.SpaceType { return l.SpaceTypes },
						func(s *model.Space) string { return s.SpaceTypeID }),
				},
				{
					Key: "construction_set_id", DisplayName: "Construction Set", ReadOnly: true,
					Value: libraryName(func(l *model.Library) []*model.ConstructionSet { return l.ConstructionSets },
						func(s *model.Space) string { return s.ConstructionSetID }),
				},
			},
		},
	}
}

var (
	idField   = FieldDef{Key: "id", DisplayName: "ID", ReadOnly: true}
	nameField = FieldDef{Key: "name", DisplayName: "Name"}
)

func libraryDef(t EntityType, displayName string, init func() entity.Entity) EntityDef {
	return EntityDef{
		Type:        t,
		DisplayName: displayName,
		Fields:      []FieldDef{idField, nameField},
		Init:        init,
	}
}

// valueOf adapts a getter on a concrete model type. Objects of another type
// have no value.
func valueOf[T entity.Entity](fn func(T, *model.State) (any, bool)) ValueFunc {
	return func(obj entity.Entity, state *model.State) (any, bool) {
		v, ok := obj.(T)
		if !ok {
			return nil, false
		}
		return fn(v, state)
	}
}

func joinNames[T entity.Entity](items []T) string {
	return strings.Join(entity.Names(items), ", ")
}

func storySpaces(story *model.Story, _ *model.State) (any, bool) {
	return joinNames(story.Spaces), true
}

func storyWindows(story *model.Story, _ *model.State) (any, bool) {
	return joinNames(story.Windows), true
}

func storyShading(story *model.Story, _ *model.State) (any, bool) {
	return joinNames(story.Shading), true
}

// storyImage resolves the story's image_id against its own images.
func storyImage(story *model.Story, _ *model.State) (any, bool) {
	if story.ImageID == "" {
		return nil, false
	}
	img, ok := entity.FindByID(story.Images, story.ImageID)
	if !ok {
		return nil, false
	}
	return img.Name, true
}

func spaceDaylightingControls(space *model.Space, _ *model.State) (any, bool) {
	return joinNames(space.DaylightingControls), true
}

// libraryName resolves a space's reference into a library collection and
// yields the referenced object's name.
func libraryName[T entity.Entity](collection func(*model.Library) []T, ref func(*model.Space) string) ValueFunc {
	return valueOf(func(space *model.Space, state *model.State) (any, bool) {
		id := ref(space)
		if state == nil || id == "" {
			return nil, false
		}
		found, ok := entity.FindByID(collection(&state.Library), id)
		if !ok {
			return nil, false
		}
		return found.GetName(), true
	})
}
