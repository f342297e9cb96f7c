package model

import (
	"floorspace/internal/core/entity"
	"floorspace/internal/core/id"
)

// Default colors match the editor's palette for newly created definitions.
const (
	defaultBuildingUnitColor = "#ffbf00"
	defaultThermalZoneColor  = "#006cff"
	defaultSpaceTypeColor    = "#a6ff00"
)

func newBase(name string) entity.Base {
	return entity.Base{ID: id.New(), Name: name}
}

// NewBuildingUnit returns a building unit with a fresh id.
func NewBuildingUnit() *BuildingUnit {
	return &BuildingUnit{Base: newBase("Building Unit"), Color: defaultBuildingUnitColor}
}

// NewThermalZone returns a thermal zone with a fresh id.
func NewThermalZone() *ThermalZone {
	return &ThermalZone{Base: newBase("Thermal Zone"), Color: defaultThermalZoneColor}
}

// NewSpaceType returns a space type with a fresh id.
func NewSpaceType() *SpaceType {
	return &SpaceType{Base: newBase("Space Type"), Color: defaultSpaceTypeColor}
}

func NewConstructionSet() *ConstructionSet {
	return &ConstructionSet{Base: newBase("Construction Set")}
}

func NewConstruction() *Construction {
	return &Construction{Base: newBase("Construction")}
}

func NewWindow() *Window {
	return &Window{Base: newBase("Window")}
}

func NewDaylightingControl() *DaylightingControl {
	return &DaylightingControl{Base: newBase("Daylighting Control")}
}
