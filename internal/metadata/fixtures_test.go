package metadata

import (
	"floorspace/internal/core/entity"
	"floorspace/internal/domain/model"
)

func base(id, name string) entity.Base {
	return entity.Base{ID: id, Name: name}
}

// testState builds a small model: one of every library type, two stories
// with spaces, windows, shading and an image.
func testState() *model.State {
	return &model.State{
		Library: model.Library{
			BuildingUnits:       []*model.BuildingUnit{{Base: base("bu1", "Unit A")}},
			ThermalZones:        []*model.ThermalZone{{Base: base("tz1", "Core Zone")}},
			SpaceTypes:          []*model.SpaceType{{Base: base("stype1", "Office")}},
			ConstructionSets:    []*model.ConstructionSet{{Base: base("cs1", "Code Set")}},
			Constructions:       []*model.Construction{{Base: base("c1", "Wall")}},
			Windows:             []*model.Window{{Base: base("w1", "Double Hung")}},
			DaylightingControls: []*model.DaylightingControl{{Base: base("dc1", "Sensor")}},
		},
		Stories: []*model.Story{
			{
				Base:                 base("st1", "Ground"),
				Handle:               "h-st1",
				FloorToCeilingHeight: 3,
				Multiplier:           1,
				ImageID:              "img1",
				Spaces: []*model.Space{
					{Base: base("sp1", "S1"), BuildingUnitID: "bu1", ThermalZoneID: "tz1", SpaceTypeID: "missing"},
					{Base: base("sp2", "S2")},
				},
				Windows: []*model.StoryWindow{
					{Base: base("sw1", "South"), WindowID: "w1"},
					{Base: base("sw2", "North"), WindowID: "w1"},
				},
				Shading: []*model.Shading{{Base: base("sh1", "Canopy")}},
				Images:  []*model.Image{{Base: base("img0", "Site"), Src: "site.png"}, {Base: base("img1", "Plan"), Src: "plan.png"}},
			},
			{
				Base:   base("st2", "Second"),
				Spaces: []*model.Space{{Base: base("sp3", "S3")}},
			},
		},
	}
}
