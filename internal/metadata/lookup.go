package metadata

import (
	"floorspace/internal/core/entity"
	"floorspace/internal/domain/model"
)

// Location tells where an id was found in the state.
type Location struct {
	Type   EntityType
	Entity entity.Entity

	// Story is the parent story of a space; nil otherwise.
	Story *model.Story
}

// Locate searches state for an object with the given id.
//
// Library collections are searched first, in the order the library lists
// them (see model.Library.Collections), then top-level stories, then the
// spaces of each story in story order. The first match wins. A match in a
// collection without a schema is reported with the collection name as its
// type. A miss is a normal outcome, not an error.
func Locate(state *model.State, id string) (Location, bool) {
	if state == nil {
		return Location{}, false
	}

	for _, c := range state.Library.Collections() {
		if found, ok := entity.FindByID(c.Items, id); ok {
			return Location{Type: EntityType(c.Name), Entity: found}, true
		}
	}

	if story, ok := entity.FindByID(state.Stories, id); ok {
		return Location{Type: TypeStories, Entity: story}, true
	}

	for _, story := range state.Stories {
		if story == nil {
			continue
		}
		if space, ok := entity.FindByID(story.Spaces, id); ok {
			return Location{Type: TypeSpaces, Entity: space, Story: story}, true
		}
	}

	return Location{}, false
}

// ObjectWithID returns the library object, story or space with the given id.
func ObjectWithID(state *model.State, id string) (entity.Entity, bool) {
	loc, ok := Locate(state, id)
	if !ok {
		return nil, false
	}
	return loc.Entity, true
}
