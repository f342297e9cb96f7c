package metadata

import (
	"fmt"

	"floorspace/internal/core/apperror"
	"floorspace/internal/core/entity"
	"floorspace/internal/domain/model"
)

// EntityType is the key of an object category, e.g. "stories".
type EntityType string

const (
	TypeBuildingUnits       EntityType = model.BuildingUnits
	TypeThermalZones        EntityType = model.ThermalZones
	TypeSpaceTypes          EntityType = model.SpaceTypes
	TypeConstructionSets    EntityType = model.ConstructionSets
	TypeConstructions       EntityType = model.Constructions
	TypeWindows             EntityType = model.Windows
	TypeDaylightingControls EntityType = model.DaylightingControls
	TypeStories             EntityType = model.Stories
	TypeSpaces              EntityType = model.Spaces
)

// ValueFunc computes the display value of a derived field.
// It must not modify obj or state. ok is false when there is nothing to show.
type ValueFunc func(obj entity.Entity, state *model.State) (value any, ok bool)

// FieldDef describes one attribute of an entity type.
type FieldDef struct {
	Key string

	// DisplayName is the UI label. Empty means the field is never shown
	// under its own name.
	DisplayName string

	ReadOnly bool

	// Private fields are never exposed to generic UIs.
	Private bool

	// Value, when set, replaces the raw property read.
	Value ValueFunc
}

// EntityDef describes one entity type.
type EntityDef struct {
	Type        EntityType
	DisplayName string
	Fields      []FieldDef

	// Init builds a default instance. Container types (stories, spaces)
	// have none and cannot be created through the generic path.
	Init func() entity.Entity
}

// Creatable reports whether the type has an initializer.
func (d EntityDef) Creatable() bool {
	return d.Init != nil
}

// Registry stores entity definitions. It is immutable once built and safe
// for concurrent use.
type Registry struct {
	order    []EntityType
	entities map[EntityType]*entry
}

type entry struct {
	def    EntityDef
	fields map[string]int
}

// NewRegistry builds a registry from defs. Declaration order of defs and of
// their fields is kept.
func NewRegistry(defs ...EntityDef) (*Registry, error) {
	r := &Registry{
		order:    make([]EntityType, 0, len(defs)),
		entities: make(map[EntityType]*entry, len(defs)),
	}

	for _, def := range defs {
		if def.Type == "" {
			return nil, apperror.NewValidation("entity type must not be empty")
		}
		if _, dup := r.entities[def.Type]; dup {
			return nil, apperror.NewDuplicate("entity type", "type", string(def.Type))
		}

		e := &entry{
			def:    def,
			fields: make(map[string]int, len(def.Fields)),
		}
		e.def.Fields = append([]FieldDef(nil), def.Fields...)

		for i, f := range e.def.Fields {
			if f.Key == "" {
				return nil, apperror.NewValidation("field key must not be empty").
					WithDetail("type", string(def.Type))
			}
			if _, dup := e.fields[f.Key]; dup {
				return nil, apperror.NewDuplicate(string(def.Type)+" field", "key", f.Key)
			}
			e.fields[f.Key] = i
		}

		r.entities[def.Type] = e
		r.order = append(r.order, def.Type)
	}

	return r, nil
}

// Get returns the definition of t.
func (r *Registry) Get(t EntityType) (EntityDef, bool) {
	e, ok := r.entities[t]
	if !ok {
		return EntityDef{}, false
	}
	return e.copyDef(), true
}

// List returns all definitions in declaration order.
func (r *Registry) List() []EntityDef {
	list := make([]EntityDef, 0, len(r.order))
	for _, t := range r.order {
		list = append(list, r.entities[t].copyDef())
	}
	return list
}

// Creatable returns the definitions that have an initializer, in declaration order.
func (r *Registry) Creatable() []EntityDef {
	list := make([]EntityDef, 0, len(r.order))
	for _, t := range r.order {
		if e := r.entities[t]; e.def.Creatable() {
			list = append(list, e.copyDef())
		}
	}
	return list
}

// New builds a default instance of t.
func (r *Registry) New(t EntityType) (entity.Entity, error) {
	e, err := r.lookup(t)
	if err != nil {
		return nil, err
	}
	if e.def.Init == nil {
		return nil, apperror.NewNotCreatable(string(t))
	}
	obj := e.def.Init()
	if obj == nil {
		return nil, apperror.NewInternal(fmt.Errorf("initializer for %s returned nil", t))
	}
	return obj, nil
}

func (r *Registry) lookup(t EntityType) (*entry, error) {
	e, ok := r.entities[t]
	if !ok {
		return nil, apperror.NewUnknownEntityType(string(t))
	}
	return e, nil
}

func (e *entry) field(key string) (FieldDef, bool) {
	i, ok := e.fields[key]
	if !ok {
		return FieldDef{}, false
	}
	return e.def.Fields[i], true
}

func (e *entry) copyDef() EntityDef {
	def := e.def
	def.Fields = append([]FieldDef(nil), e.def.Fields...)
	return def
}

// --- Client descriptors ---

// Descriptor is the serializable form of an EntityDef.
type Descriptor struct {
	Type        EntityType        `json:"type"`
	DisplayName string            `json:"displayName"`
	Creatable   bool              `json:"creatable"`
	Fields      []FieldDescriptor `json:"fields"`
}

// FieldDescriptor is the serializable form of a FieldDef.
// Private fields never carry a display name.
type FieldDescriptor struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName,omitempty"`
	ReadOnly    bool   `json:"readOnly"`
	Private     bool   `json:"private,omitempty"`
	Derived     bool   `json:"derived,omitempty"`
}

// Describe converts the definition into its client form.
func (d EntityDef) Describe() Descriptor {
	out := Descriptor{
		Type:        d.Type,
		DisplayName: d.DisplayName,
		Creatable:   d.Creatable(),
		Fields:      make([]FieldDescriptor, 0, len(d.Fields)),
	}
	for _, f := range d.Fields {
		fd := FieldDescriptor{
			Key:      f.Key,
			ReadOnly: f.ReadOnly,
			Private:  f.Private,
			Derived:  f.Value != nil,
		}
		if !f.Private {
			fd.DisplayName = f.DisplayName
		}
		out.Fields = append(out.Fields, fd)
	}
	return out
}
