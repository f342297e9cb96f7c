// Package model defines the editor state: the shared library of reusable
// definitions and the stories/spaces that reference them.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"github.com/tidwall/gjson"

	"floorspace/internal/core/entity"
)

// Library collection names. They double as entity type keys.
const (
	BuildingUnits       = "building_units"
	ThermalZones        = "thermal_zones"
	SpaceTypes          = "space_types"
	ConstructionSets    = "construction_sets"
	Constructions       = "constructions"
	Windows             = "windows"
	DaylightingControls = "daylighting_controls"
)

// libraryCollections lists the collections the editor has a schema for.
var libraryCollections = []string{
	BuildingUnits, ThermalZones, SpaceTypes, ConstructionSets,
	Constructions, Windows, DaylightingControls,
}

// Library holds the reusable definitions shared across a model.
//
// Collections without a schema are kept in Other. A decoded library
// remembers the order its collections appeared in.
type Library struct {
	BuildingUnits       []*BuildingUnit
	ThermalZones        []*ThermalZone
	SpaceTypes          []*SpaceType
	ConstructionSets    []*ConstructionSet
	Constructions       []*Construction
	Windows             []*Window
	DaylightingControls []*DaylightingControl

	Other map[string][]*Object

	order []string
}

// Collection is one named library collection.
type Collection struct {
	Name  string
	Items []entity.Entity
}

// Collections returns the library collections: decoded order first, then
// the remaining schema collections in declaration order, then the remaining
// Other collections by name.
func (l *Library) Collections() []Collection {
	if l == nil {
		return nil
	}

	out := make([]Collection, 0, len(libraryCollections)+len(l.Other))
	seen := make(map[string]bool, cap(out))
	add := func(name string) {
		if seen[name] {
			return
		}
		if items, ok := l.collection(name); ok {
			seen[name] = true
			out = append(out, Collection{Name: name, Items: items})
		}
	}

	for _, name := range l.order {
		add(name)
	}
	for _, name := range libraryCollections {
		add(name)
	}
	other := make([]string, 0, len(l.Other))
	for name := range l.Other {
		other = append(other, name)
	}
	sort.Strings(other)
	for _, name := range other {
		add(name)
	}
	return out
}

func (l *Library) collection(name string) ([]entity.Entity, bool) {
	switch name {
	case BuildingUnits:
		return items(l.BuildingUnits), true
	case ThermalZones:
		return items(l.ThermalZones), true
	case SpaceTypes:
		return items(l.SpaceTypes), true
	case ConstructionSets:
		return items(l.ConstructionSets), true
	case Constructions:
		return items(l.Constructions), true
	case Windows:
		return items(l.Windows), true
	case DaylightingControls:
		return items(l.DaylightingControls), true
	}
	objs, ok := l.Other[name]
	if !ok {
		return nil, false
	}
	return items(objs), true
}

func items[T entity.Entity](in []T) []entity.Entity {
	out := make([]entity.Entity, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

// UnmarshalJSON decodes a library object, keeping its key order.
func (l *Library) UnmarshalJSON(data []byte) error {
	doc := gjson.ParseBytes(data)
	if doc.Type == gjson.Null {
		return nil
	}
	if !doc.IsObject() {
		return fmt.Errorf("library: expected object, got %s", doc.Type)
	}

	var (
		decoded Library
		err     error
	)
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if err = decoded.decodeCollection(name, []byte(value.Raw)); err != nil {
			err = fmt.Errorf("library.%s: %w", name, err)
			return false
		}
		if !slices.Contains(decoded.order, name) {
			decoded.order = append(decoded.order, name)
		}
		return true
	})
	if err != nil {
		return err
	}

	*l = decoded
	return nil
}

func (l *Library) decodeCollection(name string, raw []byte) error {
	switch name {
	case BuildingUnits:
		return json.Unmarshal(raw, &l.BuildingUnits)
	case ThermalZones:
		return json.Unmarshal(raw, &l.ThermalZones)
	case SpaceTypes:
		return json.Unmarshal(raw, &l.SpaceTypes)
	case ConstructionSets:
		return json.Unmarshal(raw, &l.ConstructionSets)
	case Constructions:
		return json.Unmarshal(raw, &l.Constructions)
	case Windows:
		return json.Unmarshal(raw, &l.Windows)
	case DaylightingControls:
		return json.Unmarshal(raw, &l.DaylightingControls)
	}

	var objs []*Object
	if err := json.Unmarshal(raw, &objs); err != nil {
		return err
	}
	if l.Other == nil {
		l.Other = make(map[string][]*Object)
	}
	l.Other[name] = objs
	return nil
}

// MarshalJSON encodes the collections in Collections order.
func (l Library) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range l.Collections() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.Items)
		if err != nil {
			return nil, fmt.Errorf("library.%s: %w", c.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Object is an entry of a library collection that has no schema.
// Everything except id and name is kept as custom attributes.
type Object struct {
	entity.Base
}

func (o *Object) UnmarshalJSON(data []byte) error {
	type alias Object
	var a alias
	attrs, err := entity.DecodeWithAttributes(data, &a)
	if err != nil {
		return err
	}
	*o = Object(a)
	o.Attributes = attrs
	return nil
}

func (o Object) MarshalJSON() ([]byte, error) {
	type alias Object
	return entity.EncodeWithAttributes(alias(o), o.Attributes)
}

// BuildingUnit groups spaces into a dwelling or tenant unit.
type BuildingUnit struct {
	entity.Base
	Color string `json:"color,omitempty"`
}

// ThermalZone groups spaces conditioned together.
type ThermalZone struct {
	entity.Base
	Color string `json:"color,omitempty"`
}

// SpaceType describes occupancy and loads of a space.
type SpaceType struct {
	entity.Base
	Color string `json:"color,omitempty"`
}

// ConstructionSet maps surface kinds to constructions.
type ConstructionSet struct {
	entity.Base
}

type Construction struct {
	entity.Base
}

// Window is a window definition placed on story edges.
type Window struct {
	entity.Base
}

type DaylightingControl struct {
	entity.Base
}

func (o *BuildingUnit) UnmarshalJSON(data []byte) error {
	type alias BuildingUnit
	var a alias
	attrs, err := entity.DecodeWithAttributes(data, &a)
	if err != nil {
		return err
	}
	*o = BuildingUnit(a)
	o.Attributes = attrs
	return nil
}

func (o BuildingUnit) MarshalJSON() ([]byte, error) {
	type alias BuildingUnit
	return entity.EncodeWithAttributes(alias(o), o.Attributes)
}

func (o *ThermalZone) UnmarshalJSON(data []byte) error {
	type alias ThermalZone
	var a alias
	attrs, err := entity.DecodeWithAttributes(data, &a)
	if err != nil {
		return err
	}
	*o = ThermalZone(a)
	o.Attributes = attrs
	return nil
}

func (o ThermalZone) MarshalJSON() ([]byte, error) {
	type alias ThermalZone
	return entity.EncodeWithAttributes(alias(o), o.Attributes)
}

func (o *SpaceType) UnmarshalJSON(data []byte) error {
	type alias SpaceType
	var a alias
	attrs, err := entity.DecodeWithAttributes(data, &a)
	if err != nil {
		return err
	}
	*o = SpaceType(a)
	o.Attributes = attrs
	return nil
}

func (o SpaceType) MarshalJSON() ([]byte, error) {
	type alias SpaceType
	return entity.EncodeWithAttributes(alias(o), o.Attributes)
}

func (o *ConstructionSet) UnmarshalJSON(data []byte) error {
	type alias ConstructionSet
	var a alias
	attrs, err := entity.DecodeWithAttributes(data, &a)
	if err != nil {
		return err
	}
	*o = ConstructionSet(a)
	o.Attributes = attrs
	return nil
}

func (o ConstructionSet) MarshalJSON() ([]byte, error) {
	type alias ConstructionSet
	return entity.EncodeWithAttributes(alias(o), o.Attributes)
}

func (o *Construction) UnmarshalJSON(data []byte) error {
	type alias Construction
	var a alias
	attrs, err := entity.DecodeWithAttributes(data, &a)
	if err != nil {
		return err
	}
	*o = Construction(a)
	o.Attributes = attrs
	return nil
}

func (o Construction) MarshalJSON() ([]byte, error) {
	type alias Construction
	return entity.EncodeWithAttributes(alias(o), o.Attributes)
}

func (o *Window) UnmarshalJSON(data []byte) error {
	type alias Window
	var a alias
	attrs, err := entity.DecodeWithAttributes(data, &a)
	if err != nil {
		return err
	}
	*o = Window(a)
	o.Attributes = attrs
	return nil
}

func (o Window) MarshalJSON() ([]byte, error) {
	type alias Window
	return entity.EncodeWithAttributes(alias(o), o.Attributes)
}

func (o *DaylightingControl) UnmarshalJSON(data []byte) error {
	type alias DaylightingControl
	var a alias
	attrs, err := entity.DecodeWithAttributes(data, &a)
	if err != nil {
		return err
	}
	*o = DaylightingControl(a)
	o.Attributes = attrs
	return nil
}

func (o DaylightingControl) MarshalJSON() ([]byte, error) {
	type alias DaylightingControl
	return entity.EncodeWithAttributes(alias(o), o.Attributes)
}
