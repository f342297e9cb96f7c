// Package objects serves metadata-driven views of editor objects: type
// descriptors, new default objects, id resolution and inspector rows.
package objects

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"floorspace/internal/core/apperror"
	"floorspace/internal/core/entity"
	"floorspace/internal/domain/model"
	"floorspace/internal/metadata"
	"floorspace/pkg/logger"
)

const tracerName = "floorspace/objects"

// LookupRecorder observes lookup outcomes. An empty type is a miss.
type LookupRecorder interface {
	ObserveLookup(entityType string)
}

// Service wraps the metadata registry for transport layers.
type Service struct {
	registry *metadata.Registry
	recorder LookupRecorder
	tracer   trace.Tracer
}

// NewService creates a new object service. recorder may be nil.
func NewService(registry *metadata.Registry, recorder LookupRecorder) *Service {
	return &Service{
		registry: registry,
		recorder: recorder,
		tracer:   otel.Tracer(tracerName),
	}
}

// Resolved is an object found by id.
type Resolved struct {
	Type    metadata.EntityType `json:"type"`
	Object  entity.Entity       `json:"object"`
	StoryID string              `json:"storyId,omitempty"`
}

// Display is everything an inspector needs to render one object.
type Display struct {
	Type     metadata.EntityType `json:"type"`
	TypeName string              `json:"typeName"`
	ID       string              `json:"id"`
	Rows     []metadata.Row      `json:"rows"`
}

// Types returns descriptors of all entity types in declaration order.
func (s *Service) Types() []metadata.Descriptor {
	defs := s.registry.List()
	out := make([]metadata.Descriptor, 0, len(defs))
	for _, def := range defs {
		out = append(out, def.Describe())
	}
	return out
}

// Describe returns the descriptor of one entity type.
func (s *Service) Describe(t metadata.EntityType) (metadata.Descriptor, error) {
	def, ok := s.registry.Get(t)
	if !ok {
		return metadata.Descriptor{}, apperror.NewUnknownEntityType(string(t))
	}
	return def.Describe(), nil
}

// New builds a default object of type t.
func (s *Service) New(ctx context.Context, t metadata.EntityType) (entity.Entity, error) {
	obj, err := s.registry.New(t)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "object initialized", "type", t, "id", obj.GetID())
	return obj, nil
}

// Lookup resolves id against state. A miss is reported as NOT_FOUND here,
// at the transport boundary; the resolver itself treats it as a normal outcome.
func (s *Service) Lookup(ctx context.Context, state *model.State, id string) (Resolved, error) {
	ctx, span := s.tracer.Start(ctx, "objects.lookup", trace.WithAttributes(attribute.String("object.id", id)))
	defer span.End()

	if strings.TrimSpace(id) == "" {
		err := apperror.NewInvalidInput("id", "id is required")
		span.SetStatus(codes.Error, err.Message)
		return Resolved{}, err
	}

	loc, ok := metadata.Locate(state, id)
	if !ok {
		s.observe("")
		span.SetAttributes(attribute.Bool("object.found", false))
		logger.Debug(ctx, "object not found", "id", id)
		return Resolved{}, apperror.NewNotFound("object", id)
	}

	s.observe(string(loc.Type))
	span.SetAttributes(
		attribute.Bool("object.found", true),
		attribute.String("object.type", string(loc.Type)),
	)

	res := Resolved{Type: loc.Type, Object: loc.Entity}
	if loc.Story != nil {
		res.StoryID = loc.Story.ID
	}
	return res, nil
}

// Display resolves id and builds its inspector rows. When t is empty the
// matched type is used; otherwise the object must be of type t.
func (s *Service) Display(ctx context.Context, state *model.State, t metadata.EntityType, id string) (Display, error) {
	ctx, span := s.tracer.Start(ctx, "objects.display", trace.WithAttributes(
		attribute.String("object.id", id),
		attribute.String("object.requested_type", string(t)),
	))
	defer span.End()

	if t != "" {
		if _, ok := s.registry.Get(t); !ok {
			err := apperror.NewUnknownEntityType(string(t))
			span.SetStatus(codes.Error, err.Message)
			return Display{}, err
		}
	}

	res, err := s.Lookup(ctx, state, id)
	if err != nil {
		return Display{}, err
	}
	if t == "" {
		t = res.Type
	} else if t != res.Type {
		return Display{}, apperror.NewValidation("object type mismatch").
			WithDetail("id", id).
			WithDetail("type", string(res.Type)).
			WithDetail("requested", string(t))
	}

	rows, err := s.registry.Rows(res.Object, state, t)
	if err != nil {
		return Display{}, err
	}

	def, _ := s.registry.Get(t)
	return Display{
		Type:     t,
		TypeName: def.DisplayName,
		ID:       res.Object.GetID(),
		Rows:     rows,
	}, nil
}

func (s *Service) observe(entityType string) {
	if s.recorder != nil {
		s.recorder.ObserveLookup(entityType)
	}
}
