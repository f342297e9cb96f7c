package handlers

import (
	"github.com/gin-gonic/gin"

	"floorspace/internal/domain/objects"
	"floorspace/internal/infrastructure/http/v1/dto"
	"floorspace/internal/metadata"
)

// MetadataHandler serves entity type descriptors.
type MetadataHandler struct {
	*BaseHandler
	registry *metadata.Registry
	service  *objects.Service
}

func NewMetadataHandler(base *BaseHandler, registry *metadata.Registry, service *objects.Service) *MetadataHandler {
	return &MetadataHandler{
		BaseHandler: base,
		registry:    registry,
		service:     service,
	}
}

// ListEntities returns descriptors of all entity types.
// GET /api/v1/meta?creatable=true
func (h *MetadataHandler) ListEntities(c *gin.Context) {
	items := h.service.Types()
	if c.Query("creatable") == "true" {
		filtered := items[:0]
		for _, d := range items {
			if d.Creatable {
				filtered = append(filtered, d)
			}
		}
		items = filtered
	}
	h.OK(c, dto.ListResponse{Items: items, TotalCount: len(items)})
}

// GetEntity returns the descriptor of one entity type.
// GET /api/v1/meta/:type
func (h *MetadataHandler) GetEntity(c *gin.Context) {
	d, err := h.service.Describe(metadata.EntityType(c.Param("type")))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, d)
}

// GetField reports how a key of a type is presented. Keys the type does not
// declare are custom attributes.
// GET /api/v1/meta/:type/fields/:key
func (h *MetadataHandler) GetField(c *gin.Context) {
	t := metadata.EntityType(c.Param("type"))
	key := c.Param("key")

	name, visible, err := h.registry.DisplayNameForKey(t, key)
	if err != nil {
		h.Error(c, err)
		return
	}
	readOnly, err := h.registry.ValueForKeyIsReadonly(t, key)
	if err != nil {
		h.Error(c, err)
		return
	}

	def, _ := h.registry.Get(t)
	declared := false
	for _, f := range def.Fields {
		if f.Key == key {
			declared = true
			break
		}
	}

	resp := dto.FieldResponse{
		Type:     t,
		Key:      key,
		Visible:  visible,
		ReadOnly: readOnly,
		Declared: declared,
	}
	if visible {
		resp.DisplayName = &name
	}
	h.OK(c, resp)
}

// NewObject returns a default object of the type.
// POST /api/v1/meta/:type/new
func (h *MetadataHandler) NewObject(c *gin.Context) {
	t := metadata.EntityType(c.Param("type"))
	obj, err := h.service.New(c.Request.Context(), t)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.ObjectResponse{Type: t, Object: obj})
}
