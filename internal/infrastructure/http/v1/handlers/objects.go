package handlers

import (
	"github.com/gin-gonic/gin"

	"floorspace/internal/domain/objects"
	"floorspace/internal/infrastructure/http/v1/dto"
	"floorspace/internal/metadata"
)

// ObjectsHandler resolves objects inside a posted model snapshot.
// The snapshot is not kept after the request.
type ObjectsHandler struct {
	*BaseHandler
	service *objects.Service
}

func NewObjectsHandler(base *BaseHandler, service *objects.Service) *ObjectsHandler {
	return &ObjectsHandler{BaseHandler: base, service: service}
}

// Lookup finds the library object, story or space with the given id.
// POST /api/v1/objects/lookup
func (h *ObjectsHandler) Lookup(c *gin.Context) {
	var req dto.LookupRequest
	if !h.BindJSON(c, &req) {
		return
	}

	res, err := h.service.Lookup(c.Request.Context(), &req.State, req.ID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ObjectResponse{Type: res.Type, Object: res.Object, StoryID: res.StoryID})
}

// Display returns inspector rows for the object with the given id.
// POST /api/v1/objects/display
func (h *ObjectsHandler) Display(c *gin.Context) {
	var req dto.DisplayRequest
	if !h.BindJSON(c, &req) {
		return
	}

	d, err := h.service.Display(c.Request.Context(), &req.State, metadata.EntityType(req.Type), req.ID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, d)
}
