package httpapi

import (
	"net/http"
	"strings"

	"weup-connect/internal/service"

	"go.uber.org/zap"
)

// ResourceHandler resource directory endpoints
type ResourceHandler struct {
	resources *service.ResourceService
	logger    *zap.Logger
}

func NewResourceHandler(resources *service.ResourceService, logger *zap.Logger) *ResourceHandler {
	return &ResourceHandler{resources: resources, logger: logger}
}

// ListResources GET /connect/api/v1/resources?category=crisis
func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := strings.TrimSpace(r.URL.Query().Get("category"))
	resources, err := h.resources.Resources(ctx, category)
	if err != nil {
		h.logger.Error("ListResources failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(resources))
}

// TrackAccess POST /connect/api/v1/resources/track
// Fire-and-forget: always responds ok, analytics failures never surface.
func (h *ResourceHandler) TrackAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromReq(w, r)
	if !ok {
		return
	}

	var payload struct {
		ResourceID   string `json:"resource_id"`
		ResourceName string `json:"resource_name"`
		Category     string `json:"category"`
	}
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid body"))
		return
	}

	h.resources.TrackAccess(ctx, userID, payload.ResourceID, payload.ResourceName, payload.Category)
	writeJSON(w, http.StatusOK, Ok(map[string]any{"tracked": true}))
}
