package handler

import (
	"encoding/json"

	settingsapp "github.com/finopenpos/backend/internal/application/settings"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles the POS configuration document endpoints
type SettingsHandler struct {
	BaseHandler
	settingsService *settingsapp.Service
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *settingsapp.Service) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// RegisterRoutes registers all settings routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	{
		settings.GET("", h.Get)
		settings.PUT("", h.Update)
	}
}

// Get handles GET /settings
func (h *SettingsHandler) Get(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	snapshot, err := h.settingsService.Get(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, snapshot)
}

// Update handles PUT /settings. The body is the full replacement
// configuration document.
func (h *SettingsHandler) Update(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var document json.RawMessage
	if err := c.ShouldBindJSON(&document); err != nil {
		h.BadRequest(c, "Request body must be a valid JSON document")
		return
	}

	snapshot, err := h.settingsService.Update(c.Request.Context(), ownerID, document)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, snapshot)
}
