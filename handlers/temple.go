package handlers

import (
	"net/http"

	"devalaya/services/temple"
	"devalaya/utils"

	"github.com/gin-gonic/gin"
)

// TempleHandler exposes the read-only temple catalogue.
type TempleHandler struct {
	Service temple.TempleService
}

// NewTempleHandler constructs a TempleHandler.
func NewTempleHandler(svc temple.TempleService) *TempleHandler {
	return &TempleHandler{Service: svc}
}

// ListTemplesHandler returns the temple catalogue.
func (h *TempleHandler) ListTemplesHandler(c *gin.Context) {
	temples, err := h.Service.ListTemples()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list temples", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"temples": temples})
}

// GetTempleHandler returns one temple.
func (h *TempleHandler) GetTempleHandler(c *gin.Context) {
	t, err := h.Service.GetTemple(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "temple not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, t)
}

// ListServicesHandler returns the active services of a temple.
func (h *TempleHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Service.ListServices(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListVariationsHandler returns the priced variations of a service.
func (h *TempleHandler) ListVariationsHandler(c *gin.Context) {
	variations, err := h.Service.ListVariations(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to list variations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"variations": variations})
}
