package handlers

import (
	"errors"
	"net/http"

	"github.com/Princegupta101/instinctive/internal/services"
	"github.com/Princegupta101/instinctive/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) ListIncidents(ctx *gin.Context) {
	resolved := utils.GetResolvedFilter(ctx)

	incidents, err := h.incidents.ListIncidents(ctx.Request.Context(), resolved)

	if err != nil {
		h.log.Error("Failed to fetch incidents", zap.Bool("resolved", resolved), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch incidents"})
		return
	}

	ctx.JSON(http.StatusOK, incidents)
}

func (h *Handler) ResolveIncident(ctx *gin.Context) {
	incidentID, err := utils.GetIncidentID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Incident not found"})
		return
	}

	incident, err := h.incidents.ToggleResolved(ctx.Request.Context(), incidentID)

	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Incident not found"})
		} else {
			h.log.Error("Failed to resolve incident", zap.String("incident_id", incidentID), zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve incident"})
		}
		return
	}

	ctx.JSON(http.StatusOK, incident)
}
