package handlers

import (
	"net/http"
	"time"

	"github.com/Princegupta101/instinctive/internal/dashboard"
	"github.com/Princegupta101/instinctive/internal/models"
	"github.com/Princegupta101/instinctive/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardPage struct {
	ShowResolved      bool
	Incidents         []models.Incident
	Cameras           []models.Camera
	Selected          *models.Incident
	SelectedID        string
	ClipLength        time.Duration
	ClipSeconds       int
	RemoveDelayMillis int64
}

// Dashboard renders the HTML dashboard. ?resolved= picks the list the same way
// the API does and ?incident= selects the incident shown in the player,
// defaulting to the newest one.
func (h *Handler) Dashboard(ctx *gin.Context) {
	resolved := utils.GetResolvedFilter(ctx)
	reqCtx := ctx.Request.Context()

	incidents, err := h.incidents.ListIncidents(reqCtx, resolved)

	if err != nil {
		h.log.Error("Failed to fetch incidents", zap.Bool("resolved", resolved), zap.Error(err))
		ctx.String(http.StatusInternalServerError, "Failed to fetch incidents")
		return
	}

	cameras, err := h.cameras.ListCameras(reqCtx)

	if err != nil {
		h.log.Error("Failed to fetch cameras", zap.Error(err))
		ctx.String(http.StatusInternalServerError, "Failed to fetch cameras")
		return
	}

	player := dashboard.NewPlayer(dashboard.DefaultClipLength)
	page := DashboardPage{
		ShowResolved:      resolved,
		Incidents:         incidents,
		Cameras:           cameras,
		ClipLength:        player.Duration(),
		ClipSeconds:       int(player.Duration() / time.Second),
		RemoveDelayMillis: dashboard.RemoveDelay.Milliseconds(),
	}

	page.Selected = selectIncident(incidents, ctx.Query("incident"))
	if page.Selected != nil {
		page.SelectedID = page.Selected.ID.String()
	}

	ctx.HTML(http.StatusOK, "dashboard.tmpl", page)
}

func selectIncident(incidents []models.Incident, id string) *models.Incident {
	if len(incidents) == 0 {
		return nil
	}

	for i := range incidents {
		if incidents[i].ID.String() == id {
			return &incidents[i]
		}
	}

	return &incidents[0]
}
