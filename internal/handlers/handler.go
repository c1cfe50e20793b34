package handlers

import (
	"context"

	"github.com/Princegupta101/instinctive/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock_services.go -package=handlers github.com/Princegupta101/instinctive/internal/handlers IncidentService,CameraService

type IncidentService interface {
	ListIncidents(ctx context.Context, resolved bool) ([]models.Incident, error)
	ToggleResolved(ctx context.Context, id string) (*models.Incident, error)
}

type CameraService interface {
	ListCameras(ctx context.Context) ([]models.Camera, error)
}

// PingFunc reports whether the store is reachable.
type PingFunc func(ctx context.Context) error

type Handler struct {
	incidents IncidentService
	cameras   CameraService
	ping      PingFunc
	log       *zap.Logger
}

func New(incidents IncidentService, cameras CameraService, ping PingFunc, log *zap.Logger) *Handler {
	return &Handler{
		incidents: incidents,
		cameras:   cameras,
		ping:      ping,
		log:       log.Named("handlers"),
	}
}
