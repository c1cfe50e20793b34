package tui

import (
	"context"

	"github.com/Princegupta101/instinctive/internal/models"
)

//go:generate mockgen -destination=mock_api.go -package=tui github.com/Princegupta101/instinctive/internal/tui API

// API is the slice of the incident API the terminal dashboard needs.
// *client.Client satisfies it.
type API interface {
	ListIncidents(ctx context.Context, resolved bool) ([]models.Incident, error)
	ToggleResolved(ctx context.Context, id string) (*models.Incident, error)
	ListCameras(ctx context.Context) ([]models.Camera, error)
}
