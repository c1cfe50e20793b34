package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Princegupta101/instinctive/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IncidentService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewIncidentService(db *gorm.DB, log *zap.Logger) *IncidentService {
	return &IncidentService{db: db, log: log.Named("incidents")}
}

// ListIncidents returns the incidents whose resolved flag equals resolved, newest
// first, each joined with its camera. Incidents sharing a start time are ordered
// by id.
func (s *IncidentService) ListIncidents(ctx context.Context, resolved bool) ([]models.Incident, error) {
	incidents := []models.Incident{}

	err := s.db.WithContext(ctx).
		Joins("Camera").
		Where("incidents.resolved = ?", resolved).
		Order("incidents.ts_start DESC").
		Order("incidents.id ASC").
		Find(&incidents).Error
	if err != nil {
		return nil, fmt.Errorf("%w: listing incidents: %v", ErrInternal, err)
	}

	return incidents, nil
}

// ToggleResolved flips the resolved flag of one incident and returns the updated
// record with its camera.
//
// The flip is a single UPDATE ... SET resolved = NOT resolved, so the store
// serializes concurrent toggles of the same row and they compose: two toggles
// racing on an open incident leave it open.
func (s *IncidentService) ToggleResolved(ctx context.Context, id string) (*models.Incident, error) {
	incidentID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: incident %q", ErrNotFound, id)
	}

	var incident models.Incident

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Incident{}).
			Where("id = ?", incidentID).
			Update("resolved", gorm.Expr("NOT resolved"))
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Joins("Camera").
			Where("incidents.id = ?", incidentID).
			Take(&incident).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: incident %s", ErrNotFound, incidentID)
		}
		return nil, fmt.Errorf("%w: toggling incident %s: %v", ErrInternal, incidentID, err)
	}

	s.log.Debug("Toggled incident resolution",
		zap.String("incident_id", incident.ID.String()),
		zap.Bool("resolved", incident.Resolved),
	)

	return &incident, nil
}
