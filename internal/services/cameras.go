package services

import (
	"context"
	"fmt"

	"github.com/Princegupta101/instinctive/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CameraService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCameraService(db *gorm.DB, log *zap.Logger) *CameraService {
	return &CameraService{db: db, log: log.Named("cameras")}
}

// ListCameras returns every camera ordered by name.
func (s *CameraService) ListCameras(ctx context.Context) ([]models.Camera, error) {
	cameras := []models.Camera{}

	if err := s.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&cameras).Error; err != nil {
		return nil, fmt.Errorf("%w: listing cameras: %v", ErrInternal, err)
	}

	s.log.Debug("Listed cameras", zap.Int("count", len(cameras)))

	return cameras, nil
}
