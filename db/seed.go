package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Princegupta101/instinctive/internal/models"
	"gorm.io/gorm"
)

type SeedResult struct {
	Cameras   int
	Incidents int
}

type seedCamera struct {
	name     string
	location string
}

type seedIncident struct {
	camera       int // index into seedCameras
	incidentType string
	startAgo     time.Duration
	endAgo       time.Duration
	thumbnail    string
	resolved     bool
}

var seedCameras = []seedCamera{
	{name: "Shop Floor A", location: "Manufacturing Floor A, Building 1"},
	{name: "Vault", location: "Security Vault, Underground Level"},
	{name: "Entrance", location: "Main Entrance, Ground Floor"},
	{name: "Parking Lot", location: "Employee Parking Lot, Zone A"},
}

func ago(hours, minutes int) time.Duration {
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
}

// Incidents spread over the last 24 hours: recent ones open, older ones mostly
// resolved.
var seedIncidents = []seedIncident{
	{0, models.IncidentUnauthorizedAccess, ago(0, 10), ago(0, 5), "/thumbnails/incident-1.svg", false},
	{2, models.IncidentGunThreat, ago(0, 25), ago(0, 20), "/thumbnails/incident-2.svg", false},
	{1, models.IncidentMotionDetection, ago(0, 35), ago(0, 30), "/thumbnails/incident-3.svg", false},
	{3, models.IncidentSuspiciousActivity, ago(0, 45), ago(0, 40), "/thumbnails/incident-4.svg", false},
	{2, models.IncidentFaceRecognized, ago(1, 15), ago(1, 10), "/thumbnails/incident-3.svg", false},
	{0, models.IncidentMotionDetection, ago(2, 0), ago(1, 50), "/thumbnails/incident-4.svg", false},
	{3, models.IncidentUnauthorizedAccess, ago(2, 30), ago(2, 25), "/thumbnails/incident-1.svg", false},
	{1, models.IncidentGunThreat, ago(3, 10), ago(3, 5), "/thumbnails/incident-2.svg", false},
	{2, models.IncidentSuspiciousActivity, ago(4, 20), ago(4, 15), "/thumbnails/incident-4.svg", false},
	{0, models.IncidentFaceRecognized, ago(5, 30), ago(5, 25), "/thumbnails/incident-3.svg", false},
	{1, models.IncidentMotionDetection, ago(6, 0), ago(5, 55), "/thumbnails/incident-4.svg", true},
	{3, models.IncidentFaceRecognized, ago(7, 15), ago(7, 10), "/thumbnails/incident-3.svg", true},
	{1, models.IncidentFaceRecognized, ago(8, 0), ago(7, 55), "/thumbnails/incident-3.svg", true},
	{0, models.IncidentUnauthorizedAccess, ago(10, 45), ago(10, 40), "/thumbnails/incident-1.svg", true},
	{3, models.IncidentSuspiciousActivity, ago(12, 0), ago(11, 50), "/thumbnails/incident-4.svg", true},
	{2, models.IncidentGunThreat, ago(15, 20), ago(15, 15), "/thumbnails/incident-2.svg", true},
	{1, models.IncidentUnauthorizedAccess, ago(18, 0), ago(17, 55), "/thumbnails/incident-1.svg", true},
	{0, models.IncidentMotionDetection, ago(20, 30), ago(20, 25), "/thumbnails/incident-4.svg", false},
	{3, models.IncidentGunThreat, ago(22, 0), ago(21, 58), "/thumbnails/incident-2.svg", true},
}

// Reset deletes every incident and then every camera, so no incident is ever
// left pointing at a missing camera.
func Reset(ctx context.Context, gdb *gorm.DB) error {
	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Incident{}).Error; err != nil {
			return fmt.Errorf("clearing incidents: %w", err)
		}

		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Camera{}).Error; err != nil {
			return fmt.Errorf("clearing cameras: %w", err)
		}

		return nil
	})
}

// Seed inserts the demo cameras and incidents with timestamps relative to now.
func Seed(ctx context.Context, gdb *gorm.DB, now time.Time) (SeedResult, error) {
	var result SeedResult

	err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cameras := make([]models.Camera, len(seedCameras))
		for i, c := range seedCameras {
			cameras[i] = models.Camera{Name: c.name, Location: c.location}
		}

		if err := tx.Create(&cameras).Error; err != nil {
			return fmt.Errorf("creating cameras: %w", err)
		}

		incidents := make([]models.Incident, len(seedIncidents))
		for i, s := range seedIncidents {
			incidents[i] = models.Incident{
				CameraID:     cameras[s.camera].ID,
				Type:         s.incidentType,
				TsStart:      now.Add(-s.startAgo),
				TsEnd:        now.Add(-s.endAgo),
				ThumbnailURL: s.thumbnail,
				Resolved:     s.resolved,
			}
		}

		if err := tx.Omit("Camera").Create(&incidents).Error; err != nil {
			return fmt.Errorf("creating incidents: %w", err)
		}

		result = SeedResult{Cameras: len(cameras), Incidents: len(incidents)}
		return nil
	})

	return result, err
}
