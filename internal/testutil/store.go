// Package testutil opens throwaway SQLite stores for package tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Princegupta101/instinctive/db"
	"github.com/Princegupta101/instinctive/internal/config"
	"github.com/Princegupta101/instinctive/internal/models"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

// NewStore opens a migrated SQLite database in the test's temp directory and
// closes it when the test ends.
func NewStore(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver: "sqlite",
		URL:    filepath.Join(t.TempDir(), "test.db"),
	}

	gdb, err := db.Open(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close(gdb) })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb
}

func CreateCamera(t testing.TB, gdb *gorm.DB, name, location string) models.Camera {
	t.Helper()

	camera := models.Camera{Name: name, Location: location}
	if err := gdb.Create(&camera).Error; err != nil {
		t.Fatalf("failed to create camera %q: %v", name, err)
	}

	return camera
}

func CreateIncident(t testing.TB, gdb *gorm.DB, camera models.Camera, incidentType string, start time.Time, resolved bool) models.Incident {
	t.Helper()

	incident := models.Incident{
		CameraID:     camera.ID,
		Type:         incidentType,
		TsStart:      start,
		TsEnd:        start.Add(5 * time.Minute),
		ThumbnailURL: "/thumbnails/incident-1.svg",
		Resolved:     resolved,
	}
	if err := gdb.Omit("Camera").Create(&incident).Error; err != nil {
		t.Fatalf("failed to create incident: %v", err)
	}

	return incident
}
