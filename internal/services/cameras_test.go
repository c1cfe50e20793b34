package services

import (
	"context"
	"testing"

	"github.com/Princegupta101/instinctive/db"
	"github.com/Princegupta101/instinctive/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestListCamerasSortedByName(t *testing.T) {
	gdb := testutil.NewStore(t)
	svc := NewCameraService(gdb, zap.NewNop())

	testutil.CreateCamera(t, gdb, "Vault", "Security Vault, Underground Level")
	testutil.CreateCamera(t, gdb, "Entrance", "Main Entrance, Ground Floor")
	testutil.CreateCamera(t, gdb, "Shop Floor A", "Manufacturing Floor A, Building 1")

	cameras, err := svc.ListCameras(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(cameras))
	for _, camera := range cameras {
		names = append(names, camera.Name)
	}
	assert.Equal(t, []string{"Entrance", "Shop Floor A", "Vault"}, names)
}

func TestListCamerasEmptyAndFailure(t *testing.T) {
	gdb := testutil.NewStore(t)
	svc := NewCameraService(gdb, zap.NewNop())

	cameras, err := svc.ListCameras(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cameras)
	assert.Empty(t, cameras)

	require.NoError(t, db.Close(gdb))

	_, err = svc.ListCameras(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListCamerasLogsCount(t *testing.T) {
	gdb := testutil.NewStore(t)
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewCameraService(gdb, zap.New(core))

	testutil.CreateCamera(t, gdb, "Vault", "Security Vault, Underground Level")
	testutil.CreateCamera(t, gdb, "Entrance", "Main Entrance, Ground Floor")

	_, err := svc.ListCameras(context.Background())
	require.NoError(t, err)

	entries := logs.FilterMessage("Listed cameras").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "cameras", entries[0].LoggerName)
	assert.EqualValues(t, 2, entries[0].ContextMap()["count"])
}
