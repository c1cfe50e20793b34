package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Princegupta101/instinctive/internal/client"
	"github.com/Princegupta101/instinctive/internal/handlers"
	"github.com/Princegupta101/instinctive/internal/models"
	"github.com/Princegupta101/instinctive/internal/router"
	"github.com/Princegupta101/instinctive/internal/services"
	"github.com/Princegupta101/instinctive/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newServer(t *testing.T) (*client.Client, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutil.NewStore(t)
	log := zap.NewNop()
	h := handlers.New(
		services.NewIncidentService(gdb, log),
		services.NewCameraService(gdb, log),
		func(context.Context) error { return nil },
		log,
	)

	r, err := router.NewRouter(h, []string{"http://localhost:3000"}, log)
	require.NoError(t, err)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return client.New(srv.URL+"/", client.WithHTTPClient(srv.Client())), gdb
}

func TestClientRoundTrip(t *testing.T) {
	c, gdb := newServer(t)
	ctx := context.Background()

	camera := testutil.CreateCamera(t, gdb, "Entrance", "Main Door")
	incident := testutil.CreateIncident(t, gdb, camera, models.IncidentGunThreat, time.Now(), false)

	cameras, err := c.ListCameras(ctx)
	require.NoError(t, err)
	require.Len(t, cameras, 1)
	assert.Equal(t, camera.ID, cameras[0].ID)

	open, err := c.ListIncidents(ctx, false)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "Entrance", open[0].Camera.Name)

	updated, err := c.ToggleResolved(ctx, incident.ID.String())
	require.NoError(t, err)
	assert.True(t, updated.Resolved)

	open, err = c.ListIncidents(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, open)

	closed, err := c.ListIncidents(ctx, true)
	require.NoError(t, err)
	require.Len(t, closed, 1)
	assert.Equal(t, incident.ID, closed[0].ID)
}

func TestClientNotFound(t *testing.T) {
	c, _ := newServer(t)

	_, err := c.ToggleResolved(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Incident not found", apiErr.Message)
}

func TestClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	t.Cleanup(srv.Close)

	c := client.New(srv.URL)
	_, err := c.ListCameras(context.Background())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "upstream exploded", apiErr.Message)
	assert.False(t, client.IsNotFound(err))
}

func TestClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := client.New(addr).ListIncidents(context.Background(), false)
	require.Error(t, err)
	assert.False(t, client.IsNotFound(err))
}
