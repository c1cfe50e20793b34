package dashboard

import (
	"testing"
	"time"

	"github.com/Princegupta101/instinctive/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayFor(t *testing.T) {
	assert.Equal(t, "type-gun-threat", DisplayFor(models.IncidentGunThreat).CSSClass)
	assert.Equal(t, "#60A5FA", DisplayFor(models.IncidentFaceRecognized).Color)
	assert.Equal(t, defaultDisplay, DisplayFor(models.IncidentMotionDetection))
	assert.Equal(t, defaultDisplay, DisplayFor("Tailgating"))
	assert.Equal(t, defaultDisplay, DisplayFor(""))
}

func TestFeedFor(t *testing.T) {
	tests := []struct {
		camera string
		feed   string
	}{
		{"Shop Floor A", "/videos/shop-floor-feed.html"},
		{"VAULT", "/videos/vault-feed.html"},
		{"North Entrance", "/videos/entrance-feed.html"},
		{"Parking Lot", DefaultFeed},
		{"", DefaultFeed},
	}

	for _, tt := range tests {
		t.Run(tt.camera, func(t *testing.T) {
			assert.Equal(t, tt.feed, FeedFor(tt.camera))
		})
	}

	assert.True(t, IsLiveFeed(FeedFor("Vault")))
	assert.False(t, IsLiveFeed(DefaultFeed))
}

func TestPlayer(t *testing.T) {
	p := NewPlayer(3 * time.Second)

	p.Tick()
	assert.Zero(t, p.Position(), "paused player must not advance")

	p.Toggle()
	require.True(t, p.Playing())

	p.Tick()
	p.Tick()
	p.Tick()
	assert.Equal(t, 3*time.Second, p.Position())
	assert.InDelta(t, 1.0, p.Progress(), 1e-9)

	p.Tick()
	assert.Zero(t, p.Position(), "play-head wraps after the end of the clip")

	p.Tick()
	p.Reset()
	assert.Zero(t, p.Position())
	assert.False(t, p.Playing())

	assert.Equal(t, DefaultClipLength, NewPlayer(0).Duration())
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "01:05", FormatClock(65*time.Second))
	assert.Equal(t, "05:00", FormatClock(DefaultClipLength))
}

func boardIncident(resolved bool) models.Incident {
	return models.Incident{
		ID:       uuid.New(),
		Type:     models.IncidentGunThreat,
		Resolved: resolved,
	}
}

func TestBoardCommit(t *testing.T) {
	b := NewBoard(false)
	incident := boardIncident(false)
	other := boardIncident(false)
	b.Load([]models.Incident{incident, other})

	id := incident.ID.String()
	assert.Equal(t, Idle, b.State(id))
	assert.Equal(t, 2, b.Unresolved())

	require.NoError(t, b.Apply(id))
	assert.Equal(t, Pending, b.State(id))
	assert.True(t, b.Incidents()[0].Resolved)
	assert.Equal(t, 1, b.Unresolved())
	assert.False(t, b.ShouldRemove(id), "pending incidents stay put")

	assert.ErrorIs(t, b.Apply(id), ErrResolutionPending)

	server := incident
	server.Resolved = true
	server.Camera = models.Camera{Name: "Entrance"}
	require.NoError(t, b.Commit(id, server))
	assert.Equal(t, Committed, b.State(id))
	assert.Equal(t, "Entrance", b.Incidents()[0].Camera.Name)

	assert.True(t, b.ShouldRemove(id))
	b.Remove(id)
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, Idle, b.State(id))

	first, ok := b.At(0)
	require.True(t, ok)
	assert.Equal(t, other.ID, first.ID)
}

func TestBoardRollback(t *testing.T) {
	b := NewBoard(false)
	incident := boardIncident(false)
	b.Load([]models.Incident{incident})
	id := incident.ID.String()

	require.NoError(t, b.Apply(id))
	require.NoError(t, b.Rollback(id))

	assert.Equal(t, RolledBack, b.State(id))
	assert.False(t, b.Incidents()[0].Resolved)
	assert.False(t, b.ShouldRemove(id))

	assert.ErrorIs(t, b.Rollback(id), ErrNotPending)
	assert.ErrorIs(t, b.Commit(id, incident), ErrNotPending)

	// A rolled back incident can be retried.
	require.NoError(t, b.Apply(id))
	assert.Equal(t, Pending, b.State(id))
}

func TestBoardShowResolvedView(t *testing.T) {
	b := NewBoard(true)
	incident := boardIncident(true)
	b.Load([]models.Incident{incident})
	id := incident.ID.String()

	require.NoError(t, b.Apply(id))
	reopened := incident
	reopened.Resolved = false
	require.NoError(t, b.Commit(id, reopened))

	assert.True(t, b.ShouldRemove(id), "reopened incidents leave the resolved view")

	b.SetShowResolved(false)
	assert.False(t, b.ShouldRemove(id))
}

func TestBoardUnknownIncident(t *testing.T) {
	b := NewBoard(false)
	b.Load([]models.Incident{boardIncident(false)})

	missing := uuid.NewString()
	assert.ErrorIs(t, b.Apply(missing), ErrUnknownIncident)
	assert.ErrorIs(t, b.Commit(missing, models.Incident{}), ErrUnknownIncident)
	assert.ErrorIs(t, b.Rollback(missing), ErrUnknownIncident)
	assert.False(t, b.ShouldRemove(missing))

	b.Remove(missing)
	assert.Equal(t, 1, b.Len())

	_, ok := b.At(5)
	assert.False(t, ok)
}

func TestBoardLoadResetsState(t *testing.T) {
	b := NewBoard(false)
	incident := boardIncident(false)
	b.Load([]models.Incident{incident})
	require.NoError(t, b.Apply(incident.ID.String()))

	b.Load([]models.Incident{incident})
	assert.Equal(t, Idle, b.State(incident.ID.String()))
	assert.False(t, b.Incidents()[0].Resolved)
}

func TestResolutionStateString(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "rolled back", RolledBack.String())
	assert.Equal(t, "ResolutionState(9)", ResolutionState(9).String())
}
