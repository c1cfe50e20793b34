package dashboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/Princegupta101/instinctive/internal/models"
)

// RemoveDelay is how long a freshly resolved incident stays visible in the
// active-only view before it is dropped from the local list.
const RemoveDelay = time.Second

var (
	ErrUnknownIncident   = errors.New("incident is not on the board")
	ErrResolutionPending = errors.New("resolution already in flight")
	ErrNotPending        = errors.New("no resolution in flight")
)

type ResolutionState int

const (
	Idle ResolutionState = iota
	Pending
	Committed
	RolledBack
)

func (s ResolutionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Committed:
		return "committed"
	case RolledBack:
		return "rolled back"
	default:
		return fmt.Sprintf("ResolutionState(%d)", int(s))
	}
}

// Board is the client-side copy of the incident list. Resolving goes through
// three steps: Apply flips the flag locally and marks the incident Pending,
// then the server's answer either Commits the new record or Rolls back to the
// remembered value.
type Board struct {
	showResolved bool
	incidents    []models.Incident
	states       map[string]ResolutionState
	previous     map[string]bool
}

func NewBoard(showResolved bool) *Board {
	return &Board{
		showResolved: showResolved,
		states:       make(map[string]ResolutionState),
		previous:     make(map[string]bool),
	}
}

// Load replaces the list with a fresh server response and forgets all
// per-incident state.
func (b *Board) Load(incidents []models.Incident) {
	b.incidents = append([]models.Incident(nil), incidents...)
	b.states = make(map[string]ResolutionState)
	b.previous = make(map[string]bool)
}

func (b *Board) ShowResolved() bool {
	return b.showResolved
}

func (b *Board) SetShowResolved(show bool) {
	b.showResolved = show
}

func (b *Board) Incidents() []models.Incident {
	return b.incidents
}

func (b *Board) Len() int {
	return len(b.incidents)
}

func (b *Board) At(i int) (models.Incident, bool) {
	if i < 0 || i >= len(b.incidents) {
		return models.Incident{}, false
	}
	return b.incidents[i], true
}

func (b *Board) Unresolved() int {
	n := 0
	for _, incident := range b.incidents {
		if !incident.Resolved {
			n++
		}
	}
	return n
}

func (b *Board) State(id string) ResolutionState {
	return b.states[id]
}

// Apply tentatively flips the incident's resolved flag.
func (b *Board) Apply(id string) error {
	i := b.index(id)
	if i < 0 {
		return ErrUnknownIncident
	}
	if b.states[id] == Pending {
		return ErrResolutionPending
	}

	b.previous[id] = b.incidents[i].Resolved
	b.incidents[i].Resolved = !b.incidents[i].Resolved
	b.states[id] = Pending

	return nil
}

// Commit replaces the pending incident with the server's copy.
func (b *Board) Commit(id string, updated models.Incident) error {
	i := b.index(id)
	if i < 0 {
		return ErrUnknownIncident
	}
	if b.states[id] != Pending {
		return ErrNotPending
	}

	b.incidents[i] = updated
	b.states[id] = Committed
	delete(b.previous, id)

	return nil
}

// Rollback restores the flag remembered by Apply.
func (b *Board) Rollback(id string) error {
	i := b.index(id)
	if i < 0 {
		return ErrUnknownIncident
	}
	if b.states[id] != Pending {
		return ErrNotPending
	}

	b.incidents[i].Resolved = b.previous[id]
	b.states[id] = RolledBack
	delete(b.previous, id)

	return nil
}

// ShouldRemove reports whether a committed incident no longer belongs in the
// current view. Callers wait RemoveDelay before calling Remove.
func (b *Board) ShouldRemove(id string) bool {
	i := b.index(id)
	if i < 0 || b.states[id] != Committed {
		return false
	}
	return b.incidents[i].Resolved != b.showResolved
}

func (b *Board) Remove(id string) {
	i := b.index(id)
	if i < 0 {
		return
	}
	b.incidents = append(b.incidents[:i], b.incidents[i+1:]...)
	delete(b.states, id)
	delete(b.previous, id)
}

func (b *Board) index(id string) int {
	for i, incident := range b.incidents {
		if incident.ID.String() == id {
			return i
		}
	}
	return -1
}
