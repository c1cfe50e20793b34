package dashboard

import (
	"fmt"
	"time"
)

const DefaultClipLength = 300 * time.Second

// Player is the mock playback clock behind the incident player. Nothing is
// decoded; the play-head just advances one second per tick while playing.
type Player struct {
	duration time.Duration
	position time.Duration
	playing  bool
}

func NewPlayer(duration time.Duration) *Player {
	if duration <= 0 {
		duration = DefaultClipLength
	}
	return &Player{duration: duration}
}

func (p *Player) Toggle() {
	p.playing = !p.playing
}

func (p *Player) Playing() bool {
	return p.playing
}

// Tick advances the play-head by one second, wrapping to zero at the end of the
// clip. It does nothing while paused.
func (p *Player) Tick() {
	if !p.playing {
		return
	}
	if p.position < p.duration {
		p.position += time.Second
		return
	}
	p.position = 0
}

// Reset rewinds and pauses, for when another incident is selected.
func (p *Player) Reset() {
	p.position = 0
	p.playing = false
}

func (p *Player) Position() time.Duration {
	return p.position
}

func (p *Player) Duration() time.Duration {
	return p.duration
}

// Progress is the play-head position as a fraction of the clip.
func (p *Player) Progress() float64 {
	return float64(p.position) / float64(p.duration)
}

// FormatClock renders a duration as mm:ss.
func FormatClock(d time.Duration) string {
	seconds := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
