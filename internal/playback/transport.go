// ABOUTME: Playback engine contract and wall-clock transport
// ABOUTME: Tracks position and rate without opening an audio output device
package playback

import (
	"sync"
	"time"
)

// Rate bounds for variable-speed playback
const (
	MinRate = 0.25
	MaxRate = 4.0
)

// Engine is the playback contract the session drives. The core hands it
// translated seek timestamps and a playback rate; the audio path behind it
// is external.
type Engine interface {
	Play()
	Pause()
	Stop()
	Playing() bool
	// Seek jumps to a position in seconds, clamped to the loaded duration
	Seek(seconds float64)
	// Position returns the current position in seconds
	Position() float64
	// SetRate sets the playback rate, clamped to [MinRate, MaxRate]
	SetRate(rate float64)
	Rate() float64
	SetVolume(volume int)
	Volume() int
}

// ClockTransport is an Engine that advances position against the wall clock
// at the configured rate. It carries the transport state (position, rate,
// play/pause) so the playhead, markers, and loops behave exactly as with a
// real output path.
type ClockTransport struct {
	mu       sync.Mutex
	duration float64
	playing  bool
	rate     float64
	volume   int

	anchorPos  float64
	anchorTime time.Time
}

// NewClockTransport creates a stopped transport for a file of the given
// duration in seconds
func NewClockTransport(durationSeconds float64) *ClockTransport {
	return &ClockTransport{
		duration: durationSeconds,
		rate:     1.0,
		volume:   70,
	}
}

func (t *ClockTransport) Play() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.playing {
		return
	}
	t.anchorTime = time.Now()
	t.playing = true
}

func (t *ClockTransport) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.playing {
		return
	}
	t.anchorPos = t.positionLocked()
	t.playing = false
}

func (t *ClockTransport) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.playing = false
	t.anchorPos = 0
}

func (t *ClockTransport) Playing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playing
}

func (t *ClockTransport) Seek(seconds float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seconds < 0 {
		seconds = 0
	}
	if seconds > t.duration {
		seconds = t.duration
	}
	t.anchorPos = seconds
	t.anchorTime = time.Now()
}

func (t *ClockTransport) Position() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.positionLocked()
}

// positionLocked computes the live position; pauses at end of file
func (t *ClockTransport) positionLocked() float64 {
	pos := t.anchorPos
	if t.playing {
		pos += time.Since(t.anchorTime).Seconds() * t.rate
	}
	if pos >= t.duration {
		pos = t.duration
		t.anchorPos = pos
		t.playing = false
	}
	return pos
}

func (t *ClockTransport) SetRate(rate float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if rate < MinRate {
		rate = MinRate
	}
	if rate > MaxRate {
		rate = MaxRate
	}
	// Re-anchor so the rate change applies from the current position
	t.anchorPos = t.positionLocked()
	t.anchorTime = time.Now()
	t.rate = rate
}

func (t *ClockTransport) Rate() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rate
}

func (t *ClockTransport) SetVolume(volume int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	t.volume = volume
}

func (t *ClockTransport) Volume() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.volume
}
