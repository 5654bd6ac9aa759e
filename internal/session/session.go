// ABOUTME: Per-file playback session orchestration
// ABOUTME: Owns the waveform build lifecycle, transport, markers and playlist
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/audinux/audinux-go/internal/config"
	"github.com/audinux/audinux-go/internal/markers"
	"github.com/audinux/audinux-go/internal/playback"
	"github.com/audinux/audinux-go/internal/playlist"
	"github.com/audinux/audinux-go/pkg/audio"
	"github.com/audinux/audinux-go/pkg/waveform"
	"github.com/google/uuid"
)

// Config holds session configuration
type Config struct {
	BucketDuration time.Duration

	// NewSource opens a decoder for a file path; defaults to audio.NewSource
	NewSource func(path string) (audio.Source, error)
	// NewEngine creates the playback engine for a loaded file; defaults to
	// the wall-clock transport
	NewEngine func(durationSeconds float64) playback.Engine

	// OnReady fires when a file's summary finishes building
	OnReady func(path string, summary *waveform.Summary)
	// OnError fires when a file fails to open or build
	OnError func(path string, err error)
}

// Session is the single logical owner of one open audio file. Opening a new
// file supersedes the previous one: any in-flight build is cancelled and its
// partial results discarded, and the prior cache is torn down. Queries see
// either a completed summary or none, never a partial one.
type Session struct {
	mu  sync.RWMutex
	cfg Config

	id      string
	path    string
	summary *waveform.Summary
	engine  playback.Engine
	rate    float64
	volume  int

	markers  *markers.Manager
	playlist *playlist.Playlist

	buildCancel context.CancelFunc
	buildGen    uint64
}

// New creates a session seeded from persistent settings
func New(cfg Config, settings config.Settings) *Session {
	if cfg.BucketDuration <= 0 {
		cfg.BucketDuration = waveform.DefaultBucketDuration
	}
	if cfg.NewSource == nil {
		cfg.NewSource = func(path string) (audio.Source, error) {
			return audio.NewSource(path)
		}
	}
	if cfg.NewEngine == nil {
		cfg.NewEngine = func(durationSeconds float64) playback.Engine {
			return playback.NewClockTransport(durationSeconds)
		}
	}

	return &Session{
		cfg:      cfg,
		rate:     settings.LastRate,
		volume:   settings.Volume,
		markers:  markers.NewManager(),
		playlist: playlist.New(),
	}
}

// Open loads a file. The previous file's cache is torn down immediately and
// any in-flight build is cancelled; the summary build runs off the caller's
// path and reports through the OnReady/OnError callbacks.
func (s *Session) Open(path string) {
	s.mu.Lock()

	if s.buildCancel != nil {
		s.buildCancel()
	}
	s.buildGen++
	gen := s.buildGen

	ctx, cancel := context.WithCancel(context.Background())
	s.buildCancel = cancel

	s.id = uuid.New().String()
	s.path = path
	s.summary = nil
	s.engine = nil
	s.markers.LoadFor(path)

	id := s.id
	s.mu.Unlock()

	log.Printf("Opening %s (session %s)", path, id)

	go s.build(ctx, gen, path)
}

// build decodes the file once and installs the finished summary, unless a
// newer Open superseded this build
func (s *Session) build(ctx context.Context, gen uint64, path string) {
	start := time.Now()

	src, err := s.cfg.NewSource(path)
	if err != nil {
		// Unreadable and unsupported files fall under the decode error
		// class, same as mid-stream decoder failures
		s.reportError(gen, path, fmt.Errorf("%w: %v", waveform.ErrDecode, err))
		return
	}
	defer src.Close()

	summary, err := waveform.Build(ctx, src, s.cfg.BucketDuration)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Superseded by a newer open; discard silently
			log.Printf("Build cancelled for %s", path)
			return
		}
		s.reportError(gen, path, err)
		return
	}

	s.mu.Lock()
	if gen != s.buildGen {
		s.mu.Unlock()
		return
	}
	s.summary = summary
	s.engine = s.cfg.NewEngine(summary.TotalDuration().Seconds())
	s.engine.SetRate(s.rate)
	s.engine.SetVolume(s.volume)
	onReady := s.cfg.OnReady
	s.mu.Unlock()

	log.Printf("Waveform ready for %s: %d buckets in %v",
		path, summary.NumBuckets(), time.Since(start))

	if onReady != nil {
		onReady(path, summary)
	}
}

func (s *Session) reportError(gen uint64, path string, err error) {
	s.mu.RLock()
	stale := gen != s.buildGen
	onError := s.cfg.OnError
	s.mu.RUnlock()
	if stale {
		return
	}

	log.Printf("Failed to open %s: %v", path, err)
	if onError != nil {
		onError(path, err)
	}
}

// Close cancels any in-flight build and tears down the current file
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buildCancel != nil {
		s.buildCancel()
		s.buildCancel = nil
	}
	s.buildGen++
	s.summary = nil
	s.engine = nil
	s.path = ""
}

// Summary returns the completed waveform summary, or nil while building
func (s *Session) Summary() *waveform.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

// Path returns the currently open file path
func (s *Session) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// ID returns the session identifier for the current file
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Markers returns the marker manager for the current file
func (s *Session) Markers() *markers.Manager {
	return s.markers
}

// Playlist returns the session playlist
func (s *Session) Playlist() *playlist.Playlist {
	return s.playlist
}

// engineOrNil returns the engine under the read lock
func (s *Session) engineOrNil() playback.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// TogglePlay starts or pauses playback; a no-op until the file is ready
func (s *Session) TogglePlay() {
	if e := s.engineOrNil(); e != nil {
		if e.Playing() {
			e.Pause()
		} else {
			e.Play()
		}
	}
}

// Stop halts playback and rewinds
func (s *Session) Stop() {
	if e := s.engineOrNil(); e != nil {
		e.Stop()
	}
}

// Playing reports whether playback is running
func (s *Session) Playing() bool {
	if e := s.engineOrNil(); e != nil {
		return e.Playing()
	}
	return false
}

// Position returns the playback position in seconds
func (s *Session) Position() float64 {
	if e := s.engineOrNil(); e != nil {
		return e.Position()
	}
	return 0
}

// Seek jumps playback to a position in seconds
func (s *Session) Seek(seconds float64) {
	if e := s.engineOrNil(); e != nil {
		e.Seek(seconds)
	}
}

// SeekBy nudges playback by a signed delta in seconds
func (s *Session) SeekBy(deltaSeconds float64) {
	if e := s.engineOrNil(); e != nil {
		e.Seek(e.Position() + deltaSeconds)
	}
}

// SetRate sets the playback rate; remembered across file opens
func (s *Session) SetRate(rate float64) {
	if rate < playback.MinRate {
		rate = playback.MinRate
	}
	if rate > playback.MaxRate {
		rate = playback.MaxRate
	}
	s.mu.Lock()
	s.rate = rate
	e := s.engine
	s.mu.Unlock()
	if e != nil {
		e.SetRate(rate)
	}
}

// Rate returns the configured playback rate
func (s *Session) Rate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rate
}

// SetVolume sets the playback volume; remembered across file opens
func (s *Session) SetVolume(volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	s.mu.Lock()
	s.volume = volume
	e := s.engine
	s.mu.Unlock()
	if e != nil {
		e.SetVolume(volume)
	}
}

// Volume returns the configured volume
func (s *Session) Volume() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume
}

// AddMarker records a named marker at the current position and saves the
// sidecar file
func (s *Session) AddMarker(name string) {
	s.markers.Add(s.Position(), name)
	if err := s.markers.Save(); err != nil {
		log.Printf("Failed to save markers: %v", err)
	}
}

// JumpToNextMarker seeks to the first marker after the current position
func (s *Session) JumpToNextMarker() {
	if mk, ok := s.markers.NearestAfter(s.Position()); ok {
		s.Seek(mk.Seconds)
	}
}

// JumpToPrevMarker seeks to the last marker before the current position
func (s *Session) JumpToPrevMarker() {
	if mk, ok := s.markers.NearestBefore(s.Position()); ok {
		s.Seek(mk.Seconds)
	}
}

// CheckLoop enforces the A-B loop window; called on the UI tick
func (s *Session) CheckLoop() {
	if target, ok := s.markers.ShouldLoop(s.Position()); ok {
		s.Seek(target)
	}
}
