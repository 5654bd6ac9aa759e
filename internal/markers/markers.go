// ABOUTME: Named timestamp markers with sidecar persistence
// ABOUTME: Stores markers as JSON next to the audio file and drives A-B loops
package markers

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Suffix is appended to the audio file path to form the sidecar path
const Suffix = ".markers.json"

// Marker is a named position in the file, in seconds
type Marker struct {
	Name    string  `json:"name"`
	Seconds float64 `json:"seconds"`
}

// Manager owns the markers for one audio file and the A-B loop window
type Manager struct {
	markers   []Marker
	audioPath string

	loopEnabled bool
	loopStart   float64
	loopEnd     float64
}

// NewManager creates an empty marker manager
func NewManager() *Manager {
	return &Manager{}
}

// SidecarPath returns the marker file path for an audio file
func SidecarPath(audioPath string) string {
	return audioPath + Suffix
}

// LoadFor loads the sidecar markers for an audio file. A missing or
// unreadable sidecar yields an empty marker list, not an error.
func (m *Manager) LoadFor(audioPath string) {
	m.audioPath = audioPath
	m.markers = nil
	m.SetLoop(-1, -1)

	data, err := os.ReadFile(SidecarPath(audioPath))
	if err != nil {
		return
	}

	var loaded []Marker
	if err := json.Unmarshal(data, &loaded); err != nil {
		return
	}
	m.markers = loaded
	m.sortMarkers()
}

// Save writes the sidecar file for the current audio path
func (m *Manager) Save() error {
	if m.audioPath == "" {
		return fmt.Errorf("no audio file loaded")
	}

	data, err := json.MarshalIndent(m.markers, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode markers: %w", err)
	}
	if err := os.WriteFile(SidecarPath(m.audioPath), data, 0644); err != nil {
		return fmt.Errorf("failed to write markers: %w", err)
	}
	return nil
}

// Add inserts a marker and keeps the list sorted by time
func (m *Manager) Add(seconds float64, name string) {
	m.markers = append(m.markers, Marker{Name: name, Seconds: seconds})
	m.sortMarkers()
}

// List returns a copy of the markers in time order
func (m *Manager) List() []Marker {
	out := make([]Marker, len(m.markers))
	copy(out, m.markers)
	return out
}

// Clear removes all markers
func (m *Manager) Clear() {
	m.markers = nil
}

// NearestBefore returns the last marker strictly before the given time
func (m *Manager) NearestBefore(seconds float64) (Marker, bool) {
	var found Marker
	ok := false
	for _, mk := range m.markers {
		if mk.Seconds < seconds {
			found = mk
			ok = true
		}
	}
	return found, ok
}

// NearestAfter returns the first marker strictly after the given time
func (m *Manager) NearestAfter(seconds float64) (Marker, bool) {
	for _, mk := range m.markers {
		if mk.Seconds > seconds {
			return mk, true
		}
	}
	return Marker{}, false
}

// SetLoop configures the A-B loop window. The loop is enabled only when
// both bounds are non-negative and start < end.
func (m *Manager) SetLoop(startSeconds, endSeconds float64) {
	m.loopStart = startSeconds
	m.loopEnd = endSeconds
	m.loopEnabled = startSeconds >= 0 && endSeconds >= 0 && startSeconds < endSeconds
}

// LoopEnabled reports whether an A-B loop window is active
func (m *Manager) LoopEnabled() bool {
	return m.loopEnabled
}

// Loop returns the loop window bounds
func (m *Manager) Loop() (startSeconds, endSeconds float64) {
	return m.loopStart, m.loopEnd
}

// ShouldLoop returns the loop start when playback has crossed the loop end
func (m *Manager) ShouldLoop(currentSeconds float64) (float64, bool) {
	if m.loopEnabled && currentSeconds >= m.loopEnd {
		return m.loopStart, true
	}
	return 0, false
}

func (m *Manager) sortMarkers() {
	sort.SliceStable(m.markers, func(i, j int) bool {
		return m.markers[i].Seconds < m.markers[j].Seconds
	})
}
