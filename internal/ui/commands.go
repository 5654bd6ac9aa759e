// ABOUTME: Command dispatch table for keyboard input
// ABOUTME: Maps discrete key events to core session and viewport operations
package ui

import (
	"fmt"

	"github.com/audinux/audinux-go/pkg/waveform"
	tea "github.com/charmbracelet/bubbletea"
)

// command mutates the model in response to one input event
type command func(m Model) (tea.Model, tea.Cmd)

// keymap is the input dispatch table. Bindings follow the original player:
// space play/pause, s stop, z/x zoom, m marker, ./, marker jumps, l loop,
// arrows seek, ctrl+arrows coarse seek / rate nudge.
var keymap = map[string]command{
	"q":      quit,
	"ctrl+c": quit,

	" ": func(m Model) (tea.Model, tea.Cmd) {
		m.session.TogglePlay()
		return m, nil
	},
	"s": func(m Model) (tea.Model, tea.Cmd) {
		m.session.Stop()
		return m, nil
	},

	"z": zoomIn,
	"+": zoomIn,
	"=": zoomIn,
	"x": zoomOut,
	"-": zoomOut,
	"_": zoomOut,

	"m": func(m Model) (tea.Model, tea.Cmd) {
		m.markerSeq++
		m.session.AddMarker(fmt.Sprintf("Marker %d", m.markerSeq))
		return m, nil
	},
	".": func(m Model) (tea.Model, tea.Cmd) {
		m.session.JumpToNextMarker()
		return m, nil
	},
	",": func(m Model) (tea.Model, tea.Cmd) {
		m.session.JumpToPrevMarker()
		return m, nil
	},
	"l": toggleLoop,

	"right":       seekBy(5),
	"left":        seekBy(-5),
	"shift+right": seekBy(1),
	"shift+left":  seekBy(-1),
	"ctrl+right":  seekBy(30),
	"ctrl+left":   seekBy(-30),

	"up": func(m Model) (tea.Model, tea.Cmd) {
		m.session.SetVolume(m.session.Volume() + 5)
		return m, nil
	},
	"down": func(m Model) (tea.Model, tea.Cmd) {
		m.session.SetVolume(m.session.Volume() - 5)
		return m, nil
	},
	"ctrl+up": func(m Model) (tea.Model, tea.Cmd) {
		m.session.SetRate(m.session.Rate() + 0.05)
		return m, nil
	},
	"ctrl+down": func(m Model) (tea.Model, tea.Cmd) {
		m.session.SetRate(m.session.Rate() - 0.05)
		return m, nil
	},

	"n": func(m Model) (tea.Model, tea.Cmd) {
		if path, ok := m.session.Playlist().Next(); ok {
			m.building = true
			m.session.Open(path)
		}
		return m, nil
	},
	"p": func(m Model) (tea.Model, tea.Cmd) {
		if path, ok := m.session.Playlist().Prev(); ok {
			m.building = true
			m.session.Open(path)
		}
		return m, nil
	},

	"j":      scrollBy(1),
	"k":      scrollBy(-1),
	"pgdown": scrollBy(5),
	"pgup":   scrollBy(-5),
}

func quit(m Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

func zoomIn(m Model) (tea.Model, tea.Cmd) {
	m.zoom = waveform.ClampZoom(m.zoom * waveform.ZoomStep)
	m.scrollLine = 0
	return m, nil
}

func zoomOut(m Model) (tea.Model, tea.Cmd) {
	m.zoom = waveform.ClampZoom(m.zoom / waveform.ZoomStep)
	m.scrollLine = 0
	return m, nil
}

// toggleLoop arms an A-B loop between the markers surrounding the playhead
func toggleLoop(m Model) (tea.Model, tea.Cmd) {
	mk := m.session.Markers()
	if m.loopOn {
		mk.SetLoop(-1, -1)
		m.loopOn = false
		return m, nil
	}

	pos := m.session.Position()
	before, okB := mk.NearestBefore(pos)
	after, okA := mk.NearestAfter(pos)
	if okB && okA {
		mk.SetLoop(before.Seconds, after.Seconds)
		m.loopOn = mk.LoopEnabled()
	}
	return m, nil
}

func seekBy(deltaSeconds float64) command {
	return func(m Model) (tea.Model, tea.Cmd) {
		m.session.SeekBy(deltaSeconds)
		return m, nil
	}
}

func scrollBy(lines int) command {
	return func(m Model) (tea.Model, tea.Cmd) {
		summary := m.session.Summary()
		if summary == nil {
			return m, nil
		}
		m.scrollLine += lines
		m.clampScroll(m.layout(summary))
		return m, nil
	}
}
