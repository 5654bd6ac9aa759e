// ABOUTME: Tests for TUI model and input dispatch
// ABOUTME: Tests key routing, zoom bounds, rendering and time formatting
package ui

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/audinux/audinux-go/internal/config"
	"github.com/audinux/audinux-go/internal/session"
	"github.com/audinux/audinux-go/pkg/audio"
	"github.com/audinux/audinux-go/pkg/waveform"
	tea "github.com/charmbracelet/bubbletea"
)

// silentSource yields a fixed number of silent frames at 1kHz mono
type silentSource struct {
	frames int
	pos    int
}

func (s *silentSource) Read(buf []int32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}
	n := s.frames - s.pos
	if n > len(buf) {
		n = len(buf)
	}
	for i := 0; i < n; i++ {
		buf[i] = 0
	}
	s.pos += n
	return n, nil
}

func (s *silentSource) SampleRate() int { return 1000 }
func (s *silentSource) Channels() int   { return 1 }
func (s *silentSource) Close() error    { return nil }

// loudSource yields full-scale square-wave frames at 1kHz mono
type loudSource struct {
	frames int
	pos    int
}

func (s *loudSource) Read(buf []int32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}
	n := s.frames - s.pos
	if n > len(buf) {
		n = len(buf)
	}
	for i := 0; i < n; i++ {
		if (s.pos+i)%2 == 0 {
			buf[i] = audio.Max24Bit
		} else {
			buf[i] = audio.Min24Bit
		}
	}
	s.pos += n
	return n, nil
}

func (s *loudSource) SampleRate() int { return 1000 }
func (s *loudSource) Channels() int   { return 1 }
func (s *loudSource) Close() error    { return nil }

// readySession opens a 60 second fake file and waits for the summary
func readySession(t *testing.T) *session.Session {
	t.Helper()

	ready := make(chan struct{}, 1)
	s := session.New(session.Config{
		BucketDuration: 200 * time.Millisecond,
		NewSource: func(string) (audio.Source, error) {
			return &silentSource{frames: 60000}, nil
		},
		OnReady: func(string, *waveform.Summary) {
			ready <- struct{}{}
		},
	}, config.Defaults())
	t.Cleanup(s.Close)

	s.Open("test.wav")
	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out building test summary")
	}
	return s
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m := NewModel(nil, 1.0)
	if m.zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", m.zoom)
	}
	if m.ready {
		t.Error("expected not ready initially")
	}
}

func TestNewModel_ClampsZoom(t *testing.T) {
	m := NewModel(nil, 500.0)
	if m.zoom != waveform.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", waveform.MaxZoom, m.zoom)
	}
}

func TestZoomKeys(t *testing.T) {
	s := readySession(t)
	m := NewModel(s, 1.0)

	next, _ := m.Update(keyMsg("z"))
	m = next.(Model)
	if m.zoom != 1.5 {
		t.Errorf("expected zoom 1.5 after zoom in, got %f", m.zoom)
	}

	next, _ = m.Update(keyMsg("x"))
	m = next.(Model)
	if m.zoom != 1.0 {
		t.Errorf("expected zoom 1.0 after zoom out, got %f", m.zoom)
	}

	// Zoom never exceeds the bounds no matter how often it is pressed
	for i := 0; i < 50; i++ {
		next, _ = m.Update(keyMsg("z"))
		m = next.(Model)
	}
	if m.zoom > waveform.MaxZoom {
		t.Errorf("zoom exceeded max: %f", m.zoom)
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(readySession(t), 1.0)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg == nil {
		t.Fatal("expected quit message")
	}
}

func TestSpaceTogglesPlayback(t *testing.T) {
	s := readySession(t)
	m := NewModel(s, 1.0)

	next, _ := m.Update(keyMsg(" "))
	m = next.(Model)
	if !s.Playing() {
		t.Error("expected playing after space")
	}
	next, _ = m.Update(keyMsg(" "))
	_ = next
	if s.Playing() {
		t.Error("expected paused after second space")
	}
}

func TestSeekKeys(t *testing.T) {
	s := readySession(t)
	m := NewModel(s, 1.0)

	tests := []struct {
		key      string
		expected float64
	}{
		{"right", 5.0},
		{"shift+right", 6.0},
		{"ctrl+right", 36.0},
		{"left", 31.0},
	}

	for _, tt := range tests {
		cmd, ok := keymap[tt.key]
		if !ok {
			t.Fatalf("no binding for %q", tt.key)
		}
		next, _ := cmd(m)
		m = next.(Model)
		if pos := s.Position(); pos != tt.expected {
			t.Errorf("after %q: expected position %f, got %f", tt.key, tt.expected, pos)
		}
	}
}

func TestMouseClickSeeks(t *testing.T) {
	s := readySession(t)
	m := NewModel(s, 1.0)
	m.width = 90
	m.height = 24
	m.ready = true

	// Click the middle of the first waveform line: 30s per line, so the
	// midpoint of the axis is 15s
	x := gutterWidth + m.axisWidth()/2
	click := tea.MouseMsg{
		X:      x,
		Y:      headerRows,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	next, _ := m.Update(click)
	_ = next

	pos := s.Position()
	if pos < 14.0 || pos > 16.0 {
		t.Errorf("expected seek near 15s, got %f", pos)
	}
}

func TestHeaderClickDoesNotSeek(t *testing.T) {
	s := readySession(t)
	m := NewModel(s, 1.0)
	m.width = 90
	m.height = 24
	m.ready = true
	// Scrolled so a header row would otherwise alias onto a waveform line
	m.scrollLine = 1

	click := tea.MouseMsg{
		X:      gutterWidth + 5,
		Y:      headerRows - 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	next, _ := m.Update(click)
	_ = next

	if pos := s.Position(); pos != 0 {
		t.Errorf("expected no seek from a header click, got %f", pos)
	}
}

func TestViewWithoutFile(t *testing.T) {
	s := session.New(session.Config{}, config.Defaults())
	t.Cleanup(s.Close)

	m := NewModel(s, 1.0)
	m.width = 80
	m.height = 24

	view := m.View()
	if !strings.Contains(view, "No file loaded") {
		t.Errorf("expected empty-state prompt, got:\n%s", view)
	}
}

func TestViewRendersWaveformLines(t *testing.T) {
	s := readySession(t)
	m := NewModel(s, 1.0)
	m.width = 80
	m.height = 24
	m.ready = true

	view := m.View()
	if !strings.Contains(view, "test.wav") {
		t.Error("expected file name in header")
	}
	if !strings.Contains(view, "01:00") {
		t.Error("expected total duration in header")
	}
	// 60s at 30s per line: lines labeled 00:00 and 00:30
	if !strings.Contains(view, "00:30") {
		t.Error("expected second line label")
	}
}

func TestWaveformStretchesAcrossAxis(t *testing.T) {
	ready := make(chan struct{}, 1)
	s := session.New(session.Config{
		BucketDuration: 200 * time.Millisecond,
		NewSource: func(string) (audio.Source, error) {
			return &loudSource{frames: 30000}, nil
		},
		OnReady: func(string, *waveform.Summary) {
			ready <- struct{}{}
		},
	}, config.Defaults())
	t.Cleanup(s.Close)

	s.Open("loud.wav")
	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out building test summary")
	}

	// At max zoom each line covers 5s: 25 buckets drawn over a far wider
	// axis. The envelope must reach the right edge, where the playhead and
	// click mapping put the end of the line.
	m := NewModel(s, waveform.MaxZoom)
	m.width = 120
	m.height = 24
	m.ready = true

	out := m.renderWaveform(s.Summary())
	first := strings.Split(out, "\n")[0]
	cols := []rune(first)[gutterWidth:]
	if len(cols) != m.axisWidth() {
		t.Fatalf("expected %d waveform columns, got %d", m.axisWidth(), len(cols))
	}
	if cols[len(cols)-1] == ' ' {
		t.Error("expected amplitude at the right edge of the axis")
	}
	if cols[len(cols)/2] == ' ' {
		t.Error("expected amplitude at the axis midpoint")
	}
}

func TestRampRune(t *testing.T) {
	tests := []struct {
		name     string
		value    waveform.DisplayValue
		expected rune
	}{
		{"silence", waveform.DisplayValue{Min: 0, Max: 0}, ' '},
		{"full scale", waveform.DisplayValue{Min: -1, Max: 1}, '█'},
		{"half scale", waveform.DisplayValue{Min: -0.5, Max: 0.5}, '▄'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rampRune(tt.value); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "00:00"},
		{65, "01:05"},
		{3599, "59:59"},
		{3661, "01:01:01"},
		{21600, "06:00:00"},
		{-5, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := formatSeconds(tt.input); got != tt.expected {
				t.Errorf("formatSeconds(%f): expected %q, got %q", tt.input, tt.expected, got)
			}
		})
	}
}

func TestKeymapCoversCoreOperations(t *testing.T) {
	required := []string{
		" ", "s", "z", "x", "m", ",", ".", "l",
		"left", "right", "ctrl+left", "ctrl+right",
		"up", "down", "ctrl+up", "ctrl+down",
		"n", "p", "q",
	}
	for _, key := range required {
		if _, ok := keymap[key]; !ok {
			t.Errorf("missing binding for %q", key)
		}
	}
}

func ExampleTranslate() {
	vp := waveform.Viewport{
		Layout:    waveform.NewLayout(2*time.Minute, 1.0),
		AxisX:     10,
		AxisWidth: 60,
	}
	ts, _ := waveform.Translate(40, 0, vp)
	fmt.Println(ts)
	// Output: 15s
}
