// ABOUTME: Bubbletea model for the player TUI
// ABOUTME: Holds viewport state and routes input through the dispatch table
package ui

import (
	"time"

	"github.com/audinux/audinux-go/internal/session"
	"github.com/audinux/audinux-go/pkg/waveform"
	tea "github.com/charmbracelet/bubbletea"
)

// headerRows is the number of terminal rows above the waveform area
const headerRows = 4

// Model represents the TUI state
type Model struct {
	session *session.Session

	// Viewport
	zoom       float64
	scrollLine int
	width      int
	height     int

	// Status
	ready      bool
	building   bool
	statusText string
	loopOn     bool

	// Marker numbering for unnamed markers
	markerSeq int
}

// ReadyMsg is sent when a file's waveform summary finishes building
type ReadyMsg struct {
	Path string
}

// ErrorMsg is sent when a file fails to open or build
type ErrorMsg struct {
	Path string
	Err  error
}

// tickMsg drives the playhead and loop checks
type tickMsg struct{}

// NewModel creates the TUI model bound to a session
func NewModel(sess *session.Session, zoom float64) Model {
	return Model{
		session: sess,
		zoom:    waveform.ClampZoom(zoom),
	}
}

// Zoom returns the current zoom factor (persisted on exit)
func (m Model) Zoom() float64 {
	return m.zoom
}

// Init starts the playhead tick
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ReadyMsg:
		m.ready = true
		m.building = false
		m.statusText = ""
		m.scrollLine = 0

	case ErrorMsg:
		m.ready = false
		m.building = false
		m.statusText = "Failed to open " + msg.Path + ": " + msg.Err.Error()

	case tickMsg:
		m.session.CheckLoop()
		m.followPlayhead()
		return m, tick()
	}

	return m, nil
}

// handleKey dispatches a key press through the command table
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := keymap[msg.String()]; ok {
		return cmd(m)
	}
	return m, nil
}

// handleMouse translates a click in the waveform area into a seek
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y < headerRows {
		return m, nil
	}

	summary := m.session.Summary()
	if summary == nil {
		return m, nil
	}

	vp := m.viewport(summary)
	t, ok := waveform.Translate(msg.X, msg.Y-headerRows, vp)
	if !ok {
		return m, nil
	}
	m.session.Seek(t.Seconds())
	return m, nil
}

// viewport builds the seek-translation state for the current render
func (m Model) viewport(summary *waveform.Summary) waveform.Viewport {
	layout := m.layout(summary)
	return waveform.Viewport{
		Layout:    layout,
		AxisX:     gutterWidth,
		AxisWidth: m.axisWidth(),
		ScrollY:   m.scrollLine * layout.LineStride(),
	}
}

// layout computes the line layout in terminal cell geometry
func (m Model) layout(summary *waveform.Summary) waveform.Layout {
	l := waveform.NewLayout(summary.TotalDuration(), m.zoom)
	// One cell of waveform plus one blank row per line
	l.LineHeight = 1
	l.LineSpacing = 1
	return l
}

// axisWidth returns the drawable columns per waveform line
func (m Model) axisWidth() int {
	w := m.width - gutterWidth
	if w < 1 {
		w = 1
	}
	return w
}

// visibleLines returns how many waveform lines fit the window
func (m Model) visibleLines(layout waveform.Layout) int {
	rows := m.height - headerRows
	if rows < layout.LineStride() {
		return 1
	}
	return rows / layout.LineStride()
}

// followPlayhead scrolls so the playing line stays visible
func (m *Model) followPlayhead() {
	summary := m.session.Summary()
	if summary == nil || !m.session.Playing() {
		return
	}
	layout := m.layout(summary)
	line := int(time.Duration(m.session.Position()*float64(time.Second)) / layout.TimePerLine)
	visible := m.visibleLines(layout)
	if line < m.scrollLine {
		m.scrollLine = line
	} else if line >= m.scrollLine+visible {
		m.scrollLine = line - visible + 1
	}
}

// clampScroll keeps the scroll offset within the layout
func (m *Model) clampScroll(layout waveform.Layout) {
	maxScroll := layout.Lines - m.visibleLines(layout)
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scrollLine > maxScroll {
		m.scrollLine = maxScroll
	}
	if m.scrollLine < 0 {
		m.scrollLine = 0
	}
}
