// ABOUTME: TUI rendering for the waveform viewport
// ABOUTME: Draws header, per-line amplitude columns, playhead and markers
package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/audinux/audinux-go/pkg/waveform"
)

// gutterWidth is the label gutter before the waveform columns
const gutterWidth = 10

// amplitudeRamp maps a bucket's min/max span to a display rune
var amplitudeRamp = []rune(" ▁▂▃▄▅▆▇█")

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())

	summary := m.session.Summary()
	switch {
	case m.statusText != "":
		b.WriteString("\n  " + m.statusText + "\n")
	case m.building || (summary == nil && m.session.Path() != ""):
		b.WriteString("\n  Building waveform…\n")
	case summary == nil:
		b.WriteString("\n  No file loaded. Start with: audinux <file.mp3|wav|flac|ogg>\n")
	default:
		b.WriteString(m.renderWaveform(summary))
	}

	return b.String()
}

// renderHeader renders file, transport and rate status
func (m Model) renderHeader() string {
	name := "—"
	if p := m.session.Path(); p != "" {
		name = filepath.Base(p)
	}

	state := "stopped"
	if m.session.Playing() {
		state = "playing"
	}

	total := 0.0
	if s := m.session.Summary(); s != nil {
		total = s.TotalDuration().Seconds()
	}

	loop := ""
	if m.loopOn {
		loop = "  loop A↔B"
	}

	line1 := fmt.Sprintf(" %s", name)
	line2 := fmt.Sprintf(" %s / %s  %s  %.2fx  vol %d%%  zoom %.2f%s",
		formatSeconds(m.session.Position()), formatSeconds(total),
		state, m.session.Rate(), m.session.Volume(), m.zoom, loop)
	line3 := " space play  s stop  z/x zoom  m marker  ,/. jump  l loop  q quit"

	return line1 + "\n" + line2 + "\n" + line3 + "\n\n"
}

// renderWaveform renders the visible lines of the wrapped timeline
func (m Model) renderWaveform(summary *waveform.Summary) string {
	layout := m.layout(summary)
	width := m.axisWidth()
	visible := m.visibleLines(layout)
	pos := time.Duration(m.session.Position() * float64(time.Second))

	var b strings.Builder
	for i := m.scrollLine; i < m.scrollLine+visible && i < layout.Lines; i++ {
		start, end := layout.LineRange(i)
		values := summary.Query(start, end, width)

		row := make([]rune, width)
		for col := range row {
			row[col] = ' '
		}

		// The queried values cover [start, end); stretch them over the
		// columns that span occupies so drawn peaks line up with the
		// playhead, marker and click mapping. A short last line leaves
		// its tail blank.
		dataCols := int(float64(end-start) / float64(layout.TimePerLine) * float64(width))
		if dataCols > width {
			dataCols = width
		}
		if len(values) > 0 {
			for col := 0; col < dataCols; col++ {
				row[col] = rampRune(values[col*len(values)/dataCols])
			}
		}

		// Playhead column within this line
		if pos >= start && pos < start+layout.TimePerLine {
			col := int(float64(pos-start) / float64(layout.TimePerLine) * float64(width))
			if col >= width {
				col = width - 1
			}
			row[col] = '┃'
		}

		// Marker ticks
		for _, mk := range m.session.Markers().List() {
			t := time.Duration(mk.Seconds * float64(time.Second))
			if t >= start && t < start+layout.TimePerLine {
				col := int(float64(t-start) / float64(layout.TimePerLine) * float64(width))
				if col >= width {
					col = width - 1
				}
				if row[col] != '┃' {
					row[col] = '▾'
				}
			}
		}

		fmt.Fprintf(&b, "%9s %s\n\n", formatSeconds(start.Seconds()), string(row))
	}

	return b.String()
}

// rampRune picks a display rune from the bucket's min/max span
func rampRune(v waveform.DisplayValue) rune {
	span := v.Max - v.Min
	if span < 0 {
		span = 0
	}
	// Span is in [0, 2] for normalized samples
	idx := int(span / 2.0 * float64(len(amplitudeRamp)-1))
	if idx >= len(amplitudeRamp) {
		idx = len(amplitudeRamp) - 1
	}
	return amplitudeRamp[idx]
}

// formatSeconds renders h:mm:ss for long files, mm:ss otherwise
func formatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	mn := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, mn, s)
	}
	return fmt.Sprintf("%02d:%02d", mn, s)
}
