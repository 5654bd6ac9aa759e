// ABOUTME: Multi-line viewport layout math
// ABOUTME: Wraps the timeline across display lines as a function of zoom
package waveform

import "time"

const (
	// Each line covers 30 seconds at zoom 1.0, never less than 5 seconds
	baseTimePerLine = 30 * time.Second
	minTimePerLine  = 5 * time.Second

	// Zoom bounds and step, matching the interactive zoom controls
	MinZoom  = 0.1
	MaxZoom  = 10.0
	ZoomStep = 1.5

	DefaultLineHeight  = 64
	DefaultLineSpacing = 12
)

// Layout describes how a file's timeline wraps across display lines,
// top-to-bottom. Derived from total duration and zoom; pure data.
type Layout struct {
	TimePerLine time.Duration
	Lines       int
	LineHeight  int
	LineSpacing int
	Total       time.Duration
}

// NewLayout computes the line layout for a file of the given duration at the
// given zoom factor. Zoom is clamped to [MinZoom, MaxZoom].
func NewLayout(total time.Duration, zoom float64) Layout {
	zoom = ClampZoom(zoom)

	perLine := time.Duration(float64(baseTimePerLine) / zoom)
	if perLine < minTimePerLine {
		perLine = minTimePerLine
	}

	lines := 0
	if total > 0 {
		lines = int((total + perLine - 1) / perLine)
	}

	return Layout{
		TimePerLine: perLine,
		Lines:       lines,
		LineHeight:  DefaultLineHeight,
		LineSpacing: DefaultLineSpacing,
		Total:       total,
	}
}

// ClampZoom bounds a zoom factor to the supported range
func ClampZoom(zoom float64) float64 {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

// LineRange returns the [start, end) time covered by line i. The last line
// may be partial; end is capped at the total duration.
func (l Layout) LineRange(i int) (start, end time.Duration) {
	start = time.Duration(i) * l.TimePerLine
	end = start + l.TimePerLine
	if end > l.Total {
		end = l.Total
	}
	return start, end
}

// LineStride returns the vertical pixels consumed per line
func (l Layout) LineStride() int {
	return l.LineHeight + l.LineSpacing
}
