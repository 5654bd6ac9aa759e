// ABOUTME: Seek translation from viewport pixels to playback timestamps
// ABOUTME: Pure coordinate transform over the multi-line wrapped layout
package waveform

import "time"

// Viewport captures the render state needed to translate a click: the line
// layout, the horizontal geometry of the waveform area, and the scroll
// offset. Transient; rebuilt by the renderer on every layout change.
type Viewport struct {
	Layout Layout
	// AxisX is the x origin of the waveform area (label gutter width)
	AxisX int
	// AxisWidth is the drawable width of one line in pixels
	AxisWidth int
	// ScrollY is the vertical scroll offset in pixels
	ScrollY int
}

// Translate converts a click at pixel (x, y) into a playback timestamp.
// Clicks on empty regions are rejected: above the first line, below the last
// populated line, or when nothing is loaded. Within a populated line the
// result is clamped to [0, total] and is monotonic in x.
func Translate(x, y int, vp Viewport) (time.Duration, bool) {
	l := vp.Layout
	if l.Lines == 0 || l.Total <= 0 || vp.AxisWidth <= 0 {
		return 0, false
	}

	// Integer division truncates toward zero, so negative offsets must be
	// rejected before computing the line index
	offset := y + vp.ScrollY
	if offset < 0 {
		return 0, false
	}
	line := offset / l.LineStride()
	if line >= l.Lines {
		return 0, false
	}

	start, end := l.LineRange(line)

	// Clicks in the label gutter snap to the line start; interactive
	// coordinates are approximate, so clamp instead of erroring.
	frac := float64(x-vp.AxisX) / float64(vp.AxisWidth)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	t := start + time.Duration(frac*float64(l.TimePerLine))
	if t > end {
		t = end
	}
	if t > l.Total {
		t = l.Total
	}
	return t, true
}
