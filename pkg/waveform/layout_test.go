// ABOUTME: Tests for multi-line layout math
// ABOUTME: Tests time-per-line zoom scaling, floors and line ranges
package waveform

import (
	"testing"
	"time"
)

func TestNewLayout_TimePerLine(t *testing.T) {
	tests := []struct {
		name     string
		zoom     float64
		expected time.Duration
	}{
		{"zoom 1.0 is 30s per line", 1.0, 30 * time.Second},
		{"zoom 2.0 halves the line", 2.0, 15 * time.Second},
		{"zoom 10 hits the 5s floor", 10.0, 5 * time.Second},
		{"zoom above max clamps", 100.0, 5 * time.Second},
		{"zoom 0.5 doubles the line", 0.5, 60 * time.Second},
		{"zoom below min clamps", 0.01, 300 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(time.Hour, tt.zoom)
			if l.TimePerLine != tt.expected {
				t.Errorf("expected %v per line, got %v", tt.expected, l.TimePerLine)
			}
		})
	}
}

func TestNewLayout_LineCount(t *testing.T) {
	tests := []struct {
		name     string
		total    time.Duration
		zoom     float64
		expected int
	}{
		{"exact division", 90 * time.Second, 1.0, 3},
		{"partial last line", 95 * time.Second, 1.0, 4},
		{"shorter than one line", 10 * time.Second, 1.0, 1},
		{"zero duration", 0, 1.0, 0},
		{"six hours", 6 * time.Hour, 1.0, 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.total, tt.zoom)
			if l.Lines != tt.expected {
				t.Errorf("expected %d lines, got %d", tt.expected, l.Lines)
			}
		})
	}
}

func TestLayout_LineRange(t *testing.T) {
	l := NewLayout(95*time.Second, 1.0)

	start, end := l.LineRange(0)
	if start != 0 || end != 30*time.Second {
		t.Errorf("line 0: expected [0, 30s), got [%v, %v)", start, end)
	}

	// Last line is partial and capped at the total
	start, end = l.LineRange(3)
	if start != 90*time.Second || end != 95*time.Second {
		t.Errorf("line 3: expected [90s, 95s), got [%v, %v)", start, end)
	}
}

func TestClampZoom(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"in range", 2.0, 2.0},
		{"below min", 0.01, MinZoom},
		{"above max", 50.0, MaxZoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampZoom(tt.input); got != tt.expected {
				t.Errorf("expected %f, got %f", tt.expected, got)
			}
		})
	}
}
