// ABOUTME: Waveform range queries for display
// ABOUTME: Downsamples cached buckets to a target pixel resolution
package waveform

import (
	"time"

	"gonum.org/v1/gonum/floats"
)

// DisplayValue is one plottable envelope point
type DisplayValue struct {
	Min float64
	Max float64
}

// Query returns display values covering [start, end), at most resolution
// points. The range is clamped to the summary; out-of-range input yields an
// empty result rather than an error. Reads only the prebuilt buckets, never
// the decoder. Cost is proportional to the buckets in range.
func (s *Summary) Query(start, end time.Duration, resolution int) []DisplayValue {
	if resolution <= 0 || s.NumBuckets() == 0 {
		return nil
	}
	if start < 0 {
		start = 0
	}
	if end > s.totalDuration {
		end = s.totalDuration
	}
	if start >= end {
		return nil
	}

	first := int(start / s.bucketDuration)
	last := int((end + s.bucketDuration - 1) / s.bucketDuration)
	if last > s.NumBuckets() {
		last = s.NumBuckets()
	}
	k := last - first
	if k <= 0 {
		return nil
	}

	// Narrow windows slice the cache directly
	if k <= resolution {
		out := make([]DisplayValue, k)
		for i := 0; i < k; i++ {
			out[i] = DisplayValue{Min: s.mins[first+i], Max: s.maxs[first+i]}
		}
		return out
	}

	// Wide windows merge runs of buckets per display point
	out := make([]DisplayValue, resolution)
	for i := 0; i < resolution; i++ {
		a := first + i*k/resolution
		b := first + (i+1)*k/resolution
		if b <= a {
			b = a + 1
		}
		out[i] = DisplayValue{
			Min: floats.Min(s.mins[a:b]),
			Max: floats.Max(s.maxs[a:b]),
		}
	}
	return out
}
