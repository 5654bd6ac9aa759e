// ABOUTME: Waveform summary data structure
// ABOUTME: Immutable min/max amplitude buckets for one audio file
package waveform

import "time"

// Summary holds the precomputed amplitude envelope of one audio file as a
// sequence of fixed-duration buckets. Each bucket stores the min and max
// normalized sample value observed in its time slice. A Summary is immutable
// once built and safe for concurrent reads.
type Summary struct {
	bucketDuration time.Duration
	totalDuration  time.Duration
	mins           []float64
	maxs           []float64
}

// BucketDuration returns the fixed duration of each bucket
func (s *Summary) BucketDuration() time.Duration {
	return s.bucketDuration
}

// TotalDuration returns the duration of the summarized audio
func (s *Summary) TotalDuration() time.Duration {
	return s.totalDuration
}

// NumBuckets returns the number of buckets: ceil(total / bucketDuration)
func (s *Summary) NumBuckets() int {
	return len(s.mins)
}

// Bucket returns the min/max pair for bucket i
func (s *Summary) Bucket(i int) (min, max float64) {
	return s.mins[i], s.maxs[i]
}
