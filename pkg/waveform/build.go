// ABOUTME: Waveform summary builder
// ABOUTME: Single-pass cancellable reduction of decoded audio into buckets
package waveform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/audinux/audinux-go/pkg/audio"
)

var (
	// ErrDecode indicates the underlying file could not be decoded
	ErrDecode = errors.New("audio decode failed")
	// ErrEmptyAudio indicates the file decoded to zero duration
	ErrEmptyAudio = errors.New("audio has zero duration")
)

// DefaultBucketDuration gives 18,000 buckets per hour of audio, compact
// enough for multi-hour files while preserving visual detail.
const DefaultBucketDuration = 200 * time.Millisecond

// readChunkSamples is the number of interleaved samples read per decoder call
const readChunkSamples = 8192

// Build consumes the source exactly once and reduces it into fixed-duration
// min/max buckets. Runs in time linear in the audio length; memory is
// proportional to totalDuration/bucketDuration, independent of sample rate.
// The context cancels an in-progress build; partial results are discarded.
func Build(ctx context.Context, src audio.Source, bucketDuration time.Duration) (*Summary, error) {
	if bucketDuration <= 0 {
		return nil, fmt.Errorf("invalid bucket duration: %v", bucketDuration)
	}
	sampleRate := src.SampleRate()
	channels := src.Channels()
	if sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: invalid format (rate=%d, channels=%d)", ErrDecode, sampleRate, channels)
	}

	// Frames per bucket at the source rate
	framesPerBucket := int(int64(bucketDuration) * int64(sampleRate) / int64(time.Second))
	if framesPerBucket < 1 {
		framesPerBucket = 1
	}

	var (
		mins, maxs   []float64
		bucketMin    = 1.0
		bucketMax    = -1.0
		bucketFrames int
		totalFrames  int64
	)

	flush := func() {
		mins = append(mins, bucketMin)
		maxs = append(maxs, bucketMax)
		bucketMin = 1.0
		bucketMax = -1.0
		bucketFrames = 0
	}

	buf := make([]int32, readChunkSamples)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := src.Read(buf)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}

		// Fold whole frames; a frame contributes its loudest channel
		frames := n / channels
		for f := 0; f < frames; f++ {
			for ch := 0; ch < channels; ch++ {
				v := audio.Normalize(buf[f*channels+ch])
				if v < bucketMin {
					bucketMin = v
				}
				if v > bucketMax {
					bucketMax = v
				}
			}
			bucketFrames++
			if bucketFrames == framesPerBucket {
				flush()
			}
		}
		totalFrames += int64(frames)

		if err == io.EOF {
			break
		}
	}

	if totalFrames == 0 {
		return nil, ErrEmptyAudio
	}
	if bucketFrames > 0 {
		flush()
	}

	total := time.Duration(totalFrames * int64(time.Second) / int64(sampleRate))

	return &Summary{
		bucketDuration: bucketDuration,
		totalDuration:  total,
		mins:           mins,
		maxs:           maxs,
	}, nil
}
