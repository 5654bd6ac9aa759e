// ABOUTME: FLAC file source
// ABOUTME: Decodes FLAC audio to int32 samples via mewkiz/flac
package audio

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mewkiz/flac"
)

// FLACSource reads from a FLAC file
type FLACSource struct {
	file       *os.File
	stream     *flac.Stream
	sampleRate int
	channels   int
	bitDepth   int

	// Carryover samples from a partially consumed frame
	pending []int32
}

// NewFLACSource creates a new FLAC audio source
func NewFLACSource(filePath string) (*FLACSource, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open FLAC file: %w", err)
	}

	stream, err := flac.New(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode FLAC: %w", err)
	}

	info := stream.Info
	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	log.Printf("Loaded FLAC: %s (sample rate: %d Hz, channels: %d, bit depth: %d)",
		name, info.SampleRate, info.NChannels, info.BitsPerSample)

	return &FLACSource{
		file:       f,
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}

func (s *FLACSource) Read(samples []int32) (int, error) {
	samplesRead := 0

	// Drain any carryover from the previous frame first
	if len(s.pending) > 0 {
		n := copy(samples, s.pending)
		s.pending = s.pending[n:]
		samplesRead += n
	}

	for samplesRead < len(samples) {
		frame, err := s.stream.ParseNext()
		if err != nil {
			if err == io.EOF {
				if samplesRead > 0 {
					return samplesRead, nil
				}
				return 0, io.EOF
			}
			return samplesRead, err
		}

		for i := 0; i < int(frame.BlockSize); i++ {
			for ch := 0; ch < s.channels; ch++ {
				sample := s.scale(frame.Subframes[ch].Samples[i])
				if samplesRead < len(samples) {
					samples[samplesRead] = sample
					samplesRead++
				} else {
					s.pending = append(s.pending, sample)
				}
			}
		}
	}

	return samplesRead, nil
}

// scale converts a FLAC sample at the stream bit depth to the 24-bit range
func (s *FLACSource) scale(sample int32) int32 {
	switch {
	case s.bitDepth == 24:
		return sample
	case s.bitDepth < 24:
		return sample << (24 - s.bitDepth)
	default:
		return sample >> (s.bitDepth - 24)
	}
}

func (s *FLACSource) SampleRate() int { return s.sampleRate }
func (s *FLACSource) Channels() int   { return s.channels }

func (s *FLACSource) Close() error {
	return s.file.Close()
}
