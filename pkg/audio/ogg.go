// ABOUTME: Ogg Opus file source
// ABOUTME: Decodes Ogg-encapsulated Opus audio to int32 samples via libopusfile
package audio

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/hraban/opus.v2"
)

// Opus always decodes at 48kHz; the opusfile stream API does not expose the
// channel count, so stereo output is assumed.
const (
	oggSampleRate = 48000
	oggChannels   = 2
)

// OggSource reads from an Ogg Opus file
type OggSource struct {
	file   *os.File
	stream *opus.Stream
}

// NewOggSource creates a new Ogg Opus audio source
func NewOggSource(filePath string) (*OggSource, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Ogg file: %w", err)
	}

	stream, err := opus.NewStream(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode Ogg Opus: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	log.Printf("Loaded Ogg Opus: %s (sample rate: %d Hz)", name, oggSampleRate)

	return &OggSource{
		file:   f,
		stream: stream,
	}, nil
}

func (s *OggSource) Read(samples []int32) (int, error) {
	pcm16 := make([]int16, len(samples))

	n, err := s.stream.Read(pcm16)
	if err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}

	// Read returns samples per channel; the buffer is interleaved
	total := n * oggChannels
	if total > len(samples) {
		total = len(samples)
	}
	for i := 0; i < total; i++ {
		samples[i] = SampleFromInt16(pcm16[i])
	}

	return total, nil
}

func (s *OggSource) SampleRate() int { return oggSampleRate }
func (s *OggSource) Channels() int   { return oggChannels }

func (s *OggSource) Close() error {
	if err := s.stream.Close(); err != nil {
		return err
	}
	return s.file.Close()
}
