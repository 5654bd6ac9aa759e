// ABOUTME: WAV file source
// ABOUTME: Decodes WAV audio to int32 samples via go-audio/wav
package audio

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAVSource reads from a WAV file
type WAVSource struct {
	file       *os.File
	decoder    *wav.Decoder
	sampleRate int
	channels   int
	bitDepth   int
}

// NewWAVSource creates a new WAV audio source
func NewWAVSource(filePath string) (*WAVSource, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open WAV file: %w", err)
	}

	decoder := wav.NewDecoder(f)
	decoder.ReadInfo()
	if !decoder.IsValidFile() {
		f.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", filePath)
	}

	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	log.Printf("Loaded WAV: %s (sample rate: %d Hz, channels: %d, bit depth: %d)",
		name, decoder.SampleRate, decoder.NumChans, decoder.BitDepth)

	return &WAVSource{
		file:       f,
		decoder:    decoder,
		sampleRate: int(decoder.SampleRate),
		channels:   int(decoder.NumChans),
		bitDepth:   int(decoder.BitDepth),
	}, nil
}

func (s *WAVSource) Read(samples []int32) (int, error) {
	buf := &goaudio.IntBuffer{
		Data: make([]int, len(samples)),
		Format: &goaudio.Format{
			NumChannels: s.channels,
			SampleRate:  s.sampleRate,
		},
	}

	n, err := s.decoder.PCMBuffer(buf)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		samples[i] = s.scale(int32(buf.Data[i]))
	}

	return n, nil
}

// scale converts a PCM sample at the file bit depth to the 24-bit range
func (s *WAVSource) scale(sample int32) int32 {
	switch {
	case s.bitDepth == 24:
		return sample
	case s.bitDepth < 24:
		return sample << (24 - s.bitDepth)
	default:
		return sample >> (s.bitDepth - 24)
	}
}

func (s *WAVSource) SampleRate() int { return s.sampleRate }
func (s *WAVSource) Channels() int   { return s.channels }

func (s *WAVSource) Close() error {
	return s.file.Close()
}
