// ABOUTME: MP3 file source
// ABOUTME: Decodes MP3 audio to int32 samples via go-mp3
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/go-mp3"
)

// MP3Source reads from an MP3 file
type MP3Source struct {
	file       *os.File
	decoder    *mp3.Decoder
	sampleRate int
}

// NewMP3Source creates a new MP3 audio source
func NewMP3Source(filePath string) (*MP3Source, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open MP3 file: %w", err)
	}

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode MP3: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	log.Printf("Loaded MP3: %s (sample rate: %d Hz)", name, decoder.SampleRate())

	return &MP3Source{
		file:       f,
		decoder:    decoder,
		sampleRate: decoder.SampleRate(),
	}, nil
}

func (s *MP3Source) Read(samples []int32) (int, error) {
	// MP3 decoder outputs int16 = 2 bytes per sample
	buf := make([]byte, len(samples)*2)

	n, err := s.decoder.Read(buf)
	if err != nil && err != io.EOF {
		return 0, err
	}

	numSamples := n / 2
	for i := 0; i < numSamples; i++ {
		sample16 := int16(binary.LittleEndian.Uint16(buf[i*2 : i*2+2]))
		samples[i] = SampleFromInt16(sample16)
	}

	if err == io.EOF {
		if numSamples > 0 {
			return numSamples, nil
		}
		return 0, io.EOF
	}

	return numSamples, nil
}

func (s *MP3Source) SampleRate() int { return s.sampleRate }

// Channels returns 2; the go-mp3 decoder always outputs stereo
func (s *MP3Source) Channels() int { return 2 }

func (s *MP3Source) Close() error {
	return s.file.Close()
}
