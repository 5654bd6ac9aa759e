// ABOUTME: Audio source abstraction for decoding local files
// ABOUTME: Supports MP3, WAV, FLAC, OGG files with automatic format dispatch
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source provides PCM audio samples decoded from a file
type Source interface {
	// Read reads interleaved PCM samples into the buffer (int32, 24-bit range).
	// Returns the number of samples read; io.EOF after the last sample.
	Read(samples []int32) (int, error)
	// SampleRate returns the sample rate of the audio
	SampleRate() int
	// Channels returns the number of interleaved channels
	Channels() int
	// Close closes the underlying file
	Close() error
}

// NewSource creates an audio source for a local file, dispatching on the
// file extension. Supported: .mp3, .wav, .flac, .ogg
func NewSource(path string) (Source, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("audio file not found: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".mp3":
		return NewMP3Source(path)
	case ".wav":
		return NewWAVSource(path)
	case ".flac":
		return NewFLACSource(path)
	case ".ogg", ".opus":
		return NewOggSource(path)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .wav, .flac, .ogg)", ext)
	}
}
