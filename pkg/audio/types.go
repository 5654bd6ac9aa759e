// ABOUTME: Audio sample type definitions
// ABOUTME: Defines sample range constants and conversions for decoded PCM
package audio

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23
)

// SampleFromInt16 converts int16 sample to int32 (left-justified in 24-bit)
func SampleFromInt16(sample int16) int32 {
	return int32(sample) << 8
}

// SampleToInt16 converts int32 sample to int16 (for 16-bit consumers)
func SampleToInt16(sample int32) int16 {
	return int16(sample >> 8)
}

// Normalize converts an int32 sample in the 24-bit range to [-1, 1]
func Normalize(sample int32) float64 {
	if sample >= 0 {
		return float64(sample) / float64(Max24Bit)
	}
	return float64(sample) / float64(-Min24Bit)
}
