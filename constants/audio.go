package constants

import "time"

// Alert Tone
const (
	AlertSampleRate = 44100
	AlertFrequency  = 880.0
	AlertDuration   = 80 * time.Millisecond

	// AlertVolume is the gain exponent applied to the tone (base 2)
	AlertVolume = -1.0

	// SpeakerBufferDuration sizes the speaker buffer; latency vs underrun tradeoff
	SpeakerBufferDuration = 100 * time.Millisecond
)
