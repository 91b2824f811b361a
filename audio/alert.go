package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/starship/constants"
)

// Alerter makes a short audible signal without blocking the caller
type Alerter interface {
	Alert()
}

// Bell rings the terminal bell
type Bell interface {
	Beep() error
}

// BellAlerter rings the terminal bell
type BellAlerter struct {
	bell Bell
}

// NewBellAlerter wraps a terminal bell
func NewBellAlerter(bell Bell) *BellAlerter {
	return &BellAlerter{bell: bell}
}

func (a *BellAlerter) Alert() {
	if err := a.bell.Beep(); err != nil {
		log.Printf("audio: bell failed: %v", err)
	}
}

// ToneAlerter plays a short sine tone through the system speaker
type ToneAlerter struct {
	sampleRate beep.SampleRate
	frequency  float64
	samples    int
	volume     float64

	closeOnce sync.Once
	closed    atomic.Bool
}

// speakerInit is replaced in tests; the real speaker needs an audio device
var speakerInit = speaker.Init

// speakerPlay is replaced in tests
var speakerPlay = func(s beep.Streamer) { speaker.Play(s) }

// speakerClose is replaced in tests
var speakerClose = speaker.Close

// NewToneAlerter opens the speaker
// Fails when no audio device is available; callers fall back to BellAlerter
func NewToneAlerter() (*ToneAlerter, error) {
	sr := beep.SampleRate(constants.AlertSampleRate)
	if err := speakerInit(sr, sr.N(constants.SpeakerBufferDuration)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &ToneAlerter{
		sampleRate: sr,
		frequency:  constants.AlertFrequency,
		samples:    sr.N(constants.AlertDuration),
		volume:     constants.AlertVolume,
	}, nil
}

// Alert queues the tone on the speaker mixer and returns immediately
func (a *ToneAlerter) Alert() {
	if a.closed.Load() {
		return
	}
	s, err := a.stream()
	if err != nil {
		log.Printf("audio: tone failed: %v", err)
		return
	}
	speakerPlay(s)
}

// stream builds one tone of the configured length and gain
func (a *ToneAlerter) stream() (beep.Streamer, error) {
	sine, err := generators.SineTone(a.sampleRate, a.frequency)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(a.samples, sine),
		Base:     2,
		Volume:   a.volume,
	}, nil
}

// Close releases the speaker; safe to call multiple times
func (a *ToneAlerter) Close() {
	a.closeOnce.Do(func() {
		a.closed.Store(true)
		speakerClose()
	})
}

// Multi fans an alert out to several alerters
type Multi []Alerter

func (m Multi) Alert() {
	for _, a := range m {
		a.Alert()
	}
}

// Nop discards alerts
type Nop struct{}

func (Nop) Alert() {}
