package audio

import (
	"log"
)

// Service selects the alert backend at startup
// With a working speaker the tone and the bell sound together; muted or without a speaker only the bell rings
type Service struct {
	alerter Alerter
	tone    *ToneAlerter
}

// NewService creates the alert service
// bell may be nil, in which case a failed or muted speaker yields silence
func NewService(muted bool, bell Bell) *Service {
	s := &Service{}

	var fallback Alerter = Nop{}
	if bell != nil {
		fallback = NewBellAlerter(bell)
	}

	if muted {
		log.Printf("audio: muted, using bell")
		s.alerter = fallback
		return s
	}

	tone, err := NewToneAlerter()
	if err != nil {
		log.Printf("audio: %v (continuing with bell)", err)
		s.alerter = fallback
		return s
	}
	s.tone = tone
	s.alerter = tone
	if bell != nil {
		s.alerter = Multi{tone, fallback}
	}
	return s
}

// Alert implements Alerter
func (s *Service) Alert() {
	s.alerter.Alert()
}

// Stop releases the speaker if it was opened
func (s *Service) Stop() {
	if s.tone != nil {
		s.tone.Close()
	}
}
