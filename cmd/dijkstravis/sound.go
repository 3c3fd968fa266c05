//go:build sound

package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeRate = beep.SampleRate(44100)
	chimeFreq = 880
)

// newChime initialises the speaker. Failure is reported but leaves a
// silent chime, so the visualiser still runs without audio.
func newChime() (*chime, error) {
	if err := speaker.Init(chimeRate, chimeRate.N(time.Second/10)); err != nil {
		return &chime{}, err
	}

	return &chime{ready: true}, nil
}

func (c *chime) play() {
	if c == nil || !c.ready {
		return
	}
	sine, err := generators.SineTone(chimeRate, chimeFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(chimeRate.N(120*time.Millisecond), sine))
}
