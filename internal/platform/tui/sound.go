package tui

import "github.com/vovakirdan/tui-flappy/internal/games/flappy"

// soundLinger is how many ticks a sound caption stays visible.
const soundLinger = 20

// SoundCaption is a SoundSink for terminals: instead of playing audio it
// shows a short caption for the last effect.
type SoundCaption struct {
	last  flappy.SoundID
	ticks int
}

func (c *SoundCaption) PlayOnce(id flappy.SoundID) {
	c.last = id
	c.ticks = soundLinger
}

// Tick ages the current caption by one frame.
func (c *SoundCaption) Tick() {
	if c.ticks > 0 {
		c.ticks--
	}
}

// Caption returns the text to show, or "" when nothing is playing.
func (c *SoundCaption) Caption() string {
	if c.ticks == 0 {
		return ""
	}
	switch c.last {
	case flappy.SoundFlap:
		return "♪ flap"
	case flappy.SoundScore:
		return "♪ ding"
	case flappy.SoundHit:
		return "♪ thud"
	default:
		return "♪ " + string(c.last)
	}
}
