package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// SoundID names a sound effect.
type SoundID string

const (
	SoundFlap  SoundID = "flap_sound"
	SoundHit   SoundID = "hit_sound"
	SoundScore SoundID = "score_sound"
)

// AnimationID names an animated sprite.
type AnimationID string

const (
	AnimPlayer AnimationID = "player_animations"
	AnimScore  AnimationID = "score_animations"
)

// SoundSink accepts fire-and-forget playback requests.
type SoundSink interface {
	PlayOnce(id SoundID)
}

// Animator drives sprite animations owned by the renderer.
type Animator interface {
	AdvanceFrame(id AnimationID)
	SetVariant(id AnimationID, index int)
	SetFrame(id AnimationID, frame int)
}

// InputSource reports the input state for the current tick.
// core.InputFrame satisfies it.
type InputSource interface {
	IsPressed(a core.Action) bool
	WasJustPressed(a core.Action) bool
}

// Clock supplies the frame time once per tick.
type Clock interface {
	DeltaSeconds() float64
}

// FixedClock is a Clock with a constant frame time in seconds.
type FixedClock float64

func (c FixedClock) DeltaSeconds() float64 {
	return float64(c)
}

type nopSound struct{}

func (nopSound) PlayOnce(SoundID) {}

type nopAnimator struct{}

func (nopAnimator) AdvanceFrame(AnimationID) {}

func (nopAnimator) SetVariant(AnimationID, int) {}

func (nopAnimator) SetFrame(AnimationID, int) {}

var noInput InputSource = core.NewInputFrame()
