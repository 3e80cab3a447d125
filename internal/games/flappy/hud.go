package flappy

import (
	"math"
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Glyph is one score digit placed in world units. X and Y are the glyph's
// top-left corner.
type Glyph struct {
	Digit int
	X, Y  float64
}

// ScoreGlyphs lays out the decimal digits of score as a row centred on the
// anchor. A negative separation makes neighbouring glyphs overlap.
func ScoreGlyphs(anchor Position, score int, hud config.FlappyHUD) []Glyph {
	if score < 0 {
		score = 0
	}
	digits := strconv.Itoa(score)
	n := float64(len(digits))
	step := hud.GlyphSize + hud.GlyphSeparation
	total := n*hud.GlyphSize + (n-1)*hud.GlyphSeparation

	x := anchor.X - total/2
	y := anchor.Y - hud.GlyphSize/2
	glyphs := make([]Glyph, len(digits))
	for i, r := range digits {
		glyphs[i] = Glyph{Digit: int(r - '0'), X: x + float64(i)*step, Y: y}
	}
	return glyphs
}

// EachScoreGlyph points the score animation at each digit in turn and calls
// draw with its placement.
func (g *Game) EachScoreGlyph(draw func(Glyph)) {
	anchor := g.scoreAnchor()
	for _, glyph := range ScoreGlyphs(anchor, g.ctx.State.Score, g.ctx.Config.HUD) {
		g.ctx.Anim.SetFrame(AnimScore, glyph.Digit)
		draw(glyph)
	}
}

// PlayerTilt returns the sprite rotation in radians for a player falling at
// vy. Only a playing bird tilts.
func PlayerTilt(mode Mode, vy, dt float64) float64 {
	if mode != ModePlaying {
		return 0
	}
	return core.ClampF(math.Pi/20*vy*dt, -math.Pi/4, math.Pi/2)
}
