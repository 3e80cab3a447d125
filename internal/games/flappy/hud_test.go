package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestScoreGlyphs(t *testing.T) {
	hud := config.DefaultFlappyConfig().HUD
	anchor := Position{X: hud.AnchorX, Y: hud.AnchorY}

	tests := []struct {
		score int
		want  []Glyph
	}{
		{0, []Glyph{{Digit: 0, X: 142, Y: -308}}},
		{12, []Glyph{{Digit: 1, X: 129, Y: -308}, {Digit: 2, X: 155, Y: -308}}},
		{-3, []Glyph{{Digit: 0, X: 142, Y: -308}}},
	}
	for _, tt := range tests {
		got := ScoreGlyphs(anchor, tt.score, hud)
		if len(got) != len(tt.want) {
			t.Fatalf("score %d: %d glyphs, want %d", tt.score, len(got), len(tt.want))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("score %d glyph %d = %+v, want %+v", tt.score, i, got[i], tt.want[i])
			}
		}
	}
}

func TestEachScoreGlyphSetsFrames(t *testing.T) {
	anim := newRecordingAnimator()
	g := newTestGame(t, WithAnimator(anim))
	g.ctx.State.Score = 305

	var drawn int
	g.EachScoreGlyph(func(Glyph) { drawn++ })

	if drawn != 3 {
		t.Errorf("drawn = %d, want 3", drawn)
	}
	want := []int{3, 0, 5}
	for i, f := range want {
		if i >= len(anim.frames) || anim.frames[i] != f {
			t.Fatalf("frames = %v, want %v", anim.frames, want)
		}
	}
}

func TestPlayerTilt(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		vy   float64
		want float64
	}{
		{"idle", ModeAwaitingStart, 500, 0},
		{"level", ModePlaying, 0, 0},
		{"falling", ModePlaying, 60, math.Pi / 20},
		{"rising clamps", ModePlaying, -10000, -math.Pi / 4},
		{"diving clamps", ModePlaying, 100000, math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlayerTilt(tt.mode, tt.vy, 1.0/60); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PlayerTilt = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnapshotBannerAndScoreVisibility(t *testing.T) {
	g := newTestGame(t)
	check := func(phase string, wantBanner Banner, wantScore bool) {
		t.Helper()
		s := g.Snapshot()
		if s.Banner != wantBanner {
			t.Errorf("%s: banner = %v, want %v", phase, s.Banner, wantBanner)
		}
		if s.ShowScore != wantScore {
			t.Errorf("%s: ShowScore = %v, want %v", phase, s.ShowScore, wantScore)
		}
	}

	check("awaiting", BannerPressStart, false)
	startPlaying(t, g)
	check("playing", BannerNone, true)
	runUntilGameOver(t, g)
	check("game over", BannerGameOver, true)
}

func TestSnapshotPlayerBoxAndGap(t *testing.T) {
	g := newTestGame(t)
	s := g.Snapshot()

	cx, cy := s.PlayerBox.Center()
	if cx != 68 || cy != -142 || s.PlayerBox.W != 20 || s.PlayerBox.H != 20 {
		t.Errorf("PlayerBox = %+v, want 20x20 centred on (68, -142)", s.PlayerBox)
	}

	o := s.Obstacles[0]
	gap := o.Gap(s.ObstacleWidth, s.VerticalGap)
	if gap.X != o.X || gap.Y != o.Y || gap.Right() != o.X+52 || gap.Bottom() != o.Y+110 {
		t.Errorf("Gap = %+v for obstacle at (%v, %v)", gap, o.X, o.Y)
	}
}
