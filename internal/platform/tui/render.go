package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	FloorTopChar  = '▓'
	FloorAltChar  = '▒'
	FloorChar     = '░'
	BodyChar      = '@'
)

// ticks each wing frame stays on screen
const wingHold = 6

var (
	wingFrames   = []rune{'^', '-', 'v', '-'}
	playerColors = []core.Color{core.ColorYellow, core.ColorBrightRed, core.ColorBrightBlue}
)

// Renderer projects a simulation snapshot onto a Screen. It is also the
// game's Animator: the simulation drives the wing frame, the bird colour
// and the score digit through it.
type Renderer struct {
	variant int
	wing    int
	digit   int
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// AdvanceFrame steps the named animation.
func (r *Renderer) AdvanceFrame(id flappy.AnimationID) {
	if id == flappy.AnimPlayer {
		r.wing = (r.wing + 1) % (len(wingFrames) * wingHold)
	}
}

// SetVariant selects the player's colour scheme.
func (r *Renderer) SetVariant(id flappy.AnimationID, index int) {
	if id == flappy.AnimPlayer {
		r.variant = index
	}
}

// SetFrame selects the digit the next score glyph shows.
func (r *Renderer) SetFrame(id flappy.AnimationID, frame int) {
	if id == flappy.AnimScore {
		r.digit = frame
	}
}

// projection maps world units onto screen cells.
type projection struct {
	sx, sy float64
	size   float64
}

func newProjection(s *core.Screen, size float64) projection {
	return projection{
		sx:   float64(s.Width()) / size,
		sy:   float64(s.Height()) / size,
		size: size,
	}
}

func (p projection) col(x float64) int {
	return int(math.Floor(x * p.sx))
}

func (p projection) row(y float64) int {
	return int(math.Floor((y + p.size) * p.sy))
}

// Draw renders the world in snap. Score glyphs are drawn separately with
// DrawGlyph so the digit comes from the animation state.
func (r *Renderer) Draw(s *core.Screen, snap flappy.Snapshot) {
	s.Clear()
	if snap.ScreenSize <= 0 || s.Width() == 0 || s.Height() == 0 {
		return
	}
	p := newProjection(s, snap.ScreenSize)

	floorRow := s.Height()
	if len(snap.Floor) > 0 {
		floorRow = p.row(snap.Floor[0].Y)
	}

	for _, o := range snap.Obstacles {
		r.drawObstacle(s, p, o, snap, floorRow)
	}
	for _, tile := range snap.Floor {
		r.drawFloorTile(s, p, tile, snap.FloorWidth, floorRow)
	}
	r.drawPlayer(s, p, snap)
	r.drawBanner(s, snap)
}

func (r *Renderer) drawObstacle(s *core.Screen, p projection, o flappy.ObstacleView, snap flappy.Snapshot, floorRow int) {
	gap := o.Gap(snap.ObstacleWidth, snap.VerticalGap)
	c0 := p.col(gap.X)
	c1 := max(p.col(gap.Right()), c0+1)
	gapTop := p.row(gap.Y)
	gapBottom := p.row(gap.Bottom())

	for x := c0; x < c1; x++ {
		for y := 0; y < gapTop; y++ {
			s.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		s.SetColored(x, gapTop-1, PipeCapBottom, core.ColorBrightGreen)

		for y := gapBottom; y < floorRow; y++ {
			s.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		s.SetColored(x, gapBottom, PipeCapTop, core.ColorBrightGreen)
	}
}

func (r *Renderer) drawFloorTile(s *core.Screen, p projection, tile flappy.Position, width float64, floorRow int) {
	c0 := p.col(tile.X)
	c1 := p.col(tile.X + width)
	for x := c0; x < c1; x++ {
		top := FloorTopChar
		if (x-c0)%4 >= 2 {
			top = FloorAltChar
		}
		s.SetColored(x, floorRow, top, core.ColorYellow)
		for y := floorRow + 1; y < s.Height(); y++ {
			s.SetColored(x, y, FloorChar, core.ColorOrange)
		}
	}
}

func (r *Renderer) drawPlayer(s *core.Screen, p projection, snap flappy.Snapshot) {
	cx, cy := snap.PlayerBox.Center()
	x := p.col(cx)
	y := p.row(cy)

	color := playerColors[0]
	if r.variant >= 0 && r.variant < len(playerColors) {
		color = playerColors[r.variant]
	}
	if snap.Mode == flappy.ModeGameOver {
		color = core.ColorGray
	}

	s.SetColored(x-1, y, wingFrames[r.wing/wingHold], color)
	s.SetColored(x, y, BodyChar, color)
	s.SetColored(x+1, y, headingRune(snap.Tilt), core.ColorOrange)
}

// headingRune picks an arrow for the bird's tilt in radians.
func headingRune(tilt float64) rune {
	switch {
	case tilt < -math.Pi/16:
		return '↗'
	case tilt >= math.Pi/4:
		return '↓'
	case tilt > math.Pi/16:
		return '↘'
	default:
		return '→'
	}
}

// DrawGlyph draws one score digit using the digit last set through SetFrame.
func (r *Renderer) DrawGlyph(s *core.Screen, snap flappy.Snapshot, g flappy.Glyph) {
	if snap.ScreenSize <= 0 {
		return
	}
	p := newProjection(s, snap.ScreenSize)
	x := p.col(g.X + snap.GlyphSize/2)
	y := max(p.row(g.Y+snap.GlyphSize/2), 0)
	s.SetColored(x, y, rune('0'+r.digit%10), core.ColorBrightYellow)
}

func (r *Renderer) drawBanner(s *core.Screen, snap flappy.Snapshot) {
	var lines []string
	color := core.ColorWhite
	switch snap.Banner {
	case flappy.BannerPressStart:
		lines = []string{"GET READY", "press space to flap"}
		color = core.ColorBrightCyan
	case flappy.BannerGameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("score %d", snap.Score), "space or r to restart"}
		color = core.ColorBrightRed
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW, boxH := width+4, len(lines)+2
	x0 := (s.Width() - boxW) / 2
	y0 := (s.Height() - boxH) / 3

	s.FillRect(x0, y0, boxW, boxH, ' ', core.ColorDefault)
	s.DrawBox(x0, y0, boxW, boxH, color)
	for i, l := range lines {
		s.DrawTextCentered(y0+1+i, l, color)
	}
}
