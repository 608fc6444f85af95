package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/locomotion/common"
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
	"github.com/milk9111/locomotion/levels"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	pixelsPerUnit = 12.0
	headingLength = 2.0
)

// Renderer draws a top-down view centred on the player: walls,
// platforms shaded by height, hazards, the player with its heading, and a
// status line per activation entity.
type Renderer struct {
	level *levels.Level
	face  ebtext.Face
	debug bool
}

func NewRenderer(level *levels.Level, debug bool) *Renderer {
	return &Renderer{
		level: level,
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
		debug: debug,
	}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Darkslategray)

	var center common.Vec3
	player, transform, ok := ecs.First(w, component.TransformComponent.Kind())
	if ok {
		center = transform.Position
	}
	bounds := screen.Bounds()
	cam := camera{
		cx:     center.X,
		cz:     center.Z,
		width:  float64(bounds.Dx()),
		height: float64(bounds.Dy()),
	}

	if r.level != nil {
		for _, p := range r.level.Platforms {
			shade := uint8(math.Min(80+p.Top*40, 220))
			cam.fillRect(screen, p.Rect, color.RGBA{R: shade / 2, G: shade, B: shade / 2, A: 255})
		}
		for _, h := range r.level.Hazards {
			cam.fillRect(screen, h.Rect, color.RGBA{R: 200, G: 40, B: 20, A: 200})
		}
		for _, wall := range r.level.Walls {
			cam.fillRect(screen, wall, colornames.Lightgrey)
		}
	}

	if ok {
		r.drawPlayer(w, player, transform, cam, screen)
	}
}

func (r *Renderer) drawPlayer(w *ecs.World, e ecs.Entity, t *component.Transform, cam camera, screen *ebiten.Image) {
	radius := 0.5
	if ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind()); ok && ch.Body != nil {
		radius = ch.Body.Radius()
	}
	alive := true
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		alive = h.IsAlive()
	}

	px, py := cam.project(t.Position.X, t.Position.Z)
	// Height reads as a larger disc.
	r0 := float32((radius + t.Position.Y*0.15) * pixelsPerUnit)
	body := colornames.Gold
	if !alive {
		body = colornames.Dimgray
	}
	vector.DrawFilledCircle(screen, px, py, r0, body, true)

	fwd := common.Vec3{Z: headingLength}.RotateYaw(t.Heading)
	hx, hy := cam.project(t.Position.X+fwd.X, t.Position.Z+fwd.Z)
	vector.StrokeLine(screen, px, py, hx, hy, 2, colornames.Orangered, true)

	r.drawHUD(w, e, t, screen)
}

func (r *Renderer) drawHUD(w *ecs.World, e ecs.Entity, t *component.Transform, screen *ebiten.Image) {
	var lines []string
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		lines = append(lines, fmt.Sprintf("HP %.0f/%.0f", h.Current, h.Max))
	}
	if loco, ok := ecs.Get(w, e, component.LocomotionComponent.Kind()); ok {
		for _, a := range loco.Activations {
			state := "off"
			if a.Active {
				state = "on"
			}
			lines = append(lines, fmt.Sprintf("%s: %s", a.Name, state))
		}
		if r.debug && loco.Controller != nil {
			s := loco.Controller.State()
			lines = append(lines,
				fmt.Sprintf("vel %v", s.Velocity),
				fmt.Sprintf("yaw %.1f  double jump %v", common.WrapDegrees(s.Yaw), s.DoubleJumpAvailable),
				fmt.Sprintf("coyote until %.2f (now %.2f)", s.CoyoteDeadline, loco.Controller.Now()),
			)
		}
	}
	if r.debug {
		lines = append(lines, fmt.Sprintf("pos %v", t.Position))
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f", ebiten.ActualTPS()), 10, screen.Bounds().Dy()-20)
	}

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, strings.Join(lines, "\n"), r.face, op)
}

type camera struct {
	cx, cz        float64
	width, height float64
}

// project maps ground-plane coordinates to screen pixels with +Z up.
func (c camera) project(x, z float64) (float32, float32) {
	sx := (x-c.cx)*pixelsPerUnit + c.width/2
	sy := c.height/2 - (z-c.cz)*pixelsPerUnit
	return float32(sx), float32(sy)
}

func (c camera) fillRect(screen *ebiten.Image, r levels.Rect, clr color.Color) {
	x0, y0 := c.project(r.MinX, r.MaxZ)
	x1, y1 := c.project(r.MaxX, r.MinZ)
	vector.FillRect(screen, x0, y0, x1-x0, y1-y0, clr, false)
}
