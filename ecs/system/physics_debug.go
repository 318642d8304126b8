package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
	"golang.org/x/image/colornames"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

func DrawPhysicsDebug(space *cp.Space, view View, screen *ebiten.Image) {
	if space == nil || screen == nil {
		return
	}
	cp.DrawSpace(space, &physicsDebugDrawer{screen: screen, view: view})
}

// DrawMotionDebug outlines the four probes of every character, lit when they
// hit, and prints the controller state of the player.
func DrawMotionDebug(w *ecs.World, space *cp.Space, view View, screen *ebiten.Image) {
	if w == nil || space == nil || screen == nil {
		return
	}
	query := spaceQuery{space: space}
	ecs.ForEach2(w, component.CharacterMotionComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, cm *component.CharacterMotion, body *component.PhysicsBody) {
		if body.Body == nil {
			return
		}
		pos := body.Body.Position()
		facing := common.Sign(cm.State.FacingRight)
		probes := []struct {
			at     motion.Point
			radius float64
		}{
			{cm.Config.Probes.Ground, cm.Config.GroundedRadius},
			{cm.Config.Probes.Ceiling, cm.Config.CeilingRadius},
			{cm.Config.Probes.BackWall, cm.Config.WallCheckRadius},
			{cm.Config.Probes.FrontWall, cm.Config.WallCheckRadius},
		}
		for _, p := range probes {
			wx, wy := pos.X+p.at.X*facing, pos.Y+p.at.Y
			clr := color.Color(colornames.Lightskyblue)
			if query.OverlapCircle(wx, wy, p.radius, cm.Config.GroundMask) {
				clr = colornames.Orangered
			}
			x, y := view.ToScreen(wx, wy)
			vector.StrokeCircle(screen, float32(x), float32(y), float32(view.Length(p.radius)), 1, clr, true)
		}
	})

	player, ok := w.First(component.PlayerTagComponent.Kind(), component.CharacterMotionComponent.Kind())
	if !ok {
		return
	}
	cm, _ := ecs.Get(w, player, component.CharacterMotionComponent.Kind())
	s := cm.State
	lockout := s.Lockout.Phase(cm.Config.WallJumpTotalTime, cm.Config.WallJumpUncontrollableFraction)
	text := fmt.Sprintf("Grounded: %v\nCrouching: %v\nFacingRight: %v\nMidairs: %d/%d\nWindup: %s %.2fs\nLockout: %s %.2fs\nLastJump: %s",
		s.Grounded, s.Crouching, s.FacingRight,
		s.MidairJumps, cm.Config.MaxMidairs,
		s.Windup.Phase, s.Windup.Time,
		lockout, s.Lockout.Remaining,
		s.LastJump)
	if anim, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok {
		text += fmt.Sprintf("\nClip: %s[%d]", anim.Current, anim.Frame)
	}
	ebitenutil.DebugPrintAt(screen, text, 10, 24)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	view   View
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	x, y := d.view.ToScreen(pos.X, pos.Y)
	half := float32(size / 2)
	vector.StrokeLine(d.screen, float32(x)-half, float32(y), float32(x)+half, float32(y), 1, toNRGBA(fill), false)
	vector.StrokeLine(d.screen, float32(x), float32(y)-half, float32(x), float32(y)+half, 1, toNRGBA(fill), false)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, color cp.FColor) {
	x1, y1 := d.view.ToScreen(a.X, a.Y)
	x2, y2 := d.view.ToScreen(b.X, b.Y)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(color), true)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, color cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], color)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, color cp.FColor) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, color)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
