package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"golang.org/x/image/colornames"
)

// RenderSystem draws the sandbox as flat shapes: solids, character colliders
// tinted by animation clip, and particles.
type RenderSystem struct {
	View View
}

func NewRenderSystem(view View) *RenderSystem {
	return &RenderSystem{View: view}
}

var clipColors = map[string]color.RGBA{
	ClipIdle:       colornames.Crimson,
	ClipRun:        colornames.Orangered,
	ClipCrouch:     colornames.Mediumpurple,
	ClipCrouchWalk: colornames.Mediumorchid,
	ClipJump:       colornames.Gold,
	ClipFall:       colornames.Goldenrod,
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Midnightblue)

	for _, e := range w.Query(component.SolidTagComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		r.fillBox(screen, t.X+body.Collider.OffsetX, t.Y+body.Collider.OffsetY, body.Collider.Width, body.Collider.Height, colornames.Slategray)
	}

	ecs.ForEach2(w, component.CharacterMotionComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, _ *component.CharacterMotion, body *component.PhysicsBody) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		clr := colornames.Crimson
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			if c, ok := clipColors[anim.Current]; ok {
				clr = c
			}
		}
		c := body.Collider
		r.fillBox(screen, t.X+c.OffsetX, t.Y+c.OffsetY, c.Width, c.Height, clr)

		// Facing marker on the leading edge.
		eyeX := t.X + c.OffsetX + t.ScaleX*c.Width/4
		eyeY := t.Y + c.OffsetY + c.Height/4
		x, y := r.View.ToScreen(eyeX, eyeY)
		vector.FillCircle(screen, float32(x), float32(y), float32(r.View.Length(0.08)), colornames.White, true)
	})

	ecs.ForEach(w, component.ParticleEmitterComponent.Kind(), func(e ecs.Entity, em *component.ParticleEmitter) {
		for _, p := range em.Particles {
			x, y := r.View.ToScreen(p.X, p.Y)
			base := colornames.Lightgoldenrodyellow
			clr := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(255 * clamp01(float32(p.Alpha)))}
			vector.FillCircle(screen, float32(x), float32(y), 2, clr, true)
		}
	})
}

// fillBox draws a box centred on (cx, cy) in world units.
func (r *RenderSystem) fillBox(screen *ebiten.Image, cx, cy, width, height float64, clr color.Color) {
	x, y := r.View.ToScreen(cx-width/2, cy+height/2)
	vector.FillRect(screen, float32(x), float32(y), float32(r.View.Length(width)), float32(r.View.Length(height)), clr, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(r.View.Length(width)), float32(r.View.Length(height)), 1, colornames.Black, false)
}
