package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
)

// DefaultGravity is the downward acceleration of the sandbox, in units/s².
const DefaultGravity = 30.0

// PhysicsSystem owns the Chipmunk2D space. It creates bodies for new
// PhysicsBody entities, steps the space by a fixed dt and copies positions
// back to Transform. Y points up.
type PhysicsSystem struct {
	space *cp.Space
	dt    float64

	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body  *cp.Body
	shape *cp.Shape
}

func NewPhysicsSystem(dt, gravity float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -gravity})
	return &PhysicsSystem{
		space:    space,
		dt:       dt,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Dt is the fixed step the space advances by on every Update.
func (ps *PhysicsSystem) Dt() float64 {
	return ps.dt
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.syncEntities(w)
	ps.space.Step(ps.dt)
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		if _, ok := ps.entities[e]; ok {
			continue
		}
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
		if !ok {
			layer = &component.CollisionLayer{}
		}

		info := ps.createBodyInfo(transform, bodyComp, *layer)
		if info == nil {
			continue
		}
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, layer component.CollisionLayer) *bodyInfo {
	c := bodyComp.Collider
	if c.Width <= 0 || c.Height <= 0 {
		log.Printf("PhysicsSystem: skipping body with empty collider %+v", c)
		return nil
	}

	if bodyComp.Static {
		bb := colliderBB(c, transform.X, transform.Y)
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		configureShape(shape, bodyComp.Friction, layer)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	// Characters never rotate.
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	ps.space.AddBody(body)

	shape := cp.NewBox2(body, colliderBB(c, 0, 0), 0)
	configureShape(shape, bodyComp.Friction, layer)
	ps.space.AddShape(shape)

	return &bodyInfo{body: body, shape: shape}
}

// replaceCollider swaps the box attached to a dynamic body. It is a no-op when
// the collider is unchanged.
func (ps *PhysicsSystem) replaceCollider(bodyComp *component.PhysicsBody, layer component.CollisionLayer, c motion.Collider) {
	if bodyComp.Body == nil || bodyComp.Collider == c {
		return
	}
	if bodyComp.Shape != nil {
		ps.space.RemoveShape(bodyComp.Shape)
	}
	shape := cp.NewBox2(bodyComp.Body, colliderBB(c, 0, 0), 0)
	configureShape(shape, bodyComp.Friction, layer)
	ps.space.AddShape(shape)

	for _, info := range ps.entities {
		if info.shape == bodyComp.Shape {
			info.shape = shape
		}
	}
	bodyComp.Shape = shape
	bodyComp.Collider = c
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil && info.body != ps.space.StaticBody {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Static || bodyComp.Body == nil {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	})
}

func colliderBB(c motion.Collider, x, y float64) cp.BB {
	cx := x + c.OffsetX
	cy := y + c.OffsetY
	return cp.BB{
		L: cx - c.Width/2,
		B: cy - c.Height/2,
		R: cx + c.Width/2,
		T: cy + c.Height/2,
	}
}

func configureShape(shape *cp.Shape, friction float64, layer component.CollisionLayer) {
	category := layer.Category
	if category == 0 {
		category = component.LayerGround
	}
	mask := layer.Mask
	if mask == 0 {
		mask = cp.ALL_CATEGORIES
	}
	shape.SetFriction(friction)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, category, mask))
}
