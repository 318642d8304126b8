package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
)

// spaceQuery answers controller probes against the physics space.
type spaceQuery struct {
	space *cp.Space
}

func (q spaceQuery) OverlapCircle(x, y, radius float64, mask uint) bool {
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, mask)
	info := q.space.PointQueryNearest(cp.Vector{X: x, Y: y}, radius, filter)
	return info != nil && info.Shape != nil
}

func (q spaceQuery) Gravity() (float64, float64) {
	g := q.space.Gravity()
	return g.X, g.Y
}

// characterBody exposes one entity's cp body and transform to a controller.
type characterBody struct {
	physics   *PhysicsSystem
	body      *component.PhysicsBody
	layer     component.CollisionLayer
	transform *component.Transform
}

func (b *characterBody) Position() (float64, float64) {
	p := b.body.Body.Position()
	return p.X, p.Y
}

func (b *characterBody) Velocity() (float64, float64) {
	v := b.body.Body.Velocity()
	return v.X, v.Y
}

func (b *characterBody) SetVelocity(x, y float64) {
	b.body.Body.SetVelocity(x, y)
}

func (b *characterBody) AddForce(x, y float64) {
	b.body.Body.ApplyForceAtLocalPoint(cp.Vector{X: x, Y: y}, cp.Vector{})
}

func (b *characterBody) SetCollider(c motion.Collider) {
	b.physics.replaceCollider(b.body, b.layer, c)
}

func (b *characterBody) FlipX() {
	if b.transform.ScaleX == 0 {
		b.transform.ScaleX = 1
	}
	b.transform.ScaleX = -b.transform.ScaleX
}
