package system

import (
	"math"
	"math/rand"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ParticleSystem spawns and ages the sparks of every ParticleEmitter. Windup
// sparks rise from the feet; wall-jump bursts spray in all directions.
type ParticleSystem struct {
	dt      float64
	gravity float64
	rng     *rand.Rand
}

func NewParticleSystem(dt, gravity float64, seed int64) *ParticleSystem {
	return &ParticleSystem{
		dt:      dt,
		gravity: gravity,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (p *ParticleSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.ParticleEmitterComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, em *component.ParticleEmitter, t *component.Transform) {
		p.age(em)

		for i := em.Accumulate(p.dt); i > 0; i-- {
			angle := math.Pi/2 + (p.rng.Float64()-0.5)*math.Pi/3
			p.spawn(em, t.X, t.Y, angle)
		}
		for ; em.PendingBursts > 0; em.PendingBursts-- {
			for i := 0; i < em.BurstCount; i++ {
				p.spawn(em, t.X, t.Y, p.rng.Float64()*2*math.Pi)
			}
		}
	})
}

func (p *ParticleSystem) spawn(em *component.ParticleEmitter, x, y, angle float64) {
	life := em.Lifetime
	if life <= 0 {
		life = 0.5
	}
	speed := em.Speed * (0.5 + p.rng.Float64()/2)
	em.Particles = append(em.Particles, component.Particle{
		X:     x,
		Y:     y,
		VX:    math.Cos(angle) * speed,
		VY:    math.Sin(angle) * speed,
		Alpha: 1,
		Fade:  gween.New(1, 0, float32(life), ease.OutQuad),
	})
}

func (p *ParticleSystem) age(em *component.ParticleEmitter) {
	alive := em.Particles[:0]
	for _, pt := range em.Particles {
		alpha, done := pt.Fade.Update(float32(p.dt))
		if done {
			continue
		}
		pt.Alpha = float64(alpha)
		pt.VY -= p.gravity * p.dt
		pt.X += pt.VX * p.dt
		pt.Y += pt.VY * p.dt
		alive = append(alive, pt)
	}
	em.Particles = alive
}
