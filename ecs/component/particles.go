package component

import "github.com/tanema/gween"

// Particle is one live spark. Fade drives its alpha from 1 to 0 over its life.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
	Fade   *gween.Tween
}

// ParticleEmitter satisfies motion.EffectSink. Rate is the continuous emission
// in particles per second; PendingBursts counts wall-jump bursts not yet
// spawned.
type ParticleEmitter struct {
	Rate          float64
	PendingBursts int
	BurstCount    int
	Lifetime      float64
	Speed         float64

	Particles []Particle
	carry     float64
}

func (p *ParticleEmitter) SetWindupEmission(rate float64) {
	p.Rate = rate
}

func (p *ParticleEmitter) WallJumpBurst() {
	p.PendingBursts++
}

// Accumulate adds rate*dt worth of emission and returns how many whole
// particles are due.
func (p *ParticleEmitter) Accumulate(dt float64) int {
	if p.Rate <= 0 {
		p.carry = 0
		return 0
	}
	p.carry += p.Rate * dt
	n := int(p.carry)
	p.carry -= float64(n)
	return n
}

var ParticleEmitterComponent = NewComponent[ParticleEmitter]()
