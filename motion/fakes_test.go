package motion

import "math"

const tick = 0.02

type vec struct{ x, y float64 }

// fakePhysics answers probes from world-space flags. The test rig places the
// body at the origin, so probes land on known sides.
type fakePhysics struct {
	ground    bool
	ceiling   bool
	wallLeft  bool
	wallRight bool
	gravity   vec
	queries   int
}

func (f *fakePhysics) OverlapCircle(x, y, radius float64, mask uint) bool {
	f.queries++
	switch {
	case y < -0.5:
		return f.ground
	case y > 0.5:
		return f.ceiling
	case x < 0:
		return f.wallLeft
	case x > 0:
		return f.wallRight
	}
	return false
}

func (f *fakePhysics) Gravity() (float64, float64) { return f.gravity.x, f.gravity.y }

type fakeBody struct {
	vel      vec
	forces   []vec
	collider Collider
	flips    int
	scaleX   float64
}

func (b *fakeBody) Position() (float64, float64) { return 0, 0 }
func (b *fakeBody) Velocity() (float64, float64) { return b.vel.x, b.vel.y }
func (b *fakeBody) SetVelocity(x, y float64)     { b.vel = vec{x, y} }
func (b *fakeBody) AddForce(x, y float64)        { b.forces = append(b.forces, vec{x, y}) }
func (b *fakeBody) SetCollider(c Collider)       { b.collider = c }
func (b *fakeBody) FlipX() {
	b.flips++
	b.scaleX = -b.scaleX
}

// total sums the forces added since the last reset.
func (b *fakeBody) total() vec {
	var t vec
	for _, f := range b.forces {
		t.x += f.x
		t.y += f.y
	}
	return t
}

func (b *fakeBody) reset() { b.forces = nil }

type fakeAnim struct {
	bools  map[string]bool
	floats map[string]float64
}

func (a *fakeAnim) SetBool(name string, v bool)     { a.bools[name] = v }
func (a *fakeAnim) SetFloat(name string, v float64) { a.floats[name] = v }

type fakeEffects struct {
	emission float64
	bursts   int
}

func (e *fakeEffects) SetWindupEmission(rate float64) { e.emission = rate }
func (e *fakeEffects) WallJumpBurst()                 { e.bursts++ }

type rig struct {
	cfg     Config
	physics *fakePhysics
	body    *fakeBody
	anim    *fakeAnim
	fx      *fakeEffects
	ctrl    *Controller
}

var standingCollider = Collider{Width: 0.6, Height: 1.8, OffsetX: 0, OffsetY: 0}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.WallJumpTotalTime = 1
	cfg.WallJumpUncontrollableFraction = 0.2
	cfg.MaxWindupTime = 0.5
	cfg.MaxWindupMultiplier = 2
	cfg.Probes = Probes{
		Ground:    Point{X: 0, Y: -1},
		Ceiling:   Point{X: 0, Y: 1},
		BackWall:  Point{X: -0.4, Y: 0},
		FrontWall: Point{X: 0.4, Y: 0},
	}
	return cfg
}

func newRig(cfg Config) *rig {
	r := &rig{
		cfg:     cfg,
		physics: &fakePhysics{gravity: vec{0, -30}},
		body:    &fakeBody{scaleX: 1},
		anim:    &fakeAnim{bools: map[string]bool{}, floats: map[string]float64{}},
		fx:      &fakeEffects{},
	}
	ctrl, err := NewController(cfg, standingCollider, Ports{
		Physics:   r.physics,
		Body:      r.body,
		Animation: r.anim,
		Effects:   r.fx,
	})
	if err != nil {
		panic(err)
	}
	r.ctrl = ctrl
	return r
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}
