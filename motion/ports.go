package motion

// Animation parameter names.
const (
	ParamGround = "Ground"
	ParamCrouch = "Crouch"
	ParamSpeed  = "Speed"
	ParamVSpeed = "vSpeed"
)

// PhysicsQuery answers overlap probes against the host's collision world.
type PhysicsQuery interface {
	// OverlapCircle reports whether any shape whose category is in mask
	// overlaps the circle at (x, y).
	OverlapCircle(x, y, radius float64, mask uint) bool
	Gravity() (x, y float64)
}

// Body is the slice of the host rigid body a controller may touch.
type Body interface {
	Position() (x, y float64)
	Velocity() (x, y float64)
	SetVelocity(x, y float64)
	// AddForce accumulates a force integrated over the next physics step.
	AddForce(x, y float64)
	SetCollider(c Collider)
	// FlipX negates the horizontal visual scale.
	FlipX()
}

type AnimationSink interface {
	SetBool(name string, v bool)
	SetFloat(name string, v float64)
}

type EffectSink interface {
	SetWindupEmission(rate float64)
	WallJumpBurst()
}

// Ports bundles the host capabilities handed to a controller at construction.
// Animation and Effects may be nil.
type Ports struct {
	Physics   PhysicsQuery
	Body      Body
	Animation AnimationSink
	Effects   EffectSink
}

type discardAnimation struct{}

func (discardAnimation) SetBool(string, bool)     {}
func (discardAnimation) SetFloat(string, float64) {}

type discardEffects struct{}

func (discardEffects) SetWindupEmission(float64) {}
func (discardEffects) WallJumpBurst()            {}
