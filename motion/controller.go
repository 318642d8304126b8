package motion

import (
	"errors"
	"math"

	"github.com/milk9111/platformer/common"
)

// Controller turns per-tick intent into forces on one character. It holds only
// immutable tuning and port handles; all evolving state lives in State.
type Controller struct {
	cfg     Config
	profile ColliderProfile

	physics PhysicsQuery
	body    Body
	anim    AnimationSink
	fx      EffectSink
}

// Input is the latched intent for one physics tick.
type Input struct {
	// Move is the horizontal axis in [-1, 1].
	Move   float64
	Crouch bool
	// Jump is true on the tick a press was latched since the previous tick.
	Jump bool
	// Winding stays true while the jump button is held.
	Winding bool
	// Elapsed is the physics tick length in seconds.
	Elapsed float64
}

// NewController validates cfg and binds the controller to its ports.
// standing is the collider the body was spawned with.
func NewController(cfg Config, standing Collider, ports Ports) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ports.Physics == nil || ports.Body == nil {
		return nil, errors.New("motion: physics and body ports are required")
	}
	c := &Controller{
		cfg:     cfg,
		profile: NewColliderProfile(standing),
		physics: ports.Physics,
		body:    ports.Body,
		anim:    ports.Animation,
		fx:      ports.Effects,
	}
	if c.anim == nil {
		c.anim = discardAnimation{}
	}
	if c.fx == nil {
		c.fx = discardEffects{}
	}
	return c, nil
}

func (c *Controller) Config() Config {
	return c.cfg
}

func (c *Controller) Profile() ColliderProfile {
	return c.profile
}

// Tick runs one physics tick and returns the next state. Order matters: each
// step sees the body writes of the steps before it.
func (c *Controller) Tick(s State, in Input) State {
	dt := math.Max(in.Elapsed, 0)
	move := common.Clamp(in.Move, -1, 1)

	c.sense(&s)
	crouch := c.resolvePosture(&s, in.Crouch)
	c.steer(&s, move, crouch)
	c.advanceLockout(&s, dt)
	s.LastJump = c.resolveJump(&s, in, crouch, dt)

	if s.Landed() {
		s.MidairJumps = 0
	}
	return s
}

// probe tests a local anchor, mirrored when the character faces left.
func (c *Controller) probe(s *State, anchor Point, radius float64) bool {
	x, y := c.body.Position()
	return c.physics.OverlapCircle(x+anchor.X*common.Sign(s.FacingRight), y+anchor.Y, radius, c.cfg.GroundMask)
}
