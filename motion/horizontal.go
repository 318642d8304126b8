package motion

import (
	"math"

	"github.com/milk9111/platformer/common"
	"github.com/tanema/gween/ease"
)

// ControlFraction is the weight given to commanded velocity over the current
// one: 0 while uncontrollable, a cubic ease-in while recovering, 1 otherwise.
func (l Lockout) ControlFraction(total, uncontrollable float64) float64 {
	switch l.Phase(total, uncontrollable) {
	case LockoutUncontrollable:
		return 0
	case LockoutRecovering:
		elapsed := total - l.Remaining
		return float64(ease.InCubic(float32(elapsed), 0, 1, float32(total)))
	default:
		return 1
	}
}

// steer writes the commanded horizontal velocity when the character has
// authority over it. Vertical velocity is left alone.
func (c *Controller) steer(s *State, move float64, crouch bool) {
	if !s.Grounded && !c.cfg.AirControl {
		return
	}
	if crouch {
		move *= c.cfg.CrouchSpeed
	}
	c.anim.SetFloat(ParamSpeed, math.Abs(move))

	control := s.Lockout.ControlFraction(c.cfg.WallJumpTotalTime, c.cfg.WallJumpUncontrollableFraction)
	vx, vy := c.body.Velocity()
	c.body.SetVelocity(common.Lerp(vx, move*c.cfg.MaxSpeed, control), vy)

	c.orient(s, move)
}

// advanceLockout counts the wall-jump window down and cancels gravity while
// it is still open.
func (c *Controller) advanceLockout(s *State, dt float64) {
	s.Lockout = s.Lockout.Advance(dt)
	if s.Lockout.Remaining > 0 {
		gx, gy := c.physics.Gravity()
		c.body.AddForce(-gx, -gy)
	}
}
