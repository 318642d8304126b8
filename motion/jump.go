package motion

import "github.com/milk9111/platformer/common"

// resolveJump runs the windup charge and, on a release, picks and executes at
// most one jump. A release is a latched press outside of charging, or letting
// go of the button with charge stored.
func (c *Controller) resolveJump(s *State, in Input, crouch bool, dt float64) JumpKind {
	if crouch && s.Grounded && (in.Jump || (in.Winding && s.Windup.Time > 0)) {
		c.charge(s, in.Winding, dt)
		return JumpNone
	}
	if !in.Jump && (in.Winding || s.Windup.Time <= 0) {
		return JumpNone
	}

	kind, fx, fy := c.selectJump(s)
	s.Windup = Windup{}
	c.fx.SetWindupEmission(0)
	if kind == JumpNone {
		return JumpNone
	}

	vx, _ := c.body.Velocity()
	if kind.wall() {
		s.Lockout = Lockout{Remaining: c.cfg.WallJumpTotalTime}
		vx = 0
		c.fx.WallJumpBurst()
	}
	c.body.SetVelocity(vx, 0)
	c.anim.SetBool(ParamGround, false)
	c.body.AddForce(fx, fy)
	return kind
}

func (c *Controller) charge(s *State, winding bool, dt float64) {
	s.Windup.Phase = WindupCharging
	s.Windup.Time += dt
	if winding && s.Windup.Time > 0 {
		c.fx.SetWindupEmission(c.cfg.WindupMaxEmission * s.Windup.Ratio(c.cfg.MaxWindupTime))
	}
}

// selectJump applies the priority grounded > back wall > front wall > mid-air.
// Only an executed mid-air jump consumes a mid-air charge.
func (c *Controller) selectJump(s *State) (kind JumpKind, fx, fy float64) {
	facing := common.Sign(s.FacingRight)
	switch {
	case s.Grounded:
		bonus := (c.cfg.MaxWindupMultiplier - 1) * s.Windup.Ratio(c.cfg.MaxWindupTime)
		return JumpGrounded, 0, c.cfg.JumpForce * (1 + bonus)
	case c.probe(s, c.cfg.Probes.BackWall, c.cfg.WallCheckRadius):
		return JumpBackWall, c.cfg.WallJumpHorizontalForce * facing, c.cfg.WallJumpForce
	case c.probe(s, c.cfg.Probes.FrontWall, c.cfg.WallCheckRadius):
		return JumpFrontWall, -c.cfg.WallJumpHorizontalForce * facing, c.cfg.WallJumpForce
	case s.MidairJumps < c.cfg.MaxMidairs:
		s.MidairJumps++
		return JumpMidair, 0, c.cfg.MidairJumpForce
	default:
		return JumpNone, 0, 0
	}
}
