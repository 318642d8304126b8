package motion

// sense shifts the grounded flag and probes the feet.
func (c *Controller) sense(s *State) {
	s.PreviouslyGrounded = s.Grounded
	s.Grounded = c.probe(s, c.cfg.Probes.Ground, c.cfg.GroundedRadius)
	c.anim.SetBool(ParamGround, s.Grounded)

	_, vy := c.body.Velocity()
	c.anim.SetFloat(ParamVSpeed, vy)
}
