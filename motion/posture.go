package motion

// resolvePosture keeps a crouching character crouched while something is
// overhead, then applies the matching collider. It returns the resolved flag.
func (c *Controller) resolvePosture(s *State, crouch bool) bool {
	if !crouch && s.Crouching && c.probe(s, c.cfg.Probes.Ceiling, c.cfg.CeilingRadius) {
		crouch = true
	}

	c.anim.SetBool(ParamCrouch, crouch)
	c.body.SetCollider(c.profile.For(crouch))
	s.Crouching = crouch
	return crouch
}
