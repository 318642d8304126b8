package motion

// orient flips the character when the commanded direction disagrees with its
// facing. A zero move never flips.
func (c *Controller) orient(s *State, move float64) {
	if (move > 0 && !s.FacingRight) || (move < 0 && s.FacingRight) {
		s.FacingRight = !s.FacingRight
		c.body.FlipX()
	}
}
