package motion

// Collider is a box collider size and its offset from the body origin.
type Collider struct {
	Width, Height    float64
	OffsetX, OffsetY float64
}

// ColliderProfile holds the standing and crouched colliders.
type ColliderProfile struct {
	Standing Collider
	Crouched Collider
}

// NewColliderProfile derives the crouched collider from the standing one:
// same width, two thirds of the height, lowered so the feet stay in place.
func NewColliderProfile(standing Collider) ColliderProfile {
	return ColliderProfile{
		Standing: standing,
		Crouched: Collider{
			Width:   standing.Width,
			Height:  standing.Height * 2 / 3,
			OffsetX: standing.OffsetX,
			OffsetY: standing.OffsetY - standing.Height/6,
		},
	}
}

func (p ColliderProfile) For(crouch bool) Collider {
	if crouch {
		return p.Crouched
	}
	return p.Standing
}
