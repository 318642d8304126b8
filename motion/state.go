package motion

import "math"

// WindupPhase tags the grounded jump charge.
type WindupPhase uint8

const (
	WindupIdle WindupPhase = iota
	WindupCharging
)

func (p WindupPhase) String() string {
	switch p {
	case WindupIdle:
		return "idle"
	case WindupCharging:
		return "charging"
	default:
		return "unknown"
	}
}

// Windup is the charge accumulated by holding crouch and jump on the ground.
// Time may exceed the configured maximum; only the scaling is capped.
type Windup struct {
	Phase WindupPhase
	Time  float64
}

// Ratio returns min(Time, maxTime)/maxTime.
func (w Windup) Ratio(maxTime float64) float64 {
	if maxTime <= 0 || w.Time <= 0 {
		return 0
	}
	return math.Min(w.Time, maxTime) / maxTime
}

// LockoutPhase tags the horizontal control authority after a wall jump.
type LockoutPhase uint8

const (
	LockoutNone LockoutPhase = iota
	LockoutUncontrollable
	LockoutRecovering
)

func (p LockoutPhase) String() string {
	switch p {
	case LockoutNone:
		return "none"
	case LockoutUncontrollable:
		return "uncontrollable"
	case LockoutRecovering:
		return "recovering"
	default:
		return "unknown"
	}
}

// Lockout counts down the wall-jump recovery window.
type Lockout struct {
	Remaining float64
}

// Phase classifies Remaining against the configured window.
func (l Lockout) Phase(total, uncontrollable float64) LockoutPhase {
	switch {
	case l.Remaining > total*(1-uncontrollable):
		return LockoutUncontrollable
	case l.Remaining > 0:
		return LockoutRecovering
	default:
		return LockoutNone
	}
}

// Advance counts the window down by dt, floored at zero.
func (l Lockout) Advance(dt float64) Lockout {
	if dt < l.Remaining {
		l.Remaining -= dt
	} else {
		l.Remaining = 0
	}
	return l
}

// JumpKind is the outcome of a release evaluation.
type JumpKind uint8

const (
	JumpNone JumpKind = iota
	JumpGrounded
	JumpBackWall
	JumpFrontWall
	JumpMidair
)

func (k JumpKind) String() string {
	switch k {
	case JumpNone:
		return "none"
	case JumpGrounded:
		return "grounded"
	case JumpBackWall:
		return "back_wall"
	case JumpFrontWall:
		return "front_wall"
	case JumpMidair:
		return "midair"
	default:
		return "unknown"
	}
}

func (k JumpKind) wall() bool {
	return k == JumpBackWall || k == JumpFrontWall
}

// State is everything a controller remembers about one character between
// ticks. It is owned by the caller and threaded through Tick.
type State struct {
	FacingRight        bool
	Grounded           bool
	PreviouslyGrounded bool
	// Crouching is the crouch flag last reported to the animation sink.
	Crouching bool

	Lockout     Lockout
	Windup      Windup
	MidairJumps int

	// LastJump is the jump executed on the most recent tick, if any.
	LastJump JumpKind
}

// NewState returns the spawn state: facing right, airborne, idle.
func NewState() State {
	return State{FacingRight: true}
}

// Landed reports a landing edge on the current tick.
func (s State) Landed() bool {
	return s.Grounded && !s.PreviouslyGrounded
}
