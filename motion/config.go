package motion

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidConfig = errors.New("motion: invalid config")

// Point is a local-space anchor, expressed for a character facing right.
type Point struct {
	X, Y float64
}

// Probes holds the already-resolved anchors of the four overlap probes.
type Probes struct {
	Ground    Point
	Ceiling   Point
	BackWall  Point
	FrontWall Point
}

// Config is the read-only tuning of a character controller.
type Config struct {
	MaxSpeed float64

	JumpForce               float64
	MidairJumpForce         float64
	WallJumpForce           float64
	WallJumpHorizontalForce float64

	// WallJumpTotalTime is how long it takes to regain full horizontal control
	// after a wall jump. The first WallJumpUncontrollableFraction of it has no
	// control at all.
	WallJumpTotalTime              float64
	WallJumpUncontrollableFraction float64

	// CrouchSpeed scales horizontal input while crouched. 1 = 100%.
	CrouchSpeed float64
	AirControl  bool
	MaxMidairs  int

	MaxWindupTime       float64
	MaxWindupMultiplier float64
	WindupMaxEmission   float64

	GroundedRadius  float64
	CeilingRadius   float64
	WallCheckRadius float64
	GroundMask      uint

	Probes Probes
}

// DefaultConfig returns the tuning used by the sandbox character.
func DefaultConfig() Config {
	return Config{
		MaxSpeed:                       10,
		JumpForce:                      800,
		MidairJumpForce:                600,
		WallJumpForce:                  600,
		WallJumpHorizontalForce:        450,
		WallJumpTotalTime:              0.6,
		WallJumpUncontrollableFraction: 0.25,
		CrouchSpeed:                    0.36,
		AirControl:                     true,
		MaxMidairs:                     1,
		MaxWindupTime:                  1,
		MaxWindupMultiplier:            1.5,
		WindupMaxEmission:              40,
		GroundedRadius:                 0.1,
		CeilingRadius:                  0.18,
		WallCheckRadius:                0.15,
		GroundMask:                     1,
		Probes: Probes{
			Ground:    Point{X: 0, Y: -0.9},
			Ceiling:   Point{X: 0, Y: 0.9},
			BackWall:  Point{X: -0.35, Y: 0},
			FrontWall: Point{X: 0.35, Y: 0},
		},
	}
}

// Validate rejects tuning that would make a tick ill-defined.
func (c Config) Validate() error {
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"MaxSpeed", c.MaxSpeed},
		{"JumpForce", c.JumpForce},
		{"MidairJumpForce", c.MidairJumpForce},
		{"WallJumpForce", c.WallJumpForce},
		{"WallJumpHorizontalForce", c.WallJumpHorizontalForce},
		{"WindupMaxEmission", c.WindupMaxEmission},
	}
	for _, f := range nonNegative {
		if !(f.v >= 0) || math.IsInf(f.v, 1) {
			return invalid(f.name, "a finite non-negative number", f.v)
		}
	}

	positive := []struct {
		name string
		v    float64
	}{
		{"WallJumpTotalTime", c.WallJumpTotalTime},
		{"MaxWindupTime", c.MaxWindupTime},
		{"GroundedRadius", c.GroundedRadius},
		{"CeilingRadius", c.CeilingRadius},
		{"WallCheckRadius", c.WallCheckRadius},
	}
	for _, f := range positive {
		if !(f.v > 0) || math.IsInf(f.v, 1) {
			return invalid(f.name, "a finite positive number", f.v)
		}
	}

	if !(c.WallJumpUncontrollableFraction >= 0 && c.WallJumpUncontrollableFraction <= 1) {
		return invalid("WallJumpUncontrollableFraction", "within [0, 1]", c.WallJumpUncontrollableFraction)
	}
	if !(c.CrouchSpeed >= 0 && c.CrouchSpeed <= 1) {
		return invalid("CrouchSpeed", "within [0, 1]", c.CrouchSpeed)
	}
	if !(c.MaxWindupMultiplier >= 1) || math.IsInf(c.MaxWindupMultiplier, 1) {
		return invalid("MaxWindupMultiplier", "a finite number >= 1", c.MaxWindupMultiplier)
	}
	if c.MaxMidairs < 0 {
		return invalid("MaxMidairs", "non-negative", c.MaxMidairs)
	}
	if c.GroundMask == 0 {
		return invalid("GroundMask", "non-zero", c.GroundMask)
	}
	return nil
}

func invalid(field, rule string, got any) error {
	return fmt.Errorf("motion: %s must be %s, got %v: %w", field, rule, got, ErrInvalidConfig)
}
