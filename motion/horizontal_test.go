package motion

import "testing"

func TestControlFraction(t *testing.T) {
	const total, frac = 1.0, 0.2
	cases := []struct {
		name      string
		remaining float64
		want      float64
	}{
		{"just_wall_jumped", 1, 0},
		{"still_locked", 0.85, 0},
		{"recovering_start", 0.8, 0.008},
		{"recovering_half", 0.5, 0.125},
		{"recovering_late", 0.1, 0.729},
		{"free", 0, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Lockout{Remaining: c.remaining}.ControlFraction(total, frac)
			if !approx(got, c.want) {
				t.Fatalf("ControlFraction(%v) = %v, want %v", c.remaining, got, c.want)
			}
		})
	}
}

func TestControlFractionMonotonic(t *testing.T) {
	const total, frac = 1.0, 0.2
	prev := -1.0
	for remaining := total; remaining >= 0; remaining -= 0.01 {
		l := Lockout{Remaining: remaining}
		c := l.ControlFraction(total, frac)
		if c < 0 || c > 1 {
			t.Fatalf("fraction out of range at %v: %v", remaining, c)
		}
		if c < prev {
			t.Fatalf("fraction decreased at %v: %v < %v", remaining, c, prev)
		}
		if l.Phase(total, frac) == LockoutRecovering && prev > 0 && c <= prev {
			t.Fatalf("fraction not strictly increasing while recovering at %v", remaining)
		}
		prev = c
	}
	if (Lockout{}).ControlFraction(total, frac) != 1 {
		t.Fatalf("expected full control once the lockout ends")
	}
}

func TestSteerBlendsDuringLockout(t *testing.T) {
	r := newRig(testConfig())
	r.physics.ground = true
	r.body.vel = vec{-4, 0}

	s := NewState()
	s.Lockout = Lockout{Remaining: 0.5}
	s = r.ctrl.Tick(s, Input{Move: 1, Elapsed: tick})

	// Control is evaluated before the countdown: c = (0.5/1)^3.
	c := 0.125
	want := c*1*r.cfg.MaxSpeed + (1-c)*-4
	if !approx(r.body.vel.x, want) {
		t.Fatalf("vx = %v, want %v", r.body.vel.x, want)
	}
	if !approx(s.Lockout.Remaining, 0.5-tick) {
		t.Fatalf("lockout = %v, want %v", s.Lockout.Remaining, 0.5-tick)
	}
}

func TestSteerLockedKeepsVelocity(t *testing.T) {
	r := newRig(testConfig())
	r.body.vel = vec{7, 3}
	s := NewState()
	s.Lockout = Lockout{Remaining: 1}

	s = r.ctrl.Tick(s, Input{Move: -1, Elapsed: tick})
	if r.body.vel.x != 7 || r.body.vel.y != 3 {
		t.Fatalf("locked out steering changed velocity to %+v", r.body.vel)
	}
	if s.FacingRight {
		t.Fatalf("orientation follows the commanded move even while locked out")
	}
}

func TestSteerWithoutAirControl(t *testing.T) {
	cfg := testConfig()
	cfg.AirControl = false
	r := newRig(cfg)
	r.body.vel = vec{2, -1}

	s := r.ctrl.Tick(NewState(), Input{Move: -1, Elapsed: tick})
	if r.body.vel.x != 2 {
		t.Fatalf("airborne without air control must keep vx, got %v", r.body.vel.x)
	}
	if !s.FacingRight {
		t.Fatalf("no steering means no flip")
	}
	if _, ok := r.anim.floats[ParamSpeed]; ok {
		t.Fatalf("Speed should not be reported when not steering")
	}
}

func TestSteerCrouchSlowsDown(t *testing.T) {
	r := newRig(testConfig())
	r.physics.ground = true

	r.ctrl.Tick(NewState(), Input{Move: -1, Crouch: true, Elapsed: tick})
	want := -1 * r.cfg.CrouchSpeed * r.cfg.MaxSpeed
	if !approx(r.body.vel.x, want) {
		t.Fatalf("vx = %v, want %v", r.body.vel.x, want)
	}
	if !approx(r.anim.floats[ParamSpeed], r.cfg.CrouchSpeed) {
		t.Fatalf("Speed = %v, want %v", r.anim.floats[ParamSpeed], r.cfg.CrouchSpeed)
	}
}

func TestLockoutCancelsGravity(t *testing.T) {
	r := newRig(testConfig())
	s := NewState()
	s.Lockout = Lockout{Remaining: 0.5}

	s = r.ctrl.Tick(s, Input{Elapsed: tick})
	got := r.body.total()
	if !approx(got.x, 0) || !approx(got.y, 30) {
		t.Fatalf("corrective force = %+v, want (0, 30)", got)
	}

	// The tick that closes the window adds nothing.
	r.body.reset()
	s.Lockout = Lockout{Remaining: tick / 2}
	s = r.ctrl.Tick(s, Input{Elapsed: tick})
	if len(r.body.forces) != 0 {
		t.Fatalf("expected no force once the window closed, got %+v", r.body.forces)
	}
	if s.Lockout.Remaining != 0 {
		t.Fatalf("expected lockout to reach zero, got %v", s.Lockout.Remaining)
	}
}
