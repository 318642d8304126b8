package motion

import "testing"

func TestSense(t *testing.T) {
	r := newRig(testConfig())
	r.body.vel = vec{0, -7}

	s := NewState()
	r.physics.ground = true
	s = r.ctrl.Tick(s, Input{Elapsed: tick})
	if !s.Grounded || s.PreviouslyGrounded {
		t.Fatalf("first contact: grounded=%v previously=%v", s.Grounded, s.PreviouslyGrounded)
	}
	if !r.anim.bools[ParamGround] {
		t.Fatalf("Ground param not reported")
	}
	if r.anim.floats[ParamVSpeed] != -7 {
		t.Fatalf("vSpeed = %v, want -7", r.anim.floats[ParamVSpeed])
	}

	r.physics.ground = false
	s = r.ctrl.Tick(s, Input{Elapsed: tick})
	if s.Grounded || !s.PreviouslyGrounded {
		t.Fatalf("walk off: grounded=%v previously=%v", s.Grounded, s.PreviouslyGrounded)
	}
	if r.anim.bools[ParamGround] {
		t.Fatalf("Ground param still set")
	}
}

func TestNegativeElapsedIsIgnored(t *testing.T) {
	r := newRig(testConfig())
	s := NewState()
	s.Lockout = Lockout{Remaining: 0.5}
	s = r.ctrl.Tick(s, Input{Elapsed: -1})
	if s.Lockout.Remaining != 0.5 {
		t.Fatalf("lockout = %v, want 0.5", s.Lockout.Remaining)
	}
}

func TestMoveIsClamped(t *testing.T) {
	r := newRig(testConfig())
	r.physics.ground = true
	r.ctrl.Tick(NewState(), Input{Move: 5, Elapsed: tick})
	if r.body.vel.x != r.cfg.MaxSpeed || r.anim.floats[ParamSpeed] != 1 {
		t.Fatalf("vx=%v speed=%v", r.body.vel.x, r.anim.floats[ParamSpeed])
	}
}
