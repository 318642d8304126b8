package motion

import "testing"

func TestOrient(t *testing.T) {
	cases := []struct {
		name   string
		facing bool
		move   float64
		want   bool
		flips  int
	}{
		{"right_keeps_right", true, 1, true, 0},
		{"left_flips_right", true, -1, false, 1},
		{"right_flips_left", false, 0.5, true, 1},
		{"left_keeps_left", false, -0.2, false, 0},
		{"zero_right", true, 0, true, 0},
		{"zero_left", false, 0, false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(testConfig())
			s := State{FacingRight: c.facing}
			r.ctrl.orient(&s, c.move)
			if s.FacingRight != c.want || r.body.flips != c.flips {
				t.Fatalf("facing=%v flips=%d, want facing=%v flips=%d", s.FacingRight, r.body.flips, c.want, c.flips)
			}
		})
	}
}

func TestOrientTwiceIsNoop(t *testing.T) {
	r := newRig(testConfig())
	s := NewState()
	r.ctrl.orient(&s, -1)
	r.ctrl.orient(&s, -1)
	if s.FacingRight || r.body.flips != 1 || r.body.scaleX != -1 {
		t.Fatalf("facing=%v flips=%d scaleX=%v", s.FacingRight, r.body.flips, r.body.scaleX)
	}
}

func TestProbesMirrorWithFacing(t *testing.T) {
	r := newRig(testConfig())
	r.physics.wallLeft = true

	right := NewState()
	if !r.ctrl.probe(&right, r.cfg.Probes.BackWall, r.cfg.WallCheckRadius) {
		t.Fatalf("back probe facing right should hit the left wall")
	}
	left := State{}
	if r.ctrl.probe(&left, r.cfg.Probes.BackWall, r.cfg.WallCheckRadius) {
		t.Fatalf("back probe facing left should look right")
	}
	if !r.ctrl.probe(&left, r.cfg.Probes.FrontWall, r.cfg.WallCheckRadius) {
		t.Fatalf("front probe facing left should hit the left wall")
	}
}
