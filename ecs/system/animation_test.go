package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
)

func TestSelectClip(t *testing.T) {
	cases := []struct {
		name   string
		ground bool
		crouch bool
		speed  float64
		vspeed float64
		want   string
	}{
		{"idle", true, false, 0, 0, ClipIdle},
		{"run", true, false, 0.8, 0, ClipRun},
		{"crouch", true, true, 0, 0, ClipCrouch},
		{"crouch_walk", true, true, 0.36, 0, ClipCrouchWalk},
		{"rising", false, false, 1, 4, ClipJump},
		{"falling", false, false, 1, -4, ClipFall},
		{"air_ignores_crouch", false, true, 0, -1, ClipFall},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := component.NewAnimatorParams()
			p.SetBool(motion.ParamGround, c.ground)
			p.SetBool(motion.ParamCrouch, c.crouch)
			p.SetFloat(motion.ParamSpeed, c.speed)
			p.SetFloat(motion.ParamVSpeed, c.vspeed)
			if got := SelectClip(p); got != c.want {
				t.Fatalf("SelectClip = %q, want %q", got, c.want)
			}
		})
	}
}

func TestAnimationSystemAdvancesFrames(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	params := component.NewAnimatorParams()
	params.SetBool(motion.ParamGround, true)
	params.SetFloat(motion.ParamSpeed, 1)
	anim := &component.Animation{Defs: DefaultAnimationDefs(), Current: ClipIdle, Playing: true}
	if err := ecs.Add(w, e, component.AnimatorParamsComponent.Kind(), params); err != nil {
		t.Fatalf("add params: %v", err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), anim); err != nil {
		t.Fatalf("add animation: %v", err)
	}

	sys := NewAnimationSystem(0.02)
	sys.Update(w)
	if anim.Current != ClipRun || anim.Frame != 0 {
		t.Fatalf("clip = %s[%d], want run[0]", anim.Current, anim.Frame)
	}

	// run plays at 14 fps: 0.48s is a bit under seven frames.
	for i := 0; i < 23; i++ {
		sys.Update(w)
	}
	if anim.Frame != 6 {
		t.Fatalf("frame = %d, want 6", anim.Frame)
	}
	for i := 0; i < 50; i++ {
		sys.Update(w)
	}
	if anim.Frame >= 8 || !anim.Playing {
		t.Fatalf("looping clip overran: frame=%d playing=%v", anim.Frame, anim.Playing)
	}

	params.SetBool(motion.ParamGround, false)
	params.SetFloat(motion.ParamVSpeed, 5)
	for i := 0; i < 50; i++ {
		sys.Update(w)
	}
	if anim.Current != ClipJump || anim.Frame != 1 || anim.Playing {
		t.Fatalf("one-shot clip = %s[%d] playing=%v, want jump[1] stopped", anim.Current, anim.Frame, anim.Playing)
	}
}
