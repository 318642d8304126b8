package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
)

const (
	ClipIdle       = "idle"
	ClipRun        = "run"
	ClipCrouch     = "crouch"
	ClipCrouchWalk = "crouch_walk"
	ClipJump       = "jump"
	ClipFall       = "fall"
)

const runThreshold = 0.01

// DefaultAnimationDefs is the clip table of the sandbox character.
func DefaultAnimationDefs() map[string]component.AnimationDef {
	return map[string]component.AnimationDef{
		ClipIdle:       {Name: ClipIdle, FrameCount: 4, FPS: 6, Loop: true},
		ClipRun:        {Name: ClipRun, FrameCount: 8, FPS: 14, Loop: true},
		ClipCrouch:     {Name: ClipCrouch, FrameCount: 1, FPS: 1},
		ClipCrouchWalk: {Name: ClipCrouchWalk, FrameCount: 6, FPS: 10, Loop: true},
		ClipJump:       {Name: ClipJump, FrameCount: 2, FPS: 8},
		ClipFall:       {Name: ClipFall, FrameCount: 2, FPS: 8, Loop: true},
	}
}

// AnimationSystem is the animator state machine: it picks a clip from the
// parameters the motion controller reports and advances its frames.
type AnimationSystem struct {
	dt float64
}

func NewAnimationSystem(dt float64) *AnimationSystem {
	return &AnimationSystem{dt: dt}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.AnimatorParamsComponent.Kind(), func(e ecs.Entity, anim *component.Animation, params *component.AnimatorParams) {
		if next := SelectClip(params); next != anim.Current {
			anim.Current = next
			anim.Frame = 0
			anim.FrameTimer = 0
			anim.Playing = true
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 || def.FPS <= 0 || !anim.Playing {
			return
		}

		anim.FrameTimer += a.dt
		frameTime := 1 / def.FPS
		for anim.FrameTimer >= frameTime {
			anim.FrameTimer -= frameTime
			anim.Frame++
			if anim.Frame < def.FrameCount {
				continue
			}
			if def.Loop {
				anim.Frame = 0
				continue
			}
			anim.Frame = def.FrameCount - 1
			anim.Playing = false
			break
		}
	})
}

// SelectClip maps animator parameters to a clip name.
func SelectClip(params *component.AnimatorParams) string {
	speed := params.Floats[motion.ParamSpeed]
	switch {
	case !params.Bools[motion.ParamGround]:
		if params.Floats[motion.ParamVSpeed] > 0 {
			return ClipJump
		}
		return ClipFall
	case params.Bools[motion.ParamCrouch]:
		if speed > runThreshold {
			return ClipCrouchWalk
		}
		return ClipCrouch
	case speed > runThreshold:
		return ClipRun
	default:
		return ClipIdle
	}
}
