package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const stickDeadzone = 0.2

// InputSnapshot is the raw device state sampled for one frame.
type InputSnapshot struct {
	MoveX        float64
	Crouch       bool
	JumpHeld     bool
	JumpJustDown bool
}

// InputSystem samples keyboard and gamepad and latches the result into every
// MotionInput. A press survives until the motion system consumes it, so a
// press between two physics steps is never lost.
type InputSystem struct {
	sample func() InputSnapshot
}

func NewInputSystem() *InputSystem {
	return &InputSystem{sample: sampleDevices}
}

// NewScriptedInputSystem replays snapshots from next instead of reading devices.
func NewScriptedInputSystem(next func() InputSnapshot) *InputSystem {
	return &InputSystem{sample: next}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.sample == nil {
		return
	}
	snap := i.sample()

	ecs.ForEach(w, component.MotionInputComponent.Kind(), func(e ecs.Entity, input *component.MotionInput) {
		Latch(input, snap)
	})
}

// Latch folds one snapshot into a MotionInput.
func Latch(input *component.MotionInput, snap InputSnapshot) {
	input.MoveX = math.Max(-1, math.Min(1, snap.MoveX))
	input.Crouch = snap.Crouch
	if snap.JumpJustDown {
		input.JumpPressed = true
		input.Winding = true
	}
	if !snap.JumpHeld {
		input.Winding = false
	}
}

func sampleDevices() InputSnapshot {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	snap := InputSnapshot{
		Crouch:       ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyControlLeft),
		JumpHeld:     ebiten.IsKeyPressed(ebiten.KeySpace),
		JumpJustDown: inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
	if left {
		snap.MoveX -= 1
	}
	if right {
		snap.MoveX += 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			snap.MoveX = leftX
		}
		leftY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		snap.Crouch = snap.Crouch || leftY > 0.5 || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)
		snap.JumpHeld = snap.JumpHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		snap.JumpJustDown = snap.JumpJustDown || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return snap
}
