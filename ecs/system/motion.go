package system

import (
	"fmt"
	"log"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
)

// MotionSystem ticks every character controller once per physics step, before
// the space is stepped, and consumes the latched jump press.
type MotionSystem struct {
	physics *PhysicsSystem
}

func NewMotionSystem(physics *PhysicsSystem) *MotionSystem {
	return &MotionSystem{physics: physics}
}

func (m *MotionSystem) Update(w *ecs.World) {
	if m == nil || m.physics == nil || w == nil {
		return
	}

	dt := m.physics.Dt()
	ecs.ForEach3(w,
		component.CharacterMotionComponent.Kind(),
		component.MotionInputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, cm *component.CharacterMotion, in *component.MotionInput, body *component.PhysicsBody) {
			if body.Body == nil {
				return
			}
			if cm.Controller == nil {
				ctrl, err := m.bind(w, e, cm, body)
				if err != nil {
					log.Printf("MotionSystem: entity %v: %v", e, err)
					return
				}
				cm.Controller = ctrl
			}

			cm.State = cm.Controller.Tick(cm.State, motion.Input{
				Move:    in.MoveX,
				Crouch:  in.Crouch,
				Jump:    in.JumpPressed,
				Winding: in.Winding,
				Elapsed: dt,
			})
			in.JumpPressed = false
		})
}

// bind builds a controller over the entity's body and optional sinks. The
// spawn collider is always the standing one.
func (m *MotionSystem) bind(w *ecs.World, e ecs.Entity, cm *component.CharacterMotion, body *component.PhysicsBody) (*motion.Controller, error) {
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("transform: %w", component.ErrNilComponent)
	}
	layer := component.CollisionLayer{}
	if l, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
		layer = *l
	}

	ports := motion.Ports{
		Physics: spaceQuery{space: m.physics.Space()},
		Body: &characterBody{
			physics:   m.physics,
			body:      body,
			layer:     layer,
			transform: transform,
		},
	}
	if params, ok := ecs.Get(w, e, component.AnimatorParamsComponent.Kind()); ok {
		ports.Animation = params
	}
	if emitter, ok := ecs.Get(w, e, component.ParticleEmitterComponent.Kind()); ok {
		ports.Effects = emitter
	}

	if cm.Standing == (motion.Collider{}) {
		cm.Standing = body.Collider
	}
	return motion.NewController(cm.Config, cm.Standing, ports)
}
