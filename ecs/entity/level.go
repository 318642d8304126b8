package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// LoadArenaToWorld creates a static solid entity per arena box and spawns the
// character. It returns the character entity.
func LoadArenaToWorld(w *ecs.World, arena *prefabs.ArenaSpec) (ecs.Entity, error) {
	if arena == nil {
		return 0, fmt.Errorf("load arena: spec is nil")
	}
	for _, s := range arena.Solids {
		if _, err := NewSolid(w, s); err != nil {
			return 0, fmt.Errorf("load arena %q: solid %q: %w", arena.Name, s.Name, err)
		}
	}
	character, err := NewCharacterAt(w, arena.Spawn.Prefab, arena.Spawn.X, arena.Spawn.Y)
	if err != nil {
		return 0, fmt.Errorf("load arena %q: %w", arena.Name, err)
	}
	return character, nil
}

func NewSolid(w *ecs.World, s prefabs.SolidSpec) (ecs.Entity, error) {
	return BuildEntityFromSpec(w, "solid:"+s.Name, prefabs.EntityBuildSpec{
		Name: s.Name,
		Components: map[string]any{
			"solid_tag": nil,
			"transform": map[string]any{"x": s.X, "y": s.Y},
			"physics_body": map[string]any{
				"width":    s.Width,
				"height":   s.Height,
				"friction": s.Friction,
				"static":   true,
			},
			"collision_layer": map[string]any{"category": component.LayerGround},
		},
	})
}
