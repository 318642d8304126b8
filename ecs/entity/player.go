package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
)

const CharacterPrefab = "character.yaml"

func NewCharacter(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, CharacterPrefab)
}

func NewCharacterAt(w *ecs.World, prefab string, x, y float64) (ecs.Entity, error) {
	if prefab == "" {
		prefab = CharacterPrefab
	}
	entity, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y); err != nil {
		return 0, fmt.Errorf("character: override transform: %w", err)
	}
	return entity, nil
}
