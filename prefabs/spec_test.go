package prefabs

import (
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/platformer/motion"
)

func TestCharacterPrefabMatchesDefaults(t *testing.T) {
	cfg, err := LoadCharacterConfig("character.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != motion.DefaultConfig() {
		t.Fatalf("character.yaml drifted from motion.DefaultConfig:\n got %+v\nwant %+v", cfg, motion.DefaultConfig())
	}
}

func TestCharacterMotionSpecOverlay(t *testing.T) {
	cases := []struct {
		name    string
		yaml    map[string]any
		check   func(motion.Config) bool
		wantErr string
	}{
		{
			name:  "empty_keeps_defaults",
			yaml:  map[string]any{},
			check: func(c motion.Config) bool { return c == motion.DefaultConfig() },
		},
		{
			name: "overrides",
			yaml: map[string]any{
				"max_speed":   12.5,
				"air_control": false,
				"max_midairs": 2,
				"probes":      map[string]any{"ground": map[string]any{"x": 0, "y": -1.2}},
			},
			check: func(c motion.Config) bool {
				return c.MaxSpeed == 12.5 && !c.AirControl && c.MaxMidairs == 2 &&
					c.Probes.Ground == motion.Point{X: 0, Y: -1.2} &&
					c.Probes.Ceiling == motion.DefaultConfig().Probes.Ceiling
			},
		},
		{
			name:    "invalid",
			yaml:    map[string]any{"max_windup_time": -1},
			wantErr: "MaxWindupTime",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := DecodeComponentSpec[CharacterMotionComponentSpec](c.yaml)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			cfg, err := spec.ToConfig()
			if c.wantErr != "" {
				if !errors.Is(err, motion.ErrInvalidConfig) || !strings.Contains(err.Error(), c.wantErr) {
					t.Fatalf("err = %v, want invalid config naming %s", err, c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToConfig: %v", err)
			}
			if !c.check(cfg) {
				t.Fatalf("unexpected config %+v", cfg)
			}
		})
	}
}

func TestLoadArenaSpec(t *testing.T) {
	arena, err := LoadArenaSpec("arena.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if arena.Spawn.Prefab != "character.yaml" || len(arena.Solids) == 0 {
		t.Fatalf("unexpected arena %+v", arena)
	}
	names := map[string]bool{}
	for _, s := range arena.Solids {
		names[s.Name] = true
	}
	for _, want := range []string{"floor", "left_wall", "tunnel_roof"} {
		if !names[want] {
			t.Fatalf("arena is missing %q", want)
		}
	}
}

func TestLoadMissingPrefab(t *testing.T) {
	if _, err := LoadSpec[ArenaSpec]("nope.yaml"); err == nil || !strings.Contains(err.Error(), "prefabs: load nope.yaml") {
		t.Fatalf("err = %v", err)
	}
}

func TestName(t *testing.T) {
	cases := map[string]string{
		"prefabs/character.yaml":    "character.yaml",
		"/tmp/x/prefabs/arena.yaml": "arena.yaml",
		"character.yaml":            "character.yaml",
	}
	for in, want := range cases {
		if got := Name(in); got != want {
			t.Fatalf("Name(%q) = %q, want %q", in, got, want)
		}
	}
}
