package prefabs

import (
	"fmt"

	"github.com/milk9111/platformer/motion"
	"gopkg.in/yaml.v3"
)

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes one loosely typed component block into T.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

type PhysicsBodyComponentSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	OffsetX  float64 `yaml:"offset_x"`
	OffsetY  float64 `yaml:"offset_y"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
	Static   bool    `yaml:"static"`
}

func (s PhysicsBodyComponentSpec) Collider() motion.Collider {
	return motion.Collider{Width: s.Width, Height: s.Height, OffsetX: s.OffsetX, OffsetY: s.OffsetY}
}

type CollisionLayerComponentSpec struct {
	Category uint `yaml:"category"`
	Mask     uint `yaml:"mask"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p PointSpec) point() motion.Point {
	return motion.Point{X: p.X, Y: p.Y}
}

type ProbesSpec struct {
	Ground    *PointSpec `yaml:"ground"`
	Ceiling   *PointSpec `yaml:"ceiling"`
	BackWall  *PointSpec `yaml:"back_wall"`
	FrontWall *PointSpec `yaml:"front_wall"`
}

// CharacterMotionComponentSpec mirrors motion.Config. Absent keys keep the
// value from motion.DefaultConfig.
type CharacterMotionComponentSpec struct {
	MaxSpeed                       *float64   `yaml:"max_speed"`
	JumpForce                      *float64   `yaml:"jump_force"`
	MidairJumpForce                *float64   `yaml:"midair_jump_force"`
	WallJumpForce                  *float64   `yaml:"wall_jump_force"`
	WallJumpHorizontalForce        *float64   `yaml:"wall_jump_horizontal_force"`
	WallJumpTotalTime              *float64   `yaml:"wall_jump_total_time"`
	WallJumpUncontrollableFraction *float64   `yaml:"wall_jump_uncontrollable_fraction"`
	CrouchSpeed                    *float64   `yaml:"crouch_speed"`
	AirControl                     *bool      `yaml:"air_control"`
	MaxMidairs                     *int       `yaml:"max_midairs"`
	MaxWindupTime                  *float64   `yaml:"max_windup_time"`
	MaxWindupMultiplier            *float64   `yaml:"max_windup_multiplier"`
	WindupMaxEmission              *float64   `yaml:"windup_max_emission"`
	GroundedRadius                 *float64   `yaml:"grounded_radius"`
	CeilingRadius                  *float64   `yaml:"ceiling_radius"`
	WallCheckRadius                *float64   `yaml:"wall_check_radius"`
	GroundMask                     *uint      `yaml:"ground_mask"`
	Probes                         ProbesSpec `yaml:"probes"`
}

// ToConfig overlays the spec on motion.DefaultConfig and validates the result.
func (s CharacterMotionComponentSpec) ToConfig() (motion.Config, error) {
	cfg := motion.DefaultConfig()
	setFloat(&cfg.MaxSpeed, s.MaxSpeed)
	setFloat(&cfg.JumpForce, s.JumpForce)
	setFloat(&cfg.MidairJumpForce, s.MidairJumpForce)
	setFloat(&cfg.WallJumpForce, s.WallJumpForce)
	setFloat(&cfg.WallJumpHorizontalForce, s.WallJumpHorizontalForce)
	setFloat(&cfg.WallJumpTotalTime, s.WallJumpTotalTime)
	setFloat(&cfg.WallJumpUncontrollableFraction, s.WallJumpUncontrollableFraction)
	setFloat(&cfg.CrouchSpeed, s.CrouchSpeed)
	setFloat(&cfg.MaxWindupTime, s.MaxWindupTime)
	setFloat(&cfg.MaxWindupMultiplier, s.MaxWindupMultiplier)
	setFloat(&cfg.WindupMaxEmission, s.WindupMaxEmission)
	setFloat(&cfg.GroundedRadius, s.GroundedRadius)
	setFloat(&cfg.CeilingRadius, s.CeilingRadius)
	setFloat(&cfg.WallCheckRadius, s.WallCheckRadius)
	if s.AirControl != nil {
		cfg.AirControl = *s.AirControl
	}
	if s.MaxMidairs != nil {
		cfg.MaxMidairs = *s.MaxMidairs
	}
	if s.GroundMask != nil {
		cfg.GroundMask = *s.GroundMask
	}
	setPoint(&cfg.Probes.Ground, s.Probes.Ground)
	setPoint(&cfg.Probes.Ceiling, s.Probes.Ceiling)
	setPoint(&cfg.Probes.BackWall, s.Probes.BackWall)
	setPoint(&cfg.Probes.FrontWall, s.Probes.FrontWall)

	if err := cfg.Validate(); err != nil {
		return motion.Config{}, fmt.Errorf("prefabs: character motion: %w", err)
	}
	return cfg, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setPoint(dst *motion.Point, v *PointSpec) {
	if v != nil {
		*dst = v.point()
	}
}

type AnimationComponentSpec struct {
	Current string                   `yaml:"current"`
	Defs    map[string]AnimationSpec `yaml:"defs"`
}

type AnimationSpec struct {
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type ParticleEmitterComponentSpec struct {
	BurstCount int     `yaml:"burst_count"`
	Lifetime   float64 `yaml:"lifetime"`
	Speed      float64 `yaml:"speed"`
}

// LoadCharacterConfig reads only the motion tuning of a character prefab. Hot
// reload uses it to swap tuning without rebuilding the entity.
func LoadCharacterConfig(filename string) (motion.Config, error) {
	spec, err := LoadEntityBuildSpec(filename)
	if err != nil {
		return motion.Config{}, err
	}
	raw, ok := spec.Components["character_motion"]
	if !ok {
		return motion.Config{}, fmt.Errorf("prefabs: %s has no character_motion component", filename)
	}
	ms, err := DecodeComponentSpec[CharacterMotionComponentSpec](raw)
	if err != nil {
		return motion.Config{}, fmt.Errorf("prefabs: decode %s character_motion: %w", filename, err)
	}
	return ms.ToConfig()
}
