package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads and unmarshals a yaml prefab into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name          string       `yaml:"name"`
	MoveSpeed     float64      `yaml:"move_speed"`
	JumpSpeed     float64      `yaml:"jump_speed"`
	MaxJumps      int          `yaml:"max_jumps"`
	Health        float64      `yaml:"health"`
	InvincibleFor float64      `yaml:"invincible_for"`
	GroundProbe   float64      `yaml:"ground_probe"`
	DuckHeight    float64      `yaml:"duck_height"`
	DuckSeconds   float64      `yaml:"duck_seconds"`
	DuckSpeedMult float64      `yaml:"duck_speed_mult"`
	Collider      ColliderSpec `yaml:"collider"`
	Color         *YAMLColor   `yaml:"color"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type WeaponSpec struct {
	Kind            string  `yaml:"kind"`
	Name            string  `yaml:"name"`
	MaxAmmo         int     `yaml:"max_ammo"`
	FireRate        float64 `yaml:"fire_rate"`
	ReloadSeconds   float64 `yaml:"reload_seconds"`
	Damage          float64 `yaml:"damage"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	LifeSeconds     float64 `yaml:"life_seconds"`
	Automatic       bool    `yaml:"automatic"`
	PelletCount     int     `yaml:"pellet_count"`
	SpreadDegrees   float64 `yaml:"spread_degrees"`
	Unlocked        bool    `yaml:"unlocked"`
}

type WeaponsSpec struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

func LoadWeaponsSpec() (*WeaponsSpec, error) {
	spec, err := LoadSpec[WeaponsSpec]("weapons.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name            string       `yaml:"name"`
	Health          float64      `yaml:"health"`
	MoveSpeed       float64      `yaml:"move_speed"`
	DetectionRange  float64      `yaml:"detection_range"`
	AttackRange     float64      `yaml:"attack_range"`
	PatrolDistance  float64      `yaml:"patrol_distance"`
	WaitSeconds     float64      `yaml:"wait_seconds"`
	Ranged          bool         `yaml:"ranged"`
	FireCooldown    float64      `yaml:"fire_cooldown"`
	ProjectileSpeed float64      `yaml:"projectile_speed"`
	Damage          float64      `yaml:"damage"`
	DeathDelay      float64      `yaml:"death_delay"`
	ScoreValue      int          `yaml:"score_value"`
	Collider        ColliderSpec `yaml:"collider"`
	Color           *YAMLColor   `yaml:"color"`
}

type EnemiesSpec struct {
	Enemies map[string]EnemySpec `yaml:"enemies"`
}

func LoadEnemiesSpec() (*EnemiesSpec, error) {
	spec, err := LoadSpec[EnemiesSpec]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Smoothness float64 `yaml:"smoothness"`
	Zoom       float64 `yaml:"zoom"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.NRGBA = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
