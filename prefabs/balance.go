package prefabs

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Balance holds the tuning multipliers produced by the balance script for a
// given difficulty. Neutral values are 1.0.
type Balance struct {
	EnemyHealthScale  float64
	EnemySpeedScale   float64
	WeaponDamageScale float64
	ScoreMultiplier   float64
}

func defaultBalance() Balance {
	return Balance{
		EnemyHealthScale:  1,
		EnemySpeedScale:   1,
		WeaponDamageScale: 1,
		ScoreMultiplier:   1,
	}
}

// BalanceScript is a compiled tengo tuning script. The script receives a
// `difficulty` float and sets the scale variables read back by Eval.
type BalanceScript struct {
	compiled *tengo.Compiled
}

// LoadBalanceScript compiles scripts/balance.tengo.
func LoadBalanceScript() (*BalanceScript, error) {
	src, err := LoadScript("balance.tengo")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load balance script: %w", err)
	}

	script := tengo.NewScript(src)
	if err := script.Add("difficulty", 0.0); err != nil {
		return nil, fmt.Errorf("prefabs: add difficulty: %w", err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile balance script: %w", err)
	}
	return &BalanceScript{compiled: compiled}, nil
}

// Eval runs the script for a difficulty level. Variables the script leaves
// unset keep their neutral value.
func (b *BalanceScript) Eval(difficulty float64) (Balance, error) {
	out := defaultBalance()
	if b == nil || b.compiled == nil {
		return out, fmt.Errorf("prefabs: balance script not loaded")
	}

	c := b.compiled.Clone()
	if err := c.Set("difficulty", difficulty); err != nil {
		return out, fmt.Errorf("prefabs: set difficulty: %w", err)
	}
	if err := c.Run(); err != nil {
		return out, fmt.Errorf("prefabs: run balance script: %w", err)
	}

	read := func(name string, dst *float64) {
		if c.IsDefined(name) {
			*dst = c.Get(name).Float()
		}
	}
	read("enemy_health_scale", &out.EnemyHealthScale)
	read("enemy_speed_scale", &out.EnemySpeedScale)
	read("weapon_damage_scale", &out.WeaponDamageScale)
	read("score_multiplier", &out.ScoreMultiplier)
	return out, nil
}
