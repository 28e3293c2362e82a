package prefabs

import "testing"

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if spec.MoveSpeed <= 0 || spec.JumpSpeed <= 0 {
		t.Fatalf("speeds must be positive: %+v", spec)
	}
	if spec.MaxJumps < 2 {
		t.Fatalf("max_jumps=%d, double jump expected", spec.MaxJumps)
	}
	if spec.DuckHeight <= 0 || spec.DuckHeight >= spec.Collider.Height {
		t.Fatalf("duck_height=%v must sit below collider height %v", spec.DuckHeight, spec.Collider.Height)
	}
	if spec.Color == nil {
		t.Fatal("player color must parse")
	}
}

func TestLoadWeaponsSpec(t *testing.T) {
	spec, err := LoadWeaponsSpec()
	if err != nil {
		t.Fatalf("LoadWeaponsSpec: %v", err)
	}
	if len(spec.Weapons) < 4 {
		t.Fatalf("weapons=%d, want at least 4", len(spec.Weapons))
	}

	kinds := map[string]WeaponSpec{}
	anyUnlocked := false
	for _, w := range spec.Weapons {
		kinds[w.Kind] = w
		anyUnlocked = anyUnlocked || w.Unlocked
		if w.MaxAmmo <= 0 || w.FireRate <= 0 || w.ReloadSeconds <= 0 {
			t.Fatalf("weapon %s has non-positive tuning: %+v", w.Kind, w)
		}
	}
	if !anyUnlocked {
		t.Fatal("at least one weapon must start unlocked")
	}

	shotgun, ok := kinds["shotgun"]
	if !ok {
		t.Fatal("shotgun missing")
	}
	if shotgun.PelletCount <= 1 || shotgun.SpreadDegrees <= 0 {
		t.Fatalf("shotgun must fan pellets: %+v", shotgun)
	}
}

func TestLoadEnemiesSpec(t *testing.T) {
	spec, err := LoadEnemiesSpec()
	if err != nil {
		t.Fatalf("LoadEnemiesSpec: %v", err)
	}
	if len(spec.Enemies) == 0 {
		t.Fatal("no enemies defined")
	}
	for name, e := range spec.Enemies {
		if e.Health <= 0 || e.MoveSpeed <= 0 {
			t.Fatalf("enemy %s has non-positive tuning: %+v", name, e)
		}
		if e.AttackRange > e.DetectionRange {
			t.Fatalf("enemy %s attack range exceeds detection range", name)
		}
		if e.Ranged && e.FireCooldown <= 0 {
			t.Fatalf("ranged enemy %s needs a fire cooldown", name)
		}
	}
}

func TestLoadCameraSpec(t *testing.T) {
	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("LoadCameraSpec: %v", err)
	}
	if spec.Smoothness < 0 || spec.Smoothness > 1 {
		t.Fatalf("smoothness=%v out of range", spec.Smoothness)
	}
}

func TestYAMLColorParsing(t *testing.T) {
	type holder struct {
		Color *YAMLColor `yaml:"color"`
	}

	spec, err := LoadSpec[holder]("player.yaml")
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	if spec.Color == nil {
		t.Fatal("color field must parse")
	}
	if spec.Color.A != 0xff {
		t.Fatalf("six-digit color must be opaque, a=%d", spec.Color.A)
	}
}
