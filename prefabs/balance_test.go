package prefabs

import "testing"

func TestBalanceScriptEval(t *testing.T) {
	script, err := LoadBalanceScript()
	if err != nil {
		t.Fatalf("LoadBalanceScript: %v", err)
	}

	cases := []struct {
		name       string
		difficulty float64
	}{
		{"easiest", 0},
		{"default", 1},
		{"hard", 2},
		{"clamped_negative", -3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := script.Eval(c.difficulty)
			if err != nil {
				t.Fatalf("Eval(%v): %v", c.difficulty, err)
			}
			if b.EnemyHealthScale <= 0 || b.EnemySpeedScale <= 0 {
				t.Fatalf("enemy scales must stay positive: %+v", b)
			}
			if b.WeaponDamageScale <= 0 {
				t.Fatalf("weapon damage scale must stay positive: %+v", b)
			}
			if b.ScoreMultiplier < 0.5 {
				t.Fatalf("score multiplier floor is 0.5: %+v", b)
			}
		})
	}
}

func TestBalanceScriptScalesWithDifficulty(t *testing.T) {
	script, err := LoadBalanceScript()
	if err != nil {
		t.Fatalf("LoadBalanceScript: %v", err)
	}

	easy, err := script.Eval(0)
	if err != nil {
		t.Fatal(err)
	}
	hard, err := script.Eval(2)
	if err != nil {
		t.Fatal(err)
	}

	if hard.EnemyHealthScale <= easy.EnemyHealthScale {
		t.Fatal("enemy health must grow with difficulty")
	}
	if hard.WeaponDamageScale >= easy.WeaponDamageScale {
		t.Fatal("weapon damage must shrink with difficulty")
	}
	if hard.ScoreMultiplier <= easy.ScoreMultiplier {
		t.Fatal("score multiplier must grow with difficulty")
	}
}
