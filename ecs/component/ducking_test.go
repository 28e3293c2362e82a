package component

import "testing"

func TestDuckingInterpolatesHeight(t *testing.T) {
	d := NewDucking(48, 24, 0.12)

	if !d.Set(true) {
		t.Fatal("duck request must change state")
	}
	if d.CurrentHeight != 48 {
		t.Fatalf("height must interpolate, not snap: %v", d.CurrentHeight)
	}

	// 0.06s of ticks reaches roughly halfway.
	for i := 0; i < 4; i++ {
		d.Tick(15.0/1000, true)
	}
	if d.CurrentHeight <= 24 || d.CurrentHeight >= 48 {
		t.Fatalf("mid-duck height=%v, want between 24 and 48", d.CurrentHeight)
	}
	if d.FullyDucked() {
		t.Fatal("not fully ducked mid-interpolation")
	}

	for i := 0; i < 8; i++ {
		d.Tick(15.0/1000, true)
	}
	if d.CurrentHeight != 24 {
		t.Fatalf("settled height=%v, want 24", d.CurrentHeight)
	}
	if !d.FullyDucked() {
		t.Fatal("must report fully ducked after settling")
	}
}

func TestDuckingSetIsIdempotent(t *testing.T) {
	d := NewDucking(48, 24, 0.12)
	d.Set(true)
	for i := 0; i < 3; i++ {
		d.Tick(1.0/60, true)
	}
	mid := d.CurrentHeight

	if d.Set(true) {
		t.Fatal("re-requesting duck must not restart the interpolation")
	}
	if d.CurrentHeight != mid {
		t.Fatalf("height changed on redundant request: %v", d.CurrentHeight)
	}
}

func TestDuckingAirborneStandsUp(t *testing.T) {
	d := NewDucking(48, 24, 0.12)
	d.Set(true)
	for i := 0; i < 20; i++ {
		d.Tick(1.0/60, true)
	}
	if !d.FullyDucked() {
		t.Fatal("setup: must be fully ducked")
	}

	// Leaving the ground forces upright even with duck held.
	d.Tick(1.0/60, false)
	if d.Ducking {
		t.Fatal("airborne actor must stand up")
	}
	for i := 0; i < 20; i++ {
		d.Tick(1.0/60, false)
	}
	if d.CurrentHeight != 48 {
		t.Fatalf("height=%v after airborne stand-up, want 48", d.CurrentHeight)
	}
}

func TestDuckingGapFit(t *testing.T) {
	d := NewDucking(48, 24, 0.12)
	if d.CanFitThroughGap(32) {
		t.Fatal("upright actor must not fit a 32 gap")
	}
	d.Set(true)
	for i := 0; i < 20; i++ {
		d.Tick(1.0/60, true)
	}
	if !d.CanFitThroughGap(32) {
		t.Fatal("ducked actor must fit a 32 gap")
	}
	if !d.CanFitThroughGap(24) {
		t.Fatal("boundary gap equal to duck height must fit")
	}
	if d.CanFitThroughGap(23) {
		t.Fatal("gap below duck height must not fit")
	}
}

func TestDuckingZeroDurationSnaps(t *testing.T) {
	d := NewDucking(48, 24, 0)
	d.Set(true)
	if d.CurrentHeight != 24 {
		t.Fatalf("zero duration must snap, height=%v", d.CurrentHeight)
	}
}
