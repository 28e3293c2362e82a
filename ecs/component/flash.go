package component

// WhiteFlash blinks an entity's sprite for Frames ticks, toggling every
// Interval ticks. Used for hit feedback and invincibility windows.
type WhiteFlash struct {
	Frames   int
	Interval int
	Timer    int
	On       bool
}

// Start restarts the blink with the standard hit-feedback timing.
func (f *WhiteFlash) Start() {
	if f == nil {
		return
	}
	f.Frames = 18
	f.Interval = 3
	f.Timer = 0
	f.On = true
}

// Tick advances the flash by one frame and reports whether it is finished.
func (f *WhiteFlash) Tick() bool {
	if f == nil || f.Frames <= 0 {
		return true
	}
	f.Frames--
	f.Timer++
	interval := f.Interval
	if interval <= 0 {
		interval = 5
	}
	if f.Timer >= interval {
		f.Timer = 0
		f.On = !f.On
	}
	return f.Frames <= 0
}
