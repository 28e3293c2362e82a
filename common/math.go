package common

const (
	// TileSize is the side length of one level tile in world units.
	TileSize = 32

	BaseWidth  = 1280
	BaseHeight = 720

	// Gravity is the downward acceleration applied by the physics space.
	// Screen coordinates grow downward, so this is positive.
	Gravity = 1800.0

	// TickSeconds is the fixed simulation step driven by the game loop.
	TickSeconds = 1.0 / 60.0
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }
