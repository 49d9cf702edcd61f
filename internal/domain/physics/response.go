package physics

// Side is a bit set of the sides of a moving object that touched something
type Side uint8

const (
	SideLeft   Side = 1 << iota // wall on the left
	SideRight                   // wall on the right
	SideTop                     // ceiling
	SideBottom                  // floor

	SideNone Side = 0
)

// Has reports whether all sides in s2 are set
func (s Side) Has(s2 Side) bool {
	return s&s2 == s2 && s2 != SideNone
}

// Wall reports whether a left or right side is set
func (s Side) Wall() bool {
	return s&(SideLeft|SideRight) != 0
}

func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	}
	out := ""
	for _, sd := range []Side{SideLeft, SideRight, SideTop, SideBottom} {
		if s&sd != 0 {
			if out != "" {
				out += "|"
			}
			out += sd.String()
		}
	}
	return out
}

// Response is the result of resolving one moving rectangle against one obstacle
type Response struct {
	Collided bool
	X, Y     float64 // corrected top-left position
	Touched  Side
}

// NoCollision returns a response that leaves r where it is
func NoCollision(r Rect) Response {
	return Response{X: r.X, Y: r.Y}
}

// Bounce reflects the velocity component that drove into the touched sides,
// scaled by the matching bounce ratio of m. Untouched axes are unchanged.
func Bounce(v Vector, touched Side, m Material) Vector {
	vx, vy := v.X(), v.Y()
	if touched.Has(SideRight) && vx > 0 || touched.Has(SideLeft) && vx < 0 {
		vx = -vx * m.WallBounce()
	}
	if touched.Has(SideBottom) && vy > 0 {
		vy = -vy * m.FloorBounce()
	}
	if touched.Has(SideTop) && vy < 0 {
		vy = -vy * m.CeilingBounce()
	}
	return NewVector(vx, vy)
}
