package tile

import "github.com/younwookim/zgame/internal/domain/physics"

// Hitbox computes how a moving rectangle is pushed out of a tile.
// cur is the rectangle after movement, prev the rectangle before it.
type Hitbox interface {
	Collide(cur, prev, tile physics.Rect) physics.Response
}

// NoHitbox never collides
type NoHitbox struct{}

func (NoHitbox) Collide(cur, _, _ physics.Rect) physics.Response {
	return physics.NoCollision(cur)
}

// FullHitbox fills the whole tile.
// The previous rectangle picks the axis the object came in on; when that is
// ambiguous the shallower penetration wins and equal penetration resolves
// vertically.
type FullHitbox struct{}

func (FullHitbox) Collide(cur, prev, tile physics.Rect) physics.Response {
	ox := cur.OverlapX(tile)
	oy := cur.OverlapY(tile)
	if ox <= 0 || oy <= 0 {
		return physics.NoCollision(cur)
	}

	hx, hSide := horizontalPush(cur, prev, tile)
	vy, vSide := verticalPush(cur, prev, tile)

	prevApartX := prev.OverlapX(tile) <= 0
	prevApartY := prev.OverlapY(tile) <= 0

	var horizontal bool
	switch {
	case prevApartX && !prevApartY:
		horizontal = true
	case prevApartY && !prevApartX:
		horizontal = false
	default:
		horizontal = abs(hx-cur.X) < abs(vy-cur.Y)
	}

	if horizontal {
		return physics.Response{Collided: true, X: hx, Y: cur.Y, Touched: hSide}
	}
	return physics.Response{Collided: true, X: cur.X, Y: vy, Touched: vSide}
}

// horizontalPush returns the corrected X and the side of the object that hit.
// Travel direction decides; without horizontal travel the shorter push wins.
func horizontalPush(cur, prev, tile physics.Rect) (float64, physics.Side) {
	toLeft := tile.Left() - cur.W // object's right side against the tile
	toRight := tile.Right()       // object's left side against the tile

	dx := cur.X - prev.X
	switch {
	case dx > 0:
		return toLeft, physics.SideRight
	case dx < 0:
		return toRight, physics.SideLeft
	case cur.X-toLeft <= toRight-cur.X:
		return toLeft, physics.SideRight
	default:
		return toRight, physics.SideLeft
	}
}

// verticalPush returns the corrected Y and the side of the object that hit
func verticalPush(cur, prev, tile physics.Rect) (float64, physics.Side) {
	toTop := tile.Top() - cur.H // landing on the tile
	toBottom := tile.Bottom()   // head against the tile

	dy := cur.Y - prev.Y
	switch {
	case dy > 0:
		return toTop, physics.SideBottom
	case dy < 0:
		return toBottom, physics.SideTop
	case cur.Y-toTop <= toBottom-cur.Y:
		return toTop, physics.SideBottom
	default:
		return toBottom, physics.SideTop
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
