package system

import (
	"math"

	"github.com/younwookim/zgame/internal/domain/entity"
	"github.com/younwookim/zgame/internal/domain/physics"
	"github.com/younwookim/zgame/internal/domain/stat"
	"github.com/younwookim/zgame/internal/domain/tile"
	"github.com/younwookim/zgame/internal/ecs"
	"github.com/younwookim/zgame/internal/infrastructure/config"
)

// PhysicsSystem moves mobs through a room: walking and jumping driven by
// stats, gravity, collision resolution, bounce and touch events
type PhysicsSystem struct {
	config *config.PhysicsConfig
	room   *tile.Room
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, room *tile.Room) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		room:   room,
	}
}

// Update steps every mob in the world by dt seconds
func (s *PhysicsSystem) Update(w *ecs.World, dt float64) {
	w.EachMob(func(m *entity.Mob) {
		s.UpdateMob(m, dt)
	})
	w.SyncBroadphase()
}

// UpdateMob steps one mob by dt seconds
func (s *PhysicsSystem) UpdateMob(m *entity.Mob, dt float64) {
	vx := s.walk(m, dt)
	vy := s.jump(m, m.Velocity.Y())
	vy = s.applyGravity(vy, dt)
	m.Velocity = physics.NewVector(vx, vy)

	cur := m.Step(dt)
	res := s.room.Resolve(cur, m.Prev)
	m.Rect = res.Rect

	m.Velocity = s.bounce(m, res)

	// Sides pressed this tick plus sides already resting against a surface
	sides, floor := s.room.Touching(m.Rect)
	sides |= res.Touched
	if res.Touched.Has(physics.SideBottom) {
		floor = res.Floor
	}
	if sides.Has(physics.SideBottom) {
		m.Floor = floor
	}
	touched, left := m.SetTouching(sides)
	for _, side := range []physics.Side{physics.SideLeft, physics.SideRight, physics.SideTop, physics.SideBottom} {
		if touched.Has(side) {
			m.OnTouch(side, s.surface(side, res, floor))
		}
		if left.Has(side) {
			m.OnLeave(side)
		}
	}

	m.Controls.JumpReleased = false
}

// walk returns the new horizontal velocity. Top speed is the moveSpeed stat
// scaled by the ground's slip speed; acceleration is scaled by slip accel
// and braking by friction.
func (s *PhysicsSystem) walk(m *entity.Mob, dt float64) float64 {
	vx := m.Velocity.X()
	mat := m.Effective()
	mv := s.config.Movement

	target := float64(m.Controls.WalkDir) * m.Stats().Value(stat.MoveSpeed)
	accel := mv.Acceleration
	if m.OnGround() {
		target *= mat.SlipSpeed()
		accel *= mat.SlipAccel()
	} else {
		target *= mv.AirControl
	}

	if target != 0 {
		if vx*target < 0 && mv.TurnaroundBoost > 0 {
			accel *= mv.TurnaroundBoost
		}
		return approach(vx, target, accel*dt)
	}

	decel := mv.Deceleration
	if m.OnGround() {
		decel *= mat.Friction()
	} else {
		decel *= mv.AirControl
	}
	return approach(vx, 0, decel*dt)
}

// jump starts a pending jump when the mob has one left and cuts a rising
// jump short when the button was released
func (s *PhysicsSystem) jump(m *entity.Mob, vy float64) float64 {
	c := &m.Controls
	if c.JumpBuffer > 0 && m.TryJump() {
		c.JumpBuffer = 0
		if cost := s.config.Jump.StaminaCost; cost > 0 {
			m.Stats().AddCurrent(stat.Stamina, -cost)
		}
		return -m.Stats().Value(stat.JumpPower)
	}
	if c.JumpReleased && vy < 0 && s.config.Jump.VariableJumpMultiplier > 0 {
		return vy * s.config.Jump.VariableJumpMultiplier
	}
	return vy
}

// applyGravity accelerates downward, clamped to the max fall speed
func (s *PhysicsSystem) applyGravity(vy, dt float64) float64 {
	vy += s.config.Physics.Gravity * dt
	if limit := s.config.Physics.MaxFallSpeed; limit > 0 && vy > limit {
		vy = limit
	}
	return vy
}

// bounce reflects or stops velocity on every side hit this tick, using the
// surface of that side combined with the mob's own material
func (s *PhysicsSystem) bounce(m *entity.Mob, res tile.Result) physics.Vector {
	v := m.Velocity
	if t := res.Touched & physics.SideBottom; t != 0 {
		v = physics.Bounce(v, t, physics.Combine(res.Floor, m.Material))
	}
	if t := res.Touched & physics.SideTop; t != 0 {
		v = physics.Bounce(v, t, physics.Combine(res.Ceiling, m.Material))
	}
	if t := res.Touched & (physics.SideLeft | physics.SideRight); t != 0 {
		v = physics.Bounce(v, t, physics.Combine(res.Wall, m.Material))
	}
	return v
}

func (s *PhysicsSystem) surface(side physics.Side, res tile.Result, floor physics.Material) physics.Material {
	switch side {
	case physics.SideBottom:
		return floor
	case physics.SideTop:
		return res.Ceiling
	default:
		return res.Wall
	}
}

// approach moves v toward target by at most step
func approach(v, target, step float64) float64 {
	if math.Abs(target-v) <= step {
		return target
	}
	if v < target {
		return v + step
	}
	return v - step
}
