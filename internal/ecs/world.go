package ecs

import (
	"log/slog"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/younwookim/zgame/internal/domain/entity"
	"github.com/younwookim/zgame/internal/domain/physics"
	"github.com/younwookim/zgame/internal/domain/spell"
	"github.com/younwookim/zgame/internal/domain/stat"
	"github.com/younwookim/zgame/internal/domain/tile"
)

// World is the entity registry of one room: mobs and projectiles stored in
// a donburi world, with mobs mirrored into the room's resolv space so
// projectiles can find them.
type World struct {
	world  donburi.World
	space  *resolv.Space
	probe  *resolv.Object
	nextID entity.EntityID // never recycled, 0 is "nil"

	entities map[entity.EntityID]donburi.Entity
	playerID entity.EntityID

	sources stat.Sources
}

// NewWorld creates an empty world. space may be nil, in which case mobs
// get no broadphase objects.
func NewWorld(space *resolv.Space) *World {
	w := &World{
		world:    donburi.NewWorld(),
		space:    space,
		nextID:   1,
		entities: make(map[entity.EntityID]donburi.Entity),
	}
	if space != nil {
		w.probe = resolv.NewObject(0, 0, 1, 1, tile.TagProbe)
		space.Add(w.probe)
	}
	return w
}

// NewEntityID returns a new unique entity ID
func (w *World) NewEntityID() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Sources returns the modifier source allocator shared by the world
func (w *World) Sources() *stat.Sources { return &w.sources }

// CreatePlayer registers the player mob. A previous player is replaced.
func (w *World) CreatePlayer(m *entity.Mob) entity.EntityID {
	if w.playerID != 0 {
		w.Destroy(w.playerID)
	}
	id := w.addMob(m, TagPlayer)
	w.playerID = id
	return id
}

// CreateMob registers an enemy mob
func (w *World) CreateMob(m *entity.Mob) entity.EntityID {
	return w.addMob(m, TagEnemy)
}

func (w *World) addMob(m *entity.Mob, tag donburi.IComponentType) entity.EntityID {
	if m.ID == 0 {
		m.ID = w.NewEntityID()
	}
	e := w.world.Create(Mob, tag)
	data := MobData{Mob: m}
	if w.space != nil {
		r := m.Rect
		data.Object = resolv.NewObject(r.X, r.Y, r.W, r.H, tile.TagMob)
		data.Object.Data = m
		w.space.Add(data.Object)
	}
	Mob.SetValue(w.world.Entry(e), data)
	w.entities[m.ID] = e
	return m.ID
}

// SpawnProjectile creates a projectile from a spell launch at the caster's
// muzzle
func (w *World) SpawnProjectile(l spell.Launch) {
	var owner entity.EntityID
	if m, ok := l.Caster.(*entity.Mob); ok {
		owner = m.ID
	}
	x, y, dir := l.Caster.Muzzle()
	p := entity.NewProjectile(owner, l.Caster, x, y, l.Size, l.Speed, dir, l.Range, l.Effect)
	p.ID = w.NewEntityID()

	e := w.world.Create(Projectile, TagProjectile)
	Projectile.SetValue(w.world.Entry(e), ProjectileData{Projectile: p})
	w.entities[p.ID] = e
	slog.Debug("projectile spawned", "id", p.ID, "owner", owner, "x", x, "y", y)
}

// Player returns the player mob, or nil when there is none
func (w *World) Player() *entity.Mob {
	if w.playerID == 0 {
		return nil
	}
	m, _ := w.FindMob(w.playerID)
	return m
}

// FindMob returns the mob with the given ID
func (w *World) FindMob(id entity.EntityID) (*entity.Mob, bool) {
	e, ok := w.entities[id]
	if !ok || !w.world.Valid(e) {
		return nil, false
	}
	entry := w.world.Entry(e)
	if !entry.HasComponent(Mob) {
		return nil, false
	}
	return Mob.Get(entry).Mob, true
}

// EachMob calls fn for the player and every enemy
func (w *World) EachMob(fn func(*entity.Mob)) {
	Mob.Each(w.world, func(e *donburi.Entry) {
		fn(Mob.Get(e).Mob)
	})
}

// EachEnemy calls fn for every enemy mob
func (w *World) EachEnemy(fn func(*entity.Mob)) {
	TagEnemy.Each(w.world, func(e *donburi.Entry) {
		fn(Mob.Get(e).Mob)
	})
}

// EachProjectile calls fn for every projectile
func (w *World) EachProjectile(fn func(*entity.Projectile)) {
	Projectile.Each(w.world, func(e *donburi.Entry) {
		fn(Projectile.Get(e).Projectile)
	})
}

// SyncBroadphase moves every mob's resolv object to the mob's rectangle
func (w *World) SyncBroadphase() {
	Mob.Each(w.world, func(e *donburi.Entry) {
		d := Mob.Get(e)
		if d.Object == nil {
			return
		}
		d.Object.X, d.Object.Y = d.Mob.Rect.X, d.Mob.Rect.Y
		d.Object.Update()
	})
}

// MobsOverlapping returns the mobs whose rectangles overlap r, found through
// the broadphase. Call SyncBroadphase first if mobs moved this tick.
func (w *World) MobsOverlapping(r physics.Rect) []*entity.Mob {
	if w.probe == nil {
		var out []*entity.Mob
		w.EachMob(func(m *entity.Mob) {
			if m.Rect.Overlaps(r) {
				out = append(out, m)
			}
		})
		return out
	}

	w.probe.X, w.probe.Y, w.probe.W, w.probe.H = r.X, r.Y, r.W, r.H
	w.probe.Update()
	check := w.probe.Check(0, 0, tile.TagMob)
	if check == nil {
		return nil
	}
	var out []*entity.Mob
	for _, obj := range check.ObjectsByTags(tile.TagMob) {
		if m, ok := obj.Data.(*entity.Mob); ok && m.Rect.Overlaps(r) {
			out = append(out, m)
		}
	}
	return out
}

// Destroy removes an entity and its broadphase object.
// It returns false for unknown IDs.
func (w *World) Destroy(id entity.EntityID) bool {
	e, ok := w.entities[id]
	if !ok {
		return false
	}
	delete(w.entities, id)
	if !w.world.Valid(e) {
		return false
	}
	entry := w.world.Entry(e)
	if entry.HasComponent(Mob) {
		if obj := Mob.Get(entry).Object; obj != nil && w.space != nil {
			w.space.Remove(obj)
		}
	}
	w.world.Remove(e)
	if id == w.playerID {
		w.playerID = 0
	}
	return true
}

// RemoveInactiveProjectiles destroys every projectile that is no longer
// active and returns how many were removed
func (w *World) RemoveInactiveProjectiles() int {
	var dead []entity.EntityID
	w.EachProjectile(func(p *entity.Projectile) {
		if !p.Active {
			dead = append(dead, p.ID)
		}
	})
	for _, id := range dead {
		w.Destroy(id)
	}
	return len(dead)
}

// CountEnemies returns the number of enemies
func (w *World) CountEnemies() int {
	n := 0
	w.EachEnemy(func(*entity.Mob) { n++ })
	return n
}

// CountProjectiles returns the number of projectiles
func (w *World) CountProjectiles() int {
	n := 0
	w.EachProjectile(func(*entity.Projectile) { n++ })
	return n
}

// Close destroys every entity and takes the world's objects out of the
// shared space. The world must not be used afterwards.
func (w *World) Close() {
	ids := make([]entity.EntityID, 0, len(w.entities))
	for id := range w.entities {
		ids = append(ids, id)
	}
	for _, id := range ids {
		w.Destroy(id)
	}
	if w.probe != nil && w.space != nil {
		w.space.Remove(w.probe)
		w.probe = nil
	}
}
