package ecs

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/younwookim/zgame/internal/domain/entity"
)

// MobData links a mob to its broadphase object
type MobData struct {
	Mob    *entity.Mob
	Object *resolv.Object
}

// ProjectileData holds a live projectile
type ProjectileData struct {
	Projectile *entity.Projectile
}

var (
	Mob        = donburi.NewComponentType[MobData]()
	Projectile = donburi.NewComponentType[ProjectileData]()
)

var (
	TagPlayer     = donburi.NewTag().SetName("Player")
	TagEnemy      = donburi.NewTag().SetName("Enemy")
	TagProjectile = donburi.NewTag().SetName("Projectile")
)
