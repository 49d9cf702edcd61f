package entity

import "github.com/younwookim/zgame/internal/domain/physics"

// EntityID is a unique identifier for an entity
type EntityID uint32

// TouchListener receives contact changes found by collision resolution
type TouchListener interface {
	// OnTouch is called once when a side starts resting against a surface
	OnTouch(side physics.Side, surface physics.Material)
	// OnLeave is called once when a side stops touching
	OnLeave(side physics.Side)
}

// Kind tells the systems who controls a mob
type Kind int

const (
	KindPlayer Kind = iota
	KindPatrol
	KindChase
)

var kindNames = map[string]Kind{
	"player": KindPlayer,
	"patrol": KindPatrol,
	"chase":  KindChase,
}

// ParseKind returns the Kind with the given content-file name.
// Unknown names fall back to KindPatrol.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindNames[name]
	if !ok {
		return KindPatrol, false
	}
	return k, true
}
