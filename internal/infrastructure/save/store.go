// Package save persists game snapshots through gdata
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quasilyte/gdata"
)

// ErrNoSave is returned when a slot holds no snapshot
var ErrNoSave = errors.New("no save in slot")

// Storage is a key/value item store. *gdata.Manager implements it.
type Storage interface {
	SaveItem(key string, data []byte) error
	LoadItem(key string) ([]byte, error)
}

// Store reads and writes save slots
type Store struct {
	storage Storage
}

// Open opens the gdata store of appName
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open save store: %w", err)
	}
	return NewStore(m), nil
}

// NewStore creates a store over any item storage
func NewStore(s Storage) *Store {
	return &Store{storage: s}
}

func slotKey(slot int) string {
	return fmt.Sprintf("slot%d", slot)
}

// Save writes g to slot, replacing what was there
func (s *Store) Save(slot int, g Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode slot %d: %w", slot, err)
	}
	if err := s.storage.SaveItem(slotKey(slot), data); err != nil {
		return fmt.Errorf("write slot %d: %w", slot, err)
	}
	slog.Info("game saved", "slot", slot, "room", g.Room)
	return nil
}

// Load reads slot. It returns ErrNoSave for empty slots.
func (s *Store) Load(slot int) (*Game, error) {
	data, err := s.storage.LoadItem(slotKey(slot))
	if err != nil {
		return nil, fmt.Errorf("read slot %d: %w", slot, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("slot %d: %w", slot, ErrNoSave)
	}

	var g Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("decode slot %d: %w", slot, err)
	}
	return &g, nil
}

// Has reports whether slot holds a snapshot
func (s *Store) Has(slot int) bool {
	data, err := s.storage.LoadItem(slotKey(slot))
	return err == nil && len(data) > 0
}

// Clear empties slot
func (s *Store) Clear(slot int) error {
	if err := s.storage.SaveItem(slotKey(slot), nil); err != nil {
		return fmt.Errorf("clear slot %d: %w", slot, err)
	}
	return nil
}
