package system

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lafriks/go-tiled"

	"github.com/younwookim/zgame/internal/domain/tile"
	"github.com/younwookim/zgame/internal/infrastructure/config"
)

// ErrEmptyRoom is returned for rooms without a collision layer
var ErrEmptyRoom = errors.New("room has no collision layer")

// Tiled layer and object group names read by LoadTiledRoom
const (
	TiledCollisionLayer = "collision"
	TiledPlayerSpawn    = "PlayerSpawn"
	TiledMobSpawn       = "MobSpawn"
)

// MobSpawn places a mob archetype in a room
type MobSpawn struct {
	Type        string
	X, Y        float64
	FacingRight bool
}

// LoadRoom converts a RoomConfig into a Room and its mob spawns
func LoadRoom(cfg *config.RoomConfig) (*tile.Room, []MobSpawn, error) {
	rows := cfg.Layers.Collision
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("room %s: %w", cfg.ID, ErrEmptyRoom)
	}
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	room := tile.NewRoom(cfg.ID, width, len(rows), float64(cfg.TileSize))
	for y, row := range rows {
		for x, char := range row {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}
			typ, err := tile.TypeByName(mapping.Type)
			if err != nil {
				return nil, nil, fmt.Errorf("room %s tile %q at %d,%d: %w", cfg.ID, char, x, y, err)
			}
			room.SetTileType(x, y, typ)
		}
	}
	room.SetSpawn(float64(cfg.PlayerSpawn.X), float64(cfg.PlayerSpawn.Y))

	spawns := make([]MobSpawn, 0, len(cfg.Mobs))
	for _, m := range cfg.Mobs {
		spawns = append(spawns, MobSpawn{
			Type:        m.Type,
			X:           float64(m.X),
			Y:           float64(m.Y),
			FacingRight: m.FacingRight,
		})
	}

	slog.Info("room loaded", "room", cfg.ID, "width", room.Width(), "height", room.Height(), "mobs", len(spawns))
	return room, spawns, nil
}

// LoadTiledRoom converts a Tiled map into a Room and its mob spawns.
// Tiles of the collision layer take their type from the tileset tile's
// "type" property, defaulting to wall.
func LoadTiledRoom(name string, m *tiled.Map) (*tile.Room, []MobSpawn, error) {
	var layer *tiled.Layer
	for _, l := range m.Layers {
		if l.Name == TiledCollisionLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, nil, fmt.Errorf("room %s: %w", name, ErrEmptyRoom)
	}

	room := tile.NewRoom(name, m.Width, m.Height, float64(m.TileWidth))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			lt := layer.Tiles[y*m.Width+x]
			if lt.IsNil() {
				continue
			}
			typeName := "wall"
			if tt, err := lt.Tileset.GetTilesetTile(lt.ID); err == nil {
				if v := tt.Properties.GetString("type"); v != "" {
					typeName = v
				}
			}
			typ, err := tile.TypeByName(typeName)
			if err != nil {
				return nil, nil, fmt.Errorf("room %s tile at %d,%d: %w", name, x, y, err)
			}
			room.SetTileType(x, y, typ)
		}
	}

	var spawns []MobSpawn
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case TiledPlayerSpawn:
			if len(og.Objects) > 0 {
				room.SetSpawn(og.Objects[0].X, og.Objects[0].Y)
			}
		case TiledMobSpawn:
			for _, o := range og.Objects {
				spawns = append(spawns, MobSpawn{
					Type:        o.Properties.GetString("mob"),
					X:           o.X,
					Y:           o.Y,
					FacingRight: o.Properties.GetBool("facingRight"),
				})
			}
		}
	}

	slog.Info("room loaded", "room", name, "width", room.Width(), "height", room.Height(), "mobs", len(spawns))
	return room, spawns, nil
}

// LoadRoomByName loads a room in whichever format the loader finds it
func LoadRoomByName(l *config.Loader, name string) (*tile.Room, []MobSpawn, error) {
	formats, _, err := l.RoomNames()
	if err != nil {
		return nil, nil, err
	}
	format, ok := formats[name]
	if !ok {
		return nil, nil, fmt.Errorf("room %s: not found", name)
	}
	if format == config.RoomTMX {
		m, err := l.LoadTiledRoom(name)
		if err != nil {
			return nil, nil, err
		}
		return LoadTiledRoom(name, m)
	}
	cfg, err := l.LoadRoom(name)
	if err != nil {
		return nil, nil, err
	}
	return LoadRoom(cfg)
}
