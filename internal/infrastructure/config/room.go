package config

// RoomConfig is the root config for room JSON files
type RoomConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	TileSize    int                          `json:"tileSize"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
	Mobs        []MobSpawnConfig             `json:"mobs"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LayersConfig holds the collision layer: one string per tile row, one
// character per tile, looked up in TileMapping
type LayersConfig struct {
	Collision []string `json:"collision"`
}

type TileMappingConfig struct {
	Type string `json:"type"`
}

type MobSpawnConfig struct {
	Type        string `json:"type"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	FacingRight bool   `json:"facingRight"`
}
