package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Content *ContentConfig
}

// Loader loads game configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return &cfg, nil
}

// LoadContent loads content.yaml
func (l *Loader) LoadContent() (*ContentConfig, error) {
	data, err := fs.ReadFile(l.fsys, "content.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read content.yaml: %w", err)
	}

	var cfg ContentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse content.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadRoom loads a room JSON file
func (l *Loader) LoadRoom(name string) (*RoomConfig, error) {
	p := "rooms/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read room %s: %w", name, err)
	}

	var cfg RoomConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse room %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadTiledRoom loads a room drawn in Tiled (rooms/<name>.tmx)
func (l *Loader) LoadTiledRoom(name string) (*tiled.Map, error) {
	p := "rooms/" + name + ".tmx"
	m, err := tiled.LoadFile(p, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load room %s: %w", name, err)
	}
	return m, nil
}

// RoomFormat reports how a room is stored
type RoomFormat int

const (
	RoomJSON RoomFormat = iota
	RoomTMX
)

// RoomNames lists the available rooms with their format, sorted by name.
// A room present in both formats is reported as JSON.
func (l *Loader) RoomNames() (map[string]RoomFormat, []string, error) {
	entries, err := fs.ReadDir(l.fsys, "rooms")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	rooms := make(map[string]RoomFormat)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		stem := strings.TrimSuffix(e.Name(), ext)
		switch ext {
		case ".json":
			rooms[stem] = RoomJSON
		case ".tmx":
			if _, ok := rooms[stem]; !ok {
				rooms[stem] = RoomTMX
			}
		}
	}

	names := make([]string, 0, len(rooms))
	for n := range rooms {
		names = append(names, n)
	}
	sort.Strings(names)
	return rooms, names, nil
}

// LoadAll loads all base configurations (physics, content)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	content, err := l.LoadContent()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Content: content,
	}, nil
}
