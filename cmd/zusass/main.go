package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/zgame/internal/application/game"
	"github.com/younwookim/zgame/internal/application/replay"
	"github.com/younwookim/zgame/internal/application/scene/playing"
	"github.com/younwookim/zgame/internal/application/system"
	"github.com/younwookim/zgame/internal/domain/stat"
	"github.com/younwookim/zgame/internal/infrastructure/config"
	"github.com/younwookim/zgame/internal/infrastructure/save"
)

const appName = "zusass"

func main() {
	roomFlag := flag.String("room", "demo", "Room to play (a file under configs/rooms)")
	levelFlag := flag.String("log-level", "", "Log level: debug, info, warn, error (default from physics.json)")
	slotFlag := flag.Int("save", 1, "Save slot for F5/F9, 0 disables saving")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	flag.Parse()

	if err := run(*roomFlag, *levelFlag, *slotFlag, *recordFlag, *replayFlag); err != nil {
		slog.Error("zusass failed", "err", err)
		os.Exit(1)
	}
}

func run(roomName, level string, slot int, record, replayFile string) error {
	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return fmt.Errorf("config subfs: %w", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		return err
	}

	if level == "" {
		level = cfg.Physics.Logging.Level
	}
	setupLogging(level)

	content, err := system.LoadContent(cfg.Content, stat.Zusass)
	if err != nil {
		return err
	}

	opts := playing.Options{Slot: slot, Record: record}
	if replayFile != "" {
		data, err := replay.Load(replayFile)
		if err != nil {
			return err
		}
		roomName = data.Room
		opts.Replay = replay.NewReplayer(*data)
		slog.Info("replaying", "file", replayFile, "room", roomName, "frames", len(data.Frames))
	}
	if slot > 0 {
		store, err := save.Open(appName)
		if err != nil {
			slog.Warn("saving disabled", "err", err)
		} else {
			opts.Store = store
		}
	}

	room, spawns, err := system.LoadRoomByName(loader, roomName)
	if err != nil {
		return err
	}
	scene, err := playing.New(cfg.Physics, content, roomName, room, spawns, opts)
	if err != nil {
		return err
	}

	display := cfg.Physics.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Zusass - " + room.Name())
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func setupLogging(level string) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}
