package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/centipede/internal/application/game"
	"github.com/younwookim/centipede/internal/application/replay"
	"github.com/younwookim/centipede/internal/application/scene"
	"github.com/younwookim/centipede/internal/application/scene/playing"
	"github.com/younwookim/centipede/internal/application/scene/title"
	"github.com/younwookim/centipede/internal/infrastructure/assets"
	"github.com/younwookim/centipede/internal/infrastructure/config"
	"github.com/younwookim/centipede/internal/infrastructure/input"
	"github.com/younwookim/centipede/internal/infrastructure/render"
)

// options are the command line flags
type options struct {
	record    string
	replay    string
	seed      int64
	configDir string
	watch     bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fset := flag.NewFlagSet("centipede", flag.ContinueOnError)
	fset.SetOutput(output)
	fset.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&opts.replay, "replay", "", "Play back a recorded file")
	fset.Int64Var(&opts.seed, "seed", 0, "RNG seed for mushrooms and the spider (0 = random)")
	fset.StringVar(&opts.configDir, "config", "", "Load "+config.GameFile+" from this directory instead of the built-in one")
	fset.BoolVar(&opts.watch, "watch", false, "Reload the config directory on change (needs -config)")

	if err := fset.Parse(args); err != nil {
		return options{}, err
	}
	if opts.watch && opts.configDir == "" {
		return options{}, errors.New("-watch needs -config")
	}
	if opts.record != "" && opts.replay != "" {
		return options{}, errors.New("-record and -replay can't be combined")
	}
	return opts, nil
}

// configLoader returns a loader for dir, or for the embedded configs
func configLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid arguments: %v", err)
	}

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

// run loads everything opts name and plays until the window closes
func run(opts options) error {
	loader, err := configLoader(opts.configDir)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	source := config.NewSource(cfg)

	if opts.watch {
		watcher, err := config.NewWatcher(loader.BasePath())
		if err != nil {
			return fmt.Errorf("failed to watch config: %w", err)
		}
		defer func() { _ = watcher.Close() }()
		go source.Follow(watcher, loader)
		log.Printf("Watching %s for changes", loader.BasePath())
	}

	var recording *replay.ReplayData
	if opts.replay != "" {
		recording, err = replay.LoadReplay(opts.replay)
		if err != nil {
			return fmt.Errorf("failed to load replay: %w", err)
		}
	}

	hud, err := render.NewHUD()
	if err != nil {
		return fmt.Errorf("failed to create HUD: %w", err)
	}
	registry := assets.NewRegistry()
	keyboard := input.NewKeyboard(input.DefaultBindings())

	// The title and playing scenes build each other
	var toTitle, toGame scene.Factory
	toTitle = func() scene.Scene {
		return title.New(hud, toGame)
	}
	toGame = func() scene.Scene {
		return playing.New(playing.Options{
			Source:     source,
			Registry:   registry,
			HUD:        hud,
			Input:      keyboard,
			Seed:       opts.seed,
			RecordPath: opts.record,
			ConfigName: config.GameFile,
			Replay:     recording,
			Exit:       toTitle,
		})
	}

	first := toTitle
	if recording != nil {
		first = toGame
	}

	screenW := int(math.Ceil(cfg.Arena.Width))
	screenH := int(math.Ceil(cfg.Arena.Height))
	g := game.New(first(), screenW, screenH, cfg.Display.Framerate)

	ebiten.SetWindowSize(screenW*cfg.Display.Scale, screenH*cfg.Display.Scale)
	ebiten.SetWindowTitle("Centipede")
	ebiten.SetTPS(cfg.Display.Framerate)

	return ebiten.RunGame(g)
}
