package config

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reports changes to YAML files in a config directory
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching the given directories
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Events and Errors are closed once the
// background loop exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	// Editors write a file in several steps; report it once things go quiet
	pending := make(map[string]struct{})
	quiet := time.NewTimer(watchDebounce)
	quiet.Stop()
	defer quiet.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isConfigFile(event.Name) {
				continue
			}
			pending[event.Name] = struct{}{}
			quiet.Reset(watchDebounce)
		case <-quiet.C:
			for name := range pending {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
				delete(pending, name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Source holds the latest valid config. It is safe for concurrent use.
type Source struct {
	current atomic.Pointer[GameConfig]
}

// NewSource creates a source holding cfg
func NewSource(cfg *GameConfig) *Source {
	s := &Source{}
	s.current.Store(cfg)
	return s
}

// Get returns the latest valid config
func (s *Source) Get() *GameConfig {
	return s.current.Load()
}

// Set replaces the current config
func (s *Source) Set(cfg *GameConfig) {
	s.current.Store(cfg)
}

// Follow reloads the config through loader on every watcher event until the
// watcher is closed. Invalid edits are logged and the previous config kept.
func (s *Source) Follow(w *Watcher, loader *Loader) {
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			cfg, err := loader.LoadGame()
			if err != nil {
				log.Printf("config: ignoring change to %s: %v", filepath.Base(name), err)
				continue
			}
			s.Set(cfg)
			log.Printf("config: reloaded %s", filepath.Base(name))
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("config: watch error: %v", err)
		}
	}
}
