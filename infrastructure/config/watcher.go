package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// PolicyWatcher reloads the policy file when it changes and pushes the
// result into a Dynamic.
type PolicyWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	dynamic *Dynamic
	logger  *zap.Logger
	stopCh  chan struct{}
}

// NewPolicyWatcher loads the initial policies from path and prepares a
// watcher for subsequent edits.
func NewPolicyWatcher(path string, dynamic *Dynamic, logger *zap.Logger) (*PolicyWatcher, error) {
	policies, err := loadPolicyFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial policies: %w", err)
	}
	dynamic.Update(policies)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch policy file: %w", err)
	}
	// Watch the directory too so atomic saves (write-then-rename) are seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		logger.Warn("failed to watch policy directory", zap.Error(err))
	}

	return &PolicyWatcher{
		path:    path,
		watcher: watcher,
		dynamic: dynamic,
		logger:  logger,
		stopCh:  make(chan struct{}),
	}, nil
}

// Start begins watching for policy changes.
func (w *PolicyWatcher) Start() {
	go w.watchLoop()
	w.logger.Info("policy watcher started", zap.String("path", w.path))
}

// Stop stops watching.
func (w *PolicyWatcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
}

func (w *PolicyWatcher) watchLoop() {
	var debounceTimer *time.Timer
	const debounce = 100 * time.Millisecond

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounce, w.reload)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("policy watcher error", zap.Error(err))
		}
	}
}

func (w *PolicyWatcher) reload() {
	policies, err := loadPolicyFile(w.path)
	if err != nil {
		w.logger.Error("failed to reload policies, keeping current", zap.Error(err))
		return
	}
	old := w.dynamic.Current()
	w.dynamic.Update(policies)
	w.logger.Info("policies reloaded",
		zap.Bool("communityLoadDegrade", policies.CommunityLoadDegrade),
		zap.Bool("communitySeed", policies.CommunitySeed),
		zap.Bool("qaSeed", policies.QASeed),
		zap.Bool("changed", old != policies),
	)
}

func loadPolicyFile(path string) (Policies, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policies{}, fmt.Errorf("failed to read policy file: %w", err)
	}
	policies := DefaultPolicies()
	if err := yaml.Unmarshal(data, &policies); err != nil {
		return Policies{}, fmt.Errorf("failed to parse policy file: %w", err)
	}
	return policies, nil
}
