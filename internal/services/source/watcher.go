package source

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/logger"
)

// debounceDelay coalesces the burst of write events editors and sync tools
// produce for a single save.
const debounceDelay = 300 * time.Millisecond

type fileWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	debounce *time.Timer
	stopChan chan struct{}
}

// WatchFile watches the configured local sheet file and re-ingests it on
// change. The watch is attached to the parent directory so atomic
// rename-based saves are seen too.
func (s *Service) WatchFile() error {
	if s.config.SheetFile == "" {
		return fmt.Errorf("no sheet file configured")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(s.config.SheetFile)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	fw := &fileWatcher{
		watcher:  watcher,
		stopChan: make(chan struct{}),
	}
	s.watch = fw

	go fw.run(s)

	return nil
}

func (fw *fileWatcher) run(s *Service) {
	target := filepath.Clean(s.config.SheetFile)

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			fw.scheduleRefresh(s)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			logger.Error("file watcher error", "error", err)

		case <-fw.stopChan:
			return
		}
	}
}

// scheduleRefresh resets the debounce timer; the refresh fires once the
// event burst settles.
func (fw *fileWatcher) scheduleRefresh(s *Service) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.debounce != nil {
		fw.debounce.Stop()
	}
	fw.debounce = time.AfterFunc(debounceDelay, func() {
		logger.Info("sheet file changed, re-ingesting", "file", s.config.SheetFile)
		_, _ = s.Refresh()
	})
}

func (fw *fileWatcher) stop() error {
	close(fw.stopChan)

	fw.mu.Lock()
	if fw.debounce != nil {
		fw.debounce.Stop()
	}
	fw.mu.Unlock()

	return fw.watcher.Close()
}
