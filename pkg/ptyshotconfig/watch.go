package ptyshotconfig

import (
	"log"

	"github.com/fsnotify/fsnotify"
)

// WatchScript watches path for writes and invokes onChange each time it
// is saved, for the `ptyshot run` developer convenience loop enabled by
// PTYSHOT_FSWATCH_SCRIPTS. It returns an error only if the watch cannot
// be set up; later watcher errors are logged and watching continues. It
// blocks until the watcher's channels close or the caller closes done.
func WatchScript(path string, done <-chan struct{}, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				// Editors that save via atomic replace destroy the
				// watched inode; re-add the path under its new one so
				// later saves keep firing events.
				if err := watcher.Add(path); err != nil {
					log.Printf("[ptyshotconfig] failed to re-watch %s: %v", path, err)
					continue
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				log.Printf("[ptyshotconfig] %s changed, re-running", path)
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[ptyshotconfig] watcher error: %v", err)
		case <-done:
			return nil
		}
	}
}
