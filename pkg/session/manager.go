// Package session manages the on-disk directory structure for one
// capture run: where its PNGs, manifest, and description live. It
// knows nothing about PTYs, grids, or pixels — the CLI hands it the
// finished captures that pkg/ptycap produced, to persist.
package session

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is one capture's entry in a run's manifest.json.
type Record struct {
	Step      int       `json:"step"`
	Label     string    `json:"label,omitempty"`
	File      string    `json:"file"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Timestamp time.Time `json:"timestamp"`
}

// Manager creates and tracks the run directories under one output
// root, mirroring the teacher's Manager's registry-plus-disk pattern
// but scoped to batch capture runs instead of live attached sessions.
type Manager struct {
	root string

	mutex  sync.RWMutex
	active map[string]*Run
}

// NewManager creates a Manager rooted at root. The directory is created
// lazily by the first Run.
func NewManager(root string) *Manager {
	return &Manager{root: root, active: make(map[string]*Run)}
}

// Run is one capture run's directory: a unique ID, its path, and the
// growing list of records written to its manifest.
type Run struct {
	ID      string
	path    string
	records []Record
	mutex   sync.Mutex
}

// NewRun creates a fresh run directory named run_<uuid> under the
// manager's root.
func (m *Manager) NewRun() (*Run, error) {
	if err := os.MkdirAll(m.root, 0o755); err != nil {
		return nil, fmt.Errorf("session: failed to create output root %q: %w", m.root, err)
	}

	id := uuid.NewString()
	path := filepath.Join(m.root, "run_"+id)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("session: failed to create run directory: %w", err)
	}

	run := &Run{ID: id, path: path}

	m.mutex.Lock()
	m.active[id] = run
	m.mutex.Unlock()

	return run, nil
}

// Path returns the run's directory.
func (r *Run) Path() string { return r.path }

// CapturePath returns the file path a capture at the given step should
// be written to.
func (r *Run) CapturePath(step int) string {
	return filepath.Join(r.path, fmt.Sprintf("capture_%03d.png", step))
}

// WriteCapture persists one capture's PNG bytes and appends its record
// to the in-memory manifest. It does not flush the manifest to disk —
// call Finish once the run completes.
func (r *Run) WriteCapture(step int, label string, png []byte, width, height int) error {
	path := r.CapturePath(step)
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("session: failed to write capture %d: %w", step, err)
	}

	r.mutex.Lock()
	r.records = append(r.records, Record{
		Step:      step,
		Label:     label,
		File:      filepath.Base(path),
		Width:     width,
		Height:    height,
		Timestamp: time.Now(),
	})
	r.mutex.Unlock()
	return nil
}

// Finish writes manifest.json and description.txt for the run,
// mirroring the original implementation's write_manifest/
// write_description sidecar files.
func (r *Run) Finish(description string) error {
	r.mutex.Lock()
	records := append([]Record(nil), r.records...)
	r.mutex.Unlock()

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("session: failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.path, "manifest.json"), data, 0o644); err != nil {
		return fmt.Errorf("session: failed to write manifest: %w", err)
	}

	if description != "" {
		if err := os.WriteFile(filepath.Join(r.path, "description.txt"), []byte(description), 0o644); err != nil {
			return fmt.Errorf("session: failed to write description: %w", err)
		}
	}
	return nil
}

// ListRuns returns the run directories under root, most recent first.
func (m *Manager) ListRuns() ([]string, error) {
	entries, err := os.ReadDir(m.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: failed to list run directories: %w", err)
	}

	type runDir struct {
		name string
		mod  time.Time
	}
	var dirs []runDir
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		dirs = append(dirs, runDir{name: e.Name(), mod: info.ModTime()})
	}
	sort.SliceStable(dirs, func(i, j int) bool { return dirs[i].mod.After(dirs[j].mod) })

	var runs []string
	for _, d := range dirs {
		runs = append(runs, d.name)
	}
	return runs, nil
}

// PruneOlderThan removes run directories whose modification time is
// older than cutoff. It is the batch-capture analog of the teacher's
// RemoveExitedSessions, but keyed on age rather than process liveness
// since there is no long-lived child to check here.
func (m *Manager) PruneOlderThan(cutoff time.Time) error {
	runs, err := m.ListRuns()
	if err != nil {
		return err
	}

	var errs []error
	for _, name := range runs {
		path := filepath.Join(m.root, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(path); err != nil {
				errs = append(errs, fmt.Errorf("session: failed to remove %s: %w", name, err))
				continue
			}
			log.Printf("[session] pruned run directory %s", name)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("session: prune encountered %d error(s): %v", len(errs), errs)
	}
	return nil
}
