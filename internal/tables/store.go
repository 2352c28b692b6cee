package tables

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"starforge-server/internal/procgen"
	"starforge-server/internal/shared/errors"
)

// Snapshot is one immutable version of the generation tables. Generation
// output is keyed on (master seed, path, snapshot), so the version rides
// along in cache keys and exported records to make "which tables produced
// this system" auditable.
type Snapshot struct {
	Version int             `json:"version"`
	Tables  *procgen.Tables `json:"tables"`
}

// Store holds the current tables snapshot and serializes edits. Reads are
// lock-free; every edit clones the current snapshot, validates the result
// and swaps it in atomically, so a generation call in flight keeps the
// version it started with.
type Store struct {
	current atomic.Pointer[Snapshot]
	mu      sync.Mutex
	logger  *slog.Logger
}

// NewStore initializes the store from a YAML tables file, or from the
// compiled-in defaults when path is empty.
func NewStore(path string, logger *slog.Logger) (*Store, error) {
	logger.Debug("Initializing tables store", "path", path)

	t := procgen.DefaultTables()
	if path != "" {
		loaded, err := procgen.LoadTables(path)
		if err != nil {
			return nil, errors.WrapValidation("failed to load generation tables", err)
		}
		t = loaded
	}

	s := &Store{logger: logger}
	s.current.Store(&Snapshot{Version: 1, Tables: t})
	logger.Info("Generation tables loaded", "version", 1, "from_file", path != "")
	return s, nil
}

// Current returns the active snapshot. Callers must treat it as read-only.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// SetBodyTypeWeight edits one body-type weight, renormalizes the table so
// weights sum to 1.0, and publishes a new snapshot version. A rejected edit
// leaves the current snapshot untouched.
func (s *Store) SetBodyTypeWeight(bodyType procgen.BodyType, weight float64) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.current.Load()
	next := old.Tables.Clone()
	if err := next.SetBodyTypeWeight(bodyType, weight); err != nil {
		return nil, errors.WrapValidation("rejected body type weight edit", err)
	}
	if err := next.Validate(); err != nil {
		return nil, errors.WrapValidation("edit produced invalid tables", err)
	}

	snapshot := &Snapshot{Version: old.Version + 1, Tables: next}
	s.current.Store(snapshot)
	s.logger.Info("Body type weight updated",
		"body_type", bodyType,
		"weight", weight,
		"version", snapshot.Version)
	return snapshot, nil
}

// Replace swaps in a fully specified tables snapshot after validation.
func (s *Store) Replace(t *procgen.Tables) (*Snapshot, error) {
	if err := t.Validate(); err != nil {
		return nil, errors.WrapValidation("rejected tables replacement", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.current.Load()
	snapshot := &Snapshot{Version: old.Version + 1, Tables: t.Clone()}
	s.current.Store(snapshot)
	s.logger.Info("Generation tables replaced", "version", snapshot.Version)
	return snapshot, nil
}
