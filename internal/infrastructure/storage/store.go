package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/excelenergy/cms/internal/infrastructure/logger"
)

// Store maps logical file names to JSON documents under a data
// directory. Every read loads the whole file and every write replaces
// it; there is no locking, so concurrent read-modify-write cycles on
// the same file race and the last writer wins.
type Store struct {
	dir    string
	logger *logger.Logger
}

// New creates a store rooted at dir. The directory itself is created
// lazily on the first write, never by a read.
func New(dir string, log *logger.Logger) *Store {
	return &Store{dir: dir, logger: log}
}

// Dir returns the data directory path.
func (s *Store) Dir() string {
	return s.dir
}

// HealthCheck verifies the data directory is usable (or creatable).
func (s *Store) HealthCheck() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("data dir not writable: %w", err)
	}
	probe := filepath.Join(s.dir, ".healthcheck")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("data dir not writable: %w", err)
	}
	return os.Remove(probe)
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Read loads name and unmarshals it into T. A missing file, an empty or
// degenerate ("{}"/"[]") file, or a parse failure all yield def; the
// default is not written back, so the file only appears on the first
// explicit Write. Read never returns an error to the caller.
func Read[T any](s *Store, name string, def T) T {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnw("Failed to read data file, using default", "file", name, "error", err)
		}
		return def
	}

	data := strings.TrimSpace(string(raw))
	if data == "" || data == "{}" || data == "[]" {
		s.logger.Debugw("Data file is empty, using default", "file", name)
		return def
	}

	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		s.logger.Warnw("Failed to parse data file, using default", "file", name, "error", err)
		return def
	}
	return v
}

// Write serializes v and replaces name wholesale. The write is a plain
// overwrite, not a temp-file rename, so a crash mid-write can leave a
// truncated file (a subsequent Read falls back to the default). Errors
// propagate to the caller.
func Write[T any](s *Store, name string, v T) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	s.logger.Debugw("Wrote data file", "file", name, "bytes", len(data))
	return nil
}
