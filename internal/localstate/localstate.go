// Package localstate mirrors the application state to a JSON file so a
// session can be restored without a backend round-trip.
package localstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xploar/xploar-backend/internal/domain"
)

// Version tags the snapshot layout. Snapshots written by a different
// layout are discarded on load rather than migrated.
const Version = 1

// FileName is the fixed storage key the snapshot lives under.
const FileName = "xploar-state.json"

// Snapshot is the serialized application state.
type Snapshot struct {
	Version           int                        `json:"version"`
	SavedAt           time.Time                  `json:"saved_at"`
	User              *domain.User               `json:"user,omitempty"`
	ActiveFeature     domain.FeatureID           `json:"active_feature"`
	StudyConfig       domain.StudyConfig         `json:"study_config"`
	StudyPlan         *domain.StudyPlan          `json:"study_plan,omitempty"`
	CurrentVisibleDay int                        `json:"current_visible_day"`
	MockHistory       []domain.MockRun           `json:"mock_history,omitempty"`
	McqPerformance    map[string]domain.TopicStat `json:"mcq_performance,omitempty"`
}

// File reads and writes snapshots under a directory.
type File struct {
	path string
}

// NewFile creates a mirror stored in dir. The directory is created on
// first save.
func NewFile(dir string) *File {
	return &File{path: filepath.Join(dir, FileName)}
}

// Path returns the snapshot file location.
func (f *File) Path() string {
	return f.path
}

// Save writes the snapshot atomically via a temp file rename.
func (f *File) Save(s Snapshot) error {
	s.Version = Version
	s.SavedAt = time.Now()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("localstate.Save marshal: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("localstate.Save mkdir: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("localstate.Save write: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("localstate.Save rename: %w", err)
	}
	return nil
}

// Load reads the snapshot. The second return is false when no usable
// snapshot exists: missing file, unreadable JSON or a version mismatch
// all count as absence, never as an error the caller must handle.
func (f *File) Load() (*Snapshot, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("localstate.Load read: %w", err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, false, nil
	}
	if s.Version != Version {
		return nil, false, nil
	}
	return &s, true, nil
}
