package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// fileRepository persists the profile as one JSON document at a fixed path,
// the server-side equivalent of a single localStorage key. Last write wins
// across instances.
type fileRepository struct{ path string }

// NewFileRepository creates a file-backed profile repository.
func NewFileRepository(path string) Repository { return &fileRepository{path: path} }

func (r *fileRepository) Load() (*UserProfile, error) {
	const op = "profile.fileRepository.Load"

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var p UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}
	return &p, nil
}

func (r *fileRepository) Save(p *UserProfile) error {
	const op = "profile.fileRepository.Save"

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: encode: %w", op, err)
	}

	// Write-then-rename so a crash mid-write cannot leave a truncated record.
	tmp := r.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
