package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// StateDirEnv is the env var override for the ~/.asciicanvas state directory (for testing).
	StateDirEnv = "ASCIICANVAS_STATE_DIR"
	// DefaultStateBase is the default state directory relative to the home directory.
	DefaultStateBase = ".asciicanvas"
	// FileName is the handoff file inside the state directory.
	FileName = "canvas-settings.json"
)

// Store persists the settings handoff between the setup step and the editor.
// Layout: ~/.asciicanvas/canvas-settings.json
//
// Every Save overwrites the previous handoff. Load does not remove the file;
// nothing depends on it surviving after the editor has started.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at the user's home + DefaultStateBase,
// or at the path in ASCIICANVAS_STATE_DIR if set.
func NewStore() (*Store, error) {
	base := os.Getenv(StateDirEnv)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, DefaultStateBase)
	}
	return &Store{baseDir: base}, nil
}

// NewStoreAt creates a store rooted at dir.
func NewStoreAt(dir string) *Store {
	return &Store{baseDir: dir}
}

// BaseDir returns the state directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Path returns the absolute path of the handoff file.
func (s *Store) Path() string {
	return filepath.Join(s.baseDir, FileName)
}

// Save writes st as the current handoff. The file is replaced atomically.
func (s *Store) Save(st Settings) error {
	data, err := st.Encode()
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.baseDir, ".canvas-settings-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing settings: %w", err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// Load reads the current handoff. A missing file yields (nil, nil).
// Unparsable content yields (nil, err); callers fall back to Defaults.
func (s *Store) Load() (*Settings, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return Decode(data)
}
