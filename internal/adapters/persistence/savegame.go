package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/saltroad/tradewinds/internal/application/engine"
)

// SaveDataError wraps any failure at the save/load boundary. The in-memory
// engine never sees it: callers catch it and fall back to a freshly
// initialized market.
type SaveDataError struct {
	Path string
	Err  error
}

func (e *SaveDataError) Error() string {
	return fmt.Sprintf("save data %s: %v", e.Path, e.Err)
}

func (e *SaveDataError) Unwrap() error {
	return e.Err
}

// SaveMarket writes the engine snapshot as JSON, creating parent directories
// as needed. The write goes through a temp file and rename so a crash never
// leaves a truncated save.
func SaveMarket(path string, e *engine.MarketEngine) error {
	data, err := json.MarshalIndent(e.Snapshot(), "", "  ")
	if err != nil {
		return &SaveDataError{Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &SaveDataError{Path: path, Err: err}
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &SaveDataError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &SaveDataError{Path: path, Err: err}
	}
	return nil
}

// LoadMarket restores an engine from a JSON save file. A missing file is not
// an error: the engine keeps its fresh state and false is returned. Malformed
// data yields a SaveDataError and leaves the engine untouched.
func LoadMarket(path string, e *engine.MarketEngine) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, &SaveDataError{Path: path, Err: err}
	}

	var snapshot engine.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return false, &SaveDataError{Path: path, Err: err}
	}
	if err := e.Restore(&snapshot); err != nil {
		return false, &SaveDataError{Path: path, Err: err}
	}
	return true, nil
}
