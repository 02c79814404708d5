package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"fdk/internal/model"
)

const atcFileName = "atc.json"

func (s Store) atcPath(aircraft string) string {
	return filepath.Join(s.Dir, atcDirName, aircraft, atcFileName)
}

// ReadATC loads an aircraft's ATC templates. A missing or corrupted file
// loads as an empty set.
func (s Store) ReadATC(aircraft string) (model.ATCFile, error) {
	b, err := os.ReadFile(s.atcPath(aircraft))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.ATCFile{}, nil
		}
		return model.ATCFile{}, err
	}
	var f model.ATCFile
	if err := json.Unmarshal(b, &f); err != nil {
		return model.ATCFile{}, nil
	}
	return f, nil
}

// WriteATC saves an aircraft's ATC templates atomically.
func (s Store) WriteATC(aircraft string, f model.ATCFile) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	path := s.atcPath(aircraft)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
