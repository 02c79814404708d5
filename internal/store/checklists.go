package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"fdk/internal/model"
)

const checklistFileName = "checklist.json"

func (s Store) aircraftDir(aircraft string) string {
	return filepath.Join(s.Dir, checklistsDirName, aircraft)
}

func (s Store) checklistPath(aircraft string) string {
	return filepath.Join(s.aircraftDir(aircraft), checklistFileName)
}

// ListAircraft returns the aircraft names with a checklist directory, sorted.
func (s Store) ListAircraft() ([]string, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(s.Dir, checklistsDirName))
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

// HasAircraft reports whether the aircraft already has a checklist directory.
func (s Store) HasAircraft(aircraft string) bool {
	st, err := os.Stat(s.aircraftDir(aircraft))
	return err == nil && st.IsDir()
}

// ReadChecklist loads an aircraft's checklist. A missing or corrupted file
// loads as an empty document; legacy bare-string items are upgraded on the
// way in.
func (s Store) ReadChecklist(aircraft string) (model.Checklist, error) {
	b, err := os.ReadFile(s.checklistPath(aircraft))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Checklist{}, nil
		}
		return model.Checklist{}, err
	}
	var doc model.Checklist
	if err := json.Unmarshal(b, &doc); err != nil {
		// Best-effort; if corrupted, treat as missing.
		return model.Checklist{}, nil
	}
	return doc, nil
}

// WriteChecklist saves an aircraft's checklist atomically.
func (s Store) WriteChecklist(aircraft string, doc model.Checklist) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.aircraftDir(aircraft), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	path := s.checklistPath(aircraft)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// CreateAircraft seeds a brand-new aircraft with one stage holding one blank
// item. An existing aircraft of the same name is rejected.
func (s Store) CreateAircraft(aircraft string) error {
	if s.HasAircraft(aircraft) {
		return fmt.Errorf("aircraft %q already exists", aircraft)
	}
	doc := model.Checklist{Stages: []model.Stage{
		{Name: "Stage 1", Items: []model.Item{{}}},
	}}
	return s.WriteChecklist(aircraft, doc)
}

// DeleteAircraft removes everything stored for one aircraft: checklist, ATC
// templates, stage notes and charts. Missing pieces are ignored.
func (s Store) DeleteAircraft(aircraft string) error {
	if err := os.RemoveAll(s.aircraftDir(aircraft)); err != nil {
		return err
	}
	if err := os.RemoveAll(filepath.Join(s.Dir, atcDirName, aircraft)); err != nil {
		return err
	}
	if err := os.RemoveAll(filepath.Join(s.Dir, chartsDirName, aircraft)); err != nil {
		return err
	}
	return s.ClearStageNotes(aircraft)
}
