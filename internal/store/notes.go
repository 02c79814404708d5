package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const globalNoteFileName = "global.txt"

func (s Store) notesDir() string {
	return filepath.Join(s.Dir, notesDirName)
}

func (s Store) globalNotePath() string {
	return filepath.Join(s.notesDir(), globalNoteFileName)
}

func (s Store) stageNotePath(aircraft, stage string) string {
	return filepath.Join(s.notesDir(), aircraft+"_"+stage+".txt")
}

func readNote(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(b), nil
}

func (s Store) writeNote(path, text string) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadGlobalNote returns the aircraft-independent scratch note; missing file
// reads as empty.
func (s Store) ReadGlobalNote() (string, error) {
	return readNote(s.globalNotePath())
}

func (s Store) WriteGlobalNote(text string) error {
	return s.writeNote(s.globalNotePath(), text)
}

func (s Store) ClearGlobalNote() error {
	err := os.Remove(s.globalNotePath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// ReadStageNote returns the note attached to one aircraft stage; missing
// file reads as empty.
func (s Store) ReadStageNote(aircraft, stage string) (string, error) {
	return readNote(s.stageNotePath(aircraft, stage))
}

func (s Store) WriteStageNote(aircraft, stage, text string) error {
	return s.writeNote(s.stageNotePath(aircraft, stage), text)
}

// ClearStageNotes removes every stage note recorded for one aircraft.
func (s Store) ClearStageNotes(aircraft string) error {
	entries, err := os.ReadDir(s.notesDir())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	prefix := aircraft + "_"
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		if err := os.Remove(filepath.Join(s.notesDir(), e.Name())); err != nil {
			return err
		}
	}
	return nil
}
