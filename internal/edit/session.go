package edit

import (
	"errors"
	"fmt"
	"strings"

	"fdk/internal/model"
	"fdk/internal/outline"
)

var (
	// ErrEmptyStageName rejects saving while any stage has a blank name.
	ErrEmptyStageName = errors.New("stage name cannot be empty")
	// ErrDuplicateStageName rejects a stage name already used in the document.
	// Names are case-sensitive and key both navigation and recorded checks.
	ErrDuplicateStageName = errors.New("stage name already in use")
	// ErrNoValidItems rejects saving while any stage has no non-blank item.
	ErrNoValidItems = errors.New("every stage needs at least one non-empty item")
	// ErrLastStage protects the final remaining stage from deletion.
	ErrLastStage = errors.New("cannot delete the last remaining stage")
)

// Store is the slice of the data layer the editor needs.
type Store interface {
	ReadChecklist(aircraft string) (model.Checklist, error)
	WriteChecklist(aircraft string, doc model.Checklist) error
	DeleteAircraft(aircraft string) error
}

// CheckMemory lets a save invalidate recorded checks for the edited
// aircraft. May be nil when no run session is active.
type CheckMemory interface {
	ClearAircraft(aircraft string)
}

// Session edits one aircraft's checklist on a working copy. Nothing touches
// disk until Save; Cancel on a newly created aircraft removes it again.
type Session struct {
	store Store
	mem   CheckMemory

	aircraft string
	isNew    bool
	stages   []model.Stage
	current  int
	tree     *outline.Tree
}

// NewSession opens an editing session. For a new aircraft the working copy is
// seeded with a single stage holding one blank item; otherwise the persisted
// checklist is loaded (missing file loads as the same seed).
func NewSession(store Store, mem CheckMemory, aircraft string, isNew bool) (*Session, error) {
	s := &Session{store: store, mem: mem, aircraft: aircraft, isNew: isNew}
	if isNew {
		s.stages = []model.Stage{{Name: "Stage 1", Items: []model.Item{{}}}}
	} else {
		doc, err := store.ReadChecklist(aircraft)
		if err != nil {
			return nil, fmt.Errorf("load checklist for %q: %w", aircraft, err)
		}
		s.stages = doc.Stages
		if len(s.stages) == 0 {
			s.stages = []model.Stage{{Name: "Stage 1", Items: []model.Item{{}}}}
		}
	}
	s.tree = outline.New(s.stages[0].Items)
	return s, nil
}

func (s *Session) Aircraft() string { return s.aircraft }

func (s *Session) StageIndex() int { return s.current }

func (s *Session) StageNames() []string {
	out := make([]string, len(s.stages))
	for i, st := range s.stages {
		out[i] = st.Name
	}
	return out
}

// Tree exposes the current stage's working outline for item edits.
func (s *Session) Tree() *outline.Tree { return s.tree }

// SelectStage commits the current stage's working tree and switches to stage i.
func (s *Session) SelectStage(i int) error {
	if i < 0 || i >= len(s.stages) {
		return fmt.Errorf("no stage %d", i)
	}
	s.commit()
	s.current = i
	s.tree = outline.New(s.stages[i].Items)
	return nil
}

// AddStage appends a stage seeded with one blank item and switches to it.
func (s *Session) AddStage(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyStageName
	}
	if s.nameTaken(name, -1) {
		return ErrDuplicateStageName
	}
	s.commit()
	s.stages = append(s.stages, model.Stage{Name: name, Items: []model.Item{{}}})
	s.current = len(s.stages) - 1
	s.tree = outline.New(s.stages[s.current].Items)
	return nil
}

func (s *Session) RenameStage(i int, name string) error {
	if i < 0 || i >= len(s.stages) {
		return fmt.Errorf("no stage %d", i)
	}
	if strings.TrimSpace(name) == "" {
		return ErrEmptyStageName
	}
	if s.nameTaken(name, i) {
		return ErrDuplicateStageName
	}
	s.stages[i].Name = name
	return nil
}

// nameTaken reports whether another stage already carries name. Names are
// compared case-sensitively; skip exempts the stage being renamed.
func (s *Session) nameTaken(name string, skip int) bool {
	for i, st := range s.stages {
		if i != skip && st.Name == name {
			return true
		}
	}
	return false
}

// DeleteStage removes stage i. The last remaining stage cannot be deleted.
func (s *Session) DeleteStage(i int) error {
	if i < 0 || i >= len(s.stages) {
		return fmt.Errorf("no stage %d", i)
	}
	if len(s.stages) == 1 {
		return ErrLastStage
	}
	s.stages = append(s.stages[:i], s.stages[i+1:]...)
	if s.current >= len(s.stages) {
		s.current = len(s.stages) - 1
	} else if s.current > i {
		s.current--
	}
	s.tree = outline.New(s.stages[s.current].Items)
	return nil
}

// Save validates the whole working copy and writes it. Blank items are
// dropped and levels re-normalized; a stage left with nothing, a blank
// stage name, or two stages sharing a name fails the save with the document
// untouched on disk. A successful save drops any recorded checks for the
// aircraft.
func (s *Session) Save() (model.Checklist, error) {
	s.commit()
	doc := model.Checklist{Stages: make([]model.Stage, len(s.stages))}
	seen := make(map[string]bool, len(s.stages))
	for i, st := range s.stages {
		if strings.TrimSpace(st.Name) == "" {
			return model.Checklist{}, fmt.Errorf("stage %d: %w", i+1, ErrEmptyStageName)
		}
		if seen[st.Name] {
			return model.Checklist{}, fmt.Errorf("stage %q: %w", st.Name, ErrDuplicateStageName)
		}
		seen[st.Name] = true
		var kept []model.Item
		for _, it := range st.Items {
			if strings.TrimSpace(it.Text) != "" {
				kept = append(kept, it)
			}
		}
		if len(kept) == 0 {
			return model.Checklist{}, fmt.Errorf("stage %q: %w", st.Name, ErrNoValidItems)
		}
		doc.Stages[i] = model.Stage{Name: st.Name, Items: outline.New(kept).Items()}
	}
	if err := s.store.WriteChecklist(s.aircraft, doc); err != nil {
		return model.Checklist{}, err
	}
	if s.mem != nil {
		s.mem.ClearAircraft(s.aircraft)
	}
	s.isNew = false
	return doc, nil
}

// SaveDraft writes the working copy without full-save validation.
// Incremental command-line edits use it so a checklist can be built up step
// by step; Save is the validating path a finished edit goes through. Recorded
// checks for the aircraft are dropped either way.
func (s *Session) SaveDraft() (model.Checklist, error) {
	s.commit()
	doc := model.Checklist{Stages: append([]model.Stage(nil), s.stages...)}
	if err := s.store.WriteChecklist(s.aircraft, doc); err != nil {
		return model.Checklist{}, err
	}
	if s.mem != nil {
		s.mem.ClearAircraft(s.aircraft)
	}
	s.isNew = false
	return doc, nil
}

// Cancel abandons the session. A session opened for a brand-new aircraft
// removes the aircraft again so no half-created entry lingers.
func (s *Session) Cancel() error {
	if !s.isNew {
		return nil
	}
	return s.store.DeleteAircraft(s.aircraft)
}

// commit flattens the working tree back into the current stage, dropping
// blank-text nodes and re-normalizing levels. A stage emptied this way keeps
// a single blank item so it stays editable.
func (s *Session) commit() {
	var kept []model.Item
	for _, it := range s.tree.Items() {
		if strings.TrimSpace(it.Text) != "" {
			kept = append(kept, it)
		}
	}
	s.stages[s.current].Items = outline.New(kept).Items()
}
