package checkrun

import (
	"errors"
	"fmt"

	"fdk/internal/model"
	"fdk/internal/outline"
)

// ErrNoAircraft is returned by session operations before an aircraft has
// been selected.
var ErrNoAircraft = errors.New("no aircraft selected")

// Store is the slice of the data layer a running session needs.
type Store interface {
	ReadChecklist(aircraft string) (model.Checklist, error)
}

// Session drives a checklist run for one aircraft at a time: stage
// navigation with completion gating, check toggles, and the transient
// cross-stage memory.
type Session struct {
	store Store
	mem   *Memory

	aircraft string
	doc      model.Checklist
	stage    int
	run      *Run
}

func NewSession(store Store) *Session {
	return &Session{store: store, mem: NewMemory()}
}

func (s *Session) Memory() *Memory { return s.mem }

func (s *Session) Aircraft() string { return s.aircraft }

func (s *Session) StageIndex() int { return s.stage }

func (s *Session) StageNames() []string { return s.doc.StageNames() }

func (s *Session) StageName() string {
	if s.stage < len(s.doc.Stages) {
		return s.doc.Stages[s.stage].Name
	}
	return ""
}

// Run returns the live state of the current stage, or nil before an
// aircraft is selected.
func (s *Session) Run() *Run { return s.run }

// SelectAircraft snapshots the current stage, loads the named aircraft's
// checklist and enters its first stage. A missing checklist file loads as an
// empty document with a single blank stage.
func (s *Session) SelectAircraft(name string) error {
	s.snapshot()
	doc, err := s.store.ReadChecklist(name)
	if err != nil {
		return fmt.Errorf("load checklist for %q: %w", name, err)
	}
	if len(doc.Stages) == 0 {
		doc.Stages = []model.Stage{{Name: "Stage 1"}}
	}
	s.aircraft = name
	s.doc = doc
	return s.enterStage(0)
}

// SelectStage jumps directly to stage i, ungated. The current stage's checks
// are snapshotted first so returning to it restores them.
func (s *Session) SelectStage(i int) error {
	if s.aircraft == "" {
		return ErrNoAircraft
	}
	if i < 0 || i >= len(s.doc.Stages) {
		return fmt.Errorf("no stage %d in %q", i, s.aircraft)
	}
	s.snapshot()
	return s.enterStage(i)
}

// Advance moves to the next stage, but only once every required item of the
// current stage is checked, and never past the last stage.
func (s *Session) Advance() error {
	if s.aircraft == "" {
		return ErrNoAircraft
	}
	if !s.run.Complete() {
		return ErrStageIncomplete
	}
	if s.stage >= len(s.doc.Stages)-1 {
		return ErrLastStage
	}
	s.snapshot()
	return s.enterStage(s.stage + 1)
}

func (s *Session) Toggle(i int) error {
	if s.aircraft == "" {
		return ErrNoAircraft
	}
	return s.run.Toggle(i)
}

func (s *Session) CompleteAll() error {
	if s.aircraft == "" {
		return ErrNoAircraft
	}
	s.run.CompleteAll()
	return nil
}

func (s *Session) Complete() bool {
	return s.run != nil && s.run.Complete()
}

// Reset drops every recorded check for the current aircraft and returns to
// its first stage. The persisted checklist is untouched.
func (s *Session) Reset() error {
	if s.aircraft == "" {
		return ErrNoAircraft
	}
	s.mem.ClearAircraft(s.aircraft)
	return s.enterStage(0)
}

// Reload re-reads the current aircraft's checklist from disk, keeping the
// stage position where possible. Checks recorded for texts that survived the
// reload are restored through the memory.
func (s *Session) Reload() error {
	if s.aircraft == "" {
		return ErrNoAircraft
	}
	s.snapshot()
	doc, err := s.store.ReadChecklist(s.aircraft)
	if err != nil {
		return fmt.Errorf("reload checklist for %q: %w", s.aircraft, err)
	}
	if len(doc.Stages) == 0 {
		doc.Stages = []model.Stage{{Name: "Stage 1"}}
	}
	s.doc = doc
	stage := s.stage
	if stage >= len(doc.Stages) {
		stage = len(doc.Stages) - 1
	}
	return s.enterStage(stage)
}

// snapshot records the current run's checks into the session memory.
func (s *Session) snapshot() {
	if s.aircraft == "" || s.run == nil {
		return
	}
	s.mem.Snapshot(s.aircraft, s.StageName(), s.run.CheckedTexts())
}

func (s *Session) enterStage(i int) error {
	s.stage = i
	tree := outline.New(s.doc.Stages[i].Items)
	s.run = NewRun(tree, s.mem.Restore(s.aircraft, s.doc.Stages[i].Name))
	return nil
}
