package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fdk/internal/model"
)

func testStore(t *testing.T) Store {
	t.Helper()
	return Store{Dir: t.TempDir()}
}

func TestChecklistRoundTrip(t *testing.T) {
	s := testStore(t)
	doc := model.Checklist{Stages: []model.Stage{
		{Name: "Preflight", Items: []model.Item{
			{Text: "master on", Level: 0},
			{Text: "strobes", Level: 1, Optional: true},
		}},
	}}
	if err := s.WriteChecklist("c172", doc); err != nil {
		t.Fatalf("WriteChecklist: %v", err)
	}
	got, err := s.ReadChecklist("c172")
	if err != nil {
		t.Fatalf("ReadChecklist: %v", err)
	}
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Fatalf("doc mismatch (-want +got):\n%s", diff)
	}
}

func TestReadChecklistMissingAndCorrupted(t *testing.T) {
	s := testStore(t)
	got, err := s.ReadChecklist("ghost")
	if err != nil {
		t.Fatalf("ReadChecklist: %v", err)
	}
	if len(got.Stages) != 0 {
		t.Fatalf("missing checklist should load empty, got %+v", got)
	}

	path := s.checklistPath("broken")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = s.ReadChecklist("broken")
	if err != nil {
		t.Fatalf("ReadChecklist: %v", err)
	}
	if len(got.Stages) != 0 {
		t.Fatalf("corrupted checklist should load empty, got %+v", got)
	}
}

func TestReadChecklistUpgradesLegacyItems(t *testing.T) {
	s := testStore(t)
	path := s.checklistPath("old")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	raw := `{"stages":[{"name":"Preflight","items":["master on",{"text":"strobes","level":1,"optional":true}]}]}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := s.ReadChecklist("old")
	if err != nil {
		t.Fatalf("ReadChecklist: %v", err)
	}
	want := []model.Item{
		{Text: "master on", Level: 0},
		{Text: "strobes", Level: 1, Optional: true},
	}
	if diff := cmp.Diff(want, got.Stages[0].Items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateAircraft(t *testing.T) {
	s := testStore(t)
	if err := s.CreateAircraft("c172"); err != nil {
		t.Fatalf("CreateAircraft: %v", err)
	}
	if err := s.CreateAircraft("c172"); err == nil {
		t.Fatal("duplicate aircraft should be rejected")
	}
	got, err := s.ReadChecklist("c172")
	if err != nil {
		t.Fatalf("ReadChecklist: %v", err)
	}
	if len(got.Stages) != 1 || got.Stages[0].Name != "Stage 1" || len(got.Stages[0].Items) != 1 {
		t.Fatalf("unexpected seed %+v", got)
	}
	names, err := s.ListAircraft()
	if err != nil {
		t.Fatalf("ListAircraft: %v", err)
	}
	if diff := cmp.Diff([]string{"c172"}, names); diff != "" {
		t.Fatalf("aircraft mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteAircraftRemovesEverything(t *testing.T) {
	s := testStore(t)
	if err := s.CreateAircraft("c172"); err != nil {
		t.Fatalf("CreateAircraft: %v", err)
	}
	if err := s.WriteATC("c172", model.ATCFile{Templates: []model.Template{
		{Name: "taxi", Stage: "Stage 1", EN: "request taxi"},
	}}); err != nil {
		t.Fatalf("WriteATC: %v", err)
	}
	if err := s.WriteStageNote("c172", "Stage 1", "check fuel"); err != nil {
		t.Fatalf("WriteStageNote: %v", err)
	}
	if err := s.WriteGlobalNote("keep me"); err != nil {
		t.Fatalf("WriteGlobalNote: %v", err)
	}

	if err := s.DeleteAircraft("c172"); err != nil {
		t.Fatalf("DeleteAircraft: %v", err)
	}
	if s.HasAircraft("c172") {
		t.Fatal("aircraft should be gone")
	}
	atc, err := s.ReadATC("c172")
	if err != nil || len(atc.Templates) != 0 {
		t.Fatalf("atc should be gone, got %+v err %v", atc, err)
	}
	note, err := s.ReadStageNote("c172", "Stage 1")
	if err != nil || note != "" {
		t.Fatalf("stage note should be gone, got %q err %v", note, err)
	}
	global, err := s.ReadGlobalNote()
	if err != nil {
		t.Fatalf("ReadGlobalNote: %v", err)
	}
	if global != "keep me" {
		t.Fatalf("global note = %q, deleting an aircraft must not touch it", global)
	}
}

func TestNotes(t *testing.T) {
	s := testStore(t)
	if err := s.WriteStageNote("c172", "Preflight", "sample fuel"); err != nil {
		t.Fatalf("WriteStageNote: %v", err)
	}
	got, err := s.ReadStageNote("c172", "Preflight")
	if err != nil || got != "sample fuel" {
		t.Fatalf("ReadStageNote = %q, %v", got, err)
	}
	// Another aircraft's note with a similar name survives a clear.
	if err := s.WriteStageNote("c172x", "Preflight", "other"); err != nil {
		t.Fatalf("WriteStageNote: %v", err)
	}
	if err := s.ClearStageNotes("c172"); err != nil {
		t.Fatalf("ClearStageNotes: %v", err)
	}
	if got, _ := s.ReadStageNote("c172", "Preflight"); got != "" {
		t.Fatalf("note should be cleared, got %q", got)
	}
	if got, _ := s.ReadStageNote("c172x", "Preflight"); got == "" {
		t.Fatal("c172x note should not have been touched")
	}
}

func TestUIStateRoundTrip(t *testing.T) {
	s := testStore(t)
	st, err := s.LoadUIState()
	if err != nil {
		t.Fatalf("LoadUIState: %v", err)
	}
	if st.Version != 1 || st.Aircraft != "" {
		t.Fatalf("fresh state = %+v", st)
	}
	st.Aircraft = "c172"
	st.Stage = 2
	st.Layout = "compact"
	if err := s.SaveUIState(st); err != nil {
		t.Fatalf("SaveUIState: %v", err)
	}
	got, err := s.LoadUIState()
	if err != nil {
		t.Fatalf("LoadUIState: %v", err)
	}
	if diff := cmp.Diff(st, got); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestEventLog(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	if err := s.AppendEvent(ctx, "checklist.saved", "c172", map[string]any{"stages": 2}); err != nil {
		t.Fatalf("AppendEvent: %v", err)
	}
	if err := s.AppendEvent(ctx, "aircraft.created", "pa28", nil); err != nil {
		t.Fatalf("AppendEvent: %v", err)
	}
	events, err := s.ReadEvents(ctx, 10)
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	for _, ev := range events {
		if ev.ID == "" || ev.TS.IsZero() || ev.Type == "" {
			t.Fatalf("incomplete event %+v", ev)
		}
	}
}
