package tui

import (
	"strings"
	"testing"

	"fdk/internal/model"
	"fdk/internal/store"
)

func testModel(t *testing.T) *appModel {
	t.Helper()
	setGlyphs(glyphSetASCII)
	s := store.Store{Dir: t.TempDir()}
	doc := model.Checklist{Stages: []model.Stage{
		{Name: "Preflight", Items: []model.Item{
			{Text: "anti-ice", Level: 0, Optional: true},
			{Text: "engine anti-ice", Level: 1},
			{Text: "master on", Level: 0},
		}},
		{Name: "Run-up", Items: []model.Item{
			{Text: "mags check", Level: 0},
		}},
	}}
	if err := s.WriteChecklist("c172", doc); err != nil {
		t.Fatalf("WriteChecklist: %v", err)
	}
	m, err := newAppModel(s)
	if err != nil {
		t.Fatalf("newAppModel: %v", err)
	}
	m.width, m.height = 100, 30
	m.resizeSide()
	m.syncSide()
	return m
}

func TestHeaderShowsAircraftAndStage(t *testing.T) {
	m := testModel(t)
	got := m.headerLine()
	if !strings.Contains(got, "c172 - Preflight") {
		t.Fatalf("header = %q, want aircraft - stage label", got)
	}
	if !strings.Contains(got, "stage 1/2") {
		t.Fatalf("header = %q, want stage position", got)
	}
}

func TestRowLineGlyphs(t *testing.T) {
	m := testModel(t)

	// The child of the unchecked optional parent renders locked.
	if got := m.rowLine(1, 80, false); !strings.Contains(got, "[-]") {
		t.Fatalf("row = %q, want lock glyph", got)
	}
	if got := m.rowLine(0, 80, false); !strings.Contains(got, "(optional)") {
		t.Fatalf("row = %q, want optional marker", got)
	}

	if err := m.sess.Toggle(2); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if got := m.rowLine(2, 80, false); !strings.Contains(got, "[x]") {
		t.Fatalf("row = %q, want checked glyph", got)
	}
}

func TestRowLineIndentsByLevel(t *testing.T) {
	m := testModel(t)
	if got := m.rowLine(1, 80, false); !strings.Contains(got, "  [-]") {
		t.Fatalf("row = %q, want level-1 indent before the glyph", got)
	}
}

func TestSelectStageOffsetRefreshesHeader(t *testing.T) {
	m := testModel(t)
	m.selectStageOffset(1)
	if got := m.headerLine(); !strings.Contains(got, "Run-up") {
		t.Fatalf("header = %q, want Run-up after stage jump", got)
	}
	// No wraparound past the last stage.
	m.selectStageOffset(1)
	if got := m.headerLine(); !strings.Contains(got, "Run-up") {
		t.Fatalf("header = %q, stage jump past the end must be a no-op", got)
	}
}

func TestViewShowsResetConfirm(t *testing.T) {
	m := testModel(t)
	m.confirmReset = true
	got := m.View()
	if !strings.Contains(got, "Reset checks") {
		t.Fatalf("view should render the reset confirmation, got:\n%s", got)
	}
}
