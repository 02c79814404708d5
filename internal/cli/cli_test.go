package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func runCmd(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--dir", dir}, args...))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("fdk %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func runCmdErr(t *testing.T, dir string, args ...string) error {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--dir", dir}, args...))
	err := cmd.Execute()
	if err == nil {
		t.Fatalf("fdk %v: expected an error\n%s", args, out.String())
	}
	return err
}

func decodeData[T any](t *testing.T, raw string) T {
	t.Helper()
	var payload struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return payload.Data
}

func TestAircraftLifecycle(t *testing.T) {
	dir := t.TempDir()

	runCmd(t, dir, "aircraft", "create", "c172")
	runCmdErr(t, dir, "aircraft", "create", "c172") // duplicate

	names := decodeData[[]string](t, runCmd(t, dir, "aircraft", "list"))
	if diff := cmp.Diff([]string{"c172"}, names); diff != "" {
		t.Fatalf("aircraft mismatch (-want +got):\n%s", diff)
	}

	runCmd(t, dir, "aircraft", "delete", "c172")
	names = decodeData[[]string](t, runCmd(t, dir, "aircraft", "list"))
	if len(names) != 0 {
		t.Fatalf("aircraft after delete = %v", names)
	}
	runCmdErr(t, dir, "aircraft", "delete", "c172") // already gone
}

func TestStageAndItemEditing(t *testing.T) {
	dir := t.TempDir()
	runCmd(t, dir, "aircraft", "create", "c172")

	runCmd(t, dir, "stages", "add", "c172", "Run-up")
	stages := decodeData[[]string](t, runCmd(t, dir, "stages", "list", "c172"))
	if diff := cmp.Diff([]string{"Stage 1", "Run-up"}, stages); diff != "" {
		t.Fatalf("stages mismatch (-want +got):\n%s", diff)
	}

	runCmd(t, dir, "stages", "rename", "c172", "Stage 1", "Preflight")
	runCmd(t, dir, "items", "set-text", "c172", "Preflight", "0", "anti-ice")
	runCmd(t, dir, "items", "set-optional", "c172", "Preflight", "0", "true")
	runCmd(t, dir, "items", "add", "c172", "Preflight", "engine anti-ice", "--after", "0")
	runCmd(t, dir, "items", "indent", "c172", "Preflight", "1")

	rows := decodeData[[]itemRow](t, runCmd(t, dir, "items", "list", "c172", "Preflight"))
	want := []itemRow{
		{Index: 0, Text: "anti-ice", Level: 0, Optional: true},
		{Index: 1, Text: "engine anti-ice", Level: 1, Optional: true, Locked: true},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}

	// A locked item rejects optional edits; the first node rejects indents.
	runCmdErr(t, dir, "items", "set-optional", "c172", "Preflight", "1", "false")
	runCmdErr(t, dir, "items", "indent", "c172", "Preflight", "0")

	// Deleting down to the last stage is protected.
	runCmd(t, dir, "stages", "delete", "c172", "Run-up")
	runCmdErr(t, dir, "stages", "delete", "c172", "Preflight")
}

func TestATCCommands(t *testing.T) {
	dir := t.TempDir()
	runCmd(t, dir, "aircraft", "create", "c172")

	runCmd(t, dir, "atc", "add", "c172", "taxi request",
		"--stage", "Stage 1", "--cn", "请求滑行", "--en", "request taxi")
	runCmdErr(t, dir, "atc", "add", "c172", "taxi request", "--stage", "Stage 1", "--en", "again")
	runCmdErr(t, dir, "atc", "add", "c172", "empty one", "--stage", "Stage 1")

	runCmd(t, dir, "atc", "update", "c172", "Stage 1", "taxi request", "--en", "ground, request taxi")
	runCmd(t, dir, "atc", "remove", "c172", "Stage 1", "taxi request")
	runCmdErr(t, dir, "atc", "remove", "c172", "Stage 1", "taxi request")
}

func TestNotesCommands(t *testing.T) {
	dir := t.TempDir()

	runCmd(t, dir, "notes", "set", "remember fuel prices")
	got := decodeData[string](t, runCmd(t, dir, "notes", "show"))
	if got != "remember fuel prices" {
		t.Fatalf("global note = %q", got)
	}

	runCmd(t, dir, "notes", "set", "c172", "Preflight", "sample both tanks")
	got = decodeData[string](t, runCmd(t, dir, "notes", "show", "c172", "Preflight"))
	if got != "sample both tanks" {
		t.Fatalf("stage note = %q", got)
	}

	runCmd(t, dir, "notes", "clear", "c172")
	got = decodeData[string](t, runCmd(t, dir, "notes", "show", "c172", "Preflight"))
	if got != "" {
		t.Fatalf("stage note after clear = %q", got)
	}
	got = decodeData[string](t, runCmd(t, dir, "notes", "show"))
	if got != "remember fuel prices" {
		t.Fatalf("global note should survive an aircraft clear, got %q", got)
	}
}

func TestEventsRecorded(t *testing.T) {
	dir := t.TempDir()
	runCmd(t, dir, "aircraft", "create", "c172")
	runCmd(t, dir, "stages", "add", "c172", "Run-up")

	type event struct {
		Type     string `json:"type"`
		EntityID string `json:"entityId"`
	}
	events := decodeData[[]event](t, runCmd(t, dir, "events"))
	if len(events) < 2 {
		t.Fatalf("got %d events, want at least 2", len(events))
	}
	seen := map[string]bool{}
	for _, ev := range events {
		seen[ev.Type] = true
	}
	if !seen["aircraft.create"] || !seen["stage.add"] {
		t.Fatalf("event types = %v", seen)
	}
}
