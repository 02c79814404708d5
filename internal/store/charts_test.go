package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeTempImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("not really pixels"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAddAndListCharts(t *testing.T) {
	s := testStore(t)
	if err := s.AddChart("c172", writeTempImage(t, "Taxi.PNG")); err != nil {
		t.Fatalf("AddChart: %v", err)
	}
	if err := s.AddChart("c172", writeTempImage(t, "approach.jpg")); err != nil {
		t.Fatalf("AddChart: %v", err)
	}
	if err := s.AddChart("c172", writeTempImage(t, "notes.txt")); err == nil {
		t.Fatal("non-image file should be rejected")
	}
	if err := s.AddChart("c172", writeTempImage(t, "approach.jpg")); err == nil {
		t.Fatal("duplicate chart name should be rejected")
	}

	got, err := s.ListCharts("c172")
	if err != nil {
		t.Fatalf("ListCharts: %v", err)
	}
	// Case-insensitive order.
	want := []string{"approach.jpg", "Taxi.PNG"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("charts mismatch (-want +got):\n%s", diff)
	}
}

func TestListChartsMissingAircraft(t *testing.T) {
	s := testStore(t)
	got, err := s.ListCharts("ghost")
	if err != nil {
		t.Fatalf("ListCharts: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("charts = %v, want none", got)
	}
}

func TestRenameAndDeleteChart(t *testing.T) {
	s := testStore(t)
	if err := s.AddChart("c172", writeTempImage(t, "a.png")); err != nil {
		t.Fatalf("AddChart: %v", err)
	}
	if err := s.AddChart("c172", writeTempImage(t, "b.png")); err != nil {
		t.Fatalf("AddChart: %v", err)
	}

	if err := s.RenameChart("c172", "a.png", "a.txt"); err == nil {
		t.Fatal("rename to a non-image extension should be rejected")
	}
	if err := s.RenameChart("c172", "a.png", "b.png"); err == nil {
		t.Fatal("rename onto an existing chart should be rejected")
	}
	if err := s.RenameChart("c172", "a.png", "ground.png"); err != nil {
		t.Fatalf("RenameChart: %v", err)
	}

	if err := s.DeleteChart("c172", "b.png"); err != nil {
		t.Fatalf("DeleteChart: %v", err)
	}
	got, err := s.ListCharts("c172")
	if err != nil {
		t.Fatalf("ListCharts: %v", err)
	}
	if diff := cmp.Diff([]string{"ground.png"}, got); diff != "" {
		t.Fatalf("charts mismatch (-want +got):\n%s", diff)
	}

	if err := s.ClearCharts("c172"); err != nil {
		t.Fatalf("ClearCharts: %v", err)
	}
	got, err = s.ListCharts("c172")
	if err != nil || len(got) != 0 {
		t.Fatalf("charts after clear = %v, %v", got, err)
	}
}
