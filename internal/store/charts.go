package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// chartExts are the image formats listed alongside an aircraft's checklist.
var chartExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
}

func (s Store) chartsDir(aircraft string) string {
	return filepath.Join(s.Dir, chartsDirName, aircraft)
}

// ListCharts returns an aircraft's chart file names, case-insensitively
// sorted. Non-image files in the directory are skipped.
func (s Store) ListCharts(aircraft string) ([]string, error) {
	entries, err := os.ReadDir(s.chartsDir(aircraft))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if chartExts[strings.ToLower(filepath.Ext(e.Name()))] {
			out = append(out, e.Name())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out, nil
}

// ChartPath returns the absolute path of one chart file.
func (s Store) ChartPath(aircraft, name string) string {
	return filepath.Join(s.chartsDir(aircraft), name)
}

// AddChart copies an image file into the aircraft's chart directory under its
// base name. Unsupported extensions and name collisions are rejected.
func (s Store) AddChart(aircraft, src string) error {
	name := filepath.Base(src)
	if !chartExts[strings.ToLower(filepath.Ext(name))] {
		return fmt.Errorf("unsupported chart format %q", filepath.Ext(name))
	}
	dest := s.ChartPath(aircraft, name)
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("chart %q already exists", name)
	}
	return copyFile(src, dest)
}

// RenameChart renames a chart in place. The new name keeps chart semantics:
// it must carry a supported extension and not collide.
func (s Store) RenameChart(aircraft, oldName, newName string) error {
	if !chartExts[strings.ToLower(filepath.Ext(newName))] {
		return fmt.Errorf("unsupported chart format %q", filepath.Ext(newName))
	}
	dest := s.ChartPath(aircraft, newName)
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("chart %q already exists", newName)
	}
	return os.Rename(s.ChartPath(aircraft, oldName), dest)
}

func (s Store) DeleteChart(aircraft, name string) error {
	return os.Remove(s.ChartPath(aircraft, name))
}

// ClearCharts removes the aircraft's whole chart directory.
func (s Store) ClearCharts(aircraft string) error {
	return os.RemoveAll(s.chartsDir(aircraft))
}

func copyFile(src string, dest string) error {
	src = filepath.Clean(src)
	dest = filepath.Clean(dest)
	if src == "" || dest == "" {
		return errors.New("copy file: missing src/dest")
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
