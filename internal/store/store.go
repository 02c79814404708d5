package store

import (
	"os"
	"path/filepath"
)

const (
	checklistsDirName = "checklists"
	atcDirName        = "atc"
	notesDirName      = "notes"
	chartsDirName     = "charts"
)

// Store is the on-disk data root. Each aircraft owns a subdirectory per
// concern: checklists/<ac>/checklist.json, atc/<ac>/atc.json, flat note files
// under notes/ and chart images under charts/<ac>/.
type Store struct {
	Dir string
}

// DiscoverDir walks upward from start looking for an existing .fdk data
// directory, the same way repo-scoped tools find their root.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, ".fdk")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DefaultDir resolves the data root: an FDK_DIR override, an ancestor .fdk
// directory, or .fdk under the current directory.
func DefaultDir() (string, error) {
	if dir := os.Getenv("FDK_DIR"); dir != "" {
		return dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, ".fdk"), nil
}

func (s Store) Ensure() error {
	for _, sub := range []string{"", checklistsDirName, atcDirName, notesDirName, chartsDirName} {
		if err := os.MkdirAll(filepath.Join(s.Dir, sub), 0o755); err != nil {
			return err
		}
	}
	return nil
}
