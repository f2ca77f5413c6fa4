package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/automoto/pacdots/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelFS is the embedded file system level paths are resolved against.
func LevelFS() fs.FS {
	return assetFS
}

// LoadLevel reads a TMX level, e.g. "levels/level01.tmx". Embedded levels
// win; any other path is read from disk.
func LoadLevel(levelPath string) (*leveldata.Level, error) {
	if _, err := fs.Stat(assetFS, levelPath); err == nil {
		return leveldata.Load(assetFS, levelPath)
	}
	return leveldata.Load(os.DirFS(filepath.Dir(levelPath)), filepath.Base(levelPath))
}

// LevelPaths lists every embedded level in name order.
func LevelPaths() ([]string, error) {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			paths = append(paths, path.Join("levels", entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
