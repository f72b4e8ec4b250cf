package store

import (
	"path/filepath"

	"github.com/footprint-tools/cmdtree/internal/paths"
)

func DBPath() string {
	return filepath.Join(paths.AppDataDir(), "history.db")
}
