package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// Helps manage paths consistently
type PathResolver struct {
	BaseDir string
}

func NewPathResolver(baseDir string) (*PathResolver, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	return &PathResolver{
		BaseDir: abs,
	}, nil
}

// Converts a relative path to an absolute path. A leading "~" is replaced
// by the home directory; empty paths stay empty.
func (p *PathResolver) ResolvePath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.BaseDir, path)
}
