package finder

import (
	"os"

	"github.com/spf13/afero"

	"github.com/zinrai/iracing-wheel-config/internal/logger"
	"github.com/zinrai/iracing-wheel-config/internal/utils"
)

// Lists the names of the immediate children of dir, not recursive.
// Errors reading dir are returned to the caller, never recovered here.
func ListEntries(fsys afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, utils.NewFileNotFoundError(dir, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}

	logger.Debug("Directory entries", "path", dir, "count", len(names))
	return names, nil
}

// Reports whether path is a directory. A dangling symlink is not an error,
// just not a directory.
func IsDirectory(fsys afero.Fs, path string) (bool, error) {
	info, err := fsys.Stat(path) // Stat follows symlinks
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, utils.NewFileNotFoundError(path, err)
	}
	return info.IsDir(), nil
}
