package finder

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"

	"github.com/zinrai/iracing-wheel-config/internal/logger"
)

// Fixed, case-sensitive names of the two files that make up a
// configuration bundle
const (
	ControlsFile    = "controls.cfg"
	CalibrationFile = "joyCalib.yaml"
)

// Returns the required file names in copy order
func RequiredFiles() []string {
	return []string{ControlsFile, CalibrationFile}
}

// A configuration directory that passed validation
type ConfigDir struct {
	Name string
	Path string
}

func (c ConfigDir) String() string {
	return c.Name
}

// Checks whether dir directly contains both the controls file and the
// calibration file. Extra entries are ignored. An error is returned only
// when dir cannot be read.
func IsValidConfig(fsys afero.Fs, dir string) (bool, error) {
	entries, err := ListEntries(fsys, dir)
	if err != nil {
		return false, err
	}

	for _, required := range RequiredFiles() {
		if !slices.Contains(entries, required) {
			logger.Debug("Configuration file missing", "dir", dir, "file", required)
			return false, nil
		}
	}
	return true, nil
}

// Finds the valid configuration directories below root, in listing order.
// A status line for every candidate is written to report; rejected
// candidates are not an error.
func DiscoverConfigs(fsys afero.Fs, root string, report io.Writer) ([]ConfigDir, error) {
	names, err := ListEntries(fsys, root)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(report, "Configuration sets discovered: %d\n", len(names))

	accepted := make([]ConfigDir, 0, len(names))
	for _, name := range names {
		path := filepath.Join(root, name)

		isDir, err := IsDirectory(fsys, path)
		if err != nil {
			return nil, err
		}
		if !isDir {
			fmt.Fprintf(report, "%s is not a directory\n", name)
			continue
		}

		valid, err := IsValidConfig(fsys, path)
		if err != nil {
			return nil, err
		}
		if !valid {
			fmt.Fprintf(report, "%s does not contain necessary files\n", name)
			continue
		}

		fmt.Fprintf(report, "%s contains necessary files\n", name)
		accepted = append(accepted, ConfigDir{Name: name, Path: path})
	}

	logger.Debug("Configuration discovery finished", "root", root, "accepted", len(accepted))
	return accepted, nil
}
