package copier

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/zinrai/iracing-wheel-config/internal/finder"
	"github.com/zinrai/iracing-wheel-config/internal/logger"
	"github.com/zinrai/iracing-wheel-config/internal/utils"
)

// ErrDestinationMissing is returned when a vehicle directory does not exist.
// Vehicle directories are never created.
var ErrDestinationMissing = errors.New("destination directory does not exist")

// Reports which vehicle stopped the apply loop and which ones had already
// received the configuration
type ApplyError struct {
	Vehicle string
	Applied []string
	Err     error
}

func (e *ApplyError) Error() string {
	applied := "none"
	if len(e.Applied) > 0 {
		applied = strings.Join(e.Applied, ", ")
	}
	return fmt.Sprintf("applying configuration to %s (already applied: %s): %v", e.Vehicle, applied, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// Copies the controls file and then the calibration file from srcDir into
// dstDir, overwriting files with the same names. There is no rollback: when
// the second copy fails the first one stays in place.
func CopyConfig(fsys afero.Fs, srcDir, dstDir string) error {
	if err := validateDestination(fsys, dstDir); err != nil {
		return err
	}

	for _, name := range finder.RequiredFiles() {
		src := filepath.Join(srcDir, name)
		dst := filepath.Join(dstDir, name)

		logger.Debug("Copying file", "src", src, "dest", dst)
		if err := utils.CopyFile(fsys, src, dst); err != nil {
			return utils.NewError(utils.ErrCopy, fmt.Sprintf("copying %s to %s", name, dstDir), err)
		}
	}
	return nil
}

// Copies cfg into setupsRoot/<vehicle> for every vehicle, in order.
// Duplicates are copied again. The first failure stops the loop and is
// returned as an *ApplyError; the returned slice lists the vehicles that
// were applied either way.
func Apply(fsys afero.Fs, cfg finder.ConfigDir, setupsRoot string, vehicles []string) ([]string, error) {
	applied := make([]string, 0, len(vehicles))
	log := logger.With("config", cfg.Name)

	for _, vehicle := range vehicles {
		dst := filepath.Join(setupsRoot, vehicle)

		if err := CopyConfig(fsys, cfg.Path, dst); err != nil {
			log.Error("Error applying configuration", "vehicle", vehicle, "error", err)
			return applied, &ApplyError{
				Vehicle: vehicle,
				Applied: append([]string(nil), applied...),
				Err:     err,
			}
		}

		log.Info("Applied configuration", "vehicle", vehicle)
		applied = append(applied, vehicle)
	}

	return applied, nil
}

// Validates that the destination exists and is a directory
func validateDestination(fsys afero.Fs, dstDir string) error {
	info, err := fsys.Stat(dstDir) // Stat follows symlinks
	if err != nil {
		if errors.Is(err, afero.ErrFileNotFound) {
			return utils.NewError(utils.ErrFileNotFound, dstDir, ErrDestinationMissing)
		}
		return utils.NewFileNotFoundError(dstDir, err)
	}

	if !info.IsDir() {
		return utils.NewError(utils.ErrFileNotFound, fmt.Sprintf("destination is not a directory: %s", dstDir), nil)
	}
	return nil
}
