package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// Copies a file, overwriting dst if it exists. The directory of dst must
// already exist; it is never created here.
func CopyFile(fsys afero.Fs, src, dst string) error {
	// Open the source file
	srcFile, err := fsys.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("getting source file info: %w", err)
	}
	if srcInfo.IsDir() {
		return fmt.Errorf("expected file but found directory: %s", src)
	}

	// Create or truncate the destination file
	dstFile, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}

	// Copy
	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return fmt.Errorf("copying file: %w", err)
	}

	if err := dstFile.Close(); err != nil {
		return fmt.Errorf("closing destination file: %w", err)
	}
	return nil
}
