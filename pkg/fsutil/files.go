// Package fsutil provides utility functions and constants for file system
// operations.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// EnsureDir creates a directory and all necessary parent directories with
// default permissions if they don't exist. Returns an error if the directory
// cannot be created or if the path exists but is not a directory.
func EnsureDir(path string) error {
	return os.MkdirAll(path, DirModeDefault)
}

// EnsureFileDir creates the parent directory of a file path if it doesn't
// exist.
func EnsureFileDir(filePath string) error {
	return EnsureDir(filepath.Dir(filePath))
}

// Move moves a file from src to dst. It first attempts os.Rename for an
// atomic operation and falls back to copy + delete when the rename fails
// across filesystem boundaries.
func Move(src, dst string) error {
	if src == "" || dst == "" {
		return fmt.Errorf("source and destination paths cannot be empty")
	}

	if err := EnsureFileDir(dst); err != nil {
		return fmt.Errorf("failed to create destination directory for %s: %w", dst, err)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossFilesystemError(err) {
		return fmt.Errorf("failed to rename %s to %s: %w", src, dst, err)
	}

	if err := Copy(src, dst); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("failed to remove source file %s after copy: %w", src, err)
	}
	return nil
}

// isCrossFilesystemError reports whether an error from os.Rename indicates a
// cross-filesystem boundary that requires fallback to copy + delete.
func isCrossFilesystemError(err error) bool {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		if errno, ok := linkErr.Err.(syscall.Errno); ok {
			return errno == syscall.EXDEV
		}
	}
	return false
}

// Copy copies the contents of srcFile to dstFile.
func Copy(srcFile, dstFile string) error {
	src, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer src.Close()

	dst, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy from %s to %s: %w", srcFile, dstFile, err)
	}
	return nil
}
