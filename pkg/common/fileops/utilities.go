package fileops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wizardgit/wgit/pkg/repository/gitpath"
)

// Exists reports whether a file or directory exists at the path.
func Exists(p gitpath.AbsolutePath) (bool, error) {
	_, err := os.Stat(p.String())
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", p, err)
	}
	return true, nil
}

// EnsureDir creates the directory and any missing parents.
func EnsureDir(p gitpath.AbsolutePath) error {
	if err := os.MkdirAll(p.String(), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", p, err)
	}
	return nil
}

// EnsureParentDir creates the parent directory of the path and any
// missing parents.
func EnsureParentDir(p gitpath.AbsolutePath) error {
	dir := filepath.Dir(p.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReadString reads the file and returns its content as a string.
func ReadString(p gitpath.AbsolutePath) (string, error) {
	data, err := os.ReadFile(p.String())
	if err != nil {
		return "", fmt.Errorf("read %s: %w", p, err)
	}
	return string(data), nil
}

// ReadBytes reads the file and returns its content.
func ReadBytes(p gitpath.AbsolutePath) ([]byte, error) {
	data, err := os.ReadFile(p.String())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return data, nil
}

// WriteString writes a string to the file atomically.
func WriteString(p gitpath.AbsolutePath, content string) error {
	return AtomicWrite(p, []byte(content), 0o644)
}

// WriteReadOnly writes data to the file atomically with read-only permissions.
// Used for object files, which are immutable once written.
func WriteReadOnly(p gitpath.AbsolutePath, data []byte) error {
	return AtomicWrite(p, data, 0o444)
}

// IsDirectory reports whether the path exists and is a directory.
func IsDirectory(p gitpath.AbsolutePath) (bool, error) {
	info, err := os.Stat(p.String())
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", p, err)
	}
	return info.IsDir(), nil
}

// SafeRemove removes the file if it exists; missing files are not an error.
func SafeRemove(p gitpath.AbsolutePath) error {
	if err := os.Remove(p.String()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", p, err)
	}
	return nil
}
