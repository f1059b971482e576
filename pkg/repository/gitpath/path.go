package gitpath

import (
	"fmt"
	"path/filepath"
)

// RepositoryPath represents an absolute path to a repository's working
// directory root. Example: "/home/user/myproject"
type RepositoryPath string

// GitPath represents a path inside the .git control directory.
// Example: "/home/user/myproject/.git/objects"
type GitPath string

// AbsolutePath is any absolute filesystem path.
type AbsolutePath string

// RefPath represents a reference name.
// Examples: "refs/heads/main", "refs/tags/v1.0.0", "HEAD"
type RefPath string

// RepositoryPath methods

// String returns the path as a string
func (rp RepositoryPath) String() string {
	return string(rp)
}

// IsValid checks if this is a valid absolute path
func (rp RepositoryPath) IsValid() bool {
	return filepath.IsAbs(string(rp))
}

// Join joins path elements to the repository path
func (rp RepositoryPath) Join(elem ...string) AbsolutePath {
	parts := append([]string{string(rp)}, elem...)
	return AbsolutePath(filepath.Join(parts...))
}

// GitPath returns the path to the .git control directory
func (rp RepositoryPath) GitPath() GitPath {
	return GitPath(filepath.Join(string(rp), GitDir))
}

// NewRepositoryPath creates a new RepositoryPath from a string. The path
// is made absolute and symlink-free so that walking to the parent is
// guaranteed to terminate at the filesystem root.
func NewRepositoryPath(path string) (RepositoryPath, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = resolved
	}
	return RepositoryPath(absPath), nil
}

// AbsolutePath methods

// String returns the path as a string
func (ap AbsolutePath) String() string {
	return string(ap)
}

// IsValid checks if this is a valid path
func (ap AbsolutePath) IsValid() bool {
	return len(ap) > 0
}

// Join joins path elements to the path
func (ap AbsolutePath) Join(elem ...string) AbsolutePath {
	parts := append([]string{string(ap)}, elem...)
	return AbsolutePath(filepath.Join(parts...))
}

// Base returns the last element of the path
func (ap AbsolutePath) Base() string {
	return filepath.Base(string(ap))
}

// Dir returns all but the last element of the path
func (ap AbsolutePath) Dir() AbsolutePath {
	return AbsolutePath(filepath.Dir(string(ap)))
}
