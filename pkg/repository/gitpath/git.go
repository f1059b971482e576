package gitpath

import "path/filepath"

// String returns the path as a string
func (gp GitPath) String() string {
	return string(gp)
}

// IsValid checks if this is a valid git path
func (gp GitPath) IsValid() bool {
	return len(gp) > 0
}

// Join joins path elements to the git path
func (gp GitPath) Join(elem ...string) GitPath {
	parts := append([]string{string(gp)}, elem...)
	return GitPath(filepath.Join(parts...))
}

// ToAbsolutePath converts to an absolute path
func (gp GitPath) ToAbsolutePath() AbsolutePath {
	return AbsolutePath(gp)
}

// Base returns the last element of the path
func (gp GitPath) Base() string {
	return filepath.Base(string(gp))
}

// Dir returns all but the last element of the path
func (gp GitPath) Dir() GitPath {
	return GitPath(filepath.Dir(string(gp)))
}

// ObjectsPath returns the path to the objects directory
func (gp GitPath) ObjectsPath() GitPath {
	return gp.Join(ObjectsDir)
}

// RefsPath returns the path to the refs directory
func (gp GitPath) RefsPath() GitPath {
	return gp.Join(RefsDir)
}

// HeadPath returns the path to the HEAD file
func (gp GitPath) HeadPath() GitPath {
	return gp.Join(HeadFile)
}

// ConfigPath returns the path to the config file
func (gp GitPath) ConfigPath() GitPath {
	return gp.Join(ConfigFile)
}

// DescriptionPath returns the path to the description file
func (gp GitPath) DescriptionPath() GitPath {
	return gp.Join(DescriptionFile)
}

// ObjectFilePath returns the sharded path to an object file given its hash.
// Example: hash "abcdef..." under ".git/objects" returns
// ".git/objects/ab/cdef..."
func (gp GitPath) ObjectFilePath(hash string) GitPath {
	if len(hash) != 40 {
		return ""
	}
	prefix := hash[:2]
	suffix := hash[2:]
	return gp.Join(prefix, suffix)
}
