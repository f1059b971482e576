package objects

import (
	"fmt"
	"os"
	"strconv"
)

// FileMode represents a tree entry mode (type + permissions).
// The file type lives in the upper 4 bits and permissions in the lower
// bits, matching the octal mode strings stored inside tree objects.
type FileMode uint32

const (
	FileModeTypeMask FileMode = 0xF000 // Upper 4 bits (bits 12-15)
	FileModePermMask FileMode = 0x01FF // Lower 9 bits (permissions)
	FileModeExecMask FileMode = 0x0049 // Execute bits (owner/group/other)

	FileModeTypeRegular FileMode = 0x8000
	FileModeTypeSymlink FileMode = 0xA000
	FileModeTypeGitlink FileMode = 0xE000
	FileModeTypeDir     FileMode = 0x4000

	// Common mode values
	FileModeRegular    FileMode = 0o100644 // Regular file, rw-r--r--
	FileModeExecutable FileMode = 0o100755 // Executable file, rwxr-xr-x
	FileModeSymlink    FileMode = 0o120000 // Symbolic link
	FileModeGitlink    FileMode = 0o160000 // Gitlink (submodule)
	FileModeDirectory  FileMode = 0o040000 // Directory (used in trees)
)

// Type returns the file type portion of the mode.
func (m FileMode) Type() FileMode {
	return m & FileModeTypeMask
}

// Permissions returns the permission bits.
func (m FileMode) Permissions() FileMode {
	return m & FileModePermMask
}

// IsRegular returns true if this is a regular file.
func (m FileMode) IsRegular() bool {
	return m.Type() == FileModeTypeRegular
}

// IsSymlink returns true if this is a symbolic link.
func (m FileMode) IsSymlink() bool {
	return m.Type() == FileModeTypeSymlink
}

// IsGitlink returns true if this is a gitlink (submodule).
func (m FileMode) IsGitlink() bool {
	return m.Type() == FileModeTypeGitlink
}

// IsDirectory returns true if this is a directory.
func (m FileMode) IsDirectory() bool {
	return m.Type() == FileModeTypeDir
}

// IsExecutable returns true if the file has execute permissions.
func (m FileMode) IsExecutable() bool {
	return (m & FileModeExecMask) != 0
}

// ObjectType returns the type of object a tree entry with this mode
// references: tree for directories, commit for gitlinks, blob otherwise.
func (m FileMode) ObjectType() ObjectType {
	switch m.Type() {
	case FileModeTypeDir:
		return TreeType
	case FileModeTypeGitlink:
		return CommitType
	default:
		return BlobType
	}
}

// String returns a human-readable representation of the file mode.
func (m FileMode) String() string {
	switch m.Type() {
	case FileModeTypeRegular:
		return fmt.Sprintf("regular(%o)", m.Permissions())
	case FileModeTypeSymlink:
		return "symlink"
	case FileModeTypeGitlink:
		return "gitlink"
	case FileModeTypeDir:
		return "directory"
	default:
		return fmt.Sprintf("unknown(%o)", m)
	}
}

// ToOctalString returns the mode as the octal string used in tree objects
// (e.g. "100644", "040000").
func (m FileMode) ToOctalString() string {
	return fmt.Sprintf("%06o", m)
}

// FromOctalString parses a mode from an octal string. Tree objects store
// directory modes without the leading zero ("40000"), so short strings
// are accepted.
func FromOctalString(s string) (FileMode, error) {
	if len(s) == 0 || len(s) > 6 {
		return 0, fmt.Errorf("invalid mode string %q", s)
	}
	mode, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid mode string %q: %w", s, err)
	}
	return FileMode(mode), nil
}

// FromOSFileMode converts os.FileMode to a tree entry FileMode.
func FromOSFileMode(mode os.FileMode) FileMode {
	if mode&os.ModeSymlink != 0 {
		return FileModeSymlink
	}
	if mode&0o111 != 0 { // Any execute bit set
		return FileModeExecutable
	}
	return FileModeRegular
}
