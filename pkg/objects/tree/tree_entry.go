package tree

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/wizardgit/wgit/pkg/common/err"
	"github.com/wizardgit/wgit/pkg/objects"
)

const pkgName = "tree"

// TreeEntry represents a single entry in a tree object.
//
// Each entry contains:
// - mode: entry type and permissions as an octal digit string
// - name: file or directory name (a single path component)
// - sha: hash of the referenced object (40-character hex string)
//
// Serialized format inside the tree payload:
// [mode] [space] [name] [null byte] [20-byte SHA-1 binary]
//
// The identifier is stored as 20 raw bytes on disk but exposed as the
// 40-character hex form everywhere else; the conversion happens here at
// the codec boundary.
type TreeEntry struct {
	mode string
	name string
	sha  string
}

// NewTreeEntry creates a new TreeEntry with validation
func NewTreeEntry(mode, name, sha string) (*TreeEntry, error) {
	entry := &TreeEntry{}

	if err := entry.validateMode(mode); err != nil {
		return nil, err
	}
	entry.mode = mode

	if err := entry.validateName(name); err != nil {
		return nil, err
	}
	entry.name = name

	if err := entry.validateSha(sha); err != nil {
		return nil, err
	}
	entry.sha = strings.ToLower(sha)

	return entry, nil
}

// Mode returns the entry mode string as stored ("40000", "100644", ...)
func (e *TreeEntry) Mode() string {
	return e.mode
}

// Name returns the entry name
func (e *TreeEntry) Name() string {
	return e.name
}

// SHA returns the referenced object hash in hex form
func (e *TreeEntry) SHA() string {
	return e.sha
}

// FileMode returns the parsed mode
func (e *TreeEntry) FileMode() objects.FileMode {
	mode, _ := objects.FromOctalString(e.mode)
	return mode
}

// IsDirectory returns true if this entry references a subtree
func (e *TreeEntry) IsDirectory() bool {
	return e.FileMode().IsDirectory()
}

// ObjectType returns the type of object this entry references
func (e *TreeEntry) ObjectType() objects.ObjectType {
	return e.FileMode().ObjectType()
}

// Serialize serializes this entry for inclusion in a tree payload.
// Format: [mode] [space] [name] [null byte] [20-byte SHA-1 binary]
func (e *TreeEntry) Serialize() ([]byte, error) {
	shaBytes, decodeErr := hex.DecodeString(e.sha)
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode SHA: %w", decodeErr)
	}

	var buf bytes.Buffer
	buf.WriteString(e.mode)
	buf.WriteByte(objects.SpaceByte)
	buf.WriteString(e.name)
	buf.WriteByte(objects.NullByte)
	buf.Write(shaBytes)

	return buf.Bytes(), nil
}

// SortKey returns the name used for canonical ordering. Directories sort
// as if their name had a trailing slash, so "dir" (a tree) sorts after
// "dir.txt" but before "dir0".
func (e *TreeEntry) SortKey() string {
	if e.IsDirectory() {
		return e.name + "/"
	}
	return e.name
}

// CompareTo orders entries canonically by SortKey.
func (e *TreeEntry) CompareTo(other *TreeEntry) int {
	return strings.Compare(e.SortKey(), other.SortKey())
}

// DeserializeTreeEntry parses one entry starting at offset and returns
// the entry plus the offset of the byte following its 20-byte identifier.
func DeserializeTreeEntry(data []byte, offset int) (*TreeEntry, int, error) {
	spaceIndex := bytes.IndexByte(data[offset:], objects.SpaceByte)
	if spaceIndex == -1 {
		return nil, 0, err.New(pkgName, err.CodeMalformedObject, "parse_entry",
			"missing space after mode", nil)
	}
	spaceIndex += offset

	mode := string(data[offset:spaceIndex])

	nullIndex := bytes.IndexByte(data[spaceIndex+1:], objects.NullByte)
	if nullIndex == -1 {
		return nil, 0, err.New(pkgName, err.CodeMalformedObject, "parse_entry",
			"missing null byte after name", nil)
	}
	nullIndex += spaceIndex + 1

	name := string(data[spaceIndex+1 : nullIndex])

	start := nullIndex + 1
	end := start + objects.RawHashLength
	if end > len(data) {
		return nil, 0, err.New(pkgName, err.CodeMalformedObject, "parse_entry",
			"truncated entry: incomplete identifier", nil)
	}

	sha := hex.EncodeToString(data[start:end])

	entry, entryErr := NewTreeEntry(mode, name, sha)
	if entryErr != nil {
		return nil, 0, entryErr
	}

	return entry, end, nil
}

// validateMode validates the mode digit string.
func (e *TreeEntry) validateMode(mode string) error {
	if mode == "" {
		return err.New(pkgName, err.CodeMalformedObject, "validate",
			"entry mode cannot be empty", nil)
	}
	if _, parseErr := objects.FromOctalString(mode); parseErr != nil {
		return err.New(pkgName, err.CodeMalformedObject, "validate",
			fmt.Sprintf("invalid entry mode %q", mode), parseErr)
	}
	return nil
}

// validateName validates the name of the entry. A name is a single path
// component: separators and NUL bytes are not allowed.
func (e *TreeEntry) validateName(name string) error {
	if name == "" {
		return err.New(pkgName, err.CodeMalformedObject, "validate",
			"entry name cannot be empty", nil)
	}

	if strings.ContainsAny(name, "/\x00") {
		return err.New(pkgName, err.CodeMalformedObject, "validate",
			fmt.Sprintf("invalid characters in name %q", name), nil)
	}

	return nil
}

// validateSha validates the hex identifier of the entry.
func (e *TreeEntry) validateSha(sha string) error {
	if len(sha) != objects.HashLength {
		return err.New(pkgName, err.CodeMalformedObject, "validate",
			fmt.Sprintf("SHA must be %d characters long, got %d", objects.HashLength, len(sha)), nil)
	}

	if _, decodeErr := hex.DecodeString(sha); decodeErr != nil {
		return err.New(pkgName, err.CodeMalformedObject, "validate",
			"SHA must contain only hex characters", decodeErr)
	}

	return nil
}
