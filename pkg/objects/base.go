package objects

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/wizardgit/wgit/pkg/common/err"
)

const pkgName = "objects"

// ObjectType represents the type of a stored object
type ObjectType string

const (
	BlobType   ObjectType = "blob"
	TreeType   ObjectType = "tree"
	CommitType ObjectType = "commit"
	TagType    ObjectType = "tag"
)

const (
	NullByte  = byte(0)
	SpaceByte = byte(' ')
)

// String implements the Stringer interface
func (o ObjectType) String() string {
	return string(o)
}

// GitObject is the interface every stored object implements
type GitObject interface {
	// Type returns the object type
	Type() ObjectType

	// Content returns the raw content of the object (without header)
	Content() ([]byte, error)

	// Hash returns the SHA-1 hash of the object's serialized form
	Hash() (ObjectHash, error)

	// Size returns the size of the content in bytes
	Size() (int64, error)

	// Serialize writes the object in its canonical storage format
	Serialize(w io.Writer) error

	// String returns a human-readable representation
	String() string
}

// ParseObjectType converts a string to ObjectType. The set of types is
// closed; anything else fails with an UNKNOWN_OBJECT_TYPE error.
func ParseObjectType(s string) (ObjectType, error) {
	switch ObjectType(s) {
	case BlobType, TreeType, CommitType, TagType:
		return ObjectType(s), nil
	default:
		return "", err.New(pkgName, err.CodeUnknownObjectType, "parse_type",
			fmt.Sprintf("unknown object type: %q", s), nil)
	}
}

// ParseHeader parses the canonical object header "<type> <size>\0" at the
// start of data and returns the declared size and the offset where the
// content begins.
func ParseHeader(data []byte) (objType ObjectType, size int64, contentStart int, parseErr error) {
	nullIndex := bytes.IndexByte(data, NullByte)
	if nullIndex == -1 {
		return "", -1, -1, err.New(pkgName, err.CodeMalformedObject, "parse_header",
			"missing null byte", nil)
	}

	spaceIndex := bytes.IndexByte(data[:nullIndex], SpaceByte)
	if spaceIndex == -1 {
		return "", -1, -1, err.New(pkgName, err.CodeMalformedObject, "parse_header",
			"missing space", nil)
	}

	objType, typeErr := ParseObjectType(string(data[:spaceIndex]))
	if typeErr != nil {
		return "", -1, -1, typeErr
	}

	size, convErr := strconv.ParseInt(string(data[spaceIndex+1:nullIndex]), 10, 64)
	if convErr != nil || size < 0 {
		return "", -1, -1, err.New(pkgName, err.CodeMalformedObject, "parse_header",
			fmt.Sprintf("invalid size field %q", data[spaceIndex+1:nullIndex]), convErr)
	}

	return objType, size, nullIndex + 1, nil
}

// ParseContent validates the header against the expected type and returns
// the content bytes. The declared size must exactly equal the number of
// bytes following the null byte.
func ParseContent(data []byte, want ObjectType) ([]byte, error) {
	objType, size, contentStart, parseErr := ParseHeader(data)
	if parseErr != nil {
		return nil, parseErr
	}

	if objType != want {
		return nil, err.New(pkgName, err.CodeMalformedObject, "parse_content",
			fmt.Sprintf("object type mismatch: expected %s, got %s", want, objType), nil)
	}

	content := data[contentStart:]
	if int64(len(content)) != size {
		return nil, err.New(pkgName, err.CodeMalformedObject, "parse_content",
			fmt.Sprintf("size mismatch: header declares %d, payload is %d", size, len(content)), nil)
	}

	return content, nil
}

// CreateHeader builds the canonical header for an object of the given
// type and content size.
func CreateHeader(objType ObjectType, size int64) []byte {
	return []byte(fmt.Sprintf("%s %d%c", objType, size, NullByte))
}
