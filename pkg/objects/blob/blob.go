package blob

import (
	"fmt"
	"io"

	"github.com/wizardgit/wgit/pkg/objects"
)

// Blob represents opaque file content. A blob has no internal structure:
// its payload is the file's bytes verbatim.
type Blob struct {
	data []byte
	sha  *objects.ObjectHash
}

// NewBlob creates a new Blob from raw data
func NewBlob(data []byte) *Blob {
	content := make([]byte, len(data))
	copy(content, data)
	return &Blob{data: content}
}

// ParseBlob parses a blob object from serialized data (with header)
func ParseBlob(data []byte) (*Blob, error) {
	content, err := objects.ParseContent(data, objects.BlobType)
	if err != nil {
		return nil, err
	}

	b := NewBlob(content)
	sha := objects.NewObjectHash(data)
	b.sha = &sha
	return b, nil
}

// Type returns the object type
func (b *Blob) Type() objects.ObjectType {
	return objects.BlobType
}

// Content returns the raw content of the blob
func (b *Blob) Content() ([]byte, error) {
	return b.data, nil
}

// Hash returns the SHA-1 hash of the blob
func (b *Blob) Hash() (objects.ObjectHash, error) {
	if b.sha != nil {
		return *b.sha, nil
	}

	sha := objects.ComputeObjectHash(objects.BlobType, b.data)
	b.sha = &sha
	return sha, nil
}

// Size returns the size of the content in bytes
func (b *Blob) Size() (int64, error) {
	return int64(len(b.data)), nil
}

// Serialize writes the blob in its canonical storage format
func (b *Blob) Serialize(w io.Writer) error {
	header := objects.CreateHeader(objects.BlobType, int64(len(b.data)))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write blob header: %w", err)
	}

	if _, err := w.Write(b.data); err != nil {
		return fmt.Errorf("failed to write blob content: %w", err)
	}

	return nil
}

// String returns a human-readable representation
func (b *Blob) String() string {
	hash, err := b.Hash()
	if err != nil {
		return fmt.Sprintf("Blob{size: %d, error: %v}", len(b.data), err)
	}
	return fmt.Sprintf("Blob{size: %d, hash: %s}", len(b.data), hash.Short())
}
