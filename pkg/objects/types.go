package objects

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ObjectContent represents raw object data (without header).
// For a blob it is the file data, for a tree the serialized entries,
// for a commit or tag the header block plus message.
type ObjectContent []byte

// CompressedData represents the zlib-compressed bytes stored on disk.
type CompressedData []byte

// SerializedObject represents an object in canonical serialized form:
// "<type> <size>\0<content>".
type SerializedObject []byte

// ObjectContent methods

// Bytes returns the underlying byte slice
func (oc ObjectContent) Bytes() []byte {
	return []byte(oc)
}

// Size returns the size of the content in bytes
func (oc ObjectContent) Size() int64 {
	return int64(len(oc))
}

// SerializedObject methods

// Bytes returns the underlying byte slice
func (so SerializedObject) Bytes() []byte {
	return []byte(so)
}

// NewSerializedObject builds the canonical serialized form from a type
// and content pair.
func NewSerializedObject(objType ObjectType, content ObjectContent) SerializedObject {
	header := CreateHeader(objType, content.Size())
	full := make([]byte, 0, len(header)+len(content))
	full = append(full, header...)
	full = append(full, content...)
	return SerializedObject(full)
}

// ParseHeader parses the object header.
// Returns the object type, declared content size, and content offset.
func (so SerializedObject) ParseHeader() (ObjectType, int64, int, error) {
	return ParseHeader([]byte(so))
}

// Content extracts the content portion, validating the declared size
// against the actual payload length.
func (so SerializedObject) Content() (ObjectContent, error) {
	objType, _, _, err := so.ParseHeader()
	if err != nil {
		return nil, err
	}
	content, err := ParseContent([]byte(so), objType)
	if err != nil {
		return nil, err
	}
	return ObjectContent(content), nil
}

// Hash returns the SHA-1 hash of the serialized bytes.
func (so SerializedObject) Hash() ObjectHash {
	return NewObjectHash([]byte(so))
}

// Compress compresses the serialized object with zlib, the on-disk
// encoding of loose objects.
func (so SerializedObject) Compress() (CompressedData, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create compressor: %w", err)
	}

	if _, err := w.Write(so); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to compress data: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize compression: %w", err)
	}

	return CompressedData(buf.Bytes()), nil
}

// CompressedData methods

// Bytes returns the underlying byte slice
func (cd CompressedData) Bytes() []byte {
	return []byte(cd)
}

// Decompress inflates the zlib-compressed data back to the serialized
// object bytes.
func (cd CompressedData) Decompress() (SerializedObject, error) {
	r, err := zlib.NewReader(bytes.NewReader(cd))
	if err != nil {
		return nil, fmt.Errorf("failed to open decompressor: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress data: %w", err)
	}

	return SerializedObject(data), nil
}
