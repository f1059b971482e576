package objects

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
)

// ObjectHash represents a SHA-1 hash of an object (40-character hex string)
// Example: "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391"
type ObjectHash string

// RawHash represents a SHA-1 hash as a 20-byte array, the encoding used
// inside tree entries.
type RawHash [20]byte

const (
	// HashLength is the length of a full SHA-1 hash in hex (40 characters)
	HashLength = 40
	// RawHashLength is the length of a SHA-1 hash in bytes (20 bytes)
	RawHashLength = 20
	// ShortHashLength is the default length for abbreviated hashes
	ShortHashLength = 7
)

// NewObjectHash computes the hash of the given serialized bytes.
func NewObjectHash(data []byte) ObjectHash {
	sum := sha1.Sum(data)
	return ObjectHash(hex.EncodeToString(sum[:]))
}

// NewObjectHashFromRaw creates an ObjectHash from a 20-byte array
func NewObjectHashFromRaw(raw RawHash) ObjectHash {
	return ObjectHash(hex.EncodeToString(raw[:]))
}

// ParseObjectHash creates an ObjectHash from a hex string.
// Returns an error if the string is not a valid hash.
func ParseObjectHash(s string) (ObjectHash, error) {
	hash := ObjectHash(strings.ToLower(s))
	if err := hash.Validate(); err != nil {
		return "", err
	}
	return hash, nil
}

// ComputeObjectHash computes the object hash of a type and content pair,
// covering the canonical header plus payload bytes.
func ComputeObjectHash(objType ObjectType, content []byte) ObjectHash {
	serialized := append(CreateHeader(objType, int64(len(content))), content...)
	return NewObjectHash(serialized)
}

// String returns the hash as a string
func (h ObjectHash) String() string {
	return string(h)
}

// IsValid returns true if this is a valid SHA-1 hash
func (h ObjectHash) IsValid() bool {
	return h.Validate() == nil
}

// Validate checks if the hash is valid
func (h ObjectHash) Validate() error {
	if len(h) != HashLength {
		return fmt.Errorf("hash must be %d characters long, got %d", HashLength, len(h))
	}

	for _, c := range h {
		if !isHexChar(c) {
			return fmt.Errorf("hash must contain only hex characters, found %q", c)
		}
	}

	return nil
}

// Short returns the abbreviated version of the hash
func (h ObjectHash) Short() string {
	if len(h) >= ShortHashLength {
		return string(h[:ShortHashLength])
	}
	return string(h)
}

// Raw returns the hash as a 20-byte array
func (h ObjectHash) Raw() (RawHash, error) {
	if err := h.Validate(); err != nil {
		return RawHash{}, err
	}
	decoded, err := hex.DecodeString(string(h))
	if err != nil {
		return RawHash{}, err
	}

	var raw RawHash
	copy(raw[:], decoded)
	return raw, nil
}

// ShardPrefix returns the first two characters, naming the fan-out
// directory the object is stored under.
func (h ObjectHash) ShardPrefix() string {
	if len(h) < 2 {
		return ""
	}
	return string(h[:2])
}

// ShardSuffix returns the remaining 38 characters, the filename within
// the shard directory.
func (h ObjectHash) ShardSuffix() string {
	if len(h) < 2 {
		return ""
	}
	return string(h[2:])
}

// HasPrefix returns true if the hash starts with the given prefix
func (h ObjectHash) HasPrefix(prefix string) bool {
	return strings.HasPrefix(string(h), strings.ToLower(prefix))
}

// RawHash methods

// Hash converts RawHash to ObjectHash
func (rh RawHash) Hash() ObjectHash {
	return NewObjectHashFromRaw(rh)
}

// String returns the hash as a hex string
func (rh RawHash) String() string {
	return hex.EncodeToString(rh[:])
}

// IsValidHashPrefix reports whether s could be the prefix of a hash:
// non-empty, at most 40 characters, hex only.
func IsValidHashPrefix(s string) bool {
	if len(s) == 0 || len(s) > HashLength {
		return false
	}
	for _, c := range s {
		if !isHexChar(c) {
			return false
		}
	}
	return true
}

// isHexChar returns true if the character is a valid hex character
func isHexChar(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
