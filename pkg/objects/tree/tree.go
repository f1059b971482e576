package tree

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/wizardgit/wgit/pkg/objects"
)

// Tree represents a directory snapshot: an ordered sequence of entries,
// each referencing a blob or a subtree.
//
// Payload layout (after the "tree <size>\0" header):
//
//	Entry 1: mode SPACE name NULL [20-byte SHA-1]
//	Entry 2: mode SPACE name NULL [20-byte SHA-1]
//	...
//
// Entries are kept in canonical order (lexicographic, with directories
// compared as if their name had a trailing slash) so that two trees with
// the same logical content always serialize to the same bytes and hash
// identically, regardless of the order the caller supplied them in.
type Tree struct {
	entries []*TreeEntry
	sha     *objects.ObjectHash
}

// NewTree creates a new Tree object with the given entries
func NewTree(entries []*TreeEntry) *Tree {
	tree := &Tree{entries: entries}
	tree.sortEntries()
	return tree
}

// ParseTree parses a tree object from serialized data (with header)
func ParseTree(data []byte) (*Tree, error) {
	content, err := objects.ParseContent(data, objects.TreeType)
	if err != nil {
		return nil, err
	}

	entries, err := ParseEntries(content)
	if err != nil {
		return nil, err
	}

	canonical := sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].CompareTo(entries[j]) < 0
	})

	tree := &Tree{entries: entries}
	tree.sortEntries()

	// The stored bytes only hash to this tree's identity when the entries
	// were already canonical. Otherwise Hash() recomputes from the sorted
	// serialization.
	if canonical {
		sha := objects.NewObjectHash(data)
		tree.sha = &sha
	}

	return tree, nil
}

// ParseEntries parses a raw tree payload (without header) into entries.
// Each entry must be complete; a truncated final entry is an error.
func ParseEntries(content []byte) ([]*TreeEntry, error) {
	var entries []*TreeEntry
	offset := 0

	for offset < len(content) {
		entry, nextOffset, err := DeserializeTreeEntry(content, offset)
		if err != nil {
			return nil, fmt.Errorf("tree entry at offset %d: %w", offset, err)
		}
		entries = append(entries, entry)
		offset = nextOffset
	}

	return entries, nil
}

// Type returns the object type
func (t *Tree) Type() objects.ObjectType {
	return objects.TreeType
}

// Content returns the serialized entries without header
func (t *Tree) Content() ([]byte, error) {
	return t.serializeContent()
}

// Hash returns the SHA-1 hash of the tree
func (t *Tree) Hash() (objects.ObjectHash, error) {
	if t.sha != nil {
		return *t.sha, nil
	}

	content, err := t.Content()
	if err != nil {
		return "", fmt.Errorf("failed to get content: %w", err)
	}

	sha := objects.ComputeObjectHash(objects.TreeType, content)
	t.sha = &sha
	return sha, nil
}

// Size returns the size of the content in bytes
func (t *Tree) Size() (int64, error) {
	content, err := t.Content()
	if err != nil {
		return 0, err
	}
	return int64(len(content)), nil
}

// Serialize writes the tree in its canonical storage format
func (t *Tree) Serialize(w io.Writer) error {
	content, err := t.Content()
	if err != nil {
		return fmt.Errorf("failed to get content: %w", err)
	}

	header := objects.CreateHeader(objects.TreeType, int64(len(content)))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write tree header: %w", err)
	}

	if _, err := w.Write(content); err != nil {
		return fmt.Errorf("failed to write tree content: %w", err)
	}

	return nil
}

// String returns a human-readable representation
func (t *Tree) String() string {
	hash, err := t.Hash()
	if err != nil {
		return fmt.Sprintf("Tree{entries: %d, error: %v}", len(t.entries), err)
	}
	return fmt.Sprintf("Tree{entries: %d, hash: %s}", len(t.entries), hash.Short())
}

// Entries returns a copy of the tree entries to prevent external modification
func (t *Tree) Entries() []*TreeEntry {
	entries := make([]*TreeEntry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// IsEmpty returns true if the tree has no entries
func (t *Tree) IsEmpty() bool {
	return len(t.entries) == 0
}

// sortEntries sorts the entries into canonical order
func (t *Tree) sortEntries() {
	sort.Slice(t.entries, func(i, j int) bool {
		return t.entries[i].CompareTo(t.entries[j]) < 0
	})
}

// serializeContent serializes all entries into a byte array
func (t *Tree) serializeContent() ([]byte, error) {
	if len(t.entries) == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	for _, entry := range t.entries {
		serialized, err := entry.Serialize()
		if err != nil {
			return nil, fmt.Errorf("failed to serialize tree entry: %w", err)
		}
		buf.Write(serialized)
	}

	return buf.Bytes(), nil
}
