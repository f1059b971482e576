package store

import (
	"context"

	"github.com/wizardgit/wgit/pkg/objects"
	"github.com/wizardgit/wgit/pkg/repository/gitpath"
)

// ObjectStore defines the interface for object storage operations.
// It provides methods to read, write, enumerate, and verify stored objects.
type ObjectStore interface {
	// Initialize sets up the object store with the given repository path.
	// Creates necessary directory structures if they don't exist.
	Initialize(repoPath gitpath.RepositoryPath) error

	// WriteObject computes the SHA-1 hash of an object and, when persist is
	// true, stores its compressed form on disk. When persist is false the
	// hash is computed without touching the filesystem. Writing an object
	// that already exists is a no-op returning the same hash.
	WriteObject(obj objects.GitObject, persist bool) (objects.ObjectHash, error)

	// ReadObject retrieves an object by its full SHA-1 hash.
	// Returns (nil, nil) if the object doesn't exist.
	ReadObject(hash objects.ObjectHash) (objects.GitObject, error)

	// HasObject checks if an object exists in the store.
	HasObject(hash objects.ObjectHash) (bool, error)

	// ResolvePrefix expands an abbreviated hash to the unique full hash it
	// prefixes. Returns "" if no object matches; fails with an
	// AMBIGUOUS_REFERENCE error if more than one does.
	ResolvePrefix(prefix string) (objects.ObjectHash, error)

	// ForEachObject calls fn for every object hash in the store.
	// Iteration stops at the first error fn returns.
	ForEachObject(fn func(hash objects.ObjectHash) error) error

	// Verify decodes every stored object and recomputes its hash,
	// reporting objects whose content does not match their name.
	Verify(ctx context.Context) ([]VerifyError, error)

	// ObjectCount returns the total number of objects in the store.
	ObjectCount() (int, error)
}

// VerifyError describes a single corrupt object found during verification.
type VerifyError struct {
	Hash   objects.ObjectHash
	Reason string
}
