package gitrepo

import (
	"github.com/wizardgit/wgit/pkg/gitconfig"
	"github.com/wizardgit/wgit/pkg/objects"
	"github.com/wizardgit/wgit/pkg/repository/gitpath"
	"github.com/wizardgit/wgit/pkg/repository/refs"
	"github.com/wizardgit/wgit/pkg/store"
)

// Repository defines the interface for repository operations. It provides
// access to the working directory, the control directory, the object
// store, references, and configuration.
type Repository interface {
	// Initialize creates a new repository at the given path
	Initialize(path gitpath.RepositoryPath) error

	// WorkingDirectory returns the path to the repository's working directory
	WorkingDirectory() gitpath.RepositoryPath

	// GitDirectory returns the path to the .git control directory
	GitDirectory() gitpath.GitPath

	// ObjectStore returns the object store for this repository
	ObjectStore() store.ObjectStore

	// Refs returns the reference manager for this repository
	Refs() *refs.RefManager

	// Config returns the repository configuration
	Config() *gitconfig.Config

	// ReadObject reads an object by its SHA-1 hash.
	// Returns (nil, nil) if the object doesn't exist.
	ReadObject(hash objects.ObjectHash) (objects.GitObject, error)

	// WriteObject writes an object to the repository and returns its hash
	WriteObject(obj objects.GitObject) (objects.ObjectHash, error)

	// Exists checks if a repository exists at the working directory
	Exists() (bool, error)
}
