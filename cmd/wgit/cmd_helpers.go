package main

import (
	"fmt"
	"os"

	"github.com/wizardgit/wgit/pkg/objects"
	"github.com/wizardgit/wgit/pkg/repository/gitrepo"
)

// findRepository finds the repository enclosing the current directory
func findRepository() (*gitrepo.GitRepository, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	repo, err := gitrepo.RequireRepository(cwd)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// resolveObject expands a name (full hash or unique prefix) to a full
// object hash, failing when nothing matches.
func resolveObject(repo *gitrepo.GitRepository, name string) (objects.ObjectHash, error) {
	hash, err := repo.ObjectStore().ResolvePrefix(name)
	if err != nil {
		return "", err
	}
	if hash == "" {
		return "", fmt.Errorf("not a valid object name: %s", name)
	}
	return hash, nil
}
