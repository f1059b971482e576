package gitrepo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wizardgit/wgit/pkg/common/err"
	"github.com/wizardgit/wgit/pkg/repository/gitpath"
)

// FindRepository searches for a repository by walking up the directory
// tree from the given start path. The start path is made absolute and
// symlink-free before the walk, so reaching the filesystem root always
// terminates the search.
//
// Returns (nil, nil) if no repository encloses the start path.
func FindRepository(startPath string) (*GitRepository, error) {
	repoPath, pathErr := gitpath.NewRepositoryPath(startPath)
	if pathErr != nil {
		return nil, err.Wrap(pathErr, pkgName, "find")
	}

	currentPath := repoPath.String()
	for {
		candidate := gitpath.RepositoryPath(currentPath)

		exists, existsErr := RepositoryExists(candidate)
		if existsErr != nil {
			return nil, err.Wrap(existsErr, pkgName, "find")
		}

		if exists {
			return Open(candidate)
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			return nil, nil
		}
		currentPath = parentPath
	}
}

// RequireRepository is FindRepository for callers that cannot proceed
// without one. Fails with NOT_A_REPOSITORY when no enclosing repository
// exists.
func RequireRepository(startPath string) (*GitRepository, error) {
	repo, findErr := FindRepository(startPath)
	if findErr != nil {
		return nil, findErr
	}
	if repo == nil {
		return nil, err.New(pkgName, err.CodeNotARepository, "find",
			fmt.Sprintf("no repository found at or above %s", startPath), nil)
	}
	return repo, nil
}

// RepositoryExists checks whether a repository exists at the specified
// path. A repository is considered to exist if there is a .git directory
// at the given location.
func RepositoryExists(path gitpath.RepositoryPath) (bool, error) {
	gitDir := path.GitPath()
	info, statErr := os.Stat(gitDir.String())

	if os.IsNotExist(statErr) {
		return false, nil
	}
	if statErr != nil {
		return false, fmt.Errorf("failed to check %s directory: %w", gitpath.GitDir, statErr)
	}

	return info.IsDir(), nil
}

// Open opens an existing repository at the specified path, validating its
// configuration. Fails with NOT_A_REPOSITORY if the path holds no
// repository.
func Open(path gitpath.RepositoryPath) (*GitRepository, error) {
	exists, existsErr := RepositoryExists(path)
	if existsErr != nil {
		return nil, err.Wrap(existsErr, pkgName, "open")
	}
	if !exists {
		return nil, err.New(pkgName, err.CodeNotARepository, "open",
			fmt.Sprintf("not a repository: %s", path), nil)
	}

	repo := NewGitRepository()
	if openErr := repo.open(path); openErr != nil {
		return nil, openErr
	}
	return repo, nil
}

// InitializeRepository creates a new repository at the given path and
// returns its handle.
func InitializeRepository(path string) (*GitRepository, error) {
	absPath, absErr := filepath.Abs(path)
	if absErr != nil {
		return nil, err.Wrap(absErr, pkgName, "init")
	}

	repo := NewGitRepository()
	if initErr := repo.Initialize(gitpath.RepositoryPath(absPath)); initErr != nil {
		return nil, initErr
	}
	return repo, nil
}
