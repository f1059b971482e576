package gitrepo

import (
	"fmt"

	"github.com/wizardgit/wgit/pkg/common/err"
	"github.com/wizardgit/wgit/pkg/common/fileops"
	"github.com/wizardgit/wgit/pkg/repository/gitpath"
)

// Path resolution helpers for files and directories inside the control
// directory. All paths are expressed relative to .git, e.g.
// RepoFile(repo, false, "refs", "heads", "master") names
// <workdir>/.git/refs/heads/master.

// RepoPath joins path segments under the repository's control directory.
func RepoPath(repo Repository, parts ...string) gitpath.GitPath {
	return repo.GitDirectory().Join(parts...)
}

// RepoDir resolves a directory under the control directory.
//
// If the directory exists it is returned; if the path exists but is a
// file the call fails with NOT_A_DIRECTORY. A missing directory is
// created when create is true, otherwise "" is returned without error.
func RepoDir(repo Repository, create bool, parts ...string) (gitpath.GitPath, error) {
	dirPath := RepoPath(repo, parts...)
	absPath := dirPath.ToAbsolutePath()

	exists, existsErr := fileops.Exists(absPath)
	if existsErr != nil {
		return "", err.Wrap(existsErr, pkgName, "repo_dir")
	}

	if exists {
		isDir, dirErr := fileops.IsDirectory(absPath)
		if dirErr != nil {
			return "", err.Wrap(dirErr, pkgName, "repo_dir")
		}
		if !isDir {
			return "", err.New(pkgName, err.CodeNotADirectory, "repo_dir",
				fmt.Sprintf("%s is not a directory", dirPath), nil)
		}
		return dirPath, nil
	}

	if !create {
		return "", nil
	}

	if mkErr := fileops.EnsureDir(absPath); mkErr != nil {
		return "", err.Wrap(mkErr, pkgName, "repo_dir")
	}
	return dirPath, nil
}

// RepoFile resolves a file path under the control directory, creating the
// parent directories when create is true. The file itself is never
// created.
func RepoFile(repo Repository, create bool, parts ...string) (gitpath.GitPath, error) {
	if len(parts) == 0 {
		return "", err.New(pkgName, err.CodeInvalidInput, "repo_file",
			"no path segments given", nil)
	}

	parent, dirErr := RepoDir(repo, create, parts[:len(parts)-1]...)
	if dirErr != nil {
		return "", dirErr
	}
	if parent == "" && len(parts) > 1 {
		return "", nil
	}

	return RepoPath(repo, parts...), nil
}
