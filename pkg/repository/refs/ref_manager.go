package refs

import (
	"fmt"
	"strings"

	"github.com/wizardgit/wgit/pkg/common/err"
	"github.com/wizardgit/wgit/pkg/common/fileops"
	"github.com/wizardgit/wgit/pkg/objects"
	"github.com/wizardgit/wgit/pkg/repository/gitpath"
)

const pkgName = "refs"

const (
	// SymbolicRefPrefix is the prefix for symbolic references
	SymbolicRefPrefix = "ref: "

	// MaxRefDepth is the maximum depth for resolving symbolic references
	MaxRefDepth = 10
)

// RefManager handles references, the human-readable names for commits.
type RefManager struct {
	refsPath gitpath.GitPath
	headPath gitpath.GitPath
}

// NewRefManager creates a new reference manager rooted at the given
// control directory.
func NewRefManager(gitDir gitpath.GitPath) *RefManager {
	return &RefManager{
		refsPath: gitDir.RefsPath(),
		headPath: gitDir.HeadPath(),
	}
}

// Init creates the refs directory layout and points HEAD at the default
// branch. The branch itself is unborn until the first commit.
func (rm *RefManager) Init() error {
	for _, sub := range []string{gitpath.HeadsDir, gitpath.TagsDir} {
		if mkErr := fileops.EnsureDir(rm.refsPath.Join(sub).ToAbsolutePath()); mkErr != nil {
			return err.Wrap(mkErr, pkgName, "init")
		}
	}

	defaultRef := SymbolicRefPrefix + "refs/heads/" + gitpath.DefaultBranch + "\n"
	if writeErr := fileops.WriteString(rm.headPath.ToAbsolutePath(), defaultRef); writeErr != nil {
		return err.Wrap(writeErr, pkgName, "init")
	}

	return nil
}

// ReadRef reads a reference and returns its trimmed content. The content
// is either a hash or a "ref: <target>" symbolic reference.
func (rm *RefManager) ReadRef(ref gitpath.RefPath) (string, error) {
	fullPath := rm.resolveReferencePath(ref)

	content, readErr := fileops.ReadString(fullPath.ToAbsolutePath())
	if readErr != nil {
		return "", err.Wrap(readErr, pkgName, "read")
	}

	return strings.TrimSpace(content), nil
}

// UpdateRef updates a reference with a new SHA-1 hash
func (rm *RefManager) UpdateRef(ref gitpath.RefPath, hash objects.ObjectHash) error {
	if valErr := hash.Validate(); valErr != nil {
		return err.New(pkgName, err.CodeInvalidInput, "update",
			"invalid hash", valErr)
	}

	fullPath := rm.resolveReferencePath(ref).ToAbsolutePath()

	if mkErr := fileops.EnsureParentDir(fullPath); mkErr != nil {
		return err.Wrap(mkErr, pkgName, "update")
	}

	content := hash.String() + "\n"
	if writeErr := fileops.WriteString(fullPath, content); writeErr != nil {
		return err.Wrap(writeErr, pkgName, "update")
	}

	return nil
}

// UpdateSymbolicRef points a reference at another reference, e.g. HEAD at
// a branch.
func (rm *RefManager) UpdateSymbolicRef(ref, target gitpath.RefPath) error {
	if !target.IsValid() {
		return err.New(pkgName, err.CodeInvalidInput, "update_symbolic",
			fmt.Sprintf("invalid target reference: %q", target), nil)
	}

	fullPath := rm.resolveReferencePath(ref).ToAbsolutePath()
	content := SymbolicRefPrefix + target.String() + "\n"
	if writeErr := fileops.WriteString(fullPath, content); writeErr != nil {
		return err.Wrap(writeErr, pkgName, "update_symbolic")
	}

	return nil
}

// ResolveToSHA resolves a reference to its final SHA-1 hash, following
// symbolic refs up to MaxRefDepth levels deep.
func (rm *RefManager) ResolveToSHA(ref gitpath.RefPath) (objects.ObjectHash, error) {
	currentRef := ref

	for depth := 0; depth < MaxRefDepth; depth++ {
		content, readErr := rm.ReadRef(currentRef)
		if readErr != nil {
			return "", readErr
		}

		if target, ok := strings.CutPrefix(content, SymbolicRefPrefix); ok {
			currentRef = gitpath.RefPath(strings.TrimSpace(target))
			continue
		}

		hash, hashErr := objects.ParseObjectHash(content)
		if hashErr != nil {
			return "", err.New(pkgName, err.CodeInvalidFormat, "resolve",
				fmt.Sprintf("invalid content in ref %s", currentRef), hashErr)
		}

		return hash, nil
	}

	return "", err.New(pkgName, err.CodeInvalidFormat, "resolve",
		fmt.Sprintf("reference depth exceeded for %s", ref), nil)
}

// DeleteRef deletes a reference. Returns false if it did not exist.
func (rm *RefManager) DeleteRef(ref gitpath.RefPath) (bool, error) {
	fullPath := rm.resolveReferencePath(ref).ToAbsolutePath()

	exists, existsErr := fileops.Exists(fullPath)
	if existsErr != nil {
		return false, err.Wrap(existsErr, pkgName, "delete")
	}
	if !exists {
		return false, nil
	}

	if rmErr := fileops.SafeRemove(fullPath); rmErr != nil {
		return false, err.Wrap(rmErr, pkgName, "delete")
	}

	return true, nil
}

// Exists checks if a reference exists
func (rm *RefManager) Exists(ref gitpath.RefPath) (bool, error) {
	fullPath := rm.resolveReferencePath(ref).ToAbsolutePath()
	return fileops.Exists(fullPath)
}

// HeadPath returns the full path to the HEAD file
func (rm *RefManager) HeadPath() gitpath.GitPath {
	return rm.headPath
}

// RefsPath returns the full path to the refs directory
func (rm *RefManager) RefsPath() gitpath.GitPath {
	return rm.refsPath
}

// resolveReferencePath resolves a RefPath to its full filesystem path
func (rm *RefManager) resolveReferencePath(ref gitpath.RefPath) gitpath.GitPath {
	refStr := strings.TrimSpace(ref.String())

	if refStr == gitpath.HeadFile {
		return rm.headPath
	}

	if relPath, ok := strings.CutPrefix(refStr, gitpath.RefsDir+"/"); ok {
		return rm.refsPath.Join(relPath)
	}

	return rm.refsPath.Join(refStr)
}
