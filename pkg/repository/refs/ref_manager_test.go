package refs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wizardgit/wgit/pkg/objects"
	"github.com/wizardgit/wgit/pkg/repository/gitpath"
)

const testSHA = "ce013625030ba8dba906f756967f9e9ca394464a"

func setupRefManager(t *testing.T) *RefManager {
	t.Helper()

	gitDir := gitpath.GitPath(filepath.Join(t.TempDir(), gitpath.GitDir))
	if mkErr := os.MkdirAll(gitDir.String(), 0o755); mkErr != nil {
		t.Fatalf("failed to create git dir: %v", mkErr)
	}

	rm := NewRefManager(gitDir)
	if initErr := rm.Init(); initErr != nil {
		t.Fatalf("Init() failed: %v", initErr)
	}
	return rm
}

func TestRefManager_Init(t *testing.T) {
	rm := setupRefManager(t)

	// HEAD points at the default branch.
	content, readErr := rm.ReadRef(gitpath.RefHEAD)
	if readErr != nil {
		t.Fatalf("ReadRef(HEAD) failed: %v", readErr)
	}
	if content != "ref: refs/heads/master" {
		t.Errorf("HEAD = %q, want %q", content, "ref: refs/heads/master")
	}

	// refs/heads and refs/tags exist.
	for _, sub := range []string{gitpath.HeadsDir, gitpath.TagsDir} {
		dir := rm.RefsPath().Join(sub).String()
		info, statErr := os.Stat(dir)
		if statErr != nil || !info.IsDir() {
			t.Errorf("%s should be a directory", dir)
		}
	}
}

func TestRefManager_UpdateAndReadRef(t *testing.T) {
	rm := setupRefManager(t)

	ref := gitpath.RefPath("refs/heads/master")
	if updateErr := rm.UpdateRef(ref, objects.ObjectHash(testSHA)); updateErr != nil {
		t.Fatalf("UpdateRef() failed: %v", updateErr)
	}

	content, readErr := rm.ReadRef(ref)
	if readErr != nil {
		t.Fatalf("ReadRef() failed: %v", readErr)
	}
	if content != testSHA {
		t.Errorf("ReadRef() = %q, want %q", content, testSHA)
	}
}

func TestRefManager_UpdateRef_InvalidHash(t *testing.T) {
	rm := setupRefManager(t)

	if updateErr := rm.UpdateRef("refs/heads/master", "nothash"); updateErr == nil {
		t.Error("UpdateRef() should fail with an invalid hash")
	}
}

func TestRefManager_ResolveToSHA_SymbolicChain(t *testing.T) {
	rm := setupRefManager(t)

	// HEAD -> refs/heads/master -> SHA
	if updateErr := rm.UpdateRef("refs/heads/master", objects.ObjectHash(testSHA)); updateErr != nil {
		t.Fatalf("UpdateRef() failed: %v", updateErr)
	}

	hash, resolveErr := rm.ResolveToSHA(gitpath.RefHEAD)
	if resolveErr != nil {
		t.Fatalf("ResolveToSHA(HEAD) failed: %v", resolveErr)
	}
	if hash != objects.ObjectHash(testSHA) {
		t.Errorf("ResolveToSHA(HEAD) = %s, want %s", hash, testSHA)
	}
}

func TestRefManager_ResolveToSHA_UnbornBranch(t *testing.T) {
	rm := setupRefManager(t)

	// HEAD points at a branch with no commits yet.
	if _, resolveErr := rm.ResolveToSHA(gitpath.RefHEAD); resolveErr == nil {
		t.Error("ResolveToSHA(HEAD) should fail for an unborn branch")
	}
}

func TestRefManager_ResolveToSHA_DepthLimit(t *testing.T) {
	rm := setupRefManager(t)

	// A reference loop must not resolve forever.
	if symErr := rm.UpdateSymbolicRef("refs/heads/a", "refs/heads/b"); symErr != nil {
		t.Fatalf("UpdateSymbolicRef() failed: %v", symErr)
	}
	if symErr := rm.UpdateSymbolicRef("refs/heads/b", "refs/heads/a"); symErr != nil {
		t.Fatalf("UpdateSymbolicRef() failed: %v", symErr)
	}

	if _, resolveErr := rm.ResolveToSHA("refs/heads/a"); resolveErr == nil {
		t.Error("ResolveToSHA() should fail on a reference loop")
	}
}

func TestRefManager_DeleteRef(t *testing.T) {
	rm := setupRefManager(t)

	ref := gitpath.RefPath("refs/heads/feature")
	if updateErr := rm.UpdateRef(ref, objects.ObjectHash(testSHA)); updateErr != nil {
		t.Fatalf("UpdateRef() failed: %v", updateErr)
	}

	deleted, deleteErr := rm.DeleteRef(ref)
	if deleteErr != nil {
		t.Fatalf("DeleteRef() failed: %v", deleteErr)
	}
	if !deleted {
		t.Error("DeleteRef() should report true for an existing ref")
	}

	exists, existsErr := rm.Exists(ref)
	if existsErr != nil {
		t.Fatalf("Exists() failed: %v", existsErr)
	}
	if exists {
		t.Error("ref should not exist after deletion")
	}

	// Deleting again is not an error.
	deleted, deleteErr = rm.DeleteRef(ref)
	if deleteErr != nil {
		t.Fatalf("DeleteRef() failed: %v", deleteErr)
	}
	if deleted {
		t.Error("DeleteRef() should report false for a missing ref")
	}
}

func TestRefManager_ExistsForHEAD(t *testing.T) {
	rm := setupRefManager(t)

	exists, existsErr := rm.Exists(gitpath.RefHEAD)
	if existsErr != nil {
		t.Fatalf("Exists(HEAD) failed: %v", existsErr)
	}
	if !exists {
		t.Error("HEAD should exist after Init()")
	}
}
