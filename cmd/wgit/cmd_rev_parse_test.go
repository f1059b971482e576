package main

import (
	"os"
	"testing"

	"github.com/wizardgit/wgit/pkg/objects/blob"
	"github.com/wizardgit/wgit/pkg/repository/gitpath"
)

func TestRevParseCommand_FullHash(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	hash := storedBlobHelper(t, th)
	th.Chdir()

	cmd := newRevParseCmd()
	cmd.SetArgs([]string{hash})
	output, execErr := captureOutput(t, cmd.Execute)
	if execErr != nil {
		t.Fatalf("rev-parse failed: %v", execErr)
	}
	if output != hash+"\n" {
		t.Errorf("output = %q, want %q", output, hash+"\n")
	}
}

func TestRevParseCommand_UniquePrefix(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	hash := storedBlobHelper(t, th)
	th.Chdir()

	cmd := newRevParseCmd()
	cmd.SetArgs([]string{hash[:7]})
	output, execErr := captureOutput(t, cmd.Execute)
	if execErr != nil {
		t.Fatalf("rev-parse failed: %v", execErr)
	}
	if output != hash+"\n" {
		t.Errorf("output = %q, want %q", output, hash+"\n")
	}
}

func TestRevParseCommand_BranchAndHead(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	repo := th.InitRepo()

	hash, writeErr := repo.WriteObject(blob.NewBlob([]byte("hello\n")))
	if writeErr != nil {
		t.Fatalf("failed to store blob: %v", writeErr)
	}

	if refErr := repo.Refs().UpdateRef("refs/heads/master", hash); refErr != nil {
		t.Fatalf("UpdateRef() failed: %v", refErr)
	}
	th.Chdir()

	for _, name := range []string{"master", "refs/heads/master", "HEAD"} {
		cmd := newRevParseCmd()
		cmd.SetArgs([]string{name})
		output, execErr := captureOutput(t, cmd.Execute)
		if execErr != nil {
			t.Fatalf("rev-parse %s failed: %v", name, execErr)
		}
		if output != hash.String()+"\n" {
			t.Errorf("rev-parse %s = %q, want %q", name, output, hash.String()+"\n")
		}
	}
}

func TestRevParseCommand_RefWinsOverHashPrefix(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	repo := th.InitRepo()

	blobHash, writeErr := repo.WriteObject(blob.NewBlob([]byte("hello\n")))
	if writeErr != nil {
		t.Fatalf("failed to store blob: %v", writeErr)
	}
	otherHash, writeErr := repo.WriteObject(blob.NewBlob([]byte("what is up, doc?")))
	if writeErr != nil {
		t.Fatalf("failed to store blob: %v", writeErr)
	}

	// A branch whose name happens to be a valid hash prefix of another
	// object. The branch must win.
	branch := blobHash.String()[:4]
	ref := gitpath.RefPath("refs/heads/" + branch)
	if refErr := repo.Refs().UpdateRef(ref, otherHash); refErr != nil {
		t.Fatalf("UpdateRef() failed: %v", refErr)
	}
	th.Chdir()

	cmd := newRevParseCmd()
	cmd.SetArgs([]string{branch})
	output, execErr := captureOutput(t, cmd.Execute)
	if execErr != nil {
		t.Fatalf("rev-parse %s failed: %v", branch, execErr)
	}
	if output != otherHash.String()+"\n" {
		t.Errorf("rev-parse %s = %q, want branch target %q", branch, output, otherHash.String()+"\n")
	}
}

func TestRevParseCommand_UnknownRevision(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	th.Chdir()

	cmd := newRevParseCmd()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"deadbeef"})
	if execErr := cmd.Execute(); execErr == nil {
		t.Fatal("rev-parse on an unknown name should fail")
	}
}
