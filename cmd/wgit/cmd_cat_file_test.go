package main

import (
	"os"
	"testing"

	"github.com/wizardgit/wgit/pkg/objects/blob"
	"github.com/wizardgit/wgit/pkg/objects/tree"
)

const emptyTreeHash = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

func storedBlobHelper(t *testing.T, th *TestHelper) string {
	t.Helper()

	hash, writeErr := th.Repo().WriteObject(blob.NewBlob([]byte("hello\n")))
	if writeErr != nil {
		t.Fatalf("failed to store blob: %v", writeErr)
	}
	return hash.String()
}

func TestCatFileCommand_Type(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	hash := storedBlobHelper(t, th)
	th.Chdir()

	cmd := newCatFileCmd()
	cmd.SetArgs([]string{"-t", hash})
	output, execErr := captureOutput(t, cmd.Execute)
	if execErr != nil {
		t.Fatalf("cat-file -t failed: %v", execErr)
	}
	if output != "blob\n" {
		t.Errorf("output = %q, want %q", output, "blob\n")
	}
}

func TestCatFileCommand_Size(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	hash := storedBlobHelper(t, th)
	th.Chdir()

	cmd := newCatFileCmd()
	cmd.SetArgs([]string{"-s", hash})
	output, execErr := captureOutput(t, cmd.Execute)
	if execErr != nil {
		t.Fatalf("cat-file -s failed: %v", execErr)
	}
	if output != "6\n" {
		t.Errorf("output = %q, want %q", output, "6\n")
	}
}

func TestCatFileCommand_PrettyBlob(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	hash := storedBlobHelper(t, th)
	th.Chdir()

	// A unique prefix works anywhere a full hash does.
	cmd := newCatFileCmd()
	cmd.SetArgs([]string{"-p", hash[:7]})
	output, execErr := captureOutput(t, cmd.Execute)
	if execErr != nil {
		t.Fatalf("cat-file -p failed: %v", execErr)
	}
	if output != "hello\n" {
		t.Errorf("output = %q, want %q", output, "hello\n")
	}
}

func TestCatFileCommand_PrettyTree(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	blobHash := storedBlobHelper(t, th)

	fileEntry, entryErr := tree.NewTreeEntry("100644", "hello.txt", blobHash)
	if entryErr != nil {
		t.Fatalf("NewTreeEntry() failed: %v", entryErr)
	}
	dirEntry, entryErr := tree.NewTreeEntry("40000", "dir", emptyTreeHash)
	if entryErr != nil {
		t.Fatalf("NewTreeEntry() failed: %v", entryErr)
	}

	treeHash, writeErr := th.Repo().WriteObject(tree.NewTree([]*tree.TreeEntry{fileEntry, dirEntry}))
	if writeErr != nil {
		t.Fatalf("failed to store tree: %v", writeErr)
	}
	th.Chdir()

	cmd := newCatFileCmd()
	cmd.SetArgs([]string{"-p", treeHash.String()})
	output, execErr := captureOutput(t, cmd.Execute)
	if execErr != nil {
		t.Fatalf("cat-file -p failed: %v", execErr)
	}

	// Directory modes print zero-padded with tree type.
	want := "040000 tree " + emptyTreeHash + "\tdir\n" +
		"100644 blob " + blobHash + "\thello.txt\n"
	if output != want {
		t.Errorf("output = %q, want %q", output, want)
	}
}

func TestCatFileCommand_RequiresFlag(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	hash := storedBlobHelper(t, th)
	th.Chdir()

	cmd := newCatFileCmd()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{hash})
	if execErr := cmd.Execute(); execErr == nil {
		t.Fatal("cat-file without -t, -s or -p should fail")
	}
}

func TestCatFileCommand_UnknownObject(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	th.Chdir()

	cmd := newCatFileCmd()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"-t", "deadbeef"})
	if execErr := cmd.Execute(); execErr == nil {
		t.Fatal("cat-file on a missing object should fail")
	}
}
