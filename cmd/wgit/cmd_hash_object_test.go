package main

import (
	"os"
	"path/filepath"
	"testing"
)

const helloBlobHash = "ce013625030ba8dba906f756967f9e9ca394464a"

func TestHashObjectCommand_PrintsHash(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.WriteFile("hello.txt", "hello\n")
	th.Chdir()

	// Without -w no repository is needed.
	cmd := newHashObjectCmd()
	cmd.SetArgs([]string{"hello.txt"})
	output, execErr := captureOutput(t, cmd.Execute)
	if execErr != nil {
		t.Fatalf("hash-object failed: %v", execErr)
	}

	if output != helloBlobHash+"\n" {
		t.Errorf("output = %q, want %q", output, helloBlobHash+"\n")
	}
}

func TestHashObjectCommand_WriteStoresObject(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	th.WriteFile("hello.txt", "hello\n")
	th.Chdir()

	cmd := newHashObjectCmd()
	cmd.SetArgs([]string{"-w", "hello.txt"})
	output, execErr := captureOutput(t, cmd.Execute)
	if execErr != nil {
		t.Fatalf("hash-object -w failed: %v", execErr)
	}
	if output != helloBlobHash+"\n" {
		t.Errorf("output = %q, want %q", output, helloBlobHash+"\n")
	}

	objectPath := filepath.Join(th.TempDir(), ".git", "objects",
		helloBlobHash[:2], helloBlobHash[2:])
	if _, statErr := os.Stat(objectPath); statErr != nil {
		t.Errorf("expected stored object at %s: %v", objectPath, statErr)
	}
}

func TestHashObjectCommand_WriteOutsideRepository(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.WriteFile("hello.txt", "hello\n")
	th.Chdir()

	cmd := newHashObjectCmd()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"-w", "hello.txt"})
	if execErr := cmd.Execute(); execErr == nil {
		t.Fatal("hash-object -w outside a repository should fail")
	}
}

func TestHashObjectCommand_InvalidType(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.WriteFile("hello.txt", "hello\n")
	th.Chdir()

	cmd := newHashObjectCmd()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"-t", "banana", "hello.txt"})
	if execErr := cmd.Execute(); execErr == nil {
		t.Fatal("hash-object with an unknown type should fail")
	}
}

func TestHashObjectCommand_NonBlobPayloadValidated(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.WriteFile("notatree.txt", "this is not a tree payload")
	th.Chdir()

	cmd := newHashObjectCmd()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"-t", "tree", "notatree.txt"})
	if execErr := cmd.Execute(); execErr == nil {
		t.Fatal("hash-object -t tree with a malformed payload should fail")
	}
}
