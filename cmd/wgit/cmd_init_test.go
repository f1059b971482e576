package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitCommand_CreatesRepository(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.Chdir()

	cmd := newInitCmd()
	cmd.SetArgs([]string{})
	if execErr := cmd.Execute(); execErr != nil {
		t.Fatalf("init failed: %v", execErr)
	}

	gitDir := filepath.Join(th.TempDir(), ".git")
	for _, dir := range []string{
		gitDir,
		filepath.Join(gitDir, "objects"),
		filepath.Join(gitDir, "refs", "heads"),
		filepath.Join(gitDir, "refs", "tags"),
	} {
		info, statErr := os.Stat(dir)
		if statErr != nil {
			t.Fatalf("expected directory %s: %v", dir, statErr)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}

	head, readErr := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if readErr != nil {
		t.Fatalf("failed to read HEAD: %v", readErr)
	}
	if string(head) != "ref: refs/heads/master\n" {
		t.Errorf("HEAD = %q, want %q", head, "ref: refs/heads/master\n")
	}

	for _, file := range []string{"config", "description"} {
		if _, statErr := os.Stat(filepath.Join(gitDir, file)); statErr != nil {
			t.Errorf("expected file %s: %v", file, statErr)
		}
	}
}

func TestInitCommand_WithPathArgument(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.Chdir()

	cmd := newInitCmd()
	cmd.SetArgs([]string{"subproject"})
	if execErr := cmd.Execute(); execErr != nil {
		t.Fatalf("init failed: %v", execErr)
	}

	gitDir := filepath.Join(th.TempDir(), "subproject", ".git")
	info, statErr := os.Stat(gitDir)
	if statErr != nil {
		t.Fatalf("expected repository at %s: %v", gitDir, statErr)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", gitDir)
	}
}

func TestInitCommand_AlreadyInitialized(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	th.Chdir()

	cmd := newInitCmd()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{})
	if execErr := cmd.Execute(); execErr == nil {
		t.Fatal("re-initializing an existing repository should fail")
	}
}
