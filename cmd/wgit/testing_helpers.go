package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/wizardgit/wgit/pkg/repository/gitpath"
	"github.com/wizardgit/wgit/pkg/repository/gitrepo"
)

// TestHelper provides utilities for CLI command testing
type TestHelper struct {
	t        *testing.T
	tempDir  string
	repo     *gitrepo.GitRepository
	RepoPath string
}

// NewTestHelper creates a new test helper with automatic cleanup
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()

	tempDir := t.TempDir()

	return &TestHelper{
		t:        t,
		tempDir:  tempDir,
		RepoPath: tempDir,
	}
}

// InitRepo initializes a test repository
func (th *TestHelper) InitRepo() *gitrepo.GitRepository {
	th.t.Helper()

	repoPath, err := gitpath.NewRepositoryPath(th.tempDir)
	if err != nil {
		th.t.Fatalf("failed to create repo path: %v", err)
	}

	repo := gitrepo.NewGitRepository()
	if err := repo.Initialize(repoPath); err != nil {
		th.t.Fatalf("failed to initialize repo: %v", err)
	}

	th.repo = repo
	return repo
}

// TempDir returns the temporary directory path
func (th *TestHelper) TempDir() string {
	return th.tempDir
}

// Repo returns the initialized test repository
func (th *TestHelper) Repo() *gitrepo.GitRepository {
	return th.repo
}

// WriteFile creates a test file with content
func (th *TestHelper) WriteFile(name, content string) string {
	th.t.Helper()

	filePath := filepath.Join(th.tempDir, name)

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		th.t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		th.t.Fatalf("failed to write file %s: %v", filePath, err)
	}

	return filePath
}

// Chdir changes to the test directory
func (th *TestHelper) Chdir() {
	th.t.Helper()

	if err := os.Chdir(th.tempDir); err != nil {
		th.t.Fatalf("failed to change directory: %v", err)
	}
}

// captureOutput runs fn with stdout redirected to a pipe and returns what
// it printed, along with fn's error. Commands print results with
// fmt.Println, so tests asserting on output go through here.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	r, w, pipeErr := os.Pipe()
	if pipeErr != nil {
		t.Fatalf("failed to create pipe: %v", pipeErr)
	}

	orig := os.Stdout
	os.Stdout = w
	runErr := fn()
	os.Stdout = orig
	w.Close()

	output, readErr := io.ReadAll(r)
	r.Close()
	if readErr != nil {
		t.Fatalf("failed to read captured output: %v", readErr)
	}

	return string(output), runErr
}
