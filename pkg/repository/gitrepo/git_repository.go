package gitrepo

import (
	"fmt"
	"os"

	"github.com/wizardgit/wgit/pkg/common/err"
	"github.com/wizardgit/wgit/pkg/common/fileops"
	"github.com/wizardgit/wgit/pkg/gitconfig"
	"github.com/wizardgit/wgit/pkg/objects"
	"github.com/wizardgit/wgit/pkg/repository/gitpath"
	"github.com/wizardgit/wgit/pkg/repository/refs"
	"github.com/wizardgit/wgit/pkg/store"
)

const pkgName = "gitrepo"

// DefaultDescription is the content of a fresh repository's description file.
const DefaultDescription = "Unnamed repository; edit this file 'description' to name the repository.\n"

// GitRepository manages the complete repository structure and provides
// access to objects, references, and configuration.
//
// Layout:
// ┌─ <working-directory>/
// │ ├─ .git/ ← Control directory
// │ │ ├─ objects/ ← Object storage (blobs, trees, commits, tags)
// │ │ │ ├─ ab/ ← Fan-out subdirectories (first 2 chars of SHA)
// │ │ │ │ └─ cdef123... ← Object files (remaining 38 chars of SHA)
// │ │ │ └─ ...
// │ │ ├─ refs/ ← References (branches and tags)
// │ │ │ ├─ heads/ ← Branch references
// │ │ │ └─ tags/ ← Tag references
// │ │ ├─ branches/ ← Legacy branches directory
// │ │ ├─ HEAD ← Current branch pointer
// │ │ ├─ config ← Repository configuration
// │ │ └─ description ← Repository description
// │ ├─ file1.txt ← Working directory files
// │ └─ ...
type GitRepository struct {
	workingDir  gitpath.RepositoryPath
	gitDir      gitpath.GitPath
	objectStore store.ObjectStore
	refManager  *refs.RefManager
	config      *gitconfig.Config
	initialized bool
}

// NewGitRepository creates a new GitRepository instance
func NewGitRepository() *GitRepository {
	return &GitRepository{
		objectStore: store.NewFileObjectStore(),
		initialized: false,
	}
}

// Initialize creates a new repository at the given path.
//
// The working directory is created if it doesn't exist. Fails with
// NOT_A_DIRECTORY if the path exists but is a file, and with
// ALREADY_INITIALIZED if a non-empty control directory is already there.
func (gr *GitRepository) Initialize(path gitpath.RepositoryPath) error {
	if checkErr := checkInitTarget(path); checkErr != nil {
		return checkErr
	}

	gr.workingDir = path
	gr.gitDir = path.GitPath()
	gr.refManager = refs.NewRefManager(gr.gitDir)

	if mkErr := fileops.EnsureDir(gitpath.AbsolutePath(path)); mkErr != nil {
		return err.Wrap(mkErr, pkgName, "init")
	}

	if dirErr := gr.createDirectories(); dirErr != nil {
		return err.Wrap(dirErr, pkgName, "init")
	}

	if storeErr := gr.objectStore.Initialize(gr.workingDir); storeErr != nil {
		return err.Wrap(storeErr, pkgName, "init")
	}

	if refErr := gr.refManager.Init(); refErr != nil {
		return err.Wrap(refErr, pkgName, "init")
	}

	if fileErr := gr.createInitialFiles(); fileErr != nil {
		return err.Wrap(fileErr, pkgName, "init")
	}

	gr.config = gitconfig.Default()
	gr.initialized = true
	return nil
}

// WorkingDirectory returns the path to the repository's working directory
func (gr *GitRepository) WorkingDirectory() gitpath.RepositoryPath {
	return gr.workingDir
}

// GitDirectory returns the path to the .git control directory
func (gr *GitRepository) GitDirectory() gitpath.GitPath {
	return gr.gitDir
}

// ObjectStore returns the object store for this repository
func (gr *GitRepository) ObjectStore() store.ObjectStore {
	return gr.objectStore
}

// Refs returns the reference manager for this repository
func (gr *GitRepository) Refs() *refs.RefManager {
	return gr.refManager
}

// Config returns the repository configuration
func (gr *GitRepository) Config() *gitconfig.Config {
	return gr.config
}

// ReadObject reads an object by its SHA-1 hash
func (gr *GitRepository) ReadObject(hash objects.ObjectHash) (objects.GitObject, error) {
	if !gr.initialized {
		return nil, err.New(pkgName, err.CodeInvalidInput, "read_object",
			"repository not initialized", nil)
	}
	return gr.objectStore.ReadObject(hash)
}

// WriteObject writes an object to the repository and returns its hash
func (gr *GitRepository) WriteObject(obj objects.GitObject) (objects.ObjectHash, error) {
	if !gr.initialized {
		return "", err.New(pkgName, err.CodeInvalidInput, "write_object",
			"repository not initialized", nil)
	}
	return gr.objectStore.WriteObject(obj, true)
}

// Exists checks if a repository exists at the working directory
func (gr *GitRepository) Exists() (bool, error) {
	return RepositoryExists(gr.workingDir)
}

// IsInitialized returns whether the repository has been initialized
func (gr *GitRepository) IsInitialized() bool {
	return gr.initialized
}

// open binds the handle to an existing repository, validating its
// configuration.
func (gr *GitRepository) open(path gitpath.RepositoryPath) error {
	gr.workingDir = path
	gr.gitDir = path.GitPath()
	gr.refManager = refs.NewRefManager(gr.gitDir)

	cfg, cfgErr := loadAndValidateConfig(gr.gitDir)
	if cfgErr != nil {
		return cfgErr
	}
	gr.config = cfg

	if storeErr := gr.objectStore.Initialize(path); storeErr != nil {
		return err.Wrap(storeErr, pkgName, "open")
	}

	gr.initialized = true
	return nil
}

// createDirectories creates all necessary directories for the repository
func (gr *GitRepository) createDirectories() error {
	directories := []gitpath.GitPath{
		gr.gitDir,
		gr.gitDir.ObjectsPath(),
		gr.gitDir.RefsPath(),
		gr.gitDir.RefsPath().Join(gitpath.HeadsDir),
		gr.gitDir.RefsPath().Join(gitpath.TagsDir),
		gr.gitDir.Join(gitpath.BranchesDir),
	}

	for _, dir := range directories {
		if mkErr := fileops.EnsureDir(dir.ToAbsolutePath()); mkErr != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, mkErr)
		}
	}

	return nil
}

// createInitialFiles writes the description and config files of a fresh
// repository. HEAD is handled by the ref manager.
func (gr *GitRepository) createInitialFiles() error {
	description := gr.gitDir.DescriptionPath().ToAbsolutePath()
	if writeErr := fileops.WriteString(description, DefaultDescription); writeErr != nil {
		return fmt.Errorf("failed to create description file: %w", writeErr)
	}

	configPath := gr.gitDir.ConfigPath().ToAbsolutePath()
	if saveErr := gitconfig.Default().Save(configPath); saveErr != nil {
		return fmt.Errorf("failed to create config file: %w", saveErr)
	}

	return nil
}

// checkInitTarget validates the path a repository is about to be created
// at.
func checkInitTarget(path gitpath.RepositoryPath) error {
	info, statErr := os.Stat(path.String())
	if statErr != nil && !os.IsNotExist(statErr) {
		return err.Wrap(statErr, pkgName, "init")
	}

	if statErr == nil && !info.IsDir() {
		return err.New(pkgName, err.CodeNotADirectory, "init",
			fmt.Sprintf("%s is not a directory", path), nil)
	}

	gitDir := path.GitPath().ToAbsolutePath()
	gitInfo, gitStatErr := os.Stat(gitDir.String())
	if os.IsNotExist(gitStatErr) {
		return nil
	}
	if gitStatErr != nil {
		return err.Wrap(gitStatErr, pkgName, "init")
	}

	if !gitInfo.IsDir() {
		return err.New(pkgName, err.CodeNotADirectory, "init",
			fmt.Sprintf("%s exists and is not a directory", gitDir), nil)
	}

	entries, readErr := os.ReadDir(gitDir.String())
	if readErr != nil {
		return err.Wrap(readErr, pkgName, "init")
	}
	if len(entries) > 0 {
		return err.New(pkgName, err.CodeAlreadyInitialized, "init",
			fmt.Sprintf("%s is not empty", gitDir), nil)
	}

	return nil
}

// loadAndValidateConfig reads the repository configuration and checks the
// format version. Only version 0 is supported.
func loadAndValidateConfig(gitDir gitpath.GitPath) (*gitconfig.Config, error) {
	configPath := gitDir.ConfigPath().ToAbsolutePath()

	exists, existsErr := fileops.Exists(configPath)
	if existsErr != nil {
		return nil, err.Wrap(existsErr, pkgName, "open")
	}
	if !exists {
		return nil, err.New(pkgName, err.CodeConfigMissing, "open",
			fmt.Sprintf("configuration file missing in %s", gitDir), nil)
	}

	cfg, loadErr := gitconfig.Load(configPath)
	if loadErr != nil {
		return nil, err.Wrap(loadErr, pkgName, "open")
	}

	version, ok := cfg.Get("core", "repositoryformatversion")
	if !ok || version != "0" {
		return nil, err.New(pkgName, err.CodeUnsupportedVersion, "open",
			fmt.Sprintf("unsupported repositoryformatversion: %q", version), nil)
	}

	return cfg, nil
}
