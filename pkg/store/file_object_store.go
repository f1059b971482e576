package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wizardgit/wgit/pkg/common/err"
	"github.com/wizardgit/wgit/pkg/common/fileops"
	"github.com/wizardgit/wgit/pkg/objects"
	"github.com/wizardgit/wgit/pkg/objects/blob"
	"github.com/wizardgit/wgit/pkg/objects/commit"
	"github.com/wizardgit/wgit/pkg/objects/tag"
	"github.com/wizardgit/wgit/pkg/objects/tree"
	"github.com/wizardgit/wgit/pkg/repository/gitpath"
)

const pkgName = "store"

// FileObjectStore is a file-based implementation of object storage that
// mirrors Git's loose object database.
//
// Each object is:
// 1. Serialized to the canonical format (header + content)
// 2. Compressed with zlib
// 3. Stored in a file named by its SHA-1 hash
//
// Directory structure:
// ┌─ .git/objects/
// │ ├─ ab/ ← First 2 characters of SHA
// │ │ └─ cdef123... ← Remaining 38 characters of SHA
// │ ├─ cd/
// │ │ └─ ef456789...
// │ └─ ...
//
// Example for SHA "abcdef1234567890abcdef1234567890abcdef12":
// File path: .git/objects/ab/cdef1234567890abcdef1234567890abcdef12
type FileObjectStore struct {
	objectsPath gitpath.GitPath
}

// NewFileObjectStore creates a new FileObjectStore instance
func NewFileObjectStore() *FileObjectStore {
	return &FileObjectStore{}
}

// Initialize sets up the object store by creating the objects directory
// if it doesn't exist.
func (fos *FileObjectStore) Initialize(repoPath gitpath.RepositoryPath) error {
	fos.objectsPath = repoPath.GitPath().ObjectsPath()

	if mkErr := fileops.EnsureDir(fos.objectsPath.ToAbsolutePath()); mkErr != nil {
		return err.Wrap(mkErr, pkgName, "initialize")
	}

	return nil
}

// WriteObject stores an object in the object store.
//
// The process:
// 1. Serialize the object to the canonical format
// 2. Compute its SHA-1 hash
// 3. If persist is false, stop here and return the hash
// 4. If the object already exists on disk, return the hash unchanged
// 5. Otherwise compress and write atomically
func (fos *FileObjectStore) WriteObject(obj objects.GitObject, persist bool) (objects.ObjectHash, error) {
	var buf bytes.Buffer
	if serErr := obj.Serialize(&buf); serErr != nil {
		return "", err.Wrap(serErr, pkgName, "write")
	}
	serialized := objects.SerializedObject(buf.Bytes())
	hash := serialized.Hash()

	if !persist {
		return hash, nil
	}

	if initErr := fos.ensureInitialized(); initErr != nil {
		return "", initErr
	}

	filePath, pathErr := fos.resolveObjectPath(hash)
	if pathErr != nil {
		return "", pathErr
	}

	exists, existsErr := fileops.Exists(filePath.ToAbsolutePath())
	if existsErr != nil {
		return "", err.Wrap(existsErr, pkgName, "write")
	}
	if exists {
		return hash, nil
	}

	compressed, compErr := serialized.Compress()
	if compErr != nil {
		return "", err.Wrap(compErr, pkgName, "write")
	}

	target := filePath.ToAbsolutePath()
	if mkErr := fileops.EnsureParentDir(target); mkErr != nil {
		return "", err.Wrap(mkErr, pkgName, "write")
	}

	if writeErr := fileops.WriteReadOnly(target, compressed.Bytes()); writeErr != nil {
		return "", err.Wrap(writeErr, pkgName, "write")
	}

	return hash, nil
}

// ReadObject retrieves and reconstructs an object from storage by its
// full SHA-1 hash.
//
// The method:
// 1. Reads the compressed data from disk
// 2. Decompresses it
// 3. Determines the object type from the header
// 4. Parses the data into the appropriate object
//
// Returns (nil, nil) if the object doesn't exist.
func (fos *FileObjectStore) ReadObject(hash objects.ObjectHash) (objects.GitObject, error) {
	filePath, pathErr := fos.validateAndResolvePath(hash)
	if pathErr != nil {
		return nil, pathErr
	}

	compressed, readErr := os.ReadFile(filePath.String())
	if os.IsNotExist(readErr) {
		return nil, nil
	}
	if readErr != nil {
		return nil, err.Wrap(readErr, pkgName, "read")
	}

	decompressed, decErr := objects.CompressedData(compressed).Decompress()
	if decErr != nil {
		return nil, err.New(pkgName, err.CodeMalformedObject, "read",
			fmt.Sprintf("object %s is not valid zlib data", hash.Short()), decErr)
	}

	return parseObject(decompressed)
}

// HasObject checks if an object exists in the object store.
func (fos *FileObjectStore) HasObject(hash objects.ObjectHash) (bool, error) {
	filePath, pathErr := fos.validateAndResolvePath(hash)
	if pathErr != nil {
		return false, pathErr
	}

	exists, existsErr := fileops.Exists(filePath.ToAbsolutePath())
	if existsErr != nil {
		return false, err.Wrap(existsErr, pkgName, "has")
	}
	return exists, nil
}

// ResolvePrefix expands an abbreviated hash to the unique full hash it
// prefixes. A full 40-character hash resolves to itself if the object
// exists. Returns "" if no object matches.
func (fos *FileObjectStore) ResolvePrefix(prefix string) (objects.ObjectHash, error) {
	if initErr := fos.ensureInitialized(); initErr != nil {
		return "", initErr
	}

	prefix = strings.ToLower(prefix)
	if !objects.IsValidHashPrefix(prefix) {
		return "", err.New(pkgName, err.CodeInvalidInput, "resolve",
			fmt.Sprintf("invalid hash prefix: %q", prefix), nil)
	}

	if len(prefix) == objects.HashLength {
		exists, existsErr := fos.HasObject(objects.ObjectHash(prefix))
		if existsErr != nil {
			return "", existsErr
		}
		if !exists {
			return "", nil
		}
		return objects.ObjectHash(prefix), nil
	}

	matches, matchErr := fos.findMatches(prefix)
	if matchErr != nil {
		return "", matchErr
	}

	switch len(matches) {
	case 0:
		return "", nil
	case 1:
		return matches[0], nil
	default:
		sort.Slice(matches, func(i, j int) bool { return matches[i] < matches[j] })
		return "", err.New(pkgName, err.CodeAmbiguousReference, "resolve",
			fmt.Sprintf("prefix %q matches %d objects (%s, %s, ...)",
				prefix, len(matches), matches[0].Short(), matches[1].Short()), nil)
	}
}

// ForEachObject calls fn for every object hash in the store.
func (fos *FileObjectStore) ForEachObject(fn func(hash objects.ObjectHash) error) error {
	if initErr := fos.ensureInitialized(); initErr != nil {
		return initErr
	}

	shards, readErr := os.ReadDir(fos.objectsPath.String())
	if readErr != nil {
		return err.Wrap(readErr, pkgName, "walk")
	}

	for _, shard := range shards {
		if !shard.IsDir() || !isShardName(shard.Name()) {
			continue
		}

		shardPath := fos.objectsPath.Join(shard.Name())
		files, filesErr := os.ReadDir(shardPath.String())
		if filesErr != nil {
			return err.Wrap(filesErr, pkgName, "walk")
		}

		for _, file := range files {
			if file.IsDir() {
				continue
			}
			hash, hashErr := objects.ParseObjectHash(shard.Name() + file.Name())
			if hashErr != nil {
				continue
			}
			if fnErr := fn(hash); fnErr != nil {
				return fnErr
			}
		}
	}

	return nil
}

// Verify decodes every stored object and recomputes its hash. Objects are
// checked concurrently, one worker per CPU.
func (fos *FileObjectStore) Verify(ctx context.Context) ([]VerifyError, error) {
	if initErr := fos.ensureInitialized(); initErr != nil {
		return nil, initErr
	}

	var hashes []objects.ObjectHash
	if walkErr := fos.ForEachObject(func(hash objects.ObjectHash) error {
		hashes = append(hashes, hash)
		return nil
	}); walkErr != nil {
		return nil, walkErr
	}

	var (
		mu       sync.Mutex
		failures []VerifyError
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, hash := range hashes {
		hash := hash
		g.Go(func() error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			if reason := fos.verifyObject(hash); reason != "" {
				mu.Lock()
				failures = append(failures, VerifyError{Hash: hash, Reason: reason})
				mu.Unlock()
			}
			return nil
		})
	}

	if waitErr := g.Wait(); waitErr != nil {
		return nil, waitErr
	}

	sort.Slice(failures, func(i, j int) bool { return failures[i].Hash < failures[j].Hash })
	return failures, nil
}

// verifyObject checks a single object, returning a non-empty reason on
// failure.
func (fos *FileObjectStore) verifyObject(hash objects.ObjectHash) string {
	filePath, pathErr := fos.resolveObjectPath(hash)
	if pathErr != nil {
		return pathErr.Error()
	}

	compressed, readErr := os.ReadFile(filePath.String())
	if readErr != nil {
		return fmt.Sprintf("unreadable: %v", readErr)
	}

	decompressed, decErr := objects.CompressedData(compressed).Decompress()
	if decErr != nil {
		return fmt.Sprintf("invalid zlib data: %v", decErr)
	}

	if _, parseErr := parseObject(decompressed); parseErr != nil {
		return fmt.Sprintf("malformed object: %v", parseErr)
	}

	if actual := decompressed.Hash(); actual != hash {
		return fmt.Sprintf("hash mismatch: content hashes to %s", actual)
	}

	return ""
}

// ObjectCount returns the total number of objects in the store.
func (fos *FileObjectStore) ObjectCount() (int, error) {
	count := 0
	if walkErr := fos.ForEachObject(func(objects.ObjectHash) error {
		count++
		return nil
	}); walkErr != nil {
		return 0, walkErr
	}
	return count, nil
}

// IsInitialized checks if the object store has been initialized
func (fos *FileObjectStore) IsInitialized() bool {
	return fos.objectsPath.IsValid()
}

// ObjectsPath returns the path to the objects directory
func (fos *FileObjectStore) ObjectsPath() gitpath.GitPath {
	return fos.objectsPath
}

// findMatches scans the shard directory named by the first two characters
// of the prefix for filenames completing it.
func (fos *FileObjectStore) findMatches(prefix string) ([]objects.ObjectHash, error) {
	if len(prefix) < 2 {
		return fos.findMatchesAllShards(prefix)
	}

	shardPath := fos.objectsPath.Join(prefix[:2])
	files, readErr := os.ReadDir(shardPath.String())
	if os.IsNotExist(readErr) {
		return nil, nil
	}
	if readErr != nil {
		return nil, err.Wrap(readErr, pkgName, "resolve")
	}

	var matches []objects.ObjectHash
	rest := prefix[2:]
	for _, file := range files {
		if file.IsDir() || !strings.HasPrefix(file.Name(), rest) {
			continue
		}
		hash, hashErr := objects.ParseObjectHash(prefix[:2] + file.Name())
		if hashErr != nil {
			continue
		}
		matches = append(matches, hash)
	}

	return matches, nil
}

// findMatchesAllShards handles single-character prefixes, which span
// multiple shard directories.
func (fos *FileObjectStore) findMatchesAllShards(prefix string) ([]objects.ObjectHash, error) {
	var matches []objects.ObjectHash
	walkErr := fos.ForEachObject(func(hash objects.ObjectHash) error {
		if hash.HasPrefix(prefix) {
			matches = append(matches, hash)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return matches, nil
}

// resolveObjectPath converts a SHA-1 hash to its sharded file path.
//
// Example: hash "abcdef1234567890abcdef1234567890abcdef12"
// Returns: .git/objects/ab/cdef1234567890abcdef1234567890abcdef12
func (fos *FileObjectStore) resolveObjectPath(hash objects.ObjectHash) (gitpath.GitPath, error) {
	objPath := fos.objectsPath.ObjectFilePath(hash.String())
	if objPath == "" {
		return "", err.New(pkgName, err.CodeInvalidInput, "resolve_path",
			fmt.Sprintf("invalid hash: %s", hash), nil)
	}
	return objPath, nil
}

// parseObject determines the object type from the header and parses the
// data into the corresponding object.
func parseObject(data objects.SerializedObject) (objects.GitObject, error) {
	objType, _, _, headerErr := data.ParseHeader()
	if headerErr != nil {
		return nil, headerErr
	}

	fullData := data.Bytes()

	switch objType {
	case objects.BlobType:
		return blob.ParseBlob(fullData)
	case objects.TreeType:
		return tree.ParseTree(fullData)
	case objects.CommitType:
		return commit.ParseCommit(fullData)
	case objects.TagType:
		return tag.ParseTag(fullData)
	default:
		return nil, err.New(pkgName, err.CodeUnknownObjectType, "parse",
			fmt.Sprintf("unknown object type: %s", objType), nil)
	}
}

func (fos *FileObjectStore) validateAndResolvePath(hash objects.ObjectHash) (gitpath.GitPath, error) {
	if initErr := fos.ensureInitialized(); initErr != nil {
		return "", initErr
	}

	if valErr := hash.Validate(); valErr != nil {
		return "", err.New(pkgName, err.CodeInvalidInput, "resolve_path",
			"invalid hash", valErr)
	}

	return fos.resolveObjectPath(hash)
}

// ensureInitialized checks if the object store is initialized and returns an error if not
func (fos *FileObjectStore) ensureInitialized() error {
	if !fos.objectsPath.IsValid() {
		return err.New(pkgName, err.CodeInvalidInput, "ensure_initialized",
			"object store not initialized", nil)
	}
	return nil
}

// isShardName reports whether name is a two-character hex fan-out
// directory name.
func isShardName(name string) bool {
	if len(name) != 2 {
		return false
	}
	for _, c := range name {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}
