package commit

import (
	"fmt"
	"io"
	"strings"

	"github.com/wizardgit/wgit/pkg/common/err"
	"github.com/wizardgit/wgit/pkg/objects"
)

const pkgName = "commit"

// Commit represents a snapshot in the repository's history.
//
// Payload layout (after the "commit <size>\0" header):
//
//	tree <sha> LF
//	parent <sha> LF          (zero or more)
//	author <identity> LF
//	committer <identity> LF
//	<extra headers> LF       (preserved verbatim, e.g. gpgsig)
//	LF
//	commit-message
//
// Commits form a DAG: each commit points at its parents, merge commits
// have several, the initial commit has none. Header fields this
// implementation does not interpret are kept in ExtraFields so a decoded
// commit re-encodes without losing them.
type Commit struct {
	TreeSHA     string
	ParentSHAs  []string
	Author      *CommitPerson
	Committer   *CommitPerson
	ExtraFields []objects.HeaderField
	Message     string

	sha *objects.ObjectHash
}

// Validate checks that all required fields are present
func (c *Commit) Validate() error {
	if c.TreeSHA == "" {
		return fmt.Errorf("tree SHA is required")
	}
	if c.Author == nil {
		return fmt.Errorf("author is required")
	}
	if c.Committer == nil {
		return fmt.Errorf("committer is required")
	}
	return nil
}

// Type returns the object type
func (c *Commit) Type() objects.ObjectType {
	return objects.CommitType
}

// Content returns the raw content of the commit (without header)
func (c *Commit) Content() ([]byte, error) {
	fields := make([]objects.HeaderField, 0, 4+len(c.ParentSHAs)+len(c.ExtraFields))
	fields = append(fields, objects.HeaderField{Key: "tree", Value: c.TreeSHA})
	for _, parent := range c.ParentSHAs {
		fields = append(fields, objects.HeaderField{Key: "parent", Value: parent})
	}
	fields = append(fields, objects.HeaderField{Key: "author", Value: c.Author.Format()})
	fields = append(fields, objects.HeaderField{Key: "committer", Value: c.Committer.Format()})
	fields = append(fields, c.ExtraFields...)

	return objects.EncodeHeaders(fields, c.Message), nil
}

// Hash returns the SHA-1 hash of the commit
func (c *Commit) Hash() (objects.ObjectHash, error) {
	if c.sha != nil {
		return *c.sha, nil
	}

	content, contentErr := c.Content()
	if contentErr != nil {
		return "", fmt.Errorf("failed to get content: %w", contentErr)
	}

	sha := objects.ComputeObjectHash(objects.CommitType, content)
	c.sha = &sha
	return sha, nil
}

// Size returns the size of the content in bytes
func (c *Commit) Size() (int64, error) {
	content, contentErr := c.Content()
	if contentErr != nil {
		return 0, contentErr
	}
	return int64(len(content)), nil
}

// Serialize writes the commit in its canonical storage format
func (c *Commit) Serialize(w io.Writer) error {
	if validateErr := c.Validate(); validateErr != nil {
		return fmt.Errorf("invalid commit: %w", validateErr)
	}

	content, contentErr := c.Content()
	if contentErr != nil {
		return fmt.Errorf("failed to get content: %w", contentErr)
	}

	header := objects.CreateHeader(objects.CommitType, int64(len(content)))

	if _, writeErr := w.Write(header); writeErr != nil {
		return fmt.Errorf("failed to write commit header: %w", writeErr)
	}

	if _, writeErr := w.Write(content); writeErr != nil {
		return fmt.Errorf("failed to write commit content: %w", writeErr)
	}

	return nil
}

// String returns a human-readable representation
func (c *Commit) String() string {
	hash, hashErr := c.Hash()
	if hashErr != nil {
		return fmt.Sprintf("Commit{tree: %s, parents: %d, error: %v}",
			c.TreeSHA, len(c.ParentSHAs), hashErr)
	}
	return fmt.Sprintf("Commit{hash: %s, tree: %s, parents: %d, message: %.50s}",
		hash.Short(), c.TreeSHA, len(c.ParentSHAs), c.Message)
}

// ParseCommit parses a commit object from serialized data (with header)
func ParseCommit(data []byte) (*Commit, error) {
	content, parseErr := objects.ParseContent(data, objects.CommitType)
	if parseErr != nil {
		return nil, parseErr
	}

	commit, parseErr := parseCommitContent(content)
	if parseErr != nil {
		return nil, parseErr
	}

	sha := objects.NewObjectHash(data)
	commit.sha = &sha

	return commit, nil
}

// parseCommitContent parses the commit payload (without header)
func parseCommitContent(content []byte) (*Commit, error) {
	fields, message, decodeErr := objects.DecodeHeaders(content)
	if decodeErr != nil {
		return nil, decodeErr
	}

	commit := &Commit{
		ParentSHAs: make([]string, 0),
		Message:    message,
	}

	for _, field := range fields {
		if fieldErr := applyCommitField(commit, field); fieldErr != nil {
			return nil, fieldErr
		}
	}

	if validateErr := commit.Validate(); validateErr != nil {
		return nil, err.New(pkgName, err.CodeMalformedObject, "parse",
			"incomplete commit header", validateErr)
	}

	return commit, nil
}

// applyCommitField interprets a single header field, keeping unknown
// fields verbatim.
func applyCommitField(commit *Commit, field objects.HeaderField) error {
	switch field.Key {
	case "tree":
		if commit.TreeSHA != "" {
			return err.New(pkgName, err.CodeMalformedObject, "parse",
				"multiple tree entries found", nil)
		}
		if shaErr := validateSHA(field.Value); shaErr != nil {
			return err.New(pkgName, err.CodeMalformedObject, "parse",
				"invalid tree SHA", shaErr)
		}
		commit.TreeSHA = strings.ToLower(field.Value)

	case "parent":
		if shaErr := validateSHA(field.Value); shaErr != nil {
			return err.New(pkgName, err.CodeMalformedObject, "parse",
				"invalid parent SHA", shaErr)
		}
		commit.ParentSHAs = append(commit.ParentSHAs, strings.ToLower(field.Value))

	case "author":
		if commit.Author != nil {
			return err.New(pkgName, err.CodeMalformedObject, "parse",
				"multiple author entries found", nil)
		}
		author, personErr := ParseCommitPerson(field.Value)
		if personErr != nil {
			return err.New(pkgName, err.CodeMalformedObject, "parse",
				"invalid author", personErr)
		}
		commit.Author = author

	case "committer":
		if commit.Committer != nil {
			return err.New(pkgName, err.CodeMalformedObject, "parse",
				"multiple committer entries found", nil)
		}
		committer, personErr := ParseCommitPerson(field.Value)
		if personErr != nil {
			return err.New(pkgName, err.CodeMalformedObject, "parse",
				"invalid committer", personErr)
		}
		commit.Committer = committer

	default:
		commit.ExtraFields = append(commit.ExtraFields, field)
	}

	return nil
}

// IsInitialCommit returns true if this commit has no parents
func (c *Commit) IsInitialCommit() bool {
	return len(c.ParentSHAs) == 0
}

// IsMergeCommit returns true if this commit has multiple parents
func (c *Commit) IsMergeCommit() bool {
	return len(c.ParentSHAs) > 1
}

// Equal compares two commits for logical equality
func (c *Commit) Equal(other *Commit) bool {
	if other == nil {
		return false
	}

	if c.TreeSHA != other.TreeSHA {
		return false
	}

	if len(c.ParentSHAs) != len(other.ParentSHAs) {
		return false
	}
	for i, parent := range c.ParentSHAs {
		if parent != other.ParentSHAs[i] {
			return false
		}
	}

	if len(c.ExtraFields) != len(other.ExtraFields) {
		return false
	}
	for i, field := range c.ExtraFields {
		if field != other.ExtraFields[i] {
			return false
		}
	}

	if !c.Author.Equal(other.Author) {
		return false
	}
	if !c.Committer.Equal(other.Committer) {
		return false
	}

	return c.Message == other.Message
}

// validateSHA validates a SHA-1 hash string
func validateSHA(sha string) error {
	if len(sha) != objects.HashLength {
		return fmt.Errorf("SHA must be %d characters long, got %d", objects.HashLength, len(sha))
	}

	if _, parseErr := objects.ParseObjectHash(sha); parseErr != nil {
		return parseErr
	}

	return nil
}
