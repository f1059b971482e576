package tag

import (
	"fmt"
	"io"
	"strings"

	"github.com/wizardgit/wgit/pkg/common/err"
	"github.com/wizardgit/wgit/pkg/objects"
	"github.com/wizardgit/wgit/pkg/objects/commit"
)

const pkgName = "tag"

// Tag represents an annotated tag object: a named pointer at another
// object plus tagger identity and a message.
//
// Payload layout (after the "tag <size>\0" header):
//
//	object <sha> LF
//	type <object-type> LF
//	tag <name> LF
//	tagger <identity> LF
//	<extra headers> LF       (preserved verbatim, e.g. a signature)
//	LF
//	tag-message
type Tag struct {
	ObjectSHA   string
	ObjectType  objects.ObjectType
	Name        string
	Tagger      *commit.CommitPerson
	ExtraFields []objects.HeaderField
	Message     string

	sha *objects.ObjectHash
}

// Validate checks that all required fields are present
func (t *Tag) Validate() error {
	if t.ObjectSHA == "" {
		return fmt.Errorf("object SHA is required")
	}
	if t.ObjectType == "" {
		return fmt.Errorf("object type is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tag name is required")
	}
	if t.Tagger == nil {
		return fmt.Errorf("tagger is required")
	}
	return nil
}

// Type returns the object type
func (t *Tag) Type() objects.ObjectType {
	return objects.TagType
}

// Content returns the raw content of the tag (without header)
func (t *Tag) Content() ([]byte, error) {
	fields := make([]objects.HeaderField, 0, 4+len(t.ExtraFields))
	fields = append(fields,
		objects.HeaderField{Key: "object", Value: t.ObjectSHA},
		objects.HeaderField{Key: "type", Value: t.ObjectType.String()},
		objects.HeaderField{Key: "tag", Value: t.Name},
		objects.HeaderField{Key: "tagger", Value: t.Tagger.Format()},
	)
	fields = append(fields, t.ExtraFields...)

	return objects.EncodeHeaders(fields, t.Message), nil
}

// Hash returns the SHA-1 hash of the tag
func (t *Tag) Hash() (objects.ObjectHash, error) {
	if t.sha != nil {
		return *t.sha, nil
	}

	content, contentErr := t.Content()
	if contentErr != nil {
		return "", fmt.Errorf("failed to get content: %w", contentErr)
	}

	sha := objects.ComputeObjectHash(objects.TagType, content)
	t.sha = &sha
	return sha, nil
}

// Size returns the size of the content in bytes
func (t *Tag) Size() (int64, error) {
	content, contentErr := t.Content()
	if contentErr != nil {
		return 0, contentErr
	}
	return int64(len(content)), nil
}

// Serialize writes the tag in its canonical storage format
func (t *Tag) Serialize(w io.Writer) error {
	if validateErr := t.Validate(); validateErr != nil {
		return fmt.Errorf("invalid tag: %w", validateErr)
	}

	content, contentErr := t.Content()
	if contentErr != nil {
		return fmt.Errorf("failed to get content: %w", contentErr)
	}

	header := objects.CreateHeader(objects.TagType, int64(len(content)))

	if _, writeErr := w.Write(header); writeErr != nil {
		return fmt.Errorf("failed to write tag header: %w", writeErr)
	}

	if _, writeErr := w.Write(content); writeErr != nil {
		return fmt.Errorf("failed to write tag content: %w", writeErr)
	}

	return nil
}

// String returns a human-readable representation
func (t *Tag) String() string {
	hash, hashErr := t.Hash()
	if hashErr != nil {
		return fmt.Sprintf("Tag{name: %s, object: %s, error: %v}", t.Name, t.ObjectSHA, hashErr)
	}
	return fmt.Sprintf("Tag{hash: %s, name: %s, object: %s %s}",
		hash.Short(), t.Name, t.ObjectType, t.ObjectSHA)
}

// ParseTag parses a tag object from serialized data (with header)
func ParseTag(data []byte) (*Tag, error) {
	content, parseErr := objects.ParseContent(data, objects.TagType)
	if parseErr != nil {
		return nil, parseErr
	}

	tag, parseErr := parseTagContent(content)
	if parseErr != nil {
		return nil, parseErr
	}

	sha := objects.NewObjectHash(data)
	tag.sha = &sha

	return tag, nil
}

// parseTagContent parses the tag payload (without header)
func parseTagContent(content []byte) (*Tag, error) {
	fields, message, decodeErr := objects.DecodeHeaders(content)
	if decodeErr != nil {
		return nil, decodeErr
	}

	tag := &Tag{Message: message}

	for _, field := range fields {
		if fieldErr := applyTagField(tag, field); fieldErr != nil {
			return nil, fieldErr
		}
	}

	if validateErr := tag.Validate(); validateErr != nil {
		return nil, err.New(pkgName, err.CodeMalformedObject, "parse",
			"incomplete tag header", validateErr)
	}

	return tag, nil
}

// applyTagField interprets a single header field, keeping unknown fields
// verbatim.
func applyTagField(tag *Tag, field objects.HeaderField) error {
	switch field.Key {
	case "object":
		if tag.ObjectSHA != "" {
			return err.New(pkgName, err.CodeMalformedObject, "parse",
				"multiple object entries found", nil)
		}
		if _, shaErr := objects.ParseObjectHash(field.Value); shaErr != nil {
			return err.New(pkgName, err.CodeMalformedObject, "parse",
				"invalid object SHA", shaErr)
		}
		tag.ObjectSHA = strings.ToLower(field.Value)

	case "type":
		objType, typeErr := objects.ParseObjectType(field.Value)
		if typeErr != nil {
			return typeErr
		}
		tag.ObjectType = objType

	case "tag":
		if tag.Name != "" {
			return err.New(pkgName, err.CodeMalformedObject, "parse",
				"multiple tag entries found", nil)
		}
		tag.Name = field.Value

	case "tagger":
		if tag.Tagger != nil {
			return err.New(pkgName, err.CodeMalformedObject, "parse",
				"multiple tagger entries found", nil)
		}
		tagger, personErr := commit.ParseCommitPerson(field.Value)
		if personErr != nil {
			return err.New(pkgName, err.CodeMalformedObject, "parse",
				"invalid tagger", personErr)
		}
		tag.Tagger = tagger

	default:
		tag.ExtraFields = append(tag.ExtraFields, field)
	}

	return nil
}

// Equal compares two tags for logical equality
func (t *Tag) Equal(other *Tag) bool {
	if other == nil {
		return false
	}

	if t.ObjectSHA != other.ObjectSHA ||
		t.ObjectType != other.ObjectType ||
		t.Name != other.Name ||
		t.Message != other.Message {
		return false
	}

	if len(t.ExtraFields) != len(other.ExtraFields) {
		return false
	}
	for i, field := range t.ExtraFields {
		if field != other.ExtraFields[i] {
			return false
		}
	}

	return t.Tagger.Equal(other.Tagger)
}
