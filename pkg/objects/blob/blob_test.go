package blob

import (
	"bytes"
	"testing"

	"github.com/wizardgit/wgit/pkg/objects"
)

func TestBlob_Hash_KnownValue(t *testing.T) {
	// git hash-object of a file containing "hello\n"
	b := NewBlob([]byte("hello\n"))

	hash, hashErr := b.Hash()
	if hashErr != nil {
		t.Fatalf("Hash() failed: %v", hashErr)
	}

	want := objects.ObjectHash("ce013625030ba8dba906f756967f9e9ca394464a")
	if hash != want {
		t.Errorf("Hash() = %s, want %s", hash, want)
	}
}

func TestBlob_EmptyContent(t *testing.T) {
	b := NewBlob(nil)

	hash, hashErr := b.Hash()
	if hashErr != nil {
		t.Fatalf("Hash() failed: %v", hashErr)
	}

	want := objects.ObjectHash("e69de29bb2d1d6434b8b29ae775ad8c2e48c5391")
	if hash != want {
		t.Errorf("empty blob hash = %s, want %s", hash, want)
	}

	size, sizeErr := b.Size()
	if sizeErr != nil {
		t.Fatalf("Size() failed: %v", sizeErr)
	}
	if size != 0 {
		t.Errorf("Size() = %d, want 0", size)
	}
}

func TestBlob_Serialize(t *testing.T) {
	b := NewBlob([]byte("hello\n"))

	var buf bytes.Buffer
	if serErr := b.Serialize(&buf); serErr != nil {
		t.Fatalf("Serialize() failed: %v", serErr)
	}

	want := "blob 6\x00hello\n"
	if buf.String() != want {
		t.Errorf("Serialize() = %q, want %q", buf.String(), want)
	}
}

func TestParseBlob_RoundTrip(t *testing.T) {
	original := NewBlob([]byte("binary\x00data\xffhere"))

	var buf bytes.Buffer
	if serErr := original.Serialize(&buf); serErr != nil {
		t.Fatalf("Serialize() failed: %v", serErr)
	}

	parsed, parseErr := ParseBlob(buf.Bytes())
	if parseErr != nil {
		t.Fatalf("ParseBlob() failed: %v", parseErr)
	}

	origContent, _ := original.Content()
	parsedContent, _ := parsed.Content()
	if !bytes.Equal(origContent, parsedContent) {
		t.Errorf("content mismatch after round trip")
	}

	origHash, _ := original.Hash()
	parsedHash, _ := parsed.Hash()
	if origHash != parsedHash {
		t.Errorf("hash mismatch: original %s, parsed %s", origHash, parsedHash)
	}
}

func TestParseBlob_Malformed(t *testing.T) {
	inputs := [][]byte{
		[]byte("blob 10\x00short"),
		[]byte("tree 5\x00hello"),
		[]byte("no header here"),
	}

	for _, input := range inputs {
		if _, parseErr := ParseBlob(input); parseErr == nil {
			t.Errorf("ParseBlob(%q) should fail", input)
		}
	}
}

func TestNewBlob_CopiesData(t *testing.T) {
	data := []byte("mutable")
	b := NewBlob(data)

	data[0] = 'X'

	content, _ := b.Content()
	if string(content) != "mutable" {
		t.Errorf("blob content changed with caller's slice: %q", content)
	}
}
