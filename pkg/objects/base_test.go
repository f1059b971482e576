package objects

import (
	"testing"

	"github.com/wizardgit/wgit/pkg/common/err"
)

func TestParseObjectType(t *testing.T) {
	tests := []struct {
		input   string
		want    ObjectType
		wantErr bool
	}{
		{"blob", BlobType, false},
		{"tree", TreeType, false},
		{"commit", CommitType, false},
		{"tag", TagType, false},
		{"", "", true},
		{"Blob", "", true},
		{"blobs", "", true},
		{"object", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, parseErr := ParseObjectType(tt.input)
			if tt.wantErr {
				if parseErr == nil {
					t.Fatalf("ParseObjectType(%q) should fail", tt.input)
				}
				if !err.IsCode(parseErr, err.CodeUnknownObjectType) {
					t.Errorf("expected UNKNOWN_OBJECT_TYPE code, got %v", parseErr)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("ParseObjectType(%q) failed: %v", tt.input, parseErr)
			}
			if got != tt.want {
				t.Errorf("ParseObjectType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		wantType  ObjectType
		wantSize  int64
		wantStart int
		wantErr   bool
	}{
		{
			name:      "blob header",
			data:      []byte("blob 6\x00hello\n"),
			wantType:  BlobType,
			wantSize:  6,
			wantStart: 7,
		},
		{
			name:      "empty tree header",
			data:      []byte("tree 0\x00"),
			wantType:  TreeType,
			wantSize:  0,
			wantStart: 7,
		},
		{
			name:    "missing null byte",
			data:    []byte("blob 6 hello"),
			wantErr: true,
		},
		{
			name:    "missing space",
			data:    []byte("blob6\x00hello"),
			wantErr: true,
		},
		{
			name:    "unknown type",
			data:    []byte("blub 6\x00hello\n"),
			wantErr: true,
		},
		{
			name:    "non-numeric size",
			data:    []byte("blob six\x00hello"),
			wantErr: true,
		},
		{
			name:    "negative size",
			data:    []byte("blob -6\x00hello"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objType, size, start, parseErr := ParseHeader(tt.data)
			if tt.wantErr {
				if parseErr == nil {
					t.Fatalf("ParseHeader() should fail for %q", tt.data)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("ParseHeader() failed: %v", parseErr)
			}
			if objType != tt.wantType {
				t.Errorf("type = %v, want %v", objType, tt.wantType)
			}
			if size != tt.wantSize {
				t.Errorf("size = %d, want %d", size, tt.wantSize)
			}
			if start != tt.wantStart {
				t.Errorf("content start = %d, want %d", start, tt.wantStart)
			}
		})
	}
}

func TestParseContent_SizeMismatch(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"declared too large", []byte("blob 10\x00hello")},
		{"declared too small", []byte("blob 2\x00hello")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, parseErr := ParseContent(tt.data, BlobType)
			if parseErr == nil {
				t.Fatal("ParseContent() should fail on size mismatch")
			}
			if !err.IsCode(parseErr, err.CodeMalformedObject) {
				t.Errorf("expected MALFORMED_OBJECT code, got %v", parseErr)
			}
		})
	}
}

func TestParseContent_TypeMismatch(t *testing.T) {
	data := []byte("blob 5\x00hello")
	_, parseErr := ParseContent(data, TreeType)
	if parseErr == nil {
		t.Fatal("ParseContent() should fail on type mismatch")
	}
}

func TestCreateHeader(t *testing.T) {
	header := CreateHeader(BlobType, 6)
	want := "blob 6\x00"
	if string(header) != want {
		t.Errorf("CreateHeader() = %q, want %q", header, want)
	}
}

func TestSerializedObjectRoundTrip(t *testing.T) {
	content := ObjectContent("hello\n")
	serialized := NewSerializedObject(BlobType, content)

	if string(serialized) != "blob 6\x00hello\n" {
		t.Errorf("unexpected serialized form: %q", serialized)
	}

	got, contentErr := serialized.Content()
	if contentErr != nil {
		t.Fatalf("Content() failed: %v", contentErr)
	}
	if string(got) != string(content) {
		t.Errorf("content = %q, want %q", got, content)
	}
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	serialized := NewSerializedObject(BlobType, ObjectContent("some compressible data data data"))

	compressed, compErr := serialized.Compress()
	if compErr != nil {
		t.Fatalf("Compress() failed: %v", compErr)
	}

	decompressed, decErr := compressed.Decompress()
	if decErr != nil {
		t.Fatalf("Decompress() failed: %v", decErr)
	}

	if string(decompressed) != string(serialized) {
		t.Errorf("round trip mismatch: got %q, want %q", decompressed, serialized)
	}
}

func TestDecompress_InvalidData(t *testing.T) {
	_, decErr := CompressedData("not zlib data").Decompress()
	if decErr == nil {
		t.Error("Decompress() should fail on garbage input")
	}
}
