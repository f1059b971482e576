package objects

import (
	"bytes"
	"testing"

	"github.com/wizardgit/wgit/pkg/common/err"
)

func TestEncodeDecodeHeaders_RoundTrip(t *testing.T) {
	fields := []HeaderField{
		{Key: "tree", Value: "4b825dc642cb6eb9a060e54bf8d69288fbee4904"},
		{Key: "author", Value: "John Doe <john@example.com> 1609459200 +0000"},
		{Key: "custom", Value: "some value"},
	}
	message := "Initial commit\n\nWith a body.\n"

	encoded := EncodeHeaders(fields, message)
	gotFields, gotMessage, decodeErr := DecodeHeaders(encoded)
	if decodeErr != nil {
		t.Fatalf("DecodeHeaders() failed: %v", decodeErr)
	}

	if len(gotFields) != len(fields) {
		t.Fatalf("got %d fields, want %d", len(gotFields), len(fields))
	}
	for i, f := range fields {
		if gotFields[i] != f {
			t.Errorf("field %d = %+v, want %+v", i, gotFields[i], f)
		}
	}
	if gotMessage != message {
		t.Errorf("message = %q, want %q", gotMessage, message)
	}
}

func TestEncodeDecodeHeaders_MultilineValue(t *testing.T) {
	signature := "-----BEGIN PGP SIGNATURE-----\niQIzBAABCAAdFiEE\n-----END PGP SIGNATURE-----"
	fields := []HeaderField{
		{Key: "tree", Value: "4b825dc642cb6eb9a060e54bf8d69288fbee4904"},
		{Key: "gpgsig", Value: signature},
	}

	encoded := EncodeHeaders(fields, "signed\n")

	// Embedded newlines become continuation lines.
	if !bytes.Contains(encoded, []byte("\n iQIzBAABCAAdFiEE\n")) {
		t.Errorf("expected folded continuation line in %q", encoded)
	}

	gotFields, _, decodeErr := DecodeHeaders(encoded)
	if decodeErr != nil {
		t.Fatalf("DecodeHeaders() failed: %v", decodeErr)
	}
	if gotFields[1].Value != signature {
		t.Errorf("unfolded value = %q, want %q", gotFields[1].Value, signature)
	}
}

func TestEncodeHeaders_EmptyMessage(t *testing.T) {
	encoded := EncodeHeaders(nil, "")
	if string(encoded) != "\n" {
		t.Errorf("EncodeHeaders(nil, \"\") = %q, want a lone blank line", encoded)
	}
}

func TestDecodeHeaders_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no blank line", "tree 4b825dc642cb6eb9a060e54bf8d69288fbee4904\n"},
		{"orphan continuation", " continuation first\n\nmessage"},
		{"line without value", "treeonly\n\nmessage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, decodeErr := DecodeHeaders([]byte(tt.input))
			if decodeErr == nil {
				t.Fatalf("DecodeHeaders(%q) should fail", tt.input)
			}
			if !err.IsCode(decodeErr, err.CodeMalformedObject) {
				t.Errorf("expected MALFORMED_OBJECT code, got %v", decodeErr)
			}
		})
	}
}
