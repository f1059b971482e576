package objects

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wizardgit/wgit/pkg/common/err"
)

// HeaderField is one "<key> <value>" line in a commit or tag object.
// Fields keep their original order so unrecognized fields survive a
// decode/encode round trip byte for byte.
type HeaderField struct {
	Key   string
	Value string
}

// EncodeHeaders serializes an ordered header block followed by a blank
// line and the free-text message. A value containing newlines is folded
// onto continuation lines, each prefixed with a single space:
//
//	gpgsig -----BEGIN PGP SIGNATURE-----
//	 iQIzBAAB...
//	 -----END PGP SIGNATURE-----
func EncodeHeaders(fields []HeaderField, message string) []byte {
	var buf bytes.Buffer
	for _, f := range fields {
		folded := strings.ReplaceAll(f.Value, "\n", "\n ")
		fmt.Fprintf(&buf, "%s %s\n", f.Key, folded)
	}
	buf.WriteByte('\n')
	buf.WriteString(message)
	return buf.Bytes()
}

// DecodeHeaders parses a header block and message produced by
// EncodeHeaders. Continuation lines (leading space) are unfolded back
// into their field's value.
func DecodeHeaders(content []byte) ([]HeaderField, string, error) {
	var fields []HeaderField
	rest := content

	for {
		line, remainder, found := bytes.Cut(rest, []byte{'\n'})
		if !found {
			return nil, "", err.New(pkgName, err.CodeMalformedObject, "decode_headers",
				"missing blank line before message", nil)
		}
		rest = remainder

		// Blank line terminates the header block.
		if len(line) == 0 {
			break
		}

		if line[0] == SpaceByte {
			// Continuation of the previous field's value.
			if len(fields) == 0 {
				return nil, "", err.New(pkgName, err.CodeMalformedObject, "decode_headers",
					"continuation line without a preceding field", nil)
			}
			fields[len(fields)-1].Value += "\n" + string(line[1:])
			continue
		}

		key, value, ok := bytes.Cut(line, []byte{SpaceByte})
		if !ok || len(key) == 0 {
			return nil, "", err.New(pkgName, err.CodeMalformedObject, "decode_headers",
				fmt.Sprintf("malformed header line %q", line), nil)
		}
		fields = append(fields, HeaderField{Key: string(key), Value: string(value)})
	}

	return fields, string(rest), nil
}
