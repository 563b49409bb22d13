// File: pkg/generate/encoding.go
package generate

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Byte-order markers checked against the head of each file.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
)

// readTextFile reads a file and decodes it according to its byte-order
// marker, defaulting to UTF-8 when no marker is present.
//
// The UTF-16 markers are checked before the UTF-32 ones, and the UTF-16 LE
// marker is a byte-prefix of the UTF-32 LE marker, so a UTF-32 LE file is
// decoded as UTF-16. Only the big-endian UTF-32 marker, which shares no
// prefix with the UTF-16 markers, reaches the UTF-32 branch. This ordering
// is load-bearing for output compatibility; do not reorder.
func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return decodeUTF8(data[len(bomUTF8):])
	case bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE):
		decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decoding UTF-16: %w", err)
		}
		return string(decoded), nil
	case bytes.HasPrefix(data, bomUTF32LE) || bytes.HasPrefix(data, bomUTF32BE):
		decoded, err := utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decoding UTF-32: %w", err)
		}
		return string(decoded), nil
	default:
		return decodeUTF8(data)
	}
}

// decodeUTF8 interprets data as UTF-8, rejecting invalid byte sequences so
// undecodable files surface as per-file errors instead of garbled output.
func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("invalid UTF-8 content")
	}
	return string(data), nil
}
