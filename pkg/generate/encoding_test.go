package generate

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBytes(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadTextFilePlainUTF8(t *testing.T) {
	path := writeBytes(t, "plain.txt", []byte("hello\nworld\n"))

	content, err := readTextFile(path)
	if err != nil {
		t.Fatalf("readTextFile: %v", err)
	}
	if content != "hello\nworld\n" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestReadTextFileStripsUTF8BOM(t *testing.T) {
	path := writeBytes(t, "bom.txt", append([]byte{0xEF, 0xBB, 0xBF}, []byte("hi")...))

	content, err := readTextFile(path)
	if err != nil {
		t.Fatalf("readTextFile: %v", err)
	}
	if content != "hi" {
		t.Fatalf("expected BOM to be stripped, got %q", content)
	}
}

func TestReadTextFileUTF16(t *testing.T) {
	little := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
	big := []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'}

	for name, data := range map[string][]byte{"le.txt": little, "be.txt": big} {
		content, err := readTextFile(writeBytes(t, name, data))
		if err != nil {
			t.Fatalf("readTextFile %s: %v", name, err)
		}
		if content != "hi" {
			t.Fatalf("unexpected %s content: %q", name, content)
		}
	}
}

func TestReadTextFileUTF32BigEndian(t *testing.T) {
	data := []byte{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x00, 0x00, 'h'}

	content, err := readTextFile(writeBytes(t, "be32.txt", data))
	if err != nil {
		t.Fatalf("readTextFile: %v", err)
	}
	if content != "h" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestReadTextFileUTF32LittleEndianDecodesAsUTF16(t *testing.T) {
	// The UTF-16 LE marker is a prefix of the UTF-32 LE marker; the shorter
	// marker wins, so the payload is read as UTF-16 code units.
	data := []byte{0xFF, 0xFE, 0x00, 0x00, 'h', 0x00, 0x00, 0x00}

	content, err := readTextFile(writeBytes(t, "le32.txt", data))
	if err != nil {
		t.Fatalf("readTextFile: %v", err)
	}
	if content != "\x00h\x00" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestReadTextFileRejectsInvalidUTF8(t *testing.T) {
	path := writeBytes(t, "bad.txt", []byte{'h', 0x80, 'i'})

	if _, err := readTextFile(path); err == nil {
		t.Fatalf("expected decode error for invalid UTF-8")
	}
}
