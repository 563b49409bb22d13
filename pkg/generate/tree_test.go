package generate_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"ctxgen/pkg/generate"
)

func makeProject(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "project")
	if err := os.Mkdir(root, 0o755); err != nil {
		t.Fatalf("mkdir project: %v", err)
	}
	return root
}

func TestTreeOrdersDirectoriesBeforeFiles(t *testing.T) {
	root := makeProject(t)
	writeFile(t, root, "b.txt", []byte("b"))
	writeFile(t, root, "a.txt", []byte("a"))
	sub := filepath.Join(root, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir sub: %v", err)
	}
	writeFile(t, sub, "c.txt", []byte("c"))

	lines := generate.Tree(root, newTestClassifier(t))

	expected := []string{
		"project/",
		"│  sub/",
		"│  └─ c.txt",
		"├─ a.txt",
		"└─ b.txt",
	}
	if !reflect.DeepEqual(lines, expected) {
		t.Fatalf("unexpected tree:\n%s\nwant:\n%s",
			strings.Join(lines, "\n"), strings.Join(expected, "\n"))
	}
}

func TestTreeOmitsExcludedDirectories(t *testing.T) {
	root := makeProject(t)
	writeFile(t, root, "a.txt", []byte("a"))
	deps := filepath.Join(root, "node_modules", "lib")
	if err := os.MkdirAll(deps, 0o755); err != nil {
		t.Fatalf("mkdir deps: %v", err)
	}
	writeFile(t, deps, "index.js", []byte("js"))

	lines := generate.Tree(root, newTestClassifier(t))

	for _, line := range lines {
		if strings.Contains(line, "node_modules") || strings.Contains(line, "index.js") {
			t.Fatalf("excluded directory leaked into tree: %q", line)
		}
	}
	// The excluded directory still counts as a sibling, so a.txt is not last.
	if !reflect.DeepEqual(lines, []string{"project/", "└─ a.txt"}) {
		t.Fatalf("unexpected tree: %#v", lines)
	}
}

func TestTreeConnectorAccountsForExcludedFiles(t *testing.T) {
	root := makeProject(t)
	writeFile(t, root, "a.txt", []byte("hello world"))
	writeFile(t, root, "skip.png", []byte("png"))

	lines := generate.Tree(root, newTestClassifier(t))

	// skip.png sorts after a.txt and occupies the last-sibling slot even
	// though it is not rendered.
	expected := []string{"project/", "├─ a.txt"}
	if !reflect.DeepEqual(lines, expected) {
		t.Fatalf("unexpected tree: %#v, want %#v", lines, expected)
	}
}

func TestTreeIsRestartable(t *testing.T) {
	root := makeProject(t)
	writeFile(t, root, "a.txt", []byte("a"))

	classifier := newTestClassifier(t)
	first := generate.Tree(root, classifier)
	second := generate.Tree(root, classifier)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("tree rendering is not repeatable: %#v vs %#v", first, second)
	}
}

func TestTreeReportsUnreadableDirectories(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	root := makeProject(t)
	locked := filepath.Join(root, "locked")
	if err := os.Mkdir(locked, 0o000); err != nil {
		t.Fatalf("mkdir locked: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })
	writeFile(t, root, "a.txt", []byte("a"))

	lines := generate.Tree(root, newTestClassifier(t))

	expected := []string{
		"project/",
		"│  locked/",
		"│  [ACCESS DENIED]",
		"└─ a.txt",
	}
	if !reflect.DeepEqual(lines, expected) {
		t.Fatalf("unexpected tree: %#v, want %#v", lines, expected)
	}
}
