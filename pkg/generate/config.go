// File: pkg/generate/config.go
package generate

import (
	"os"
	"path/filepath"
)

// OutputFileName is the fixed name of the generated document, always written
// to the current working directory.
const OutputFileName = "project-context.txt"

// sniffSize is the number of leading bytes inspected for null bytes when
// deciding whether a file is text.
const sniffSize = 1024

// Config holds the fixed classification sets used for a generation run.
// It is a plain value: callers construct it once (normally via DefaultConfig)
// and pass it in; nothing mutates it afterwards.
type Config struct {
	ExcludedDirs  map[string]bool // Directory names pruned from traversal entirely.
	ExcludedFiles map[string]bool // File names never included (lockfiles, prior output).
	ExcludedExts  map[string]bool // Extensions (lowercase) always treated as binary/media.
	TextExts      map[string]bool // Extensions (lowercase) always attempted as text.
	SelfName      string          // Base name of the running tool, excluded from output.
}

// DefaultConfig returns the standard configuration: version-control,
// dependency and build-output directories pruned, common lockfiles and
// binary/media extensions excluded, and a fixed allow-list of text
// extensions. The running executable's own name is resolved so the tool
// never bundles itself.
func DefaultConfig() Config {
	return Config{
		ExcludedDirs: newSet(
			"node_modules",
			"venv",
			".git",
			"__pycache__",
			"build",
			"dist",
		),
		ExcludedFiles: newSet(
			"package-lock.json",
			"yarn.lock",
			OutputFileName,
		),
		ExcludedExts: newSet(
			".svg", ".png", ".jpg", ".jpeg", ".gif", ".ico", ".pdf", ".zip",
			".tar", ".gz", ".rar", ".exe", ".dll", ".pdb", ".pyc",
		),
		TextExts: newSet(
			".txt", ".md", ".py", ".js", ".ts", ".jsx", ".tsx", ".cpp", ".h",
			".hpp", ".c", ".cs", ".java", ".html", ".css", ".scss", ".sass",
			".json", ".yml", ".yaml", ".xml", ".env", ".config", ".dockerfile",
			".sh", ".bat", ".ps1",
		),
		SelfName: selfName(),
	}
}

// newSet builds a membership set from a list of names.
func newSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// selfName returns the base name of the running executable, falling back to
// the invocation name when the executable path cannot be resolved.
func selfName() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Base(exe)
	}
	if len(os.Args) > 0 && os.Args[0] != "" {
		return filepath.Base(os.Args[0])
	}
	return ""
}
