// File: pkg/generate/tree.go
package generate

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Tree renders the directory structure rooted at root as a slice of lines,
// one per rendered entry, using box-drawing connectors. It is a pure
// function of the path: it owns no state, writes to no sink, and every call
// re-renders from scratch. Only entries the classifier includes are
// rendered; excluded directories are skipped without descending. A directory
// whose contents cannot be listed is reported with an "[ACCESS DENIED]" line
// and that branch stops, leaving sibling branches intact.
func Tree(root string, classifier *Classifier) []string {
	var lines []string
	appendTree(root, "", classifier, &lines)
	return lines
}

// appendTree renders one directory level and recurses into subdirectories.
func appendTree(directory, prefix string, classifier *Classifier, lines *[]string) {
	if classifier.SkipDir(filepath.Base(directory)) {
		return
	}

	*lines = append(*lines, prefix+filepath.Base(directory)+"/")

	entries, err := os.ReadDir(directory)
	if err != nil {
		*lines = append(*lines, prefix+"[ACCESS DENIED]")
		return
	}
	sortEntries(entries)

	for i, entry := range entries {
		connector := "├─ "
		extension := "│  "
		if i == len(entries)-1 {
			connector = "└─ "
			extension = "   "
		}

		if entry.IsDir() {
			appendTree(filepath.Join(directory, entry.Name()), prefix+extension, classifier, lines)
		} else if classifier.IncludeFile(filepath.Join(directory, entry.Name())) {
			*lines = append(*lines, prefix+connector+entry.Name())
		}
	}
}

// sortEntries orders directory entries for rendering and traversal:
// directories first, then files, each group case-insensitively by name.
// os.ReadDir returns entries sorted by name, so the stable sort keeps
// byte-order ties deterministic.
func sortEntries(entries []os.DirEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})
}
