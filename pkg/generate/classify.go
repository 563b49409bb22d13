// File: pkg/generate/classify.go
package generate

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Classifier decides which paths a generation run includes. Both the tree
// renderer and the aggregator consult the same Classifier, so a file appears
// in the rendered tree exactly when its content appears in the document.
type Classifier struct {
	cfg    Config
	logger *zap.Logger
}

// NewClassifier returns a Classifier backed by the given configuration.
func NewClassifier(cfg Config, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{cfg: cfg, logger: logger}
}

// SkipDir reports whether a directory name is pruned from traversal.
func (c *Classifier) SkipDir(name string) bool {
	return c.cfg.ExcludedDirs[name]
}

// IncludeFile reports whether the file at path belongs in the output.
// Rules apply in order, first match wins: the tool's own name, the fixed
// file-name exclusions, the binary/media extension set, then the text
// allow-list (extensionless files are tentatively allowed), and finally a
// null-byte sniff of the leading bytes. Rejections are not errors; they are
// logged at debug level and the file simply does not appear.
func (c *Classifier) IncludeFile(path string) bool {
	name := filepath.Base(path)

	if c.cfg.SelfName != "" && name == c.cfg.SelfName {
		return false
	}
	if c.cfg.ExcludedFiles[name] {
		c.logger.Debug("Skipping excluded file name", zap.String("file", path))
		return false
	}

	ext := strings.ToLower(filepath.Ext(name))
	if c.cfg.ExcludedExts[ext] {
		c.logger.Debug("Skipping excluded extension", zap.String("file", path), zap.String("extension", ext))
		return false
	}
	if ext != "" && !c.cfg.TextExts[ext] {
		c.logger.Debug("Skipping extension outside allow-list", zap.String("file", path), zap.String("extension", ext))
		return false
	}

	isText, err := isTextFile(path)
	if err != nil {
		c.logger.Debug("Failed to sniff file, excluding", zap.String("file", path), zap.Error(err))
		return false
	}
	if !isText {
		c.logger.Debug("Skipping binary content", zap.String("file", path))
	}
	return isText
}

// isTextFile checks whether a file looks like text by reading its first
// sniffSize bytes and looking for a null byte.
func isTextFile(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, sniffSize)
	n, err := io.ReadFull(file, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}
	return !bytes.ContainsRune(buffer[:n], 0), nil
}
