package generate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Generator produces the project context document for a directory tree.
type Generator struct {
	classifier *Classifier
	logger     *zap.Logger
}

// NewGenerator returns a Generator using the given configuration.
func NewGenerator(cfg Config, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		classifier: NewClassifier(cfg, logger),
		logger:     logger,
	}
}

// Generate runs the full pipeline against targetDir and writes the document
// to outputPath, overwriting any existing file. Relative paths inside the
// document are computed against basePath, which is normally the working
// directory and may differ from targetDir.
func Generate(targetDir, basePath, outputPath string, logger *zap.Logger) (Stats, error) {
	generator := NewGenerator(DefaultConfig(), logger)

	outFile, err := os.Create(outputPath)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			generator.logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
		}
	}()

	writer := bufio.NewWriter(outFile)
	stats, err := generator.Run(targetDir, basePath, writer)
	if err != nil {
		return stats, err
	}
	if err := writer.Flush(); err != nil {
		return stats, fmt.Errorf("failed to flush output: %w", err)
	}
	return stats, nil
}

// Run walks targetDir and streams the document to w: a header naming the
// root folder, the rendered directory tree, then one delimited block per
// included file. A file that cannot be read or decoded becomes an inline
// error block and processing continues; only write failures on w abort the
// run. Returns the accumulated counters.
func (g *Generator) Run(targetDir, basePath string, w io.Writer) (Stats, error) {
	startTime := time.Now()
	g.logger.Info("Starting context generation", zap.String("directory", targetDir))

	var stats Stats

	if _, err := fmt.Fprintf(w, "<project_overview>\n<generated_at>%s</generated_at>\n\n", filepath.Base(targetDir)); err != nil {
		return stats, fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := io.WriteString(w, "<directory_structure>\n"); err != nil {
		return stats, fmt.Errorf("failed to write tree section: %w", err)
	}
	for _, line := range Tree(targetDir, g.classifier) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return stats, fmt.Errorf("failed to write tree section: %w", err)
		}
	}
	if _, err := io.WriteString(w, "</directory_structure>\n\n<file_contents>\n"); err != nil {
		return stats, fmt.Errorf("failed to write tree section: %w", err)
	}

	if err := g.walkDir(targetDir, basePath, w, &stats); err != nil {
		return stats, err
	}

	if _, err := io.WriteString(w, "</file_contents>\n</project_overview>"); err != nil {
		return stats, fmt.Errorf("failed to write footer: %w", err)
	}

	g.logger.Info("Context generation completed",
		zap.Int("files", stats.Files),
		zap.Int("lines", stats.Lines),
		zap.Int("tokens", stats.Tokens),
		zap.Duration("elapsed", time.Since(startTime)))
	return stats, nil
}

// walkDir processes one directory level depth-first: the directory's files
// in case-insensitive name order, then its subdirectories in the same
// order, pruning excluded directories before descending.
func (g *Generator) walkDir(directory, basePath string, w io.Writer, stats *Stats) error {
	entries, err := os.ReadDir(directory)
	if err != nil {
		g.logger.Warn("Failed to read directory during walk", zap.String("directory", directory), zap.Error(err))
		return nil
	}
	sortEntries(entries)

	var subdirs []string
	for _, entry := range entries {
		path := filepath.Join(directory, entry.Name())
		if entry.IsDir() {
			if g.classifier.SkipDir(entry.Name()) {
				g.logger.Debug("Pruning excluded directory", zap.String("directory", path))
				continue
			}
			subdirs = append(subdirs, path)
			continue
		}
		if !g.classifier.IncludeFile(path) {
			continue
		}
		if err := g.writeFileBlock(path, basePath, w, stats); err != nil {
			return err
		}
	}

	for _, subdir := range subdirs {
		if err := g.walkDir(subdir, basePath, w, stats); err != nil {
			return err
		}
	}
	return nil
}

// writeFileBlock emits the document block for a single file and updates the
// counters on success. Read and decode failures degrade into an error block.
func (g *Generator) writeFileBlock(path, basePath string, w io.Writer, stats *Stats) error {
	relPath := relativePath(basePath, path)

	content, err := readTextFile(path)
	if err != nil {
		g.logger.Warn("Failed to read file, recording error block",
			zap.String("file", path),
			zap.Error(err))
		if _, werr := fmt.Fprintf(w, "\n<error file=\"%s\">%s</error>\n", relPath, err); werr != nil {
			return fmt.Errorf("failed to write error block: %w", werr)
		}
		return nil
	}

	if _, err := fmt.Fprintf(w, "\n<file path=\"%s\">\n%s\n</file>\n", relPath, content); err != nil {
		return fmt.Errorf("failed to write file block: %w", err)
	}
	stats.addFile(content)

	g.logger.Debug("Added file to document", zap.String("file", relPath))
	return nil
}

// relativePath computes path relative to basePath, normalized to forward
// slashes, falling back to the path itself when no relative form exists.
func relativePath(basePath, path string) string {
	relPath, err := filepath.Rel(basePath, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(relPath)
}
