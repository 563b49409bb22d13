package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"ctxgen/pkg/generate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// rootCmd generates the project context document. The single optional
// argument names the directory to scan; relative paths in the document are
// always computed against the working directory, so scanning a sibling or
// parent directory yields paths with leading traversal segments.
var rootCmd = &cobra.Command{
	Use:   "ctxgen [directory]",
	Short: "ctxgen bundles a directory tree into a single context document",
	Long: `ctxgen walks a directory tree, filters out binary and generated files,
and writes every remaining file into project-context.txt together with a
rendered directory tree, ready to hand to a language model.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runGenerate,
}

// Execute runs the root command with the given logger. A non-nil return
// means the run failed and the process should exit non-zero; cobra has
// already printed the message with an "Error:" prefix.
func Execute(l *zap.Logger) error {
	if l != nil {
		logger = l
	}
	return rootCmd.Execute()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	workingDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	var arg string
	if len(args) == 1 {
		arg = args[0]
	}
	targetDir, err := resolveTargetDir(workingDir, arg)
	if err != nil {
		return err
	}

	stats, err := generate.Generate(targetDir, workingDir, generate.OutputFileName, logger)
	if err != nil {
		logger.Error("Context generation failed", zap.Error(err))
		return err
	}

	fmt.Println()
	fmt.Println("Project Context Generation Complete")
	fmt.Printf("Output file: %s\n", generate.OutputFileName)
	fmt.Printf("Files processed: %d\n", stats.Files)
	fmt.Printf("Total lines: %d\n", stats.Lines)
	fmt.Printf("Estimated tokens: %d\n", stats.Tokens)
	return nil
}

// resolveTargetDir resolves the optional directory argument against the
// working directory and verifies it names an existing directory.
func resolveTargetDir(workingDir, arg string) (string, error) {
	target := workingDir
	if arg != "" {
		if filepath.IsAbs(arg) {
			target = filepath.Clean(arg)
		} else {
			target = filepath.Join(workingDir, arg)
		}
	}

	info, err := os.Stat(target)
	if err != nil {
		return "", fmt.Errorf("directory does not exist: %s", target)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", target)
	}
	return target, nil
}
