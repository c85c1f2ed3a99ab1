// File: pkg/combine/helpers.go
package combine

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// resolveRoot returns the absolute root with symlinks resolved, after
// checking that it exists and is a directory.
func resolveRoot(root string) (string, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: resolve root %q: %w", ErrConfigValidation, root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: root %s: %w", ErrConfigValidation, abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: root %s is not a directory", ErrConfigValidation, abs)
	}
	// WalkDir does not descend into a symlinked root.
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: resolve root %s: %w", ErrConfigValidation, abs, err)
	}
	return resolved, nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}

// createOutput creates (or truncates) the artifact file and its parent.
func createOutput(path string, logger *zap.Logger) (*os.File, error) {
	if err := ensureDirectory(filepath.Dir(path), logger); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateOutput, path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateOutput, path, err)
	}
	return f, nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := ensureDirectory(filepath.Dir(path), logger); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path))
	return nil
}
