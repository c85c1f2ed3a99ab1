package combine

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"textify/pkg/classify"
)

// Discover walks root and returns every regular file not excluded by the
// classifier's path rules, sorted by relative path. Entries that cannot be
// read are skipped. A symlinked root is resolved first; links below it are
// never followed. Paths in exclude are never returned.
func Discover(ctx context.Context, root string, c *classify.Classifier, exclude []string, logger *zap.Logger) ([]FileCandidate, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	excluded := make(map[string]struct{}, len(exclude))
	for _, p := range exclude {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		excluded[abs] = struct{}{}
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			excluded[resolved] = struct{}{}
		}
	}

	var candidates []FileCandidate
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			logger.Debug("Skipping inaccessible path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if c.ExcludedDir(rel) {
				logger.Debug("Skipping excluded directory", zap.String("directory", rel))
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if _, skip := excluded[path]; skip {
			return nil
		}
		if c.ExcludedByPath(rel) {
			logger.Debug("Skipping excluded file", zap.String("filePath", rel))
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			logger.Debug("Skipping file without metadata", zap.String("path", path), zap.Error(infoErr))
			return nil
		}
		candidates = append(candidates, FileCandidate{AbsPath: path, RelPath: rel, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].RelPath < candidates[j].RelPath
	})
	logger.Debug("Discovery finished", zap.Int("candidates", len(candidates)))
	return candidates, nil
}
