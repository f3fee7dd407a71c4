package organizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kasuboski/episodez/pkg/logger"
	"go.uber.org/zap"
)

type CleanupPolicy string

const (
	// CleanupVideoAware removes every directory below root without a video anywhere in its tree
	CleanupVideoAware CleanupPolicy = "video"
	// CleanupEmptyOnly removes only directories left with no entries at all
	CleanupEmptyOnly CleanupPolicy = "empty"
)

var ErrUnknownCleanupPolicy = fmt.Errorf("unknown cleanup policy")

func ParseCleanupPolicy(s string) (CleanupPolicy, error) {
	switch p := CleanupPolicy(s); p {
	case CleanupVideoAware, CleanupEmptyOnly:
		return p, nil
	case "":
		return CleanupVideoAware, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCleanupPolicy, s)
	}
}

// tree is the directory layout below root found by a cleanup walk
type tree struct {
	// dirs in walk order, parents before children
	dirs []string
	// preserved directories are never removed by the video aware policy
	preserved map[string]bool
}

func (o *Organizer) walkTree(ctx context.Context, root string) (tree, error) {
	log := logger.FromCtx(ctx)
	t := tree{preserved: map[string]bool{}}

	err := o.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Errorw("error walking path", "path", path, zap.Error(err))
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if info.IsDir() {
			if path == root {
				return nil
			}
			if o.library.Ignored(root, path) {
				t.preserve(root, path)
				return filepath.SkipDir
			}
			t.dirs = append(t.dirs, path)
			return nil
		}

		if info.Mode().IsRegular() && o.library.Extensions().Match(info.Name()) {
			t.preserve(root, filepath.Dir(path))
		}
		return nil
	})

	return t, err
}

// preserve marks dir and its ancestors up to, but excluding, root
func (t tree) preserve(root, dir string) {
	for dir != root && !t.preserved[dir] {
		t.preserved[dir] = true
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

func (o *Organizer) cleanup(ctx context.Context, root string, report *Report) error {
	log := logger.FromCtx(ctx)
	log.Infow("cleaning up subdirectories", "policy", string(o.opts.CleanupPolicy))

	t, err := o.walkTree(ctx, root)
	if err != nil {
		return err
	}

	// children come after their parents in walk order, so walking backwards is bottom up
	for i := len(t.dirs) - 1; i >= 0; i-- {
		dir := t.dirs[i]

		switch o.opts.CleanupPolicy {
		case CleanupEmptyOnly:
			entries, err := o.fs.ReadDir(dir)
			if err != nil {
				log.Errorw("error reading directory", "dir", dir, zap.Error(err))
				report.Errors++
				continue
			}
			if len(entries) > 0 {
				continue
			}

			log.Infow("removing empty directory", "dir", dir)
			if err := o.fs.Remove(dir); err != nil {
				log.Errorw("error removing directory", "dir", dir, zap.Error(err))
				report.Errors++
				continue
			}
		default:
			if t.preserved[dir] {
				continue
			}

			log.Infow("removing directory with no video files in tree", "dir", dir)
			if err := o.fs.RemoveAll(dir); err != nil {
				log.Errorw("error removing directory", "dir", dir, zap.Error(err))
				report.Errors++
				continue
			}
		}

		report.RemovedDirs++
	}

	return nil
}
