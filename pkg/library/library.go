package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/episodez/pkg/io"
	"github.com/kasuboski/episodez/pkg/logger"
	"go.uber.org/zap"
)

var (
	_ Library = (*MediaLibrary)(nil)

	ErrNotDirectory = errors.New("not a directory")

	DefaultVideoExtensions = Extensions{".mp4", ".mkv", ".avi", ".mov"}
)

// Extensions is a set of lowercase file extensions including the leading dot
type Extensions []string

// Match reports whether name has one of the extensions, ignoring case
func (e Extensions) Match(name string) bool {
	return slices.Contains(e, strings.ToLower(filepath.Ext(name)))
}

type MediaLibrary struct {
	fs         io.FileIO
	ignore     string
	extensions Extensions
}

type Option func(*MediaLibrary)

// WithIgnore skips every directory with the given base name
func WithIgnore(name string) Option {
	return func(l *MediaLibrary) {
		l.ignore = name
	}
}

// WithExtensions replaces the default video extensions
func WithExtensions(extensions ...string) Option {
	return func(l *MediaLibrary) {
		if len(extensions) == 0 {
			return
		}
		l.extensions = make(Extensions, len(extensions))
		for i, ext := range extensions {
			l.extensions[i] = strings.ToLower(ext)
		}
	}
}

func New(fs io.FileIO, opts ...Option) *MediaLibrary {
	l := &MediaLibrary{
		fs:         fs,
		extensions: DefaultVideoExtensions,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Extensions returns the video extensions the library matches
func (l *MediaLibrary) Extensions() Extensions {
	return l.extensions
}

// Ignored reports whether dir, a directory below root, is skipped
func (l *MediaLibrary) Ignored(root, dir string) bool {
	return l.ignore != "" && filepath.Clean(dir) != filepath.Clean(root) && filepath.Base(dir) == l.ignore
}

// Scan walks root depth first and returns every video file that parses as an episode,
// in walk order. Problems with a single file or directory are logged and skipped.
func (l *MediaLibrary) Scan(ctx context.Context, root string) ([]EpisodeFile, error) {
	log := logger.FromCtx(ctx)

	info, err := l.fs.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrNotDirectory
	}

	episodes := []EpisodeFile{}
	err = l.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Errorw("error walking path", "path", path, zap.Error(err))
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if info.IsDir() {
			if l.Ignored(root, path) {
				log.Debugw("skipping ignored directory", "dir", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() || !l.extensions.Match(info.Name()) {
			return nil
		}

		key, err := ParseEpisodeFilename(info.Name())
		if err != nil {
			if IsSkippable(err) {
				log.Debugw("skipping file", "file", info.Name(), "reason", err.Error())
				return nil
			}
			log.Errorw("error processing file", "file", info.Name(), zap.Error(err))
			return nil
		}

		ef := EpisodeFile{
			VideoFile: VideoFile{
				Name: info.Name(),
				Path: path,
				Size: info.Size(),
			},
			Key: key,
		}
		log.Debugw("found episode", "file", ef.Name, "episode", key.String(), "size", humanize.IBytes(uint64(ef.Size)))
		episodes = append(episodes, ef)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return episodes, nil
}
