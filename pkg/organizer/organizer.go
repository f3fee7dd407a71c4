package organizer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/kasuboski/episodez/pkg/io"
	"github.com/kasuboski/episodez/pkg/library"
	"github.com/kasuboski/episodez/pkg/logger"
	"github.com/kasuboski/episodez/pkg/machine"
	"go.uber.org/zap"
)

var (
	ErrInvalidRoot      = errors.New("invalid directory path")
	ErrChoiceOutOfRange = errors.New("choice out of range")
)

type RunState string

const (
	StateScan    RunState = "scan"
	StateGroup   RunState = "group"
	StateResolve RunState = "resolve"
	StateMove    RunState = "move"
	StateCleanup RunState = "cleanup"
	StateDone    RunState = "done"
)

const showDirPerm = 0o755

func newRunMachine() *machine.StateMachine[RunState] {
	return machine.New(StateScan,
		machine.From(StateScan).To(StateGroup),
		machine.From(StateGroup).To(StateResolve, StateMove),
		machine.From(StateResolve).To(StateMove),
		machine.From(StateMove).To(StateCleanup, StateDone),
		machine.From(StateCleanup).To(StateDone),
	)
}

type Options struct {
	Ignore           string
	Extensions       []string
	RemoveDuplicates bool
	Cleanup          bool
	CleanupPolicy    CleanupPolicy
}

// Report counts what a run did
type Report struct {
	Scanned     int `json:"scanned"`
	Episodes    int `json:"episodes"`
	Moved       int `json:"moved"`
	Deleted     int `json:"deleted"`
	RemovedDirs int `json:"removedDirs"`
	Errors      int `json:"errors"`
}

// Organizer moves episode files into one directory per show below a root
type Organizer struct {
	fs       io.FileIO
	library  *library.MediaLibrary
	resolver DuplicateResolver
	opts     Options
}

// New creates an Organizer. A nil resolver keeps every duplicate.
func New(fs io.FileIO, resolver DuplicateResolver, opts Options) *Organizer {
	if resolver == nil {
		resolver = KeepAllResolver{}
	}
	if opts.CleanupPolicy == "" {
		opts.CleanupPolicy = CleanupVideoAware
	}

	return &Organizer{
		fs:       fs,
		library:  library.New(fs, library.WithIgnore(opts.Ignore), library.WithExtensions(opts.Extensions...)),
		resolver: resolver,
		opts:     opts,
	}
}

// Run scans root, groups episodes, optionally resolves duplicates, moves every kept file
// into root/<show name> and optionally cleans up the directories left behind. Problems with
// single files or directories are logged and counted in the report. Only an invalid root,
// a canceled context or an unexpected walk failure stop the run.
func (o *Organizer) Run(ctx context.Context, root string) (Report, error) {
	var report Report

	root = filepath.Clean(root)
	info, err := o.fs.Stat(root)
	if err != nil || !info.IsDir() {
		return report, fmt.Errorf("%w: %s", ErrInvalidRoot, root)
	}

	log := logger.FromCtx(ctx, "run_id", uuid.NewString())
	ctx = logger.WithCtx(ctx, log)
	sm := newRunMachine()

	log.Infow("organizing videos", "root", root)
	files, err := o.library.Scan(ctx, root)
	if err != nil {
		return report, fmt.Errorf("scan %s: %w", root, err)
	}
	report.Scanned = len(files)

	if err := sm.ToState(StateGroup); err != nil {
		return report, err
	}
	groups := library.Group(files)
	report.Episodes = groups.Len()
	log.Debugw("grouped episodes", "files", report.Scanned, "episodes", report.Episodes)

	keep := make(map[library.EpisodeKey][]library.VideoFile, groups.Len())
	for _, key := range groups.Keys() {
		keep[key] = groups.Files(key)
	}

	if o.opts.RemoveDuplicates {
		if err := sm.ToState(StateResolve); err != nil {
			return report, err
		}
		if err := o.resolveDuplicates(ctx, groups, keep, &report); err != nil {
			return report, err
		}
	}

	if err := sm.ToState(StateMove); err != nil {
		return report, err
	}
	o.moveAll(ctx, root, groups, keep, &report)

	if o.opts.Cleanup {
		if err := sm.ToState(StateCleanup); err != nil {
			return report, err
		}
		if err := o.cleanup(ctx, root, &report); err != nil {
			return report, fmt.Errorf("cleanup %s: %w", root, err)
		}
	}

	if err := sm.ToState(StateDone); err != nil {
		return report, err
	}

	log.Infow("done",
		"scanned", report.Scanned,
		"episodes", report.Episodes,
		"moved", report.Moved,
		"deleted", report.Deleted,
		"removed_dirs", report.RemovedDirs,
		"errors", report.Errors)

	return report, nil
}

// resolveDuplicates narrows keep down to the resolver's choice for every group with more
// than one file and deletes the rest. A group the resolver fails on is dropped from keep
// and left untouched on disk.
func (o *Organizer) resolveDuplicates(ctx context.Context, groups *library.EpisodeGroups, keep map[library.EpisodeKey][]library.VideoFile, report *Report) error {
	log := logger.FromCtx(ctx)

	for _, key := range groups.Keys() {
		files := groups.Files(key)
		if len(files) < 2 {
			continue
		}

		log.Infow("found duplicates", "episode", key.String(), "count", len(files))
		choice, err := o.resolver.Resolve(ctx, key, files)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			log.Errorw("error resolving duplicates", "episode", key.String(), zap.Error(err))
			report.Errors++
			delete(keep, key)
			continue
		}

		if choice.KeepAll {
			continue
		}

		if choice.Index < 0 || choice.Index >= len(files) {
			log.Errorw("error resolving duplicates", "episode", key.String(), "index", choice.Index, zap.Error(ErrChoiceOutOfRange))
			report.Errors++
			delete(keep, key)
			continue
		}

		for i, f := range files {
			if i == choice.Index {
				continue
			}

			log.Infow("removing duplicate", "file", f.Name, "path", f.Path, "size", humanize.IBytes(uint64(f.Size)))
			if err := o.fs.Remove(f.Path); err != nil {
				log.Errorw("error removing duplicate", "file", f.Name, "path", f.Path, zap.Error(err))
				report.Errors++
				continue
			}
			report.Deleted++
		}

		keep[key] = []library.VideoFile{files[choice.Index]}
	}

	return nil
}

func (o *Organizer) moveAll(ctx context.Context, root string, groups *library.EpisodeGroups, keep map[library.EpisodeKey][]library.VideoFile, report *Report) {
	log := logger.FromCtx(ctx)

	for _, key := range groups.Keys() {
		files, ok := keep[key]
		if !ok {
			continue
		}

		showDir := filepath.Join(root, key.Show)
		if err := o.fs.MkdirAll(showDir, showDirPerm); err != nil {
			log.Errorw("error creating show directory", "episode", key.String(), "dir", showDir, zap.Error(err))
			report.Errors++
			continue
		}

		for _, f := range files {
			if filepath.Dir(f.Path) == showDir {
				log.Debugw("already in place", "file", f.Name, "show", key.Show)
				continue
			}

			log.Infow("moving file", "file", f.Name, "show", key.Show, "size", humanize.IBytes(uint64(f.Size)))
			if err := o.fs.Move(f.Path, filepath.Join(showDir, f.Name)); err != nil {
				log.Errorw("error moving file", "file", f.Name, "path", f.Path, "episode", key.String(), zap.Error(err))
				report.Errors++
				continue
			}
			report.Moved++
		}
	}
}
