package organizer

import (
	"context"

	"github.com/kasuboski/episodez/pkg/library"
)

// Choice is the decision taken for a group of duplicate files
type Choice struct {
	// KeepAll leaves every file in place and moves all of them
	KeepAll bool
	// Index is the zero based position of the single file to keep when KeepAll is false
	Index int
}

// DuplicateResolver decides which of several files for the same episode survives
type DuplicateResolver interface {
	Resolve(ctx context.Context, key library.EpisodeKey, files []library.VideoFile) (Choice, error)
}

// ResolverFunc adapts a function to a DuplicateResolver
type ResolverFunc func(ctx context.Context, key library.EpisodeKey, files []library.VideoFile) (Choice, error)

func (f ResolverFunc) Resolve(ctx context.Context, key library.EpisodeKey, files []library.VideoFile) (Choice, error) {
	return f(ctx, key, files)
}

// KeepAllResolver never deletes anything
type KeepAllResolver struct{}

func (KeepAllResolver) Resolve(context.Context, library.EpisodeKey, []library.VideoFile) (Choice, error) {
	return Choice{KeepAll: true}, nil
}
