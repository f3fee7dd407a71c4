package library

import (
	"context"
)

// Library finds episode files below a root directory
type Library interface {
	Scan(ctx context.Context, root string) ([]EpisodeFile, error)
}
