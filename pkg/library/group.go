package library

import (
	"github.com/kasuboski/episodez/pkg/cache"
)

// EpisodeGroups buckets files by episode. Keys and files keep the order they were added in.
type EpisodeGroups struct {
	groups *cache.Cache[EpisodeKey, []VideoFile]
}

func Group(files []EpisodeFile) *EpisodeGroups {
	g := &EpisodeGroups{groups: cache.New[EpisodeKey, []VideoFile]()}
	for _, f := range files {
		g.Add(f)
	}
	return g
}

func (g *EpisodeGroups) Add(f EpisodeFile) {
	g.groups.Update(f.Key, func(current []VideoFile, _ bool) []VideoFile {
		return append(current, f.VideoFile)
	})
}

func (g *EpisodeGroups) Keys() []EpisodeKey {
	return g.groups.Keys()
}

func (g *EpisodeGroups) Files(key EpisodeKey) []VideoFile {
	files, _ := g.groups.Get(key)
	return files
}

func (g *EpisodeGroups) Len() int {
	return g.groups.Size()
}
