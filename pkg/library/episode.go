package library

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrNoEpisodeMarker = errors.New("no season/episode marker in filename")
	ErrNoShowName      = errors.New("no show name before season/episode marker")

	episodeMarker = regexp.MustCompile(`^s(\d+)e(\d+)`)
)

// EpisodeKey identifies one logical episode. Files that share a key are duplicates.
type EpisodeKey struct {
	Show    string `json:"show"`
	Season  int    `json:"season"`
	Episode int    `json:"episode"`
}

func (k EpisodeKey) String() string {
	return fmt.Sprintf("%s S%02dE%02d", k.Show, k.Season, k.Episode)
}

// VideoFile is a snapshot of a file taken at scan time
type VideoFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

type EpisodeFile struct {
	VideoFile
	Key EpisodeKey `json:"key"`
}

func (ef EpisodeFile) String() string {
	return fmt.Sprintf("name: %s, episode: %s, path: %s, size in bytes: %d",
		ef.Name, ef.Key, ef.Path, ef.Size)
}

// ParseEpisodeFilename splits a lowercased filename on dots and stops at the first
// token starting with sNNeMM. The tokens before it, joined by spaces, are the show name.
//
//	Show.Name.S01E02.1080p.mkv -> {show name 1 2}
func ParseEpisodeFilename(name string) (EpisodeKey, error) {
	tokens := strings.Split(cases.Lower(language.Und).String(name), ".")

	for i, token := range tokens {
		m := episodeMarker.FindStringSubmatch(token)
		if m == nil {
			continue
		}

		season, err := strconv.Atoi(m[1])
		if err != nil {
			return EpisodeKey{}, fmt.Errorf("season %q: %w", m[1], err)
		}
		episode, err := strconv.Atoi(m[2])
		if err != nil {
			return EpisodeKey{}, fmt.Errorf("episode %q: %w", m[2], err)
		}

		show := strings.Join(tokens[:i], " ")
		if strings.TrimSpace(show) == "" {
			return EpisodeKey{}, ErrNoShowName
		}

		return EpisodeKey{Show: show, Season: season, Episode: episode}, nil
	}

	return EpisodeKey{}, ErrNoEpisodeMarker
}

// IsSkippable reports whether err only means the file is not an episode
func IsSkippable(err error) bool {
	return errors.Is(err, ErrNoEpisodeMarker) || errors.Is(err, ErrNoShowName)
}
