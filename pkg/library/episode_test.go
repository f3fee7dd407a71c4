package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEpisodeFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     EpisodeKey
		desc     string
	}{
		{"Show.Name.S01E02.1080p.mkv", EpisodeKey{"show name", 1, 2}, "standard release name"},
		{"show.name.s01e02.mkv", EpisodeKey{"show name", 1, 2}, "lowercase marker"},
		{"The.Office.s09e23-finale.mp4", EpisodeKey{"the office", 9, 23}, "marker prefix of a token"},
		{"show.s1e5.avi", EpisodeKey{"show", 1, 5}, "single digits"},
		{"Show.S00E00.mov", EpisodeKey{"show", 0, 0}, "zero season and episode"},
		{"Show.S01E100.mkv", EpisodeKey{"show", 1, 100}, "three digit episode"},
		{"Show.S01E02.S01E03.mkv", EpisodeKey{"show", 1, 2}, "first marker wins"},
		{"2012.S01E01.mkv", EpisodeKey{"2012", 1, 1}, "numeric show name"},
		{"Grey's.Anatomy.S02E04.HDTV.x264.mkv", EpisodeKey{"grey's anatomy", 2, 4}, "apostrophe"},
		{"ÉCOLE.S01E01.mkv", EpisodeKey{"école", 1, 1}, "unicode lowercasing"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := ParseEpisodeFilename(tt.filename)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEpisodeFilenameSkips(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  error
	}{
		{"Show.Name.mkv", ErrNoEpisodeMarker},
		{"Show Name S01E02.mkv", ErrNoEpisodeMarker},
		{"show.season1.episode2.mkv", ErrNoEpisodeMarker},
		{"show.xs01e02.mkv", ErrNoEpisodeMarker},
		{"S01E01.mkv", ErrNoShowName},
		{"..S01E01.mkv", ErrNoShowName},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := ParseEpisodeFilename(tt.filename)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsSkippable(err))
			assert.Equal(t, EpisodeKey{}, got)
		})
	}
}

func TestParseEpisodeFilenameOverflow(t *testing.T) {
	_, err := ParseEpisodeFilename("show.s99999999999999999999999e01.mkv")
	require.Error(t, err)
	assert.False(t, IsSkippable(err))
}

func TestEpisodeKeyString(t *testing.T) {
	assert.Equal(t, "show name S01E02", EpisodeKey{"show name", 1, 2}.String())
	assert.Equal(t, "show S10E120", EpisodeKey{"show", 10, 120}.String())
}
