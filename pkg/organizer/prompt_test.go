package organizer_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kasuboski/episodez/pkg/library"
	"github.com/kasuboski/episodez/pkg/organizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var duplicates = []library.VideoFile{
	{Name: "a.mkv", Path: "/tv/x/a.mkv", Size: 100 * 1024 * 1024},
	{Name: "a2.mkv", Path: "/tv/y/a2.mkv", Size: 50 * 1024 * 1024},
}

const promptLine = "\nEnter the number of the file you want to keep (or 'all' to keep all): "

func TestPromptResolver(t *testing.T) {
	key := library.EpisodeKey{Show: "a", Season: 1, Episode: 2}

	tests := []struct {
		name    string
		input   string
		want    organizer.Choice
		prompts int
	}{
		{name: "first", input: "1\n", want: organizer.Choice{Index: 0}, prompts: 1},
		{name: "second with spaces", input: "  2  \n", want: organizer.Choice{Index: 1}, prompts: 1},
		{name: "keep all", input: "ALL\n", want: organizer.Choice{KeepAll: true}, prompts: 1},
		{name: "retries until valid", input: "x\n0\n3\n\n2\n", want: organizer.Choice{Index: 1}, prompts: 5},
		{name: "last line without newline", input: "1", want: organizer.Choice{Index: 0}, prompts: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := organizer.NewPromptResolver(strings.NewReader(tt.input), &out)

			got, err := r.Resolve(context.Background(), key, duplicates)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.prompts, strings.Count(out.String(), promptLine))
		})
	}
}

func TestPromptResolverListing(t *testing.T) {
	var out bytes.Buffer
	r := organizer.NewPromptResolver(strings.NewReader("abc\n9\nall\n"), &out)

	_, err := r.Resolve(context.Background(), library.EpisodeKey{Show: "a", Season: 1, Episode: 2}, duplicates)
	require.NoError(t, err)

	want := "\nFound duplicate episodes for a S01E02:\n" +
		"1. a.mkv\n" +
		"   Path: /tv/x/a.mkv\n" +
		"   Size: 100.00 MB\n" +
		"2. a2.mkv\n" +
		"   Path: /tv/y/a2.mkv\n" +
		"   Size: 50.00 MB\n" +
		promptLine +
		"Invalid input. Please enter a number or 'all'.\n" +
		promptLine +
		"Invalid choice. Please enter a valid number.\n" +
		promptLine
	assert.Equal(t, want, out.String())
}

func TestPromptResolverNoInput(t *testing.T) {
	var out bytes.Buffer
	r := organizer.NewPromptResolver(strings.NewReader("nope\n"), &out)

	_, err := r.Resolve(context.Background(), library.EpisodeKey{Show: "a"}, duplicates)
	assert.True(t, errors.Is(err, organizer.ErrNoInput))
}

func TestPromptResolverCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := organizer.NewPromptResolver(strings.NewReader("1\n"), &bytes.Buffer{})
	_, err := r.Resolve(ctx, library.EpisodeKey{Show: "a"}, duplicates)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKeepAllResolver(t *testing.T) {
	got, err := organizer.KeepAllResolver{}.Resolve(context.Background(), library.EpisodeKey{}, duplicates)
	require.NoError(t, err)
	assert.True(t, got.KeepAll)
}

func TestFormatMegabytes(t *testing.T) {
	assert.Equal(t, "0.00 MB", organizer.FormatMegabytes(0))
	assert.Equal(t, "1.00 MB", organizer.FormatMegabytes(1024*1024))
	assert.Equal(t, "95.37 MB", organizer.FormatMegabytes(100_000_000))
}
