package testlib

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Show describes one series to generate episode files for
type Show struct {
	Title    string `json:"title" yaml:"title" mapstructure:"title"`
	Seasons  int    `json:"seasons" yaml:"seasons" mapstructure:"seasons"`
	Episodes int    `json:"episodes" yaml:"episodes" mapstructure:"episodes"`
}

// DefaultShows is used when no shows are given
var DefaultShows = []Show{
	{Title: "The Expanse", Seasons: 2, Episodes: 3},
	{Title: "Breaking Bad", Seasons: 1, Episodes: 4},
	{Title: "Severance", Seasons: 1, Episodes: 2},
}

// Options controls what Generate writes
type Options struct {
	Shows      []Show
	Duplicates bool
}

// Summary counts what Generate wrote
type Summary struct {
	Videos     int
	Episodes   int
	Duplicates int
	Extras     int
}

// Generate writes a messy download directory under root: episodes with several naming patterns,
// release directories, nested folders and non-video extras. Files hold a small media header only.
func Generate(fs afero.Fs, root string, opts Options) (Summary, error) {
	shows := opts.Shows
	if len(shows) == 0 {
		shows = DefaultShows
	}

	var sum Summary
	for _, show := range shows {
		title := dotted(show.Title)
		n := 0
		for season := 1; season <= show.Seasons; season++ {
			for episode := 1; episode <= show.Episodes; episode++ {
				marker := fmt.Sprintf("S%02dE%02d", season, episode)

				var path string
				switch n % 3 {
				case 0:
					path = filepath.Join(root, fmt.Sprintf("%s.%s.1080p.WEB.mkv", title, marker))
				case 1:
					release := fmt.Sprintf("%s.%s.720p.HDTV", title, marker)
					path = filepath.Join(root, release, release+".mp4")
					if err := writeFile(fs, filepath.Join(root, release, release+".nfo"), []byte(release)); err != nil {
						return sum, err
					}
					sum.Extras++
				default:
					path = filepath.Join(root, "downloads", "incomplete", fmt.Sprintf("%s.%s.avi", title, strings.ToLower(marker)))
				}

				if err := createEmptyMediaFile(fs, path); err != nil {
					return sum, err
				}
				sum.Videos++
				sum.Episodes++

				if opts.Duplicates && n == 0 {
					release := fmt.Sprintf("%s.%s.2160p.REPACK", title, marker)
					if err := createEmptyMediaFile(fs, filepath.Join(root, release, release+".mp4")); err != nil {
						return sum, err
					}
					sum.Videos++
					sum.Duplicates++
				}
				n++
			}
		}
	}

	if err := writeFile(fs, filepath.Join(root, "misc", "notes.txt"), []byte("not a video\n")); err != nil {
		return sum, err
	}
	sum.Extras++

	return sum, nil
}

// dotted turns a title into the dot separated form release names use
func dotted(title string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|", "."}
	clean := title
	for _, char := range invalid {
		clean = strings.ReplaceAll(clean, char, " ")
	}
	return strings.Join(strings.Fields(clean), ".")
}

func createEmptyMediaFile(fs afero.Fs, path string) error {
	var header []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4":
		header = []byte{
			0x00, 0x00, 0x00, 0x20, // box size
			0x66, 0x74, 0x79, 0x70, // 'ftyp'
			0x69, 0x73, 0x6F, 0x6D, // 'isom'
			0x00, 0x00, 0x02, 0x00,
			0x69, 0x73, 0x6F, 0x6D,
			0x69, 0x73, 0x6F, 0x32,
			0x61, 0x76, 0x63, 0x31,
			0x6D, 0x70, 0x34, 0x31,
		}
	case ".mkv":
		header = []byte{
			0x1A, 0x45, 0xDF, 0xA3, // EBML
			0x93, 0x42, 0x82, 0x88, // DocType
			0x6D, 0x61, 0x74, 0x72, 0x6F, 0x73, 0x6B, 0x61,
		}
	default:
		header = []byte("EPISODEZ_TEST_FILE_" + filepath.Ext(path))
	}

	return writeFile(fs, path, header)
}

func writeFile(fs afero.Fs, path string, data []byte) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, 0o644)
}
