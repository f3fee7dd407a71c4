package cmd

import (
	"context"
	"errors"
	"os"

	mio "github.com/kasuboski/episodez/pkg/io"
	"github.com/kasuboski/episodez/pkg/library"
	"github.com/kasuboski/episodez/pkg/logger"
	"github.com/kasuboski/episodez/pkg/organizer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// organizeCmd moves episode files into one directory per show
var organizeCmd = &cobra.Command{
	Use:   "organize <directory>",
	Short: "Organize video files into directories based on show names",
	Long: `Organize video files into directories based on show names.

Every video below the directory whose name contains a season/episode marker
(Show.Name.S01E02.1080p.mkv) is moved to <directory>/<show name>. Files without
a marker are left where they are.

Example:
  episodez organize ~/Downloads/tv --ignore done --cleanup
  episodez organize ~/Downloads/tv -d -c --cleanup-policy empty`,
	Args: cobra.ExactArgs(1),
	Run:  runOrganize,
}

func init() {
	rootCmd.AddCommand(organizeCmd)

	flags := organizeCmd.Flags()
	flags.StringP("ignore", "i", "", "Folder name to ignore during organization")
	flags.BoolP("cleanup", "c", false, "Delete subdirectories left without videos after moving files")
	flags.String("cleanup-policy", string(organizer.CleanupVideoAware), "Cleanup policy: video removes trees without video files, empty removes empty directories only")
	flags.BoolP("remove-duplicates", "d", false, "Remove duplicate episodes after choosing which to keep")
	flags.Bool("non-interactive", false, "Keep every duplicate instead of prompting")
	flags.StringSlice("extensions", library.DefaultVideoExtensions, "Video file extensions to organize")

	for key, flag := range map[string]string{
		"organize.ignore":           "ignore",
		"organize.cleanup":          "cleanup",
		"organize.cleanupPolicy":    "cleanup-policy",
		"organize.removeDuplicates": "remove-duplicates",
		"organize.nonInteractive":   "non-interactive",
		"organize.extensions":       "extensions",
	} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}
}

func runOrganize(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := logger.Get()
	ctx = logger.WithCtx(ctx, log)

	cfg := loadConfig(log)

	policy, err := organizer.ParseCleanupPolicy(cfg.Organize.CleanupPolicy)
	if err != nil {
		log.Fatalw("invalid cleanup policy", zap.Error(err))
	}

	var resolver organizer.DuplicateResolver = organizer.NewPromptResolver(os.Stdin, os.Stdout)
	if cfg.Organize.NonInteractive {
		resolver = organizer.KeepAllResolver{}
	}

	o := organizer.New(&mio.MediaFileSystem{}, resolver, organizer.Options{
		Ignore:           cfg.Organize.Ignore,
		Extensions:       cfg.Organize.Extensions,
		RemoveDuplicates: cfg.Organize.RemoveDuplicates,
		Cleanup:          cfg.Organize.Cleanup,
		CleanupPolicy:    policy,
	})

	root := args[0]
	if _, err := o.Run(ctx, root); err != nil {
		if errors.Is(err, organizer.ErrInvalidRoot) {
			log.Fatalw("invalid directory path", "directory", root)
		}
		log.Fatalw("failed to organize videos", "directory", root, zap.Error(err))
	}
}
