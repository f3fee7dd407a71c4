package cmd

import (
	"context"

	"github.com/dustin/go-humanize"
	mio "github.com/kasuboski/episodez/pkg/io"
	"github.com/kasuboski/episodez/pkg/library"
	"github.com/kasuboski/episodez/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listEpisodesCmd lists the episodes found below a directory without touching them
var listEpisodesCmd = &cobra.Command{
	Use:        "episodes",
	Short:      "List episodes found at a path",
	Long:       `List episodes found at a path, grouped the way organize would group them`,
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"path to downloads"},
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		log := logger.Get()
		ctx = logger.WithCtx(ctx, log)

		cfg := loadConfig(log)

		lib := library.New(&mio.MediaFileSystem{},
			library.WithIgnore(cfg.Organize.Ignore),
			library.WithExtensions(cfg.Organize.Extensions...),
		)
		files, err := lib.Scan(ctx, args[0])
		if err != nil {
			log.Fatalw("failed to scan directory", "directory", args[0], zap.Error(err))
		}

		groups := library.Group(files)
		for _, key := range groups.Keys() {
			videos := groups.Files(key)
			log.Infow(key.String(), "files", len(videos), "duplicate", len(videos) > 1)
			for _, v := range videos {
				log.Infow("  "+v.Name, "path", v.Path, "size", humanize.IBytes(uint64(v.Size)))
			}
		}
	},
}

func init() {
	listCmd.AddCommand(listEpisodesCmd)
}
