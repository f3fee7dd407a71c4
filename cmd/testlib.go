package cmd

import (
	"fmt"
	"os"

	"github.com/kasuboski/episodez/pkg/logger"
	"github.com/kasuboski/episodez/pkg/testlib"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var generateTestlibCmd = &cobra.Command{
	Use:   "testlib",
	Short: "Generate a messy download directory to organize",
	Long: `Generate a download directory with small placeholder video files.

The generated directory mixes naming patterns, release folders, nested folders
and non-video files so organize can be tried without real media.

Example:
  episodez generate testlib ./testlib
  episodez generate testlib --duplicates /tmp/tv`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGenerateTestlib,
}

func init() {
	generateCmd.AddCommand(generateTestlibCmd)
	generateTestlibCmd.Flags().Bool("overwrite", false, "Overwrite existing test library directory")
	generateTestlibCmd.Flags().Bool("duplicates", false, "Add a second copy of the first episode of every show")
}

func runGenerateTestlib(cmd *cobra.Command, args []string) {
	log := logger.Get()

	outputDir := "./testlib"
	if len(args) > 0 {
		outputDir = args[0]
	}

	overwrite, _ := cmd.Flags().GetBool("overwrite")
	duplicates, _ := cmd.Flags().GetBool("duplicates")

	fs := afero.NewOsFs()
	if _, err := fs.Stat(outputDir); err == nil {
		if !overwrite {
			log.Fatalf("Output directory %s already exists. Use --overwrite to replace it.", outputDir)
		}
		if err := fs.RemoveAll(outputDir); err != nil {
			log.Fatalw("failed to remove existing directory", "dir", outputDir, zap.Error(err))
		}
	}

	sum, err := testlib.Generate(fs, outputDir, testlib.Options{Duplicates: duplicates})
	if err != nil {
		log.Fatalw("failed to generate test library", "dir", outputDir, zap.Error(err))
	}

	log.Infow("test library generation complete",
		"output_dir", outputDir,
		"videos", sum.Videos,
		"episodes", sum.Episodes,
		"duplicates", sum.Duplicates,
		"extras", sum.Extras)

	fmt.Fprintf(os.Stdout, "\nTo organize it:\n  episodez organize --cleanup %s\n", outputDir)
}
