package cmd

import (
	"fmt"

	"github.com/kasuboski/episodez/pkg/logger"
	"github.com/kasuboski/episodez/pkg/password"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// passwordCmd prints a random password
var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Generate a random password",
	Long: `Generate a random password from the selected character classes.
Without any class flag every class is used.

Example:
  episodez password
  episodez password -l 20 --numbers --special`,
	Args: cobra.NoArgs,
	Run:  runPassword,
}

func init() {
	rootCmd.AddCommand(passwordCmd)

	passwordCmd.Flags().IntP("length", "l", 12, "Password length")
	addClassFlags(passwordCmd)

	cobra.CheckErr(viper.BindPFlag("password.length", passwordCmd.Flags().Lookup("length")))
}

// addClassFlags adds one flag per character class plus --all
func addClassFlags(cmd *cobra.Command) {
	for _, c := range password.AllClasses() {
		cmd.Flags().Bool(string(c), false, fmt.Sprintf("Include %s characters", c))
	}
	cmd.Flags().BoolP("all", "a", false, "Include every character class")
}

// selectedClasses resolves the classes from flags, then from configuration, falling back to all
func selectedClasses(cmd *cobra.Command, configured []string) ([]password.Class, error) {
	if all, _ := cmd.Flags().GetBool("all"); all {
		return password.AllClasses(), nil
	}

	var classes []password.Class
	for _, c := range password.AllClasses() {
		if on, _ := cmd.Flags().GetBool(string(c)); on {
			classes = append(classes, c)
		}
	}
	if len(classes) > 0 {
		return classes, nil
	}

	for _, name := range configured {
		c, err := password.ParseClass(name)
		if err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	if len(classes) > 0 {
		return classes, nil
	}

	return password.AllClasses(), nil
}

func runPassword(cmd *cobra.Command, args []string) {
	log := logger.Get()
	cfg := loadConfig(log)

	classes, err := selectedClasses(cmd, cfg.Password.Classes)
	if err != nil {
		log.Fatalw("invalid character class", zap.Error(err))
	}

	pw, err := password.New(nil).Generate(cfg.Password.Length, classes...)
	if err != nil {
		log.Fatalw("failed to generate password", zap.Error(err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), pw)
}
