package cmd

import (
	"errors"
	"log"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dendrascience/djzip/version"
)

var cfgFile string

// NewRootCmd creates and returns the root cobra command for the djzip CLI.
// It sets up all subcommands, command groups, and configuration handling.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "djzip",
		Short: "djzip - a streaming zip archive builder",
		Long: `djzip builds zip archives incrementally, writing each entry to the
output as it is added instead of assembling the archive in memory.

Use subcommands to perform different operations:
  - create: Build a zip archive from files and directory trees
  - seed: Generate randomized test file trees for exercising create`,
		Version: version.GetFullVersion(),
	}

	groupArchive := "archive"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupArchive,
		Title: "Archive Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	createCmd := NewCreateCmd()
	seedCmd := NewSeedCmd()

	createCmd.GroupID = groupArchive
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(seedCmd)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.djzip.yaml)")
	cobra.OnInitialize(initConfig)

	return rootCmd
}

// initConfig loads the optional config file and environment overrides.
// Missing config files are fine; a file that exists but cannot be parsed
// is not.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatalf("Failed to locate home directory: %v", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".djzip")
	}

	viper.SetDefault("level", "default")
	viper.SetDefault("verbose", false)

	viper.SetEnvPrefix("djzip")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("Failed to read config file: %v", err)
		}
	}
}
