// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the trials-engine CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/trials-engine/internal/corpus"
	"github.com/pdiddy/trials-engine/internal/engine"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the trials-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "trials-engine",
	Short: "Search engine for clinical trial registry data",
	Long: `trials-engine answers free-text and structured queries over a local snapshot
of clinical trial registry records. The dataset is a single JSON file fetched
from the ClinicalTrials.gov registry; search, filtering, sorting, and facet
extraction all run in memory.

Each operation is a subcommand: fetch downloads the dataset, search queries
it, facets lists the available filter values, and serve exposes the same
queries over HTTP.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./trials-engine.yaml or ~/.config/trials-engine/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("trials-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "trials-engine"))
		}
	}

	viper.SetDefault("data_file", filepath.Join("data", "trials.json"))
	viper.SetDefault("cache_size", 128)
	viper.SetDefault("listen_addr", ":8080")

	viper.SetEnvPrefix("TRIALS_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	level := slog.LevelInfo
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// newEngine builds the query engine from the configured dataset file.
func newEngine() *engine.Engine {
	store := corpus.NewStore(viper.GetString("data_file"))
	return engine.New(store, engine.WithCache(viper.GetInt("cache_size")))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
