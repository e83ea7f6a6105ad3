// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/trials-engine/internal/fetch"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultPageDelay = 1 * time.Second
	defaultUserAgent = "trials-engine/0.1"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download trial records into the local dataset",
	Long: `Fetch pages through the ClinicalTrials.gov v2 studies API and writes the
records to the dataset file as a single JSON array. An existing dataset is
replaced only after the download completes. Use --query to restrict the
download and --max-records to cap its size.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("query", "", "restrict the download to studies matching a search term")
	fetchCmd.Flags().Int("page-size", 0, "records per API page (default 100, max 1000)")
	fetchCmd.Flags().Int("max-records", 0, "stop after this many records (default: no cap)")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	fetchCmd.Flags().Duration("delay", 0, "delay between consecutive page requests (default 1s)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = defaultPageDelay
	}

	cfg := fetch.Config{
		UserAgent:  defaultUserAgent,
		PageDelay:  delay,
		OutputPath: viper.GetString("data_file"),
	}
	cfg.Query, _ = cmd.Flags().GetString("query")
	cfg.PageSize, _ = cmd.Flags().GetInt("page-size")
	cfg.MaxRecords, _ = cmd.Flags().GetInt("max-records")

	client := &http.Client{Timeout: timeout}

	_, err := fetch.Dataset(cmd.Context(), client, cfg, os.Stdout)
	return err
}
