// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads study records from the ClinicalTrials.gov v2 API
// and writes them to the local dataset file read by the corpus store.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pdiddy/trials-engine/internal/httputil"
)

// studiesAPIBase is the ClinicalTrials.gov studies endpoint. Declared as a
// var so tests can substitute an httptest server.
var studiesAPIBase = "https://clinicaltrials.gov/api/v2/studies"

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

// Config controls a dataset download.
type Config struct {
	// Query restricts the download to studies matching a search term.
	// Empty downloads from the full registry.
	Query string

	// PageSize is the number of records requested per API page.
	// Defaults to 100; the API caps it at 1000.
	PageSize int

	// MaxRecords stops the download after this many records. Zero means
	// no cap, which for an unrestricted query is the entire registry.
	MaxRecords int

	// UserAgent identifies the client to the registry.
	UserAgent string

	// PageDelay is the pause between consecutive page requests.
	PageDelay time.Duration

	// OutputPath is the dataset file to write.
	OutputPath string
}

// Result summarizes a completed download.
type Result struct {
	Records int
	Pages   int
}

// apiPage mirrors the paged response envelope of the studies endpoint.
// Records stay raw so fields the engine does not model survive the trip
// to disk.
type apiPage struct {
	Studies       []json.RawMessage `json:"studies"`
	NextPageToken string            `json:"nextPageToken"`
}

// Dataset pages through the studies endpoint and writes all fetched records
// to cfg.OutputPath as one JSON array. The file is written to a temp path
// and renamed on success, so a partial download never clobbers an existing
// dataset. Per-page progress goes to w.
func Dataset(ctx context.Context, client *http.Client, cfg Config, w io.Writer) (Result, error) {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.PageSize > maxPageSize {
		cfg.PageSize = maxPageSize
	}

	var result Result
	var records []json.RawMessage
	pageToken := ""

	for {
		if result.Pages > 0 && cfg.PageDelay > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(cfg.PageDelay):
			}
		}

		page, err := fetchPage(ctx, client, cfg, pageToken)
		if err != nil {
			return result, fmt.Errorf("fetching page %d: %w", result.Pages+1, err)
		}

		records = append(records, page.Studies...)
		result.Pages++
		result.Records = len(records)
		fmt.Fprintf(w, "page %d: %d records (total %d)\n", result.Pages, len(page.Studies), result.Records)

		if cfg.MaxRecords > 0 && len(records) >= cfg.MaxRecords {
			records = records[:cfg.MaxRecords]
			result.Records = len(records)
			break
		}
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	if err := writeDataset(cfg.OutputPath, records); err != nil {
		return result, err
	}
	fmt.Fprintf(w, "wrote %d records to %s\n", result.Records, cfg.OutputPath)
	return result, nil
}

func fetchPage(ctx context.Context, client *http.Client, cfg Config, pageToken string) (*apiPage, error) {
	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(cfg.PageSize))
	if cfg.Query != "" {
		params.Set("query.term", cfg.Query)
	}
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, studiesAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("studies API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("studies API returned HTTP %d", resp.StatusCode)
	}

	var page apiPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("parsing studies response: %w", err)
	}
	return &page, nil
}

// writeDataset marshals records to a temp file and renames it over path.
func writeDataset(path string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling dataset: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating dataset directory: %w", err)
		}
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing dataset: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
