// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/trials-engine/pkg/types"
)

// QueryFile is the on-disk representation of a search and its results. A
// saved search can be reloaded later without re-running the query.
type QueryFile struct {
	Request types.SearchRequest `yaml:"request"`
	Results types.SearchPage    `yaml:"results"`
	Summary QuerySummary        `yaml:"summary"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	TotalCount int       `yaml:"total_count"`
	TotalPages int       `yaml:"total_pages"`
	Timestamp  time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves a search request and its result page to a YAML file.
func WriteQueryFile(path string, req types.SearchRequest, page types.SearchPage) error {
	qf := QueryFile{
		Request: req,
		Results: page,
		Summary: QuerySummary{
			TotalCount: page.TotalCount,
			TotalPages: page.TotalPages,
			Timestamp:  time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}
