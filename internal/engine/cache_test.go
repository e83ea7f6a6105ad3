// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/trials-engine/pkg/types"
)

func TestNewResultCacheDisabled(t *testing.T) {
	assert.Nil(t, newResultCache(0))
	assert.Nil(t, newResultCache(-1))
}

func TestResultCacheRoundTrip(t *testing.T) {
	c := newResultCache(4)
	require.NotNil(t, c)

	req := types.SearchRequest{Query: "cancer", Page: 1, Limit: 20}
	page := types.SearchPage{TotalCount: 7, Page: 1, Limit: 20, TotalPages: 1}

	_, ok := c.get(req)
	assert.False(t, ok, "empty cache should miss")

	c.put(req, page)
	got, ok := c.get(req)
	require.True(t, ok)
	assert.Equal(t, page, got)
}

func TestResultCacheKeyDiscriminates(t *testing.T) {
	c := newResultCache(4)
	require.NotNil(t, c)

	c.put(types.SearchRequest{Query: "cancer", Page: 1, Limit: 20}, types.SearchPage{TotalCount: 1})

	_, ok := c.get(types.SearchRequest{Query: "cancer", Page: 2, Limit: 20})
	assert.False(t, ok, "different page must not hit")

	_, ok = c.get(types.SearchRequest{
		Query:   "cancer",
		Page:    1,
		Limit:   20,
		Filters: types.SearchFilters{Status: []string{"RECRUITING"}},
	})
	assert.False(t, ok, "different filters must not hit")
}

func TestResultCacheEvictsOldest(t *testing.T) {
	c := newResultCache(2)
	require.NotNil(t, c)

	a := types.SearchRequest{Query: "a"}
	b := types.SearchRequest{Query: "b"}
	d := types.SearchRequest{Query: "d"}

	c.put(a, types.SearchPage{TotalCount: 1})
	c.put(b, types.SearchPage{TotalCount: 2})
	c.put(d, types.SearchPage{TotalCount: 3})

	_, ok := c.get(a)
	assert.False(t, ok, "oldest entry should be evicted at capacity")
	_, ok = c.get(b)
	assert.True(t, ok)
	_, ok = c.get(d)
	assert.True(t, ok)
}

func TestEngineCacheReturnsSamePage(t *testing.T) {
	e := newTestEngine(t, sequentialCorpus(10), WithCache(8))

	req := types.SearchRequest{Query: "study", SortBy: "nct-id", Limit: 5}
	first := e.Search(req)
	second := e.Search(req)

	assert.Equal(t, first, second)
}
