// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pdiddy/trials-engine/pkg/types"
)

// resultCache memoizes result pages by request. Entries never expire: the
// corpus is immutable for the process lifetime, so a cached page stays
// correct until shutdown. The LRU bound keeps memory flat under varied
// query load.
type resultCache struct {
	entries *lru.Cache[string, types.SearchPage]
}

// newResultCache returns a cache holding up to size pages, or nil when size
// is not positive.
func newResultCache(size int) *resultCache {
	if size <= 0 {
		return nil
	}
	entries, err := lru.New[string, types.SearchPage](size)
	if err != nil {
		return nil
	}
	return &resultCache{entries: entries}
}

func (c *resultCache) get(req types.SearchRequest) (types.SearchPage, bool) {
	return c.entries.Get(requestKey(req))
}

func (c *resultCache) put(req types.SearchRequest, page types.SearchPage) {
	c.entries.Add(requestKey(req), page)
}

// requestKey hashes the canonical JSON encoding of a normalized request.
// Struct field order is fixed, so equal requests always hash equal.
func requestKey(req types.SearchRequest) string {
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
