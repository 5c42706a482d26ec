package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/rulekit/jsonlogic"

	"github.com/rulekit/jsonlogic/internal/telemetry"
)

// ruleCache keeps compiled rules keyed by the xxhash of their serialized
// form, for the hot apply path. The raw bytes are stored alongside the rule
// so a hash collision degrades to a recompile instead of a wrong answer.
type ruleCache struct {
	logic   *jsonlogic.Logic
	entries sync.Map // uint64 -> *cacheEntry
}

type cacheEntry struct {
	raw  string
	rule *jsonlogic.Rule
}

func newRuleCache(l *jsonlogic.Logic) *ruleCache {
	return &ruleCache{logic: l}
}

func (c *ruleCache) get(raw []byte) (*jsonlogic.Rule, error) {
	key := xxhash.Sum64(raw)
	if cached, ok := c.entries.Load(key); ok {
		entry := cached.(*cacheEntry)
		if entry.raw == string(raw) {
			telemetry.RuleCacheHits.Inc()
			return entry.rule, nil
		}
	}
	telemetry.RuleCacheMisses.Inc()

	var ruleVal any
	if err := json.Unmarshal(raw, &ruleVal); err != nil {
		return nil, fmt.Errorf("rule: %w", err)
	}
	rule, err := c.logic.Compile(ruleVal)
	if err != nil {
		return nil, err
	}
	c.entries.Store(key, &cacheEntry{raw: string(raw), rule: rule})
	return rule, nil
}
