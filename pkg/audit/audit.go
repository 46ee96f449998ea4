package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gnana997/tokenlens/pkg/match"
	"github.com/gnana997/tokenlens/pkg/tokens"
)

// DefaultCacheSize bounds how many resolved-token maps are kept. One entry
// per (token tree, theme) pair; trees are small, re-resolution is cheap.
const DefaultCacheSize = 16

// Report is the outcome of auditing one observed-value batch against one
// token tree.
type Report struct {
	Summary            tokens.ResolveSummary  `json:"summary"`
	TokenMatches       []match.TokenMatch     `json:"tokenMatches"`
	UnmatchedValues    []match.UnmatchedValue `json:"unmatchedValues"`
	MatchedInstances   int                    `json:"matchedInstances"`
	UnmatchedInstances int                    `json:"unmatchedInstances"`
	Coverage           float64                `json:"coverage"`
}

type cachedResolution struct {
	resolved map[string]tokens.ResolvedToken
	summary  tokens.ResolveSummary
}

// Auditor ties the token resolver and the match engine together and caches
// resolution results across runs.
type Auditor struct {
	cache *lru.Cache[string, cachedResolution]
	log   *slog.Logger
}

// NewAuditor creates an Auditor with an LRU resolution cache of the given
// size (DefaultCacheSize when <= 0).
func NewAuditor(cacheSize int, log *slog.Logger) (*Auditor, error) {
	if log == nil {
		log = slog.Default()
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	logger := log
	cache, err := lru.NewWithEvict(cacheSize, func(key string, _ cachedResolution) {
		logger.Debug("evicting cached resolution", "key", key)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resolution cache: %w", err)
	}

	return &Auditor{cache: cache, log: log}, nil
}

// Resolve resolves the raw tree under the optional theme, reusing a cached
// result when the same tree and theme were resolved before.
func (a *Auditor) Resolve(raw map[string]any, theme *tokens.Theme) (map[string]tokens.ResolvedToken, tokens.ResolveSummary) {
	key, ok := cacheKey(raw, theme)
	if ok {
		if cached, hit := a.cache.Get(key); hit {
			return cached.resolved, cached.summary
		}
	}

	resolved, summary := tokens.Resolve(raw, theme, a.log)
	if ok {
		a.cache.Add(key, cachedResolution{resolved: resolved, summary: summary})
	}
	return resolved, summary
}

// Audit resolves the tree and matches the observed values in one call.
func (a *Auditor) Audit(raw map[string]any, theme *tokens.Theme, observed []match.ObservedValue) *Report {
	resolved, summary := a.Resolve(raw, theme)
	result := match.Values(observed, resolved, a.log)

	report := &Report{
		Summary:         summary,
		TokenMatches:    result.TokenMatches,
		UnmatchedValues: result.UnmatchedValues,
	}
	for _, m := range result.TokenMatches {
		report.MatchedInstances += m.Count
	}
	for _, u := range result.UnmatchedValues {
		report.UnmatchedInstances += u.Count
	}
	if total := report.MatchedInstances + report.UnmatchedInstances; total > 0 {
		report.Coverage = float64(report.MatchedInstances) / float64(total)
	}

	a.log.Info("audit complete",
		"matched", len(report.TokenMatches),
		"unmatched", len(report.UnmatchedValues),
		"matchedInstances", report.MatchedInstances,
		"unmatchedInstances", report.UnmatchedInstances)

	return report
}

// Invalidate drops every cached resolution. Called when token files change.
func (a *Auditor) Invalidate() {
	a.cache.Purge()
}

// cacheKey digests the tree and theme. json.Marshal sorts map keys, so the
// digest is stable for a fixed tree.
func cacheKey(raw map[string]any, theme *tokens.Theme) (string, bool) {
	data, err := json.Marshal(raw)
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(data)
	key := hex.EncodeToString(sum[:])
	if theme != nil {
		key += ":" + theme.ID
	}
	return key, true
}
