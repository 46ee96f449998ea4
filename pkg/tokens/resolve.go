package tokens

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// referencePattern matches {path.to.token} placeholders embedded in a raw
// token value. One value may contain several, e.g. "{space.sm} {space.lg}".
var referencePattern = regexp.MustCompile(`\{([^{}]+)\}`)

// baseSetMarkers flag set names that hold foundational/primitive tokens.
// Used only as a tie-break when a reference path matches several sets.
var baseSetMarkers = []string{"base", "core", "foundation", "primitive", "global"}

// resolver carries the state of one resolution run. The memo map doubles as
// the cycle breaker for sub-references shared between chains.
type resolver struct {
	flat     map[string]flatEntry
	resolved map[string]ResolvedToken
	log      *slog.Logger
}

// Resolve turns a raw nested token tree (plus optional theme selection) into
// a flat fullPath to ResolvedToken map with all semantic references
// substituted by their final literal values.
//
// Failure semantics: per-token problems (malformed leaves, unresolvable
// references, cycles) are logged and degrade to skipping the token or
// leaving the placeholder text verbatim. Resolve never fails for one bad
// token; validating that raw is an object at all is the caller's job.
func Resolve(raw map[string]any, theme *Theme, log *slog.Logger) (map[string]ResolvedToken, ResolveSummary) {
	if log == nil {
		log = slog.Default()
	}

	sets := selectSets(raw, theme, log)
	flat := flattenSets(raw, sets, log)

	r := &resolver{
		flat:     flat,
		resolved: make(map[string]ResolvedToken, len(flat)),
		log:      log,
	}

	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, path := range paths {
		r.resolvePath(path, map[string]bool{})
	}

	var summary ResolveSummary
	summary.TotalResolvedTokens = len(r.resolved)
	for _, tok := range r.resolved {
		if tok.IsReference {
			summary.SemanticTokensCount++
		} else {
			summary.RawTokensCount++
		}
	}

	log.Debug("token resolution complete",
		"total", summary.TotalResolvedTokens,
		"semantic", summary.SemanticTokensCount,
		"raw", summary.RawTokensCount)

	return r.resolved, summary
}

// resolvePath resolves one flattened path, memoizing the result. The visited
// set tracks the current resolution chain only; revisiting a path inside one
// chain is a cycle and aborts that branch.
func (r *resolver) resolvePath(path string, visited map[string]bool) (ResolvedToken, bool) {
	if tok, ok := r.resolved[path]; ok {
		return tok, true
	}
	if visited[path] {
		r.log.Warn("circular token reference detected", "path", path)
		return ResolvedToken{}, false
	}

	entry, ok := r.flat[path]
	if !ok {
		return ResolvedToken{}, false
	}

	visited[path] = true
	defer delete(visited, path)

	rawStr := stringifyValue(entry.rawValue)
	refs := referencePattern.FindAllStringSubmatch(rawStr, -1)

	if len(refs) == 0 {
		tok := ResolvedToken{Value: rawStr, Type: entry.tokenType}
		r.resolved[path] = tok
		return tok, true
	}

	value := rawStr
	var chain []string
	for _, ref := range refs {
		refPath := ref[1]
		target, ok := r.lookupReference(refPath)
		if !ok {
			// Placeholder left verbatim, resolution continues.
			r.log.Warn("unresolvable token reference", "path", path, "reference", refPath)
			continue
		}
		sub, ok := r.resolvePath(target, visited)
		if !ok {
			r.log.Warn("token reference could not be resolved", "path", path, "reference", refPath)
			continue
		}
		value = strings.Replace(value, ref[0], sub.Value, 1)
		chain = append(chain, target)
		chain = append(chain, sub.ReferenceChain...)
	}

	tok := ResolvedToken{
		Value:             value,
		IsReference:       true,
		OriginalReference: rawStr,
		ReferenceChain:    dedupe(chain),
		Type:              entry.tokenType,
	}
	r.resolved[path] = tok
	return tok, true
}

// lookupReference maps a {referencePath} to a flattened full path.
//
// Order: exact full-path match first, then suffix match against every
// flattened path. Suffix ties prefer base/foundational sets, then
// alphabetical order.
func (r *resolver) lookupReference(refPath string) (string, bool) {
	if _, ok := r.flat[refPath]; ok {
		return refPath, true
	}

	var candidates []string
	suffix := "." + refPath
	for path := range r.flat {
		if strings.HasSuffix(path, suffix) {
			candidates = append(candidates, path)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}

	sort.Slice(candidates, func(i, j int) bool {
		bi, bj := isBaseSet(r.flat[candidates[i]].setName), isBaseSet(r.flat[candidates[j]].setName)
		if bi != bj {
			return bi
		}
		return candidates[i] < candidates[j]
	})

	return candidates[0], true
}

func isBaseSet(setName string) bool {
	lower := strings.ToLower(setName)
	for _, marker := range baseSetMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// stringifyValue renders a raw leaf value the way it appears in the source.
func stringifyValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case json.Number:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func dedupe(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
