package match

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/gnana997/tokenlens/pkg/tokens"
)

const (
	// MinConfidence is the floor a candidate must clear for its observed
	// value to count as matched rather than unmatched.
	MinConfidence = 0.5

	// maxCandidates bounds the ranked list kept per observed value.
	maxCandidates = 8

	// maxAlternatives bounds the alternates packaged next to the primary.
	maxAlternatives = 3

	// Tolerances gate the sort keys: a later key only applies when the two
	// candidates are practically equal on the earlier one.
	alignmentTolerance  = 0.1
	confidenceTolerance = 0.05
)

// RankCandidates scores every resolved token against one observed value and
// returns the surviving candidates in deterministic rank order, truncated to
// a bounded list.
func RankCandidates(observed ObservedValue, resolved map[string]tokens.ResolvedToken) []MatchCandidate {
	names := make([]string, 0, len(resolved))
	for name := range resolved {
		names = append(names, name)
	}
	sort.Strings(names)

	candidates := make([]MatchCandidate, 0, len(names))
	for _, name := range names {
		tok := resolved[name]
		if tok.Value == "" {
			continue
		}

		similarity := ValueSimilarity(observed.Value, observed.Type, tok.Value)
		alignment := bestAlignment(name, observed)
		if similarity == 0 && alignment == 0 {
			// No value signal and no name signal: not a candidate.
			continue
		}

		in := scoreInputs{
			alignment:  alignment,
			similarity: similarity,
			exactValue: observed.Value == tok.Value,
			semantic:   tok.IsReference,
		}
		confidence := Confidence(in)
		if confidence == 0 {
			continue
		}

		candidates = append(candidates, MatchCandidate{
			TokenName:         name,
			TokenValue:        tok.Value,
			Confidence:        confidence,
			IsSemanticToken:   tok.IsReference,
			MatchType:         classify(confidence, tok.IsReference),
			ReferenceChain:    tok.ReferenceChain,
			OriginalReference: tok.OriginalReference,
			alignment:         alignment,
			exactValue:        in.exactValue,
			quality:           nameQuality(name),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return lessCandidate(candidates[i], candidates[j])
	})

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates
}

// lessCandidate is the strict multi-key comparator. Each key applies only
// when the prior key ties within its tolerance, so a later key can never
// override a materially better earlier key.
func lessCandidate(a, b MatchCandidate) bool {
	if math.Abs(a.alignment-b.alignment) > alignmentTolerance {
		return a.alignment > b.alignment
	}
	if a.exactValue != b.exactValue {
		return a.exactValue
	}
	if math.Abs(a.Confidence-b.Confidence) > confidenceTolerance {
		return a.Confidence > b.Confidence
	}
	if a.IsSemanticToken != b.IsSemanticToken {
		return a.IsSemanticToken
	}
	if a.quality != b.quality {
		return a.quality > b.quality
	}
	return a.TokenName < b.TokenName
}

// Values matches an observed-value batch against a resolved-token map.
// Values are matched independently; running twice on the same inputs yields
// identical output.
func Values(observed []ObservedValue, resolved map[string]tokens.ResolvedToken, log *slog.Logger) Result {
	if log == nil {
		log = slog.Default()
	}

	var result Result
	for _, value := range observed {
		ranked := RankCandidates(value, resolved)

		// Only candidates clearing the confidence floor are emitted.
		passing := ranked[:0:0]
		for _, c := range ranked {
			if c.Confidence >= MinConfidence {
				passing = append(passing, c)
			}
		}

		if len(passing) == 0 {
			result.UnmatchedValues = append(result.UnmatchedValues, UnmatchedValue{
				Value: value.Value,
				Type:  value.Type,
				Count: value.Count,
			})
			log.Debug("no token match", "type", value.Type, "value", value.Value)
			continue
		}

		alternatives := passing[1:]
		if len(alternatives) > maxAlternatives {
			alternatives = alternatives[:maxAlternatives]
		}

		result.TokenMatches = append(result.TokenMatches, TokenMatch{
			Value:        value.Value,
			Type:         value.Type,
			Count:        value.Count,
			NodeIDs:      value.NodeIDs,
			Recommended:  passing[0],
			Alternatives: alternatives,
			Suggestions:  buildSuggestions(passing),
		})
	}
	return result
}

// buildSuggestions renders human-readable recommendation strings for the
// primary candidate and its alternates.
func buildSuggestions(candidates []MatchCandidate) []string {
	limit := 1 + maxAlternatives
	if len(candidates) < limit {
		limit = len(candidates)
	}

	suggestions := make([]string, 0, limit)
	for _, c := range candidates[:limit] {
		suggestions = append(suggestions, fmt.Sprintf("%s: %s (%s, %d%% match)",
			matchTypeLabel(c.MatchType),
			tokens.CleanName(c.TokenName),
			c.TokenValue,
			int(math.Round(c.Confidence*100))))
	}
	return suggestions
}

func matchTypeLabel(mt MatchType) string {
	switch mt {
	case MatchExact:
		return "Exact match"
	case MatchSemantic:
		return "Semantic match"
	case MatchSimilar:
		return "Close match"
	default:
		return "Base token"
	}
}
