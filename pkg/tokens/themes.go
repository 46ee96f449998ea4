package tokens

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
)

// themesKey is the reserved metadata entry holding theme definitions.
// Any other "$"-prefixed top-level key is metadata too and never a token set.
const themesKey = "$themes"

// ParseThemes extracts theme definitions from the raw tree's $themes entry.
// A missing or malformed entry yields an empty slice, never an error.
func ParseThemes(raw map[string]any) []Theme {
	entry, ok := raw[themesKey]
	if !ok {
		return nil
	}

	// Round-trip through JSON so we accept whatever shape the decoder
	// produced for the nested array.
	data, err := json.Marshal(entry)
	if err != nil {
		return nil
	}

	var themes []Theme
	if err := json.Unmarshal(data, &themes); err != nil {
		return nil
	}
	return themes
}

// FindTheme looks up a theme by id or name (id takes precedence).
// The bool indicates whether the theme was found.
func FindTheme(themes []Theme, idOrName string) (*Theme, bool) {
	for i := range themes {
		if themes[i].ID == idOrName {
			return &themes[i], true
		}
	}
	for i := range themes {
		if themes[i].Name == idOrName {
			return &themes[i], true
		}
	}
	return nil, false
}

// selectSets returns the ordered list of token sets to resolve.
//
// Selection policy:
//   - No theme: every non-metadata top-level set, alphabetical.
//   - Theme: sets the theme marks enabled/source first, then every remaining
//     non-metadata set is appended so semantic tokens stay resolvable even
//     when a theme's set list is incomplete.
//
// A theme entry naming a set that does not exist in the tree is logged and
// skipped; it never fails the run.
func selectSets(raw map[string]any, theme *Theme, log *slog.Logger) []string {
	all := make([]string, 0, len(raw))
	for name := range raw {
		if strings.HasPrefix(name, "$") {
			continue
		}
		all = append(all, name)
	}
	sort.Strings(all)

	if theme == nil {
		return all
	}

	seen := make(map[string]bool, len(all))
	var sets []string

	for _, name := range all {
		status, ok := theme.SelectedTokenSets[name]
		if !ok {
			continue
		}
		seen[name] = true
		if status == StatusEnabled || status == StatusSource {
			sets = append(sets, name)
		}
	}

	for name := range theme.SelectedTokenSets {
		if _, exists := raw[name]; !exists {
			log.Warn("theme references unknown token set", "theme", theme.Name, "set", name)
		}
	}

	// Append-all-remaining-sets policy: sets the theme never mentions are
	// still resolvable. Explicitly disabled sets stay out.
	for _, name := range all {
		if !seen[name] {
			sets = append(sets, name)
		}
	}

	return sets
}
