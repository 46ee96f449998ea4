package tokens

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// flatEntry is one leaf of the raw tree, keyed by its full dotted path.
type flatEntry struct {
	rawValue  any
	tokenType string
	setName   string
	relPath   string
}

// leafValue reports whether node is a token leaf and returns its raw value.
// Both the "$"-prefixed and plain field conventions are accepted.
func leafValue(node map[string]any) (any, bool) {
	if v, ok := node["$value"]; ok {
		return v, true
	}
	if v, ok := node["value"]; ok {
		return v, true
	}
	return nil, false
}

// leafType returns the leaf's type tag under either field convention.
func leafType(node map[string]any) string {
	if t, ok := node["$type"].(string); ok {
		return t
	}
	if t, ok := node["type"].(string); ok {
		return t
	}
	return ""
}

// flattenSets walks the selected sets and builds the flat path table.
// Malformed nodes are logged and skipped, never fatal.
func flattenSets(raw map[string]any, sets []string, log *slog.Logger) map[string]flatEntry {
	flat := make(map[string]flatEntry)
	for _, set := range sets {
		node, ok := raw[set].(map[string]any)
		if !ok {
			log.Warn("token set is not an object, skipping", "set", set)
			continue
		}
		flattenNode(node, set, "", flat, log)
	}
	return flat
}

func flattenNode(node map[string]any, set, relPath string, flat map[string]flatEntry, log *slog.Logger) {
	if rawVal, ok := leafValue(node); ok {
		if relPath == "" {
			log.Warn("token leaf at set root, skipping", "set", set)
			return
		}
		switch rawVal.(type) {
		case string, float64, int, int64, json.Number:
		default:
			log.Warn("token value is not a string or number, skipping",
				"set", set, "path", relPath, "value", fmt.Sprintf("%T", rawVal))
			return
		}
		fullPath := set + "." + relPath
		flat[fullPath] = flatEntry{
			rawValue:  rawVal,
			tokenType: leafType(node),
			setName:   set,
			relPath:   relPath,
		}
		return
	}

	for name, child := range node {
		childNode, ok := child.(map[string]any)
		if !ok {
			log.Warn("token node is neither leaf nor group, skipping",
				"set", set, "path", joinPath(relPath, name))
			continue
		}
		flattenNode(childNode, set, joinPath(relPath, name), flat, log)
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
