package tokens

import "strings"

// CleanName strips a leading set-name segment from a full token path for
// display. A first segment counts as a set name when it contains spaces or
// slashes or starts with a digit ("01 Base", "Brand/Light"); plain paths
// pass through unchanged.
func CleanName(fullPath string) string {
	first, rest, found := strings.Cut(fullPath, ".")
	if !found || rest == "" {
		return fullPath
	}
	if isSetSegment(first) {
		return rest
	}
	return fullPath
}

func isSetSegment(segment string) bool {
	if segment == "" {
		return false
	}
	if strings.ContainsAny(segment, " /") {
		return true
	}
	c := segment[0]
	return c >= '0' && c <= '9'
}
