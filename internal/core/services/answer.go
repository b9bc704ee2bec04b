package services

import "strings"

// NormalizeAnswer cleans raw model output. Leading and trailing
// whitespace is trimmed, blank lines are dropped and repeated lines are
// removed while keeping the first occurrence in order. Small local
// models tend to restate the same sentence when the context contains
// overlapping chunks.
func NormalizeAnswer(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	seen := make(map[string]struct{})
	var lines []string
	for _, line := range strings.Split(trimmed, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
