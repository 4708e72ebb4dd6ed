package utils

import "strings"

// SplitList splits a separated list such as "a, b,,c" into its trimmed, non-empty items.
// It returns nil when no item remains.
func SplitList(s, sep string) []string {
	var result []string
	for _, item := range strings.Split(s, sep) {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
