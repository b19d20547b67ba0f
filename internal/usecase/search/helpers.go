package search

import (
	"strings"

	"github.com/tgoubier/moments-ms-go/internal/port"
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// anyContainsFold reports whether any entry of list contains term,
// case-insensitively.
func anyContainsFold(list []string, term string) bool {
	term = strings.ToLower(term)
	for _, s := range list {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

// matchTerms applies the matchAll flag across terms: AND when set,
// OR otherwise.
func matchTerms(list []string, terms []string, matchAll bool) bool {
	for _, term := range terms {
		hit := anyContainsFold(list, term)
		if matchAll && !hit {
			return false
		}
		if !matchAll && hit {
			return true
		}
	}
	return matchAll
}

// capResults bounds a sorted result list, keeping the pre-cap match
// count in the output.
func capResults(results []port.SearchResult, limit int) port.SearchOutput {
	count := len(results)
	if count > limit {
		results = results[:limit]
	}
	if results == nil {
		results = []port.SearchResult{}
	}
	return port.SearchOutput{Results: results, Count: count}
}

func colorTriple(c []int) [3]uint8 {
	return [3]uint8{uint8(c[0]), uint8(c[1]), uint8(c[2])}
}
