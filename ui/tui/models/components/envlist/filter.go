// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package envlist

import (
	"strings"

	"github.com/lazyprop/lazyprop/util/slicest"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Visible returns the indices of the names matching query, in store order.
// Without fuzzy matching a name matches when it starts with query.
func Visible(names []string, query string, fuzzyMatch bool) []int {
	if query == "" {
		return slicest.FilterI(names, func(string) bool { return true })
	}
	if !fuzzyMatch {
		return slicest.FilterI(names, func(name string) bool {
			return strings.HasPrefix(name, query)
		})
	}

	ranks := fuzzy.RankFindNormalizedFold(strings.TrimSpace(query), names)
	matches := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		matches[rank.OriginalIndex] = struct{}{}
	}
	var visible []int
	for i := range names {
		if _, ok := matches[i]; ok {
			visible = append(visible, i)
		}
	}
	return visible
}
