package options

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// RankByDistance orders the given option indexes by edit distance between
// their lowercased text and the lowercased query. Ties keep index order.
// Out-of-range indexes are dropped.
func (s *Store) RankByDistance(query string, indices []int) []int {
	q := strings.ToLower(query)
	type scored struct {
		index int
		dist  int
	}
	ranked := make([]scored, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(s.opts) {
			continue
		}
		ranked = append(ranked, scored{
			index: i,
			dist:  levenshtein.ComputeDistance(q, strings.ToLower(s.opts[i].Text)),
		})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].dist < ranked[b].dist
	})
	out := make([]int, len(ranked))
	for i, r := range ranked {
		out[i] = r.index
	}
	return out
}

// FilterContains returns the indexes of options whose text contains the
// query case-insensitively, ranked by edit distance to the query.
func (s *Store) FilterContains(query string) []int {
	if query == "" {
		all := make([]int, len(s.opts))
		for i := range all {
			all[i] = i
		}
		return all
	}
	q := strings.ToLower(query)
	var hits []int
	for i := range s.opts {
		if strings.Contains(strings.ToLower(s.opts[i].Text), q) {
			hits = append(hits, i)
		}
	}
	return s.RankByDistance(query, hits)
}
