package runner

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxTypoDistance bounds the edit distance of a misspelled target name.
const maxTypoDistance = 2

// Suggest returns the candidates closest to name, best first. Subsequence
// matches ("bld" for "build") rank ahead of near misses ("biuld").
func Suggest(name string, candidates []string) []string {
	seen := make(map[string]bool)
	var out []string

	ranks := fuzzy.RankFindFold(name, candidates)
	sort.Sort(ranks)
	for _, r := range ranks {
		if r.Target != name {
			seen[r.Target] = true
			out = append(out, r.Target)
		}
	}

	type near struct {
		name string
		dist int
	}
	var typos []near
	for _, c := range candidates {
		if seen[c] || c == name {
			continue
		}
		if d := fuzzy.LevenshteinDistance(name, c); d <= maxTypoDistance {
			typos = append(typos, near{c, d})
		}
	}
	sort.SliceStable(typos, func(i, j int) bool { return typos[i].dist < typos[j].dist })
	for _, n := range typos {
		out = append(out, n.name)
	}
	return out
}
