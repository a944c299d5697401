package completion

import (
	"sort"

	"github.com/dshills/asyncomplete/internal/engine"
)

// ExcludedCommitCharacters unions, across all candidates, the characters of
// every add-kind commit rule. Remove-kind rules are not consulted: the
// result is a session-wide exclusion set letting the editor skip asking the
// engine per keystroke. Candidates without rules contribute nothing; an
// absent rule slice is a valid state. Returns nil when no candidate defines
// add rules.
func ExcludedCommitCharacters(items []*engine.CandidateItem) []rune {
	var out []rune
	seen := make(map[rune]struct{})

	for _, item := range items {
		for _, rule := range item.CommitRules {
			if rule.Kind != engine.CommitAdd {
				continue
			}
			for _, ch := range rule.Characters {
				if _, dup := seen[ch]; dup {
					continue
				}
				seen[ch] = struct{}{}
				out = append(out, ch)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
