package skill

import "strings"

// Normalize resolves a free-text skill token to its canonical display name.
// Unknown skills are returned trimmed but otherwise untouched, so nothing a
// candidate or posting declares is ever discarded.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := aliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// NormalizeList normalizes every element and deduplicates case-insensitively,
// keeping first-seen order and first-seen casing.
func NormalizeList(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, s := range raw {
		n := Normalize(s)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}

// RelatedSkills returns the child skills a holder of the given skill earns
// partial credit toward. The relation is directed: holding React says nothing
// about JavaScript.
func RelatedSkills(name string) []string {
	children, ok := related[Normalize(name)]
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(children))
	out = append(out, children...)
	return out
}
