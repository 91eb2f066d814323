package tag

// Filter intersects a proposed tag set with the allowed vocabulary.
// Matching is case-sensitive and exact; tags outside the vocabulary are
// silently dropped, never rewritten. The result preserves the order in which
// proposed tags first appear and contains no duplicates, so output is always
// a subset of allowed.
func Filter(proposed []string, allowed []string) []string {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(proposed))
	filtered := make([]string, 0, len(proposed))
	for _, name := range proposed {
		if _, ok := allowedSet[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		filtered = append(filtered, name)
	}

	return filtered
}
