package service

import "unicode"

// IsPortCode reports whether an identifier looks like a port code rather
// than a region slug: at most five characters, at least one letter, and no
// letter lowercase. This is a syntactic heuristic, not a lookup; existence
// is verified separately.
//
// Known sharp edge: a short all-caps region slug classifies as a port code,
// and a lowercase port code as a region slug. The post-classification
// existence check is the only guard, which matches the upstream data
// conventions (port codes are uppercase, slugs are lowercase with
// underscores).
func IsPortCode(identifier string) bool {
	runes := []rune(identifier)
	if len(runes) > 5 {
		return false
	}

	hasLetter := false
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		hasLetter = true
	}
	return hasLetter
}
