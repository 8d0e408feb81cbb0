package parser

import "strings"

// VariantClass is a set of characters that write the same morpheme.
type VariantClass struct {
	Name    string
	Members []string
}

func (c VariantClass) occursIn(s string) bool {
	for _, m := range c.Members {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// pairs returns every ordered pair of distinct members.
func (c VariantClass) pairs() [][2]string {
	out := make([][2]string, 0, len(c.Members)*(len(c.Members)-1))
	for i, a := range c.Members {
		for j, b := range c.Members {
			if i != j {
				out = append(out, [2]string{a, b})
			}
		}
	}
	return out
}

// VariantMatcher decides whether a canonical name, respelled with members of its classes, is a prefix
// of the input.
type VariantMatcher struct {
	classes []VariantClass
}

// NewVariantMatcher returns a matcher that tries classes in the given order.
func NewVariantMatcher(classes []VariantClass) VariantMatcher {
	return VariantMatcher{classes: classes}
}

// Match returns the canonical name and the input left after the respelled prefix. Edits of one class
// compose with the candidates produced by earlier classes plus the canonical name itself; a class
// that occurs only elsewhere in the input leaves those candidates as they are.
func (m VariantMatcher) Match(input, canonical string) (string, string, bool) {
	active := make([]VariantClass, 0, len(m.classes))
	for _, class := range m.classes {
		if class.occursIn(input) {
			active = append(active, class)
		}
	}
	if len(active) == 0 {
		return "", "", false
	}

	candidates := []string{canonical}
	for _, class := range active {
		var next []string
		for _, candidate := range candidates {
			if !class.occursIn(candidate) {
				// Edits from earlier classes survive a class that has nothing to rewrite.
				if candidate != canonical {
					next = append(next, candidate)
				}
				continue
			}
			for _, pair := range class.pairs() {
				if !strings.Contains(candidate, pair[0]) {
					continue
				}
				edited := strings.ReplaceAll(candidate, pair[0], pair[1])
				if rest, ok := strings.CutPrefix(input, edited); ok {
					return canonical, rest, true
				}
				next = append(next, edited)
			}
		}
		candidates = append(next, canonical)
	}
	return "", "", false
}
