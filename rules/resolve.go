package rules

// ResolvePolygon walks the rule table in order and returns the first rule
// whose predicate matches. Evaluation is first-match-wins: table order is
// authoritative, and the trailing catch-all guarantees a match for any
// well-formed tag set.
func ResolvePolygon(table []StyleRule, tags map[string]string, featureID int64) (StyleRule, bool) {
	for _, rule := range table {
		if rule.Predicate.Matches(tags, featureID) {
			return rule, true
		}
	}
	return StyleRule{}, false
}

// ResolveLine walks the road rule table in order and returns the first
// matching tier. Features without a highway tag match nothing.
func ResolveLine(table []LineRule, tags map[string]string) (LineRule, bool) {
	for _, rule := range table {
		if rule.Predicate.Matches(tags, 0) {
			return rule, true
		}
	}
	return LineRule{}, false
}
