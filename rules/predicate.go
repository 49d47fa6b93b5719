package rules

import (
	"fmt"
	"strings"
)

// Field the per-feature modulo term is keyed on in expression output.
const idFieldName = "osm_id"

// TagMatch is a single key = value equality test against a feature's OSM tags.
type TagMatch struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Predicate selects features by their OSM tags. AnyOf entries are ORed
// together; RequireKey demands the tag is present with a real value
// (not empty, not "no"); ModuloBase/ModuloRemainder constrain the numeric
// feature ID for the rotating building palette. MatchAll marks the
// catch-all predicate that terminates every rule list.
type Predicate struct {
	AnyOf           []TagMatch `json:"any_of,omitempty"`
	RequireKey      string     `json:"require_key,omitempty"`
	ModuloBase      int        `json:"modulo_base,omitempty"`
	ModuloRemainder int        `json:"modulo_remainder,omitempty"`
	MatchAll        bool       `json:"match_all,omitempty"`
}

// Matches evaluates the predicate against a feature's tag set and numeric ID.
func (p Predicate) Matches(tags map[string]string, featureID int64) bool {
	if p.MatchAll {
		return true
	}

	if p.RequireKey != "" {
		value, ok := tags[p.RequireKey]
		if !ok || value == "" || value == "no" {
			return false
		}
	}

	if len(p.AnyOf) > 0 {
		matched := false
		for _, tm := range p.AnyOf {
			if tags[tm.Key] == tm.Value {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if p.ModuloBase > 0 {
		if featureID%int64(p.ModuloBase) != int64(p.ModuloRemainder) {
			return false
		}
	}

	return p.RequireKey != "" || len(p.AnyOf) > 0
}

// Expression renders the predicate as an SQL-ish expression string, the
// form rule-based renderers accept as a filter expression.
func (p Predicate) Expression() string {
	if p.MatchAll {
		return "TRUE"
	}

	var parts []string

	if p.RequireKey != "" {
		key := quoteIdent(p.RequireKey)
		parts = append(parts, fmt.Sprintf("(%s IS NOT NULL AND %s != 'no' AND %s != '')", key, key, key))
	}

	if len(p.AnyOf) > 0 {
		var conditions []string
		for _, tm := range p.AnyOf {
			conditions = append(conditions, fmt.Sprintf("%s = '%s'", quoteIdent(tm.Key), tm.Value))
		}
		or := strings.Join(conditions, " OR ")
		if p.RequireKey != "" || p.ModuloBase > 0 {
			or = "(" + or + ")"
		}
		parts = append(parts, or)
	}

	if p.ModuloBase > 0 {
		parts = append(parts, fmt.Sprintf("(%s %% %d = %d)", quoteIdent(idFieldName), p.ModuloBase, p.ModuloRemainder))
	}

	return strings.Join(parts, " AND ")
}

// Filter renders the predicate as a Mapbox GL filter expression. The
// catch-all predicate returns nil, which GL treats as match-everything.
func (p Predicate) Filter() []interface{} {
	if p.MatchAll {
		return nil
	}

	var clauses []interface{}

	if p.RequireKey != "" {
		clauses = append(clauses,
			[]interface{}{"has", p.RequireKey},
			[]interface{}{"!=", []interface{}{"get", p.RequireKey}, "no"},
			[]interface{}{"!=", []interface{}{"get", p.RequireKey}, ""},
		)
	}

	if len(p.AnyOf) > 0 {
		any := []interface{}{"any"}
		for _, tm := range p.AnyOf {
			any = append(any, []interface{}{"==", []interface{}{"get", tm.Key}, tm.Value})
		}
		clauses = append(clauses, any)
	}

	if p.ModuloBase > 0 {
		clauses = append(clauses, []interface{}{
			"==",
			[]interface{}{"%", []interface{}{"id"}, p.ModuloBase},
			p.ModuloRemainder,
		})
	}

	if len(clauses) == 1 {
		if single, ok := clauses[0].([]interface{}); ok {
			return single
		}
	}

	return append([]interface{}{"all"}, clauses...)
}

func quoteIdent(name string) string {
	return "\"" + strings.ReplaceAll(name, "\"", "") + "\""
}
