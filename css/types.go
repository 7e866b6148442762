// Package css is a small wrapper over the tdewolff CSS parser producing a
// typed stylesheet model. It covers what theme validation needs: plain
// rulesets, simple at-rules and a warning list for everything the model
// does not represent.
package css

import "strings"

// Declaration is a single property: value pair inside a ruleset.
type Declaration struct {
	Property string
	Value    string
}

// Rule is one ruleset with its selector list and declarations, both in
// source order.
type Rule struct {
	Selectors    []string
	Declarations []Declaration
}

// AtRule is a block-less at-rule, for example an @import.
type AtRule struct {
	Name    string // including the leading @
	Prelude string
}

// ImportURL returns the imported location for an @import rule.
// Handles @import "url", @import url("url") and @import url(url).
func (r AtRule) ImportURL() string {
	if r.Name != "@import" {
		return ""
	}
	s := strings.TrimSpace(r.Prelude)
	if rest, ok := strings.CutPrefix(s, "url("); ok {
		s = strings.TrimSpace(strings.TrimSuffix(rest, ")"))
	}
	return unquote(s)
}

// Stylesheet is the parsed document.
type Stylesheet struct {
	Rules    []Rule
	AtRules  []AtRule
	Warnings []string
}

// Lookup returns the last value of a property under the given selector.
func (s *Stylesheet) Lookup(selector, property string) (string, bool) {
	value, found := "", false
	for _, r := range s.Rules {
		for _, sel := range r.Selectors {
			if sel != selector {
				continue
			}
			for _, d := range r.Declarations {
				if d.Property == property {
					value, found = d.Value, true
				}
			}
		}
	}
	return value, found
}

// Selectors returns every distinct selector in source order.
func (s *Stylesheet) Selectors() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range s.Rules {
		for _, sel := range r.Selectors {
			if _, ok := seen[sel]; ok {
				continue
			}
			seen[sel] = struct{}{}
			out = append(out, sel)
		}
	}
	return out
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func splitSelectors(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
