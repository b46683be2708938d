package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRule is returned when a product rule cannot be used for matching.
var ErrInvalidRule = errors.New("invalid product rule")

// ProductRule maps supplier item codes or description keywords to a category.
type ProductRule struct {
	Category    Category `json:"category"`
	Subtype     Subtype  `json:"subtype"`
	CodePattern string   `json:"code_pattern"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Validate checks that the rule has a known category and at least one matcher.
func (r ProductRule) Validate() error {
	if !r.Category.IsValid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidRule, ErrUnknownCategory, r.Category)
	}
	if r.Subtype == "" {
		return fmt.Errorf("%w: subtype is required", ErrInvalidRule)
	}
	if strings.TrimSpace(r.CodePattern) == "" && len(r.Keywords) == 0 {
		return fmt.Errorf("%w: %s/%s needs a code pattern or keywords", ErrInvalidRule, r.Category, r.Subtype)
	}
	for _, kw := range r.Keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("%w: %s/%s has an empty keyword", ErrInvalidRule, r.Category, r.Subtype)
		}
	}
	return nil
}

// RuleSet is an ordered product rule table plus the premium shingle policy.
type RuleSet struct {
	Version         string        `json:"version"`
	Rules           []ProductRule `json:"rules"`
	PremiumSubtypes []Subtype     `json:"premium_subtypes"`
}

// Validate checks every rule in the set.
func (rs RuleSet) Validate() error {
	if len(rs.Rules) == 0 {
		return fmt.Errorf("%w: rule set %q has no rules", ErrInvalidRule, rs.Version)
	}
	for i, rule := range rs.Rules {
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return nil
}

// Clone returns a deep copy that shares no slices with rs.
func (rs RuleSet) Clone() RuleSet {
	out := RuleSet{Version: rs.Version}
	if rs.Rules != nil {
		out.Rules = make([]ProductRule, len(rs.Rules))
		for i, r := range rs.Rules {
			if r.Keywords != nil {
				r.Keywords = append([]string(nil), r.Keywords...)
			}
			out.Rules[i] = r
		}
	}
	if rs.PremiumSubtypes != nil {
		out.PremiumSubtypes = append([]Subtype(nil), rs.PremiumSubtypes...)
	}
	return out
}

// IsPremium reports whether the subtype counts as a premium shingle under this set's policy.
func (rs RuleSet) IsPremium(s Subtype) bool {
	if s == "" {
		return false
	}
	for _, p := range rs.PremiumSubtypes {
		if strings.EqualFold(string(p), string(s)) {
			return true
		}
	}
	return false
}
