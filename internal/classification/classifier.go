// Package classification assigns supplier line items to roofing component categories.
package classification

import (
	"fmt"

	"github.com/Veraticus/roofline/internal/common"
	"github.com/Veraticus/roofline/internal/model"
	"github.com/Veraticus/roofline/internal/pattern"
)

// Classifier maps line items to categories using an injected rule set.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	matcher pattern.Matcher
	ruleSet model.RuleSet
}

// NewClassifier validates and compiles the rule set.
func NewClassifier(rs model.RuleSet) (*Classifier, error) {
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load rule set %q: %w", rs.Version, err)
	}

	matcher, err := pattern.NewMatcher(rs.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to compile rule set %q: %w", rs.Version, err)
	}

	common.LogDebug("Compiled product rule set", common.Fields{
		"version":          rs.Version,
		"rules":            matcher.Len(),
		"premium_subtypes": rs.PremiumSubtypes,
	})

	return &Classifier{
		matcher: matcher,
		ruleSet: rs.Clone(),
	}, nil
}

// NewDefaultClassifier returns a classifier over the built-in rule table.
func NewDefaultClassifier() *Classifier {
	c, err := NewClassifier(DefaultRuleSet())
	if err != nil {
		panic(err) // DefaultRuleSet always compiles
	}
	return c
}

// Classify returns the item annotated with its category and subtype.
// The item code is tried first, then the description. No match is not an error.
func (c *Classifier) Classify(item model.LineItem) model.ClassifiedItem {
	out := model.ClassifiedItem{Item: item}

	if rule, ok := c.matcher.MatchCode(item.ItemCode); ok {
		out.Category = rule.Category
		out.Subtype = rule.Subtype
		out.MatchedBy = model.MatchedByCode
		return out
	}

	if rule, ok := c.matcher.MatchDescription(item.Description); ok {
		out.Category = rule.Category
		out.Subtype = rule.Subtype
		out.MatchedBy = model.MatchedByDescription
	}

	return out
}

// ClassifyAll classifies items in order, keeping uncategorized ones.
func (c *Classifier) ClassifyAll(items []model.LineItem) []model.ClassifiedItem {
	out := make([]model.ClassifiedItem, len(items))
	for i, item := range items {
		out[i] = c.Classify(item)
	}
	return out
}

// IsPremium reports whether a classified item is a premium shingle.
func (c *Classifier) IsPremium(item model.ClassifiedItem) bool {
	return item.Category == model.CategoryShingles && c.ruleSet.IsPremium(item.Subtype)
}

// RuleSet returns a copy of the rule set the classifier was built from.
func (c *Classifier) RuleSet() model.RuleSet {
	return c.ruleSet.Clone()
}
