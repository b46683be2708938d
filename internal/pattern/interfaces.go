// Package pattern matches supplier line items against product rule tables.
package pattern

import (
	"github.com/Veraticus/roofline/internal/model"
)

// Matcher finds the rule a line item belongs to.
type Matcher interface {
	// MatchCode returns the first rule whose code pattern matches the item code.
	MatchCode(code string) (Rule, bool)
	// MatchDescription returns the first rule with a keyword found in the description.
	MatchDescription(description string) (Rule, bool)
}

// RuleValidator checks rule tables before they are compiled.
type RuleValidator interface {
	// ValidateRules reports every problem found in the rule table.
	ValidateRules(rules []Rule) []error
}

// Rule is an alias to the model.ProductRule type for convenience.
type Rule = model.ProductRule
