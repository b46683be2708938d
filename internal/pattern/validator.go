package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/roofline/internal/model"
)

// Validator implements RuleValidator.
type Validator struct{}

// NewValidator creates a new rule table validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRules checks each rule, its code pattern, and duplicate category/subtype pairs.
func (v *Validator) ValidateRules(rules []Rule) []error {
	var errs []error

	if len(rules) == 0 {
		return []error{fmt.Errorf("%w: rule table is empty", model.ErrInvalidRule)}
	}

	seen := make(map[string]int, len(rules))
	for i, rule := range rules {
		if err := rule.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("rule %d: %w", i, err))
			continue
		}

		if expr := strings.TrimSpace(rule.CodePattern); expr != "" {
			if _, err := regexp.Compile(expr); err != nil {
				errs = append(errs, fmt.Errorf("rule %d: %w: code pattern %q: %w", i, model.ErrInvalidRule, rule.CodePattern, err))
			}
		}

		key := strings.ToLower(string(rule.Category) + "/" + string(rule.Subtype))
		if first, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("rule %d: %w: %s/%s already defined by rule %d",
				i, model.ErrInvalidRule, rule.Category, rule.Subtype, first))
			continue
		}
		seen[key] = i
	}

	return errs
}
