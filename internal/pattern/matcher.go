package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/roofline/internal/model"
)

// compiledRule holds a rule with its code pattern compiled and keywords lowered.
type compiledRule struct {
	codeRegex *regexp.Regexp
	keywords  []string
	Rule
}

// MatcherImpl implements Matcher over an ordered rule table.
// It is read-only after construction and safe for concurrent use.
type MatcherImpl struct {
	rules []compiledRule
}

// NewMatcher compiles the rules in table order.
func NewMatcher(rules []Rule) (*MatcherImpl, error) {
	compiled := make([]compiledRule, 0, len(rules))

	for i, rule := range rules {
		cr := compiledRule{Rule: rule}

		if expr := strings.TrimSpace(rule.CodePattern); expr != "" {
			if !strings.HasPrefix(expr, "(?i)") {
				expr = "(?i)" + expr
			}
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("%w: rule %d (%s/%s): %w", model.ErrInvalidRule, i, rule.Category, rule.Subtype, err)
			}
			cr.codeRegex = re
		}

		for _, kw := range rule.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				cr.keywords = append(cr.keywords, kw)
			}
		}

		compiled = append(compiled, cr)
	}

	return &MatcherImpl{rules: compiled}, nil
}

// MatchCode returns the first rule whose code pattern matches the trimmed code.
func (m *MatcherImpl) MatchCode(code string) (Rule, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Rule{}, false
	}

	for _, rule := range m.rules {
		if rule.codeRegex != nil && rule.codeRegex.MatchString(code) {
			return rule.Rule, true
		}
	}
	return Rule{}, false
}

// MatchDescription returns the first rule with a keyword contained in the description.
func (m *MatcherImpl) MatchDescription(description string) (Rule, bool) {
	desc := strings.ToLower(strings.TrimSpace(description))
	if desc == "" {
		return Rule{}, false
	}

	for _, rule := range m.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.Rule, true
			}
		}
	}
	return Rule{}, false
}

// Len returns the number of compiled rules.
func (m *MatcherImpl) Len() int {
	return len(m.rules)
}
