package warranty

import (
	"github.com/Veraticus/roofline/internal/classification"
	"github.com/Veraticus/roofline/internal/model"
)

// Evaluator applies the warranty decision table to classified purchases.
// Like the Classifier it wraps, it is stateless and safe for concurrent use.
type Evaluator struct {
	classifier *classification.Classifier
}

// NewEvaluator creates an evaluator over the given classifier.
// A nil classifier falls back to the built-in rule table.
func NewEvaluator(classifier *classification.Classifier) *Evaluator {
	if classifier == nil {
		classifier = classification.NewDefaultClassifier()
	}
	return &Evaluator{classifier: classifier}
}

// NewDefaultEvaluator creates an evaluator over the built-in rule table.
func NewDefaultEvaluator() *Evaluator {
	return NewEvaluator(classification.NewDefaultClassifier())
}

// Classifier returns the classifier the evaluator uses.
func (e *Evaluator) Classifier() *classification.Classifier {
	return e.classifier
}

// Evaluate classifies every item and decides each tier independently.
// Coverage is presence based: quantity and the sign of the amount do not matter.
func (e *Evaluator) Evaluate(items []model.LineItem) model.EligibilityResult {
	classified := e.classifier.ClassifyAll(items)

	coverage := model.NewCategoryCoverage()
	hasPremium := false
	for _, item := range classified {
		if !item.IsCategorized() {
			continue
		}
		coverage[item.Category] = true
		if e.classifier.IsPremium(item) {
			hasPremium = true
		}
	}

	count := coverage.Count()
	result := model.EligibilityResult{
		Coverage:                coverage,
		RuleSetVersion:          e.classifier.RuleSet().Version,
		Items:                   classified,
		QualifyingCategoryCount: count,
		HasPremiumShingle:       hasPremium,
	}

	for _, req := range requirements {
		ok := req.Satisfied(count, hasPremium)
		switch req.Tier {
		case model.TierStandardLimited:
			result.StandardLimited = ok
		case model.TierSystemPlusLimited:
			result.SystemPlusLimited = ok
		case model.TierSilverPledge:
			result.SilverPledge = ok
		case model.TierGoldenPledge:
			result.GoldenPledge = ok
		case model.TierWindProven:
			result.WindProven = ok
		}
	}

	return result
}
