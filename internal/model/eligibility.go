package model

// Tier names a warranty level.
type Tier string

// Warranty tiers, in decision table order.
const (
	TierStandardLimited   Tier = "StandardLimited"
	TierSystemPlusLimited Tier = "SystemPlusLimited"
	TierSilverPledge      Tier = "SilverPledge"
	TierGoldenPledge      Tier = "GoldenPledge"
	TierWindProven        Tier = "WindProven"
)

// AllTiers returns every tier in decision table order.
func AllTiers() []Tier {
	return []Tier{
		TierStandardLimited,
		TierSystemPlusLimited,
		TierSilverPledge,
		TierGoldenPledge,
		TierWindProven,
	}
}

// EligibilityResult is the outcome of evaluating a purchase against the warranty tiers.
type EligibilityResult struct {
	Coverage                CategoryCoverage `json:"coverage"`
	RuleSetVersion          string           `json:"rule_set_version,omitempty"`
	Items                   []ClassifiedItem `json:"items"`
	QualifyingCategoryCount int              `json:"qualifying_category_count"`
	HasPremiumShingle       bool             `json:"has_premium_shingle"`
	StandardLimited         bool             `json:"standard_limited"`
	SystemPlusLimited       bool             `json:"system_plus_limited"`
	SilverPledge            bool             `json:"silver_pledge"`
	GoldenPledge            bool             `json:"golden_pledge"`
	WindProven              bool             `json:"wind_proven"`
}

// Eligible reports the boolean for a single tier.
func (r EligibilityResult) Eligible(t Tier) bool {
	switch t {
	case TierStandardLimited:
		return r.StandardLimited
	case TierSystemPlusLimited:
		return r.SystemPlusLimited
	case TierSilverPledge:
		return r.SilverPledge
	case TierGoldenPledge:
		return r.GoldenPledge
	case TierWindProven:
		return r.WindProven
	default:
		return false
	}
}

// EligibleTiers lists the tiers the purchase qualifies for, in table order.
func (r EligibilityResult) EligibleTiers() []Tier {
	var out []Tier
	for _, t := range AllTiers() {
		if r.Eligible(t) {
			out = append(out, t)
		}
	}
	return out
}

// UncategorizedItems returns the line items no rule matched.
func (r EligibilityResult) UncategorizedItems() []ClassifiedItem {
	var out []ClassifiedItem
	for _, item := range r.Items {
		if !item.IsCategorized() {
			out = append(out, item)
		}
	}
	return out
}
