// Package warranty decides which warranty tiers a roofing purchase qualifies for.
package warranty

import "github.com/Veraticus/roofline/internal/model"

// Credential is the contractor credential a tier is marketed with.
// It is informational only; eligibility never depends on it.
type Credential string

// Contractor credentials.
const (
	CredentialNone        Credential = "none"
	CredentialCertified   Credential = "certified"
	CredentialMasterElite Credential = "master_elite"
)

// Requirement is one row of the warranty decision table.
type Requirement struct {
	Tier            model.Tier `json:"tier"`
	DisplayName     string     `json:"display_name"`
	Credential      Credential `json:"credential"`
	MinCategories   int        `json:"min_categories"`
	RequiresPremium bool       `json:"requires_premium_shingle"`
}

// Satisfied reports whether a purchase with the given coverage count and premium flag meets the row.
func (r Requirement) Satisfied(categoryCount int, hasPremium bool) bool {
	if r.RequiresPremium && !hasPremium {
		return false
	}
	return categoryCount >= r.MinCategories
}

var requirements = []Requirement{
	{
		Tier:          model.TierStandardLimited,
		DisplayName:   "Standard Limited Warranty",
		Credential:    CredentialNone,
		MinCategories: 3,
	},
	{
		// Same count rule as StandardLimited; the difference is the contractor credential.
		Tier:          model.TierSystemPlusLimited,
		DisplayName:   "System Plus Limited Warranty",
		Credential:    CredentialCertified,
		MinCategories: 3,
	},
	{
		Tier:          model.TierSilverPledge,
		DisplayName:   "Silver Pledge Limited Warranty",
		Credential:    CredentialMasterElite,
		MinCategories: 4,
	},
	{
		Tier:          model.TierGoldenPledge,
		DisplayName:   "Golden Pledge Limited Warranty",
		Credential:    CredentialMasterElite,
		MinCategories: 5,
	},
	{
		Tier:            model.TierWindProven,
		DisplayName:     "WindProven Limited Wind Warranty",
		Credential:      CredentialNone,
		MinCategories:   4,
		RequiresPremium: true,
	},
}

// Requirements returns the decision table in tier order.
func Requirements() []Requirement {
	out := make([]Requirement, len(requirements))
	copy(out, requirements)
	return out
}

// RequirementFor returns the decision table row for a tier.
func RequirementFor(t model.Tier) (Requirement, bool) {
	for _, r := range requirements {
		if r.Tier == t {
			return r, true
		}
	}
	return Requirement{}, false
}
