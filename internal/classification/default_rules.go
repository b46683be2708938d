package classification

import "github.com/Veraticus/roofline/internal/model"

// DefaultRuleSetVersion identifies the built-in rule table.
const DefaultRuleSetVersion = "2024.1"

// DefaultPremiumSubtypes are the shingle lines that unlock WindProven.
// AS shingles are deliberately left out; override via configuration.
func DefaultPremiumSubtypes() []model.Subtype {
	return []model.Subtype{model.SubtypeHDZ, model.SubtypeUHDZ}
}

// DefaultRules returns the canonical supplier product rule table.
// Order matters: the first matching rule wins.
func DefaultRules() []model.ProductRule {
	return []model.ProductRule{
		// Shingles
		{
			Category:    model.CategoryShingles,
			Subtype:     model.SubtypeHDZ,
			CodePattern: `^02GASTZ3`,
			Keywords:    []string{"timberline hdz"},
		},
		{
			Category:    model.CategoryShingles,
			Subtype:     model.SubtypeUHDZ,
			CodePattern: `^03GATUHZ`,
			Keywords:    []string{"timberline uhdz", "uhdz"},
		},
		{
			Category:    model.CategoryShingles,
			Subtype:     model.SubtypeAS,
			CodePattern: `^02GATAS`,
			Keywords:    []string{"timberline as ii", "timberline as"},
		},

		// Ridge caps
		{
			Category:    model.CategoryRidgeCaps,
			Subtype:     model.SubtypeSealARidge,
			CodePattern: `^04GASR2`,
			Keywords:    []string{"seal-a-ridge", "seal a ridge"},
		},
		{
			Category:    model.CategoryRidgeCaps,
			Subtype:     model.SubtypeTimberTex,
			CodePattern: `^04GATX`,
			Keywords:    []string{"timbertex"},
		},
		{
			Category:    model.CategoryRidgeCaps,
			Subtype:     model.SubtypeRidglass,
			CodePattern: `^04GARG`,
			Keywords:    []string{"ridglass"},
		},

		// Starter strips
		{
			Category:    model.CategoryStarterStrips,
			Subtype:     model.SubtypeProStart,
			CodePattern: `^04GAPST`,
			Keywords:    []string{"pro-start", "prostart"},
		},
		{
			Category:    model.CategoryStarterStrips,
			Subtype:     model.SubtypeWeatherBlocker,
			CodePattern: `^04GAWBL`,
			Keywords:    []string{"weatherblocker"},
		},

		// Ventilation
		{
			Category:    model.CategoryVentilation,
			Subtype:     model.SubtypeCobra,
			CodePattern: `^17GAC`,
			Keywords:    []string{"cobra"},
		},
		{
			Category:    model.CategoryVentilation,
			Subtype:     model.SubtypeMasterFlow,
			CodePattern: `^17GA(SSB|PV|IR)`,
			Keywords:    []string{"master flow", "masterflow"},
		},

		// Leak barrier
		{
			Category:    model.CategoryLeakBarrier,
			Subtype:     model.SubtypeStormGuard,
			CodePattern: `^11GASG`,
			Keywords:    []string{"stormguard"},
		},
		{
			Category:    model.CategoryLeakBarrier,
			Subtype:     model.SubtypeWeatherWatch,
			CodePattern: `^11GAWW`,
			Keywords:    []string{"weatherwatch"},
		},

		// Roof deck protection
		{
			Category:    model.CategoryRoofDeck,
			Subtype:     model.SubtypeDeckArmor,
			CodePattern: `^05GADA`,
			Keywords:    []string{"deck-armor", "deck armor"},
		},
		{
			Category:    model.CategoryRoofDeck,
			Subtype:     model.SubtypeFeltBuster,
			CodePattern: `^05GAFB`,
			Keywords:    []string{"feltbuster"},
		},
		{
			Category:    model.CategoryRoofDeck,
			Subtype:     model.SubtypeTigerPaw,
			CodePattern: `^11GATP`,
			Keywords:    []string{"tiger paw", "tigerpaw"},
		},
	}
}

// DefaultRuleSet returns the built-in rule table with the default premium policy.
func DefaultRuleSet() model.RuleSet {
	return model.RuleSet{
		Version:         DefaultRuleSetVersion,
		Rules:           DefaultRules(),
		PremiumSubtypes: DefaultPremiumSubtypes(),
	}
}
