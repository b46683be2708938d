package products

import "github.com/Veraticus/roofline/internal/model"

// Fixture represents a predefined purchase for testing.
type Fixture interface {
	// Name returns the fixture's descriptive name.
	Name() string

	// Items returns the fixture's line items.
	Items() []model.LineItem

	// Categories returns the distinct categories the fixture covers.
	Categories() []model.Category
}

// fixture implements the Fixture interface.
type fixture struct {
	name     string
	subtypes []model.Subtype
}

func (f *fixture) Name() string { return f.name }

func (f *fixture) Items() []model.LineItem {
	items := make([]model.LineItem, 0, len(f.subtypes))
	for _, s := range f.subtypes {
		items = append(items, Item(s))
	}
	return items
}

func (f *fixture) Categories() []model.Category {
	seen := make(map[model.Category]bool)
	var out []model.Category
	for _, s := range f.subtypes {
		c := CategoryOf(s)
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Predefined purchases.
var (
	// FixtureShinglesOnly is a bare HDZ shingle order.
	FixtureShinglesOnly = &fixture{
		name:     "ShinglesOnly",
		subtypes: []model.Subtype{model.SubtypeHDZ},
	}

	// FixtureBasicSystem covers three categories with premium shingles.
	FixtureBasicSystem = &fixture{
		name: "BasicSystem",
		subtypes: []model.Subtype{
			model.SubtypeHDZ,
			model.SubtypeSealARidge,
			model.SubtypeProStart,
		},
	}

	// FixtureWindProven covers four categories with premium shingles.
	FixtureWindProven = &fixture{
		name: "WindProven",
		subtypes: []model.Subtype{
			model.SubtypeHDZ,
			model.SubtypeTimberTex,
			model.SubtypeWeatherBlocker,
			model.SubtypeCobra,
		},
	}

	// FixtureFullSystemStandardShingle covers all six categories with AS shingles.
	FixtureFullSystemStandardShingle = &fixture{
		name: "FullSystemStandardShingle",
		subtypes: []model.Subtype{
			model.SubtypeAS,
			model.SubtypeSealARidge,
			model.SubtypeProStart,
			model.SubtypeMasterFlow,
			model.SubtypeWeatherWatch,
			model.SubtypeFeltBuster,
		},
	}

	// FixtureFullSystem covers all six categories with UHDZ shingles and duplicates.
	FixtureFullSystem = &fixture{
		name: "FullSystem",
		subtypes: []model.Subtype{
			model.SubtypeUHDZ,
			model.SubtypeHDZ,
			model.SubtypeTimberTex,
			model.SubtypeSealARidge,
			model.SubtypeProStart,
			model.SubtypeCobra,
			model.SubtypeStormGuard,
			model.SubtypeDeckArmor,
			model.SubtypeTigerPaw,
		},
	}
)

// AllFixtures returns every predefined fixture.
func AllFixtures() []Fixture {
	return []Fixture{
		FixtureShinglesOnly,
		FixtureBasicSystem,
		FixtureWindProven,
		FixtureFullSystemStandardShingle,
		FixtureFullSystem,
	}
}
