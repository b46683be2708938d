// Package model defines the core data structures for roofline.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a category name is not part of the taxonomy.
var ErrUnknownCategory = errors.New("unknown category")

// Category is one of the six roofing-component classes a product can belong to.
type Category string

// The roofing component taxonomy. The set is closed.
const (
	CategoryShingles      Category = "Shingles"
	CategoryRidgeCaps     Category = "RidgeCaps"
	CategoryStarterStrips Category = "StarterStrips"
	CategoryVentilation   Category = "Ventilation"
	CategoryLeakBarrier   Category = "LeakBarrier"
	CategoryRoofDeck      Category = "RoofDeck"
)

var allCategories = []Category{
	CategoryShingles,
	CategoryRidgeCaps,
	CategoryStarterStrips,
	CategoryVentilation,
	CategoryLeakBarrier,
	CategoryRoofDeck,
}

// AllCategories returns every category in canonical order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	trimmed := strings.TrimSpace(name)
	for _, c := range allCategories {
		if strings.EqualFold(string(c), trimmed) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// IsValid reports whether c is part of the taxonomy.
func (c Category) IsValid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryShingles:
		return "Shingles"
	case CategoryRidgeCaps:
		return "Ridge Caps"
	case CategoryStarterStrips:
		return "Starter Strips"
	case CategoryVentilation:
		return "Ventilation"
	case CategoryLeakBarrier:
		return "Leak Barrier"
	case CategoryRoofDeck:
		return "Roof Deck Protection"
	default:
		return string(c)
	}
}

// Subtype is a product line within a category, e.g. HDZ within Shingles.
type Subtype string

// Known product lines.
const (
	SubtypeHDZ            Subtype = "HDZ"
	SubtypeUHDZ           Subtype = "UHDZ"
	SubtypeAS             Subtype = "AS"
	SubtypeSealARidge     Subtype = "SealARidge"
	SubtypeTimberTex      Subtype = "TimberTex"
	SubtypeRidglass       Subtype = "Ridglass"
	SubtypeProStart       Subtype = "ProStart"
	SubtypeWeatherBlocker Subtype = "WeatherBlocker"
	SubtypeCobra          Subtype = "Cobra"
	SubtypeMasterFlow     Subtype = "MasterFlow"
	SubtypeStormGuard     Subtype = "StormGuard"
	SubtypeWeatherWatch   Subtype = "WeatherWatch"
	SubtypeDeckArmor      Subtype = "DeckArmor"
	SubtypeFeltBuster     Subtype = "FeltBuster"
	SubtypeTigerPaw       Subtype = "TigerPaw"
)

// CategoryCoverage records which categories have at least one matching item.
type CategoryCoverage map[Category]bool

// NewCategoryCoverage returns a coverage map with every category set to false.
func NewCategoryCoverage() CategoryCoverage {
	cov := make(CategoryCoverage, len(allCategories))
	for _, c := range allCategories {
		cov[c] = false
	}
	return cov
}

// Count returns the number of covered categories.
func (c CategoryCoverage) Count() int {
	n := 0
	for _, covered := range c {
		if covered {
			n++
		}
	}
	return n
}

// Covered returns the covered categories in canonical order.
func (c CategoryCoverage) Covered() []Category {
	var out []Category
	for _, cat := range allCategories {
		if c[cat] {
			out = append(out, cat)
		}
	}
	return out
}

// Missing returns the categories not yet covered, in canonical order.
func (c CategoryCoverage) Missing() []Category {
	var out []Category
	for _, cat := range allCategories {
		if !c[cat] {
			out = append(out, cat)
		}
	}
	return out
}
