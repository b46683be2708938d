package products

import (
	"testing"

	"github.com/Veraticus/roofline/internal/model"
)

// Builder provides a fluent interface for constructing test invoices.
type Builder interface {
	// WithSubtype adds one line item of the given product line.
	WithSubtype(subtype model.Subtype) Builder

	// WithCategory adds one line item of the category's first product line.
	WithCategory(category model.Category) Builder

	// WithCategories adds one line item per category.
	WithCategories(categories ...model.Category) Builder

	// WithItem adds an arbitrary line item.
	WithItem(item model.LineItem) Builder

	// WithReturn adds a credit line (negative amount) for the given product line.
	WithReturn(subtype model.Subtype) Builder

	// WithUncategorized adds an item no rule matches.
	WithUncategorized() Builder

	// WithFixture adds every item of a predefined fixture.
	WithFixture(fixture Fixture) Builder

	// Build returns the line items in insertion order.
	Build() []model.LineItem
}

// sample is a representative supplier line for a product line.
type sample struct {
	category    model.Category
	code        string
	description string
	unitPrice   float64
}

var samples = map[model.Subtype]sample{
	model.SubtypeHDZ:            {model.CategoryShingles, "02GASTZ3CW", "GAF Timberline HDZ Charcoal", 42.50},
	model.SubtypeUHDZ:           {model.CategoryShingles, "03GATUHZWB", "GAF Timberline UHDZ Weathered Wood", 58.75},
	model.SubtypeAS:             {model.CategoryShingles, "02GATAS2PW", "GAF Timberline AS II Pewter Gray", 51.00},
	model.SubtypeSealARidge:     {model.CategoryRidgeCaps, "04GASR2CW", "GAF Seal-A-Ridge Charcoal", 68.00},
	model.SubtypeTimberTex:      {model.CategoryRidgeCaps, "04GATXCW", "GAF TimberTex Premium Ridge Cap", 74.00},
	model.SubtypeRidglass:       {model.CategoryRidgeCaps, "04GARGCW", "GAF Ridglass Ridge Cap", 81.00},
	model.SubtypeProStart:       {model.CategoryStarterStrips, "04GAPSTR", "GAF Pro-Start Starter Strip", 49.00},
	model.SubtypeWeatherBlocker: {model.CategoryStarterStrips, "04GAWBLK", "GAF WeatherBlocker Eave Starter", 47.00},
	model.SubtypeCobra:          {model.CategoryVentilation, "17GACRV12", "GAF Cobra Rigid Vent 3", 24.00},
	model.SubtypeMasterFlow:     {model.CategoryVentilation, "17GASSB8", "Master Flow Static Vent", 19.00},
	model.SubtypeStormGuard:     {model.CategoryLeakBarrier, "11GASG2SQ", "GAF StormGuard Leak Barrier", 128.00},
	model.SubtypeWeatherWatch:   {model.CategoryLeakBarrier, "11GAWW2SQ", "GAF WeatherWatch Leak Barrier", 96.00},
	model.SubtypeDeckArmor:      {model.CategoryRoofDeck, "05GADA10SQ", "GAF Deck-Armor Roof Deck Protection", 142.00},
	model.SubtypeFeltBuster:     {model.CategoryRoofDeck, "05GAFB10SQ", "GAF FeltBuster Synthetic Underlayment", 88.00},
	model.SubtypeTigerPaw:       {model.CategoryRoofDeck, "11GATP10SQ", "GAF Tiger Paw Roof Deck Protection", 118.00},
}

// firstSubtype picks the product line used when a test only names a category.
var firstSubtype = map[model.Category]model.Subtype{
	model.CategoryShingles:      model.SubtypeHDZ,
	model.CategoryRidgeCaps:     model.SubtypeSealARidge,
	model.CategoryStarterStrips: model.SubtypeProStart,
	model.CategoryVentilation:   model.SubtypeCobra,
	model.CategoryLeakBarrier:   model.SubtypeStormGuard,
	model.CategoryRoofDeck:      model.SubtypeDeckArmor,
}

// Item returns a representative line item for the product line.
// Unknown subtypes yield an uncategorized item.
func Item(subtype model.Subtype) model.LineItem {
	s, ok := samples[subtype]
	if !ok {
		return Uncategorized()
	}
	return model.LineItem{
		ItemCode:    s.code,
		Description: s.description,
		Quantity:    1,
		UnitPrice:   s.unitPrice,
		Amount:      s.unitPrice,
	}
}

// CategoryOf returns the category the sample for subtype belongs to.
func CategoryOf(subtype model.Subtype) model.Category {
	return samples[subtype].category
}

// Uncategorized returns a line item that no product rule matches.
func Uncategorized() model.LineItem {
	return model.LineItem{
		ItemCode:    "NAILCOIL125",
		Description: "Coil roofing nails 1-1/4in",
		Quantity:    2,
		UnitPrice:   39.95,
		Amount:      79.90,
	}
}

// invoiceBuilder implements the Builder interface.
type invoiceBuilder struct {
	t     *testing.T
	items []model.LineItem
}

// NewBuilder creates a new invoice builder for the given test.
func NewBuilder(t *testing.T) Builder {
	t.Helper()
	return &invoiceBuilder{t: t}
}

func (b *invoiceBuilder) WithSubtype(subtype model.Subtype) Builder {
	b.t.Helper()
	if _, ok := samples[subtype]; !ok {
		b.t.Fatalf("no sample line item for subtype %q", subtype)
	}
	b.items = append(b.items, Item(subtype))
	return b
}

func (b *invoiceBuilder) WithCategory(category model.Category) Builder {
	b.t.Helper()
	subtype, ok := firstSubtype[category]
	if !ok {
		b.t.Fatalf("no sample line item for category %q", category)
	}
	return b.WithSubtype(subtype)
}

func (b *invoiceBuilder) WithCategories(categories ...model.Category) Builder {
	for _, c := range categories {
		b.WithCategory(c)
	}
	return b
}

func (b *invoiceBuilder) WithItem(item model.LineItem) Builder {
	b.items = append(b.items, item)
	return b
}

func (b *invoiceBuilder) WithReturn(subtype model.Subtype) Builder {
	b.t.Helper()
	if _, ok := samples[subtype]; !ok {
		b.t.Fatalf("no sample line item for subtype %q", subtype)
	}
	item := Item(subtype)
	item.UnitPrice = -item.UnitPrice
	item.Amount = item.UnitPrice
	b.items = append(b.items, item)
	return b
}

func (b *invoiceBuilder) WithUncategorized() Builder {
	b.items = append(b.items, Uncategorized())
	return b
}

func (b *invoiceBuilder) WithFixture(fixture Fixture) Builder {
	b.items = append(b.items, fixture.Items()...)
	return b
}

func (b *invoiceBuilder) Build() []model.LineItem {
	out := make([]model.LineItem, len(b.items))
	copy(out, b.items)
	return out
}
