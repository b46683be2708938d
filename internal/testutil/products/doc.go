// Package products provides test infrastructure for building supplier invoices.
// It offers a fluent API for assembling line items that hit specific categories
// of the roofing taxonomy, plus predefined fixtures for common purchase shapes.
//
// Example usage:
//
//	items := products.NewBuilder(t).
//		WithSubtype(model.SubtypeHDZ).
//		WithCategories(model.CategoryRidgeCaps, model.CategoryStarterStrips).
//		WithUncategorized().
//		Build()
//
//	result := evaluator.Evaluate(items)
package products
