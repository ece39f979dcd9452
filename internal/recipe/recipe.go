// Package recipe computes weighted impact totals for recipes against a
// resolved classification lookup.
package recipe

// Ingredient is a single recipe line: a free-text name and a weight in
// kilograms. Immutable once read.
type Ingredient struct {
	Name     string  // Raw ingredient name, matched via normalization
	WeightKg float64 // Nonnegative weight in kilograms
}

// Recipe is an ordered sequence of ingredient lines. Ingredient order is
// row order in the source dataset; impact accumulation follows it.
type Recipe struct {
	ID          int
	Name        string
	Ingredients []Ingredient
}
