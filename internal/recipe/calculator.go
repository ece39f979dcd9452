package recipe

import (
	"foodprint/internal/logging"
	"foodprint/internal/normalize"
	"foodprint/internal/taxonomy"
)

// Calculator resolves recipe ingredients against a classification lookup
// and aggregates weighted impact totals.
type Calculator struct {
	lookup  taxonomy.Lookup
	aliases map[string]string // normalized alias -> normalized canonical name
	logger  *logging.Logger
}

// NewCalculator creates a Calculator. aliases may be nil; logger may be
// nil, in which case diagnostics are dropped.
func NewCalculator(lookup taxonomy.Lookup, aliases map[string]string, logger *logging.Logger) *Calculator {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{
			Format: logging.HumanFormat,
			Level:  logging.ErrorLevel,
		})
	}
	return &Calculator{
		lookup:  lookup,
		aliases: aliases,
		logger:  logger,
	}
}

// resolve matches a raw ingredient name to a food class, following one
// level of alias indirection.
func (c *Calculator) resolve(name string) (*taxonomy.FoodClass, bool) {
	key := normalize.Normalize(name)
	if canonical, ok := c.aliases[key]; ok {
		key = canonical
	}
	fc, ok := c.lookup[key]
	return fc, ok
}

// TotalImpact computes the recipe's total impact in kg CO2e. The
// contract is all-or-nothing: if any ingredient has no classification
// match the recipe is unmatched (second return false) and no partial
// total is produced. Impact resolution failures (dangling parent,
// impactless chain) abort with an error.
func (c *Calculator) TotalImpact(r *Recipe) (float64, bool, error) {
	total := 0.0

	for _, ing := range r.Ingredients {
		fc, ok := c.resolve(ing.Name)
		if !ok {
			c.logger.Debug("No classification match for ingredient", map[string]interface{}{
				"recipeId":   r.ID,
				"recipe":     r.Name,
				"ingredient": ing.Name,
			})
			return 0, false, nil
		}

		impact, err := fc.EffectiveImpact()
		if err != nil {
			return 0, false, err
		}
		total += impact * ing.WeightKg
	}

	return total, true, nil
}

// CalculateAll aggregates every recipe and returns totals keyed by
// recipe id. Recipes with any unmatched ingredient are omitted from the
// result; downstream consumers see impact numbers only for
// fully-resolvable recipes. Impact resolution errors abort the run.
func (c *Calculator) CalculateAll(recipes map[int]*Recipe) (map[int]float64, error) {
	totals := make(map[int]float64, len(recipes))

	for id, r := range recipes {
		total, matched, err := c.TotalImpact(r)
		if err != nil {
			return nil, err
		}
		if !matched {
			c.logger.Debug("Skipping recipe with unmatched ingredient", map[string]interface{}{
				"recipeId": id,
				"recipe":   r.Name,
			})
			continue
		}
		totals[id] = total
	}

	return totals, nil
}
