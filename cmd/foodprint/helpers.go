package main

import (
	"fmt"
	"os"

	"foodprint/internal/config"
	"foodprint/internal/dataset"
	"foodprint/internal/logging"
	"foodprint/internal/taxonomy"
)

// loadConfigOrDefault loads .foodprint/config.json from the working
// directory, falling back to defaults when it is absent or unreadable.
func loadConfigOrDefault(logger *logging.Logger) *config.Config {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Warn("Failed to load config, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		return config.DefaultConfig()
	}
	return cfg
}

// loadTaxonomy reads the classification source and runs the full
// resolution pipeline: load rows, resolve parent links, build the
// normalized-name lookup.
func loadTaxonomy(path string) (map[int]*taxonomy.FoodClass, taxonomy.Lookup, error) {
	rows, err := dataset.ReadFoodClasses(path)
	if err != nil {
		return nil, nil, err
	}

	byID, err := taxonomy.Load(rows)
	if err != nil {
		return nil, nil, err
	}

	if err := taxonomy.ResolveParents(byID); err != nil {
		return nil, nil, err
	}

	return byID, taxonomy.BuildLookup(byID), nil
}

// fail prints an error to stderr and exits nonzero
func fail(action string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", action, err)
	os.Exit(1)
}
