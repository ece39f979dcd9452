package main

import (
	"time"

	"github.com/spf13/cobra"

	"foodprint/internal/dataset"
	"foodprint/internal/export"
	"foodprint/internal/recipe"
)

var (
	calcFoodClassesFile string
	calcRecipesFile     string
	calcAliasesFile     string
	calcFormat          string
	calcOutput          string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate recipe impact totals",
	Long: `Calculate the total carbon impact of every recipe in the recipe source.

Each ingredient is matched against the food classification taxonomy by
normalized name. A recipe gets a total only if every one of its
ingredients resolves; recipes with any unmatched ingredient are omitted
from the output.

Examples:
  foodprint calc
  foodprint calc --food-classes-file=data/food_classes.csv --recipes-file=data/recipes.csv
  foodprint calc --aliases-file=ALIASES.toml
  foodprint calc --format=json --output=report.json.gz`,
	Run: runCalc,
}

func init() {
	calcCmd.Flags().StringVar(&calcFoodClassesFile, "food-classes-file", "",
		"Path to the food classes CSV file (default from config: food_classes.csv)")
	calcCmd.Flags().StringVar(&calcRecipesFile, "recipes-file", "",
		"Path to the recipes CSV file (default from config: recipes.csv)")
	calcCmd.Flags().StringVar(&calcAliasesFile, "aliases-file", "",
		"Path to an optional ALIASES.toml with ingredient name aliases")
	calcCmd.Flags().StringVar(&calcFormat, "format", "",
		"Output format (json, yaml, human)")
	calcCmd.Flags().StringVar(&calcOutput, "output", "",
		"Write the report to a file instead of stdout (.gz and .zst compress)")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) {
	start := time.Now()
	logger := newLogger(nil)
	cfg := loadConfigOrDefault(logger)
	logger = newLogger(cfg)

	classesFile := calcFoodClassesFile
	if classesFile == "" {
		classesFile = cfg.FoodClassesFile
	}
	recipesFile := calcRecipesFile
	if recipesFile == "" {
		recipesFile = cfg.RecipesFile
	}
	aliasesFile := calcAliasesFile
	if aliasesFile == "" {
		aliasesFile = cfg.AliasesFile
	}
	format := calcFormat
	if format == "" {
		format = cfg.Output.Format
	}

	_, lookup, err := loadTaxonomy(classesFile)
	if err != nil {
		fail("loading food classes", err)
	}

	recipes, err := dataset.ReadRecipes(recipesFile)
	if err != nil {
		fail("loading recipes", err)
	}

	aliases := map[string]string{}
	if aliasesFile != "" {
		aliases, err = dataset.LoadAliases(aliasesFile)
		if err != nil {
			fail("loading aliases", err)
		}
	}

	calc := recipe.NewCalculator(lookup, aliases, logger)
	totals, err := calc.CalculateAll(recipes)
	if err != nil {
		fail("calculating recipe impacts", err)
	}

	report := newImpactReport(recipes, totals)
	out, err := FormatResponse(report, OutputFormat(format))
	if err != nil {
		fail("formatting output", err)
	}

	if err := export.Write(calcOutput, []byte(out)); err != nil {
		fail("writing report", err)
	}

	logger.Debug("Impact calculation completed", map[string]interface{}{
		"recipes":  report.RecipeCount,
		"matched":  report.MatchedCount,
		"duration": time.Since(start).Milliseconds(),
	})
}
