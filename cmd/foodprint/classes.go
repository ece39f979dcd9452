package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"foodprint/internal/output"
)

var (
	classesFoodClassesFile string
	classesFormat          string
	classesID              int
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Inspect the food classification taxonomy",
	Long: `List food classes with their effective impact values.

Classes without a direct impact value show the value inherited from
their nearest ancestor that has one. With --id, shows a single class
followed by its full parent chain.

Examples:
  foodprint classes
  foodprint classes --id=12
  foodprint classes --format=json`,
	Run: runClasses,
}

func init() {
	classesCmd.Flags().StringVar(&classesFoodClassesFile, "food-classes-file", "",
		"Path to the food classes CSV file (default from config: food_classes.csv)")
	classesCmd.Flags().StringVar(&classesFormat, "format", "human",
		"Output format (json, yaml, human)")
	classesCmd.Flags().IntVar(&classesID, "id", 0,
		"Show a single class and its parent chain")
	rootCmd.AddCommand(classesCmd)
}

func runClasses(cmd *cobra.Command, args []string) {
	logger := newLogger(nil)
	cfg := loadConfigOrDefault(logger)

	classesFile := classesFoodClassesFile
	if classesFile == "" {
		classesFile = cfg.FoodClassesFile
	}

	byID, _, err := loadTaxonomy(classesFile)
	if err != nil {
		fail("loading food classes", err)
	}

	report := &ClassesReport{NodeCount: len(byID)}

	if classesID != 0 {
		fc, ok := byID[classesID]
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: food class %d not found\n", classesID)
			os.Exit(1)
		}
		// Node first, then ancestors in chain order
		for node := fc; node != nil; {
			report.Classes = append(report.Classes, newClassSummary(node))
			parent, ok := node.Parent.Node()
			if !ok {
				break
			}
			node = parent
		}
	} else {
		for _, id := range output.SortedIDs(byID) {
			report.Classes = append(report.Classes, newClassSummary(byID[id]))
		}
	}

	out, err := FormatResponse(report, OutputFormat(classesFormat))
	if err != nil {
		fail("formatting output", err)
	}
	fmt.Println(out)
}
