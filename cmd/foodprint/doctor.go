package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"foodprint/internal/dataset"
	"foodprint/internal/errors"
	"foodprint/internal/taxonomy"
)

var (
	doctorFoodClassesFile string
	doctorFormat          string
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose classification dataset issues",
	Long: `Check the food classification dataset for structural problems:

  - parent ids that do not exist in the dataset
  - cycles in the parent chain
  - classes whose resolution chain ends without an impact value
  - distinct classes whose names normalize identically (only one of
    them is reachable when matching ingredients)

Exits nonzero if any error-severity finding is present.

Examples:
  foodprint doctor
  foodprint doctor --food-classes-file=data/food_classes.csv --format=json`,
	Run: runDoctor,
}

func init() {
	doctorCmd.Flags().StringVar(&doctorFoodClassesFile, "food-classes-file", "",
		"Path to the food classes CSV file (default from config: food_classes.csv)")
	doctorCmd.Flags().StringVar(&doctorFormat, "format", "human",
		"Output format (json, yaml, human)")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) {
	logger := newLogger(nil)
	cfg := loadConfigOrDefault(logger)

	classesFile := doctorFoodClassesFile
	if classesFile == "" {
		classesFile = cfg.FoodClassesFile
	}

	rows, err := dataset.ReadFoodClasses(classesFile)
	if err != nil {
		fail("loading food classes", err)
	}
	byID, err := taxonomy.Load(rows)
	if err != nil {
		fail("loading food classes", err)
	}

	report := &DoctorReport{NodeCount: len(byID), Findings: []DoctorFinding{}}

	cyclic := false
	if err := taxonomy.ResolveParents(byID); err != nil {
		cyclic = true
		report.Findings = append(report.Findings, DoctorFinding{
			Check:    "cycle",
			Severity: "error",
			Message:  err.Error(),
			ClassIDs: cyclePath(err),
		})
	}

	report.Findings = append(report.Findings, danglingParentFindings(byID)...)

	// Impact evaluation recurses through parent links, so skip it when
	// the graph is cyclic.
	if !cyclic {
		report.Findings = append(report.Findings, missingImpactFindings(byID)...)
	}

	for _, group := range taxonomy.Duplicates(byID) {
		ids := make([]int, len(group))
		for i, fc := range group {
			ids[i] = fc.ID
		}
		report.Findings = append(report.Findings, DoctorFinding{
			Check:    "duplicate-name",
			Severity: "warning",
			Message:  fmt.Sprintf("multiple food classes normalize to %q; only the last one is matchable", group[0].Name),
			ClassIDs: ids,
		})
	}

	report.Healthy = len(report.Findings) == 0

	out, err := FormatResponse(report, OutputFormat(doctorFormat))
	if err != nil {
		fail("formatting output", err)
	}
	fmt.Println(out)

	for _, f := range report.Findings {
		if f.Severity == "error" {
			os.Exit(1)
		}
	}
}

// cyclePath extracts the cycle node ids from a CYCLE_DETECTED error
func cyclePath(err error) []int {
	var fe *errors.Error
	if !stderrors.As(err, &fe) {
		return nil
	}
	details, ok := fe.Details.(map[string]interface{})
	if !ok {
		return nil
	}
	path, ok := details["path"].([]int)
	if !ok {
		return nil
	}
	return path
}

func danglingParentFindings(byID map[int]*taxonomy.FoodClass) []DoctorFinding {
	// Group children by the missing parent id
	children := make(map[int][]int)
	for _, fc := range byID {
		if parentID, ok := fc.Parent.RawID(); ok {
			children[parentID] = append(children[parentID], fc.ID)
		}
	}

	missing := make([]int, 0, len(children))
	for id := range children {
		missing = append(missing, id)
	}
	sort.Ints(missing)

	findings := make([]DoctorFinding, 0, len(missing))
	for _, parentID := range missing {
		ids := children[parentID]
		sort.Ints(ids)
		findings = append(findings, DoctorFinding{
			Check:    "dangling-parent",
			Severity: "error",
			Message:  fmt.Sprintf("parent id %d is not in the dataset", parentID),
			ClassIDs: ids,
		})
	}
	return findings
}

func missingImpactFindings(byID map[int]*taxonomy.FoodClass) []DoctorFinding {
	var affected []int
	for _, fc := range byID {
		if _, err := fc.EffectiveImpact(); errors.CodeOf(err) == errors.MissingImpact {
			affected = append(affected, fc.ID)
		}
	}
	if len(affected) == 0 {
		return nil
	}
	sort.Ints(affected)

	return []DoctorFinding{{
		Check:    "missing-impact",
		Severity: "error",
		Message:  "resolution chain ends without an impact value",
		ClassIDs: affected,
	}}
}
