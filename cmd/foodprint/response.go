package main

import (
	"time"

	"github.com/google/uuid"

	"foodprint/internal/output"
	"foodprint/internal/recipe"
	"foodprint/internal/taxonomy"
	"foodprint/internal/version"
)

// RecipeImpact is one computed recipe total in an ImpactReport
type RecipeImpact struct {
	RecipeID    int     `json:"recipeId" yaml:"recipeId"`
	Name        string  `json:"name" yaml:"name"`
	TotalImpact float64 `json:"totalImpactKgCO2e" yaml:"totalImpactKgCO2e"`
}

// ImpactReport contains recipe impact totals for CLI output. Recipes
// with unmatched ingredients are omitted; RecipeCount still reflects the
// full input so consumers can see how many were dropped.
type ImpactReport struct {
	RunID        string         `json:"runId" yaml:"runId"`
	GeneratedAt  string         `json:"generatedAt" yaml:"generatedAt"`
	Version      string         `json:"version" yaml:"version"`
	RecipeCount  int            `json:"recipeCount" yaml:"recipeCount"`
	MatchedCount int            `json:"matchedCount" yaml:"matchedCount"`
	Recipes      []RecipeImpact `json:"recipes" yaml:"recipes"`
}

// newImpactReport builds an ImpactReport from batch calculation results,
// ordered by recipe id.
func newImpactReport(recipes map[int]*recipe.Recipe, totals map[int]float64) *ImpactReport {
	report := &ImpactReport{
		RunID:        uuid.NewString(),
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		Version:      version.Version,
		RecipeCount:  len(recipes),
		MatchedCount: len(totals),
		Recipes:      make([]RecipeImpact, 0, len(totals)),
	}

	for _, id := range output.SortedIDs(totals) {
		name := ""
		if r, ok := recipes[id]; ok {
			name = r.Name
		}
		report.Recipes = append(report.Recipes, RecipeImpact{
			RecipeID:    id,
			Name:        name,
			TotalImpact: output.RoundFloat(totals[id]),
		})
	}

	return report
}

// ClassSummary describes one taxonomy node for CLI output
type ClassSummary struct {
	ID              int      `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	ImpactPerKg     *float64 `json:"impactPerKg,omitempty" yaml:"impactPerKg,omitempty"`
	ParentID        *int     `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	EffectiveImpact *float64 `json:"effectiveImpactKgCO2e,omitempty" yaml:"effectiveImpactKgCO2e,omitempty"`
	Inherited       bool     `json:"inherited" yaml:"inherited"`
	Error           string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// ClassesReport lists taxonomy nodes with their effective impacts
type ClassesReport struct {
	NodeCount int            `json:"nodeCount" yaml:"nodeCount"`
	Classes   []ClassSummary `json:"classes" yaml:"classes"`
}

// newClassSummary captures a node's effective impact, recording the
// resolution error instead of aborting so the listing stays usable on
// partially broken datasets.
func newClassSummary(fc *taxonomy.FoodClass) ClassSummary {
	summary := ClassSummary{
		ID:          fc.ID,
		Name:        fc.Name,
		ImpactPerKg: fc.ImpactPerKg,
	}

	if parent, ok := fc.Parent.Node(); ok {
		id := parent.ID
		summary.ParentID = &id
	} else if rawID, ok := fc.Parent.RawID(); ok {
		id := rawID
		summary.ParentID = &id
	}

	impact, err := fc.EffectiveImpact()
	if err != nil {
		summary.Error = err.Error()
		return summary
	}

	rounded := output.RoundFloat(impact)
	summary.EffectiveImpact = &rounded
	summary.Inherited = fc.ImpactPerKg == nil
	return summary
}

// DoctorFinding is a single dataset diagnostic
type DoctorFinding struct {
	Check    string `json:"check" yaml:"check"`
	Severity string `json:"severity" yaml:"severity"`
	Message  string `json:"message" yaml:"message"`
	ClassIDs []int  `json:"classIds,omitempty" yaml:"classIds,omitempty"`
}

// DoctorReport contains dataset diagnostics for CLI output
type DoctorReport struct {
	Healthy   bool            `json:"healthy" yaml:"healthy"`
	NodeCount int             `json:"nodeCount" yaml:"nodeCount"`
	Findings  []DoctorFinding `json:"findings" yaml:"findings"`
}
