package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"foodprint/internal/output"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatYAML:
		return formatYAML(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatJSON formats the response as JSON
func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatYAML formats the response as YAML
func formatYAML(resp interface{}) (string, error) {
	data, err := yaml.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *ImpactReport:
		return formatImpactHuman(v), nil
	case *ClassesReport:
		return formatClassesHuman(v), nil
	case *DoctorReport:
		return formatDoctorHuman(v), nil
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatImpactHuman(report *ImpactReport) string {
	var b strings.Builder

	for _, r := range report.Recipes {
		b.WriteString(fmt.Sprintf("Recipe %d Total Impact: %s kg CO2e\n",
			r.RecipeID, output.FormatFloat(r.TotalImpact)))
	}

	if skipped := report.RecipeCount - report.MatchedCount; skipped > 0 {
		b.WriteString(fmt.Sprintf("(%d of %d recipes skipped: unmatched ingredients)\n",
			skipped, report.RecipeCount))
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatClassesHuman(report *ClassesReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%d food classes\n\n", report.NodeCount))
	for _, c := range report.Classes {
		b.WriteString(fmt.Sprintf("%4d  %-30s", c.ID, c.Name))
		switch {
		case c.Error != "":
			b.WriteString("  !! " + c.Error)
		case c.EffectiveImpact != nil && c.Inherited:
			b.WriteString(fmt.Sprintf("  %s kg CO2e/kg (inherited)", output.FormatFloat(*c.EffectiveImpact)))
		case c.EffectiveImpact != nil:
			b.WriteString(fmt.Sprintf("  %s kg CO2e/kg", output.FormatFloat(*c.EffectiveImpact)))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatDoctorHuman(report *DoctorReport) string {
	if report.Healthy {
		return fmt.Sprintf("OK: no issues found in %d food classes", report.NodeCount)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d issue(s) found in %d food classes:\n\n", len(report.Findings), report.NodeCount))
	for _, f := range report.Findings {
		b.WriteString(fmt.Sprintf("  [%s] %s: %s", f.Severity, f.Check, f.Message))
		if len(f.ClassIDs) > 0 {
			b.WriteString(fmt.Sprintf(" %v", f.ClassIDs))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
