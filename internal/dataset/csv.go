// Package dataset reads the tabular input files and hands the core raw
// row records. Column access is header-driven, not positional, so column
// order in the source files does not matter.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"foodprint/internal/errors"
	"foodprint/internal/recipe"
	"foodprint/internal/taxonomy"
)

// Required columns in the classification source
const (
	colClassID  = "ID"
	colName     = "Name"
	colImpact   = "Impact / kg"
	colParentID = "Parent ID"
)

// Required columns in the recipe source
const (
	colRecipeID   = "Recipe ID"
	colRecipeName = "Recipe Name"
	colIngredient = "Ingredient Name"
	colWeight     = "Ingredient Weight / kg"
)

// columnIndex maps required column names to their positions in the
// header row. Fails if any required column is missing.
func columnIndex(header []string, required ...string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.TrimSpace(name)] = i
	}

	index := make(map[string]int, len(required))
	for _, name := range required {
		pos, ok := positions[name]
		if !ok {
			return nil, errors.New(errors.ParseError,
				fmt.Sprintf("missing required column %q", name), nil)
		}
		index[name] = pos
	}
	return index, nil
}

// ReadFoodClasses reads the classification source into raw rows for
// taxonomy.Load. Field values are passed through unparsed; numeric
// validation is the tree's responsibility.
func ReadFoodClasses(path string) ([]taxonomy.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewDatasetMissing(path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, errors.New(errors.ParseError,
			fmt.Sprintf("cannot read header row of %q", path), err)
	}

	index, err := columnIndex(header, colClassID, colName, colImpact, colParentID)
	if err != nil {
		return nil, err
	}

	var rows []taxonomy.Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.New(errors.ParseError,
				fmt.Sprintf("malformed row in %q", path), err)
		}

		rows = append(rows, taxonomy.Row{
			ID:       record[index[colClassID]],
			Name:     record[index[colName]],
			Impact:   record[index[colImpact]],
			ParentID: record[index[colParentID]],
		})
	}

	return rows, nil
}

// ReadRecipes reads the recipe source into recipes keyed by id. Rows
// sharing a Recipe ID accumulate into one recipe's ingredient sequence
// in row order. Malformed numerics fail with PARSE_ERROR.
func ReadRecipes(path string) (map[int]*recipe.Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewDatasetMissing(path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, errors.New(errors.ParseError,
			fmt.Sprintf("cannot read header row of %q", path), err)
	}

	index, err := columnIndex(header, colRecipeID, colRecipeName, colIngredient, colWeight)
	if err != nil {
		return nil, err
	}

	recipes := make(map[int]*recipe.Recipe)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.New(errors.ParseError,
				fmt.Sprintf("malformed row in %q", path), err)
		}

		rawID := record[index[colRecipeID]]
		id, err := strconv.Atoi(strings.TrimSpace(rawID))
		if err != nil {
			return nil, errors.NewParseError(colRecipeID, rawID, err)
		}

		rawWeight := record[index[colWeight]]
		weight, err := strconv.ParseFloat(strings.TrimSpace(rawWeight), 64)
		if err != nil {
			return nil, errors.NewParseError(colWeight, rawWeight, err)
		}
		if weight < 0 {
			return nil, errors.NewParseError(colWeight, rawWeight, nil)
		}

		if _, ok := recipes[id]; !ok {
			recipes[id] = &recipe.Recipe{
				ID:   id,
				Name: record[index[colRecipeName]],
			}
		}
		recipes[id].Ingredients = append(recipes[id].Ingredients, recipe.Ingredient{
			Name:     record[index[colIngredient]],
			WeightKg: weight,
		})
	}

	return recipes, nil
}
