package dataset

import (
	"path/filepath"
	"testing"

	"foodprint/internal/errors"
)

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

func TestReadFoodClasses(t *testing.T) {
	rows, err := ReadFoodClasses(fixture("food_classes.csv"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].ID != "1" || rows[0].Name != "Vegetable" || rows[0].Impact != "0.4" || rows[0].ParentID != "" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Impact != "" || rows[1].ParentID != "1" {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestReadFoodClassesColumnOrderIndependent(t *testing.T) {
	rows, err := ReadFoodClasses(fixture("food_classes_reordered.csv"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].ID != "1" || rows[0].Name != "Vegetable" || rows[0].Impact != "0.4" {
		t.Errorf("header-driven mapping failed: %+v", rows[0])
	}
}

func TestReadFoodClassesMissingColumn(t *testing.T) {
	_, err := ReadFoodClasses(fixture("food_classes_missing_column.csv"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if code := errors.CodeOf(err); code != errors.ParseError {
		t.Errorf("expected code %s, got %s", errors.ParseError, code)
	}
}

func TestReadFoodClassesMissingFile(t *testing.T) {
	_, err := ReadFoodClasses(fixture("no_such_file.csv"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if code := errors.CodeOf(err); code != errors.DatasetMissing {
		t.Errorf("expected code %s, got %s", errors.DatasetMissing, code)
	}
}

func TestReadRecipes(t *testing.T) {
	recipes, err := ReadRecipes(fixture("recipes.csv"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recipes) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(recipes))
	}

	soup := recipes[10]
	if soup == nil || soup.Name != "Soup" {
		t.Fatalf("unexpected recipe 10: %+v", soup)
	}

	// Rows sharing a Recipe ID accumulate in row order
	if len(soup.Ingredients) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(soup.Ingredients))
	}
	if soup.Ingredients[0].Name != "Onion" || soup.Ingredients[0].WeightKg != 2.0 {
		t.Errorf("unexpected first ingredient: %+v", soup.Ingredients[0])
	}
	if soup.Ingredients[1].Name != "Beef" || soup.Ingredients[1].WeightKg != 0.5 {
		t.Errorf("unexpected second ingredient: %+v", soup.Ingredients[1])
	}

	if len(recipes[11].Ingredients) != 1 {
		t.Errorf("unexpected recipe 11: %+v", recipes[11])
	}
}

func TestReadRecipesMalformedWeight(t *testing.T) {
	_, err := ReadRecipes(fixture("recipes_bad_weight.csv"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if code := errors.CodeOf(err); code != errors.ParseError {
		t.Errorf("expected code %s, got %s", errors.ParseError, code)
	}
}
