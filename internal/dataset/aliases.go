package dataset

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"foodprint/internal/errors"
	"foodprint/internal/normalize"
)

// AliasesDeclarationFile is the default filename for ingredient alias declarations
const AliasesDeclarationFile = "ALIASES.toml"

// AliasDeclaration maps a free-text ingredient name to the canonical
// classification name it should match as.
type AliasDeclaration struct {
	// Name is the ingredient name as it appears in recipe data
	Name string `toml:"name"`

	// Canonical is the classification name the ingredient resolves to
	Canonical string `toml:"canonical"`
}

// AliasesFile represents the root structure of ALIASES.toml
type AliasesFile struct {
	// Version is the schema version
	Version int `toml:"version"`

	// Aliases is the list of declared aliases
	Aliases []AliasDeclaration `toml:"alias"`
}

// LoadAliases parses an ALIASES.toml file into a normalized alias map.
// Both sides of each declaration are normalized, so the map composes
// directly with lookup keys. An absent file yields an empty map; aliases
// are optional.
func LoadAliases(path string) (map[string]string, error) {
	aliases := make(map[string]string)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return aliases, nil
	}
	if err != nil {
		return nil, errors.NewDatasetMissing(path, err)
	}

	var file AliasesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.New(errors.ParseError,
			fmt.Sprintf("malformed aliases file %q", path), err)
	}

	for _, decl := range file.Aliases {
		name := normalize.Normalize(decl.Name)
		canonical := normalize.Normalize(decl.Canonical)
		if name == "" || canonical == "" {
			return nil, errors.New(errors.ParseError,
				fmt.Sprintf("alias with empty name or canonical in %q", path), nil)
		}
		aliases[name] = canonical
	}

	return aliases, nil
}
