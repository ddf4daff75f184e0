package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// NutrientAmount is a nutrient quantity with its unit, e.g. {12, "g"}.
type NutrientAmount struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe is a single catalog entry. The catalog is static and trusted:
// recipes are loaded once at startup and never mutated afterwards.
type Recipe struct {
	Name         string         `json:"name"`
	Servings     int            `json:"servings"`
	Calories     int            `json:"calories"`
	Fat          NutrientAmount `json:"fat"`
	Carbs        NutrientAmount `json:"carbs"`
	Protein      NutrientAmount `json:"protein"`
	Ingredients  []Ingredient   `json:"ingredients"`
	Instructions []string       `json:"instructions,omitempty"`
}

// ID returns the recipe's deterministic identifier: the lowercased name
// with whitespace runs collapsed to single hyphens.
func (r Recipe) ID() string {
	return Slug(r.Name)
}

// Slug derives an identifier from a recipe name.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

//go:embed recipes.json
var recipesJSON []byte

// Load decodes and validates the embedded recipe catalog.
func Load() ([]Recipe, error) {
	return parse(recipesJSON)
}

// LoadFile decodes and validates a recipe catalog from a JSON file,
// allowing users to point the dashboard at their own catalog.
func LoadFile(path string) ([]Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	recipes, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return recipes, nil
}

// parse decodes a catalog payload and rejects malformed entries. The
// dataset is static configuration, so any defect here is fatal to the
// caller rather than skipped.
func parse(data []byte) ([]Recipe, error) {
	var recipes []Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	seen := make(map[string]bool, len(recipes))
	for i, r := range recipes {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("recipe %d: name is required", i)
		}
		if r.Servings <= 0 {
			return nil, fmt.Errorf("recipe %q: servings must be positive", r.Name)
		}
		if r.Calories < 0 {
			return nil, fmt.Errorf("recipe %q: calories must not be negative", r.Name)
		}
		id := r.ID()
		if seen[id] {
			return nil, fmt.Errorf("recipe %q: duplicate id %q", r.Name, id)
		}
		seen[id] = true
		for j, ing := range r.Ingredients {
			if strings.TrimSpace(ing.Name) == "" {
				return nil, fmt.Errorf("recipe %q: ingredient %d: name is required", r.Name, j)
			}
		}
	}
	return recipes, nil
}
