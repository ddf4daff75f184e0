package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	recipes, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, recipes)

	for _, r := range recipes {
		assert.NotEmpty(t, r.Name)
		assert.Positive(t, r.Servings)
		assert.NotEmpty(t, r.Ingredients, "recipe %s", r.Name)
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "classic-omelette", Slug("Classic Omelette"))
	assert.Equal(t, "spaghetti-aglio-e-olio", Slug("Spaghetti  Aglio   e Olio"))
	assert.Equal(t, "toast", Slug("  Toast  "))
}

func TestRecipeID(t *testing.T) {
	r := Recipe{Name: "French Toast"}
	assert.Equal(t, "french-toast", r.ID())
}

func TestParseRejectsMalformedEntries(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"invalid json", `{not json`, "decode catalog"},
		{"empty catalog", `[]`, "catalog is empty"},
		{"missing name", `[{"servings": 1, "ingredients": [{"name": "egg"}]}]`, "name is required"},
		{"zero servings", `[{"name": "X", "servings": 0}]`, "servings must be positive"},
		{"negative calories", `[{"name": "X", "servings": 1, "calories": -5}]`, "calories must not be negative"},
		{"blank ingredient", `[{"name": "X", "servings": 1, "ingredients": [{"name": "  "}]}]`, "name is required"},
		{
			"duplicate id",
			`[{"name": "Greek  Salad", "servings": 1}, {"name": "greek salad", "servings": 2}]`,
			"duplicate id",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse([]byte(tc.payload))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	_, err := LoadFile("does-not-exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")

	path := filepath.Join(t.TempDir(), "catalog.json")
	payload := `[{"name": "Toast", "servings": 1, "ingredients": [{"name": "bread", "quantity": 2, "unit": "slices"}]}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	recipes, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "toast", recipes[0].ID())
}
