package matcher

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/mwhite7112/woodpantry-dashboard/internal/catalog"
	"github.com/mwhite7112/woodpantry-dashboard/internal/pantry"
)

// Rule selects how a pantry ingredient satisfies a recipe ingredient.
type Rule int

const (
	// RuleWordBoundary: every whitespace-separated word of some pantry
	// phrase appears as a whole word in the recipe ingredient's name.
	RuleWordBoundary Rule = iota
	// RuleSubstring: some pantry phrase is a substring of the recipe
	// ingredient's name.
	RuleSubstring
)

// Scoring selects the score formula applied to the match counts.
type Scoring int

const (
	// ScoreLinear: matched / total.
	ScoreLinear Scoring = iota
	// ScoreExpPenalty: matched / (total + e^missing). Penalizes recipes
	// with many gaps much harder than the linear formula.
	ScoreExpPenalty
)

// Result is one recipe's match statistics against the pantry.
// MatchedCount + MissingCount == TotalCount always holds.
type Result struct {
	Recipe             catalog.Recipe `json:"recipe"`
	TotalCount         int            `json:"total_count"`
	MatchedCount       int            `json:"matched_count"`
	MissingCount       int            `json:"missing_count"`
	MissingIngredients []string       `json:"missing_ingredients"`
	Score              float64        `json:"score"`
}

type Option func(*Matcher)

func WithRule(r Rule) Option {
	return func(m *Matcher) { m.rule = r }
}

func WithScoring(s Scoring) Option {
	return func(m *Matcher) { m.scoring = s }
}

// WithHideUnmatched drops zero-score recipes from Rank output.
func WithHideUnmatched(hide bool) Option {
	return func(m *Matcher) { m.hideUnmatched = hide }
}

// Matcher ranks a recipe catalog by how well the user's available
// ingredients cover each recipe's ingredient list.
type Matcher struct {
	rule          Rule
	scoring       Scoring
	hideUnmatched bool
}

func New(opts ...Option) *Matcher {
	m := &Matcher{rule: RuleWordBoundary, scoring: ScoreLinear}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Matcher) SetHideUnmatched(hide bool) {
	m.hideUnmatched = hide
}

func (m *Matcher) HideUnmatched() bool {
	return m.hideUnmatched
}

// Rank scores every recipe against the available ingredients and returns
// results ordered by score descending. Equal scores keep catalog order.
// The pass is a full synchronous recompute: no state is carried between
// calls.
func (m *Matcher) Rank(available []string, recipes []catalog.Recipe) []Result {
	have := make([]string, 0, len(available))
	for _, raw := range available {
		if name := pantry.Normalize(raw); name != "" {
			have = append(have, name)
		}
	}

	results := make([]Result, 0, len(recipes))
	for _, recipe := range recipes {
		results = append(results, m.scoreRecipe(recipe, have))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if !m.hideUnmatched {
		return results
	}
	kept := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Score > 0 {
			kept = append(kept, r)
		}
	}
	return kept
}

// scoreRecipe computes a single recipe's match statistics against the
// normalized pantry phrases.
func (m *Matcher) scoreRecipe(recipe catalog.Recipe, have []string) Result {
	total := len(recipe.Ingredients)
	matched := 0
	missing := make([]string, 0)

	for _, ing := range recipe.Ingredients {
		name := pantry.Normalize(ing.Name)
		if m.satisfied(name, have) {
			matched++
		} else {
			missing = append(missing, name)
		}
	}

	return Result{
		Recipe:             recipe,
		TotalCount:         total,
		MatchedCount:       matched,
		MissingCount:       len(missing),
		MissingIngredients: missing,
		Score:              m.score(matched, total),
	}
}

// satisfied reports whether any pantry phrase covers the recipe
// ingredient name under the active rule.
func (m *Matcher) satisfied(name string, have []string) bool {
	for _, phrase := range have {
		switch m.rule {
		case RuleSubstring:
			if strings.Contains(name, phrase) {
				return true
			}
		default:
			if wordsMatch(phrase, name) {
				return true
			}
		}
	}
	return false
}

// wordsMatch reports whether every whitespace-separated word of phrase
// occurs as a whole word in name. "egg" does not cover "eggs" here,
// while the substring rule accepts it.
func wordsMatch(phrase, name string) bool {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return false
	}
	for _, word := range words {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
		if !re.MatchString(name) {
			return false
		}
	}
	return true
}

// score applies the active formula. A recipe with no ingredients scores 0
// under both formulas rather than dividing by zero.
func (m *Matcher) score(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	switch m.scoring {
	case ScoreExpPenalty:
		missing := total - matched
		return float64(matched) / (float64(total) + math.Exp(float64(missing)))
	default:
		return float64(matched) / float64(total)
	}
}
