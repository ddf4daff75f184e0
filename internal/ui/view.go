package ui

import (
	"fmt"
	"strings"

	"github.com/mwhite7112/woodpantry-dashboard/internal/matcher"
	"github.com/mwhite7112/woodpantry-dashboard/internal/pantry"
)

func (m Model) View() string {
	if m.mode == modeDetail && len(m.results) > 0 {
		return m.viewDetail(m.results[m.cursor])
	}
	return m.viewBrowse()
}

func (m Model) viewBrowse() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Woodpantry Dashboard"))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.InputBox.Render(m.input.View()))
	sb.WriteString("\n")

	if items := m.pantry.Items(); len(items) > 0 {
		chips := make([]string, len(items))
		for i, item := range items {
			chips[i] = m.styles.Chip.Render("[" + item + "]")
		}
		sb.WriteString("  " + joinChips(chips, m.width))
		sb.WriteString("\n")
	} else {
		sb.WriteString(m.styles.Muted.Render("  No ingredients yet — add what you have on hand."))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.renderResults())
	sb.WriteString(m.styles.Help.Render(m.helpLine()))
	return sb.String()
}

func (m Model) renderResults() string {
	var sb strings.Builder

	header := fmt.Sprintf("  %-5s %-7s %s", "SCORE", "HAVE", "RECIPE")
	sb.WriteString(m.styles.Header.Render(header))
	sb.WriteString("\n")

	if len(m.results) == 0 {
		sb.WriteString(m.styles.Muted.Render("  No recipes match. Press tab to show unmatched recipes."))
		sb.WriteString("\n")
		return sb.String()
	}

	for i, r := range m.results {
		marker := "  "
		nameStyle := m.styles.Row
		if i == m.cursor {
			marker = "▸ "
			nameStyle = m.styles.Selected
		}

		line := fmt.Sprintf("%s%s %s %s",
			marker,
			m.styles.Score.Render(fmt.Sprintf("%4.0f%%", r.Score*100)),
			m.styles.Matched.Render(fmt.Sprintf("%2d/%-2d", r.MatchedCount, r.TotalCount)),
			nameStyle.Render(r.Recipe.Name),
		)
		sb.WriteString(line)

		if r.MissingCount > 0 && i == m.cursor {
			sb.WriteString(m.styles.Missing.Render(
				"  missing: " + strings.Join(r.MissingIngredients, ", ")))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) helpLine() string {
	hide := "off"
	if m.matcher.HideUnmatched() {
		hide = "on"
	}
	return fmt.Sprintf(
		"enter add/open · backspace remove · ctrl+l clear · ↑/↓ select · tab hide unmatched (%s) · esc quit",
		hide,
	)
}

// viewDetail renders the selected recipe as markdown through glamour:
// nutrition facts, an ingredient checklist against the pantry, and the
// instructions.
func (m Model) viewDetail(r matcher.Result) string {
	missing := make(map[string]bool, len(r.MissingIngredients))
	for _, name := range r.MissingIngredients {
		missing[name] = true
	}

	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", r.Recipe.Name)
	fmt.Fprintf(&md, "`%s` · serves %d · %d kcal per serving\n\n",
		r.Recipe.ID(), r.Recipe.Servings, r.Recipe.Calories)
	fmt.Fprintf(&md, "**Protein** %g%s · **Carbs** %g%s · **Fat** %g%s\n\n",
		r.Recipe.Protein.Amount, r.Recipe.Protein.Unit,
		r.Recipe.Carbs.Amount, r.Recipe.Carbs.Unit,
		r.Recipe.Fat.Amount, r.Recipe.Fat.Unit)

	fmt.Fprintf(&md, "## Ingredients (%d of %d on hand)\n\n", r.MatchedCount, r.TotalCount)
	for _, ing := range r.Recipe.Ingredients {
		mark := "✔"
		if missing[pantry.Normalize(ing.Name)] {
			mark = "✘"
		}
		fmt.Fprintf(&md, "- %s %s — %g %s\n", mark, ing.Name, ing.Quantity, ing.Unit)
	}

	if len(r.Recipe.Instructions) > 0 {
		md.WriteString("\n## Instructions\n\n")
		for i, step := range r.Recipe.Instructions {
			fmt.Fprintf(&md, "%d. %s\n", i+1, step)
		}
	}

	body := md.String()
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(body); err == nil {
			body = rendered
		}
	}
	return body + m.styles.Help.Render("esc close")
}

// joinChips lays chips out on one line, wrapping by character budget when
// the terminal is narrow.
func joinChips(chips []string, width int) string {
	if width <= 0 {
		return strings.Join(chips, " ")
	}
	var sb strings.Builder
	lineLen := 0
	for i, chip := range chips {
		// Rough budget: rendered chips carry two border cells and padding.
		chipLen := len(chip)
		if lineLen > 0 && lineLen+chipLen > width {
			sb.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(chip)
		lineLen += chipLen
	}
	return sb.String()
}
