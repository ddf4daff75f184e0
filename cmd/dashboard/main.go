package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mwhite7112/woodpantry-dashboard/internal/catalog"
	"github.com/mwhite7112/woodpantry-dashboard/internal/matcher"
	"github.com/mwhite7112/woodpantry-dashboard/internal/ui"
)

func main() {
	logPath := os.Getenv("LOG_PATH")
	if logPath == "" {
		logPath = "woodpantry-dashboard.log"
	}

	// The TUI owns the terminal, so the logger writes to a file.
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	rule := matcher.RuleWordBoundary
	switch os.Getenv("MATCH_RULE") {
	case "", "word":
	case "substring":
		rule = matcher.RuleSubstring
	default:
		log.Fatal("MATCH_RULE must be word or substring")
	}

	scoring := matcher.ScoreLinear
	switch os.Getenv("SCORE_RULE") {
	case "", "linear":
	case "exp":
		scoring = matcher.ScoreExpPenalty
	default:
		log.Fatal("SCORE_RULE must be linear or exp")
	}

	hideUnmatched := os.Getenv("HIDE_UNMATCHED") == "true"

	var recipes []catalog.Recipe
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		recipes, err = catalog.LoadFile(path)
	} else {
		recipes, err = catalog.Load()
	}
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	logger.Info("catalog loaded", zap.Int("recipes", len(recipes)))

	m := matcher.New(
		matcher.WithRule(rule),
		matcher.WithScoring(scoring),
		matcher.WithHideUnmatched(hideUnmatched),
	)

	program := tea.NewProgram(ui.New(recipes, m, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("dashboard exited", zap.Error(err))
		os.Exit(1)
	}
}
