package server

import (
	"context"
	"fmt"
	"time"

	"recruitflow/internal/ai"
	"recruitflow/internal/analyzer"
	"recruitflow/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

// rosterReloadDebounce coalesces rapid roster file changes into one reload.
const rosterReloadDebounce = 2 * time.Second

// setupRosterOpenings runs the initial roster analysis, registers the derived
// openings with the workflow engine, and starts a watcher that re-analyzes on
// file changes. Openings already registered are skipped on reload.
func (s *Server) setupRosterOpenings(om *observability.ObservabilityManager) (*analyzer.RosterWatcher, error) {
	postingAIConfig := s.AppConfig.GetPostingConfig()
	postingService, err := ai.NewService(&postingAIConfig, "posting", s.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create posting AI service: %w", err)
	}

	posting := analyzer.NewPostingGenerator(postingService, s.Logger)
	rosterAnalyzer := analyzer.NewAnalyzer(&s.AppConfig.Recruitment.Analyzer, posting, s.Logger)

	registered := make(map[string]bool)
	registerOpenings := func() error {
		ctx := context.Background()
		analysis, err := rosterAnalyzer.AnalyzeFile(ctx, s.RosterFile)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "roster_analyzed", err == nil, om,
			attribute.String("roster_file", s.RosterFile))

		if err != nil {
			return err
		}
		for _, opening := range analysis.Openings {
			if registered[opening.Requirement.OpeningID] {
				continue
			}
			req := s.Engine.RegisterOpening(opening.Requirement)
			registered[req.OpeningID] = true
		}
		return nil
	}

	if err := registerOpenings(); err != nil {
		return nil, fmt.Errorf("failed to analyze roster: %w", err)
	}

	watcher := analyzer.NewRosterWatcher(s.RosterFile, rosterReloadDebounce, func() {
		if err := registerOpenings(); err != nil {
			s.Logger.LogError(err, "Roster reload failed")
		}
	}, s.Logger)

	if err := watcher.Start(); err != nil {
		return nil, fmt.Errorf("failed to start roster watcher: %w", err)
	}

	return watcher, nil
}
