package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"recruitflow/internal/ai"
	"recruitflow/internal/common"
	"recruitflow/internal/config"
	"recruitflow/internal/errors"
	"recruitflow/internal/export"
	"recruitflow/internal/interview"
	"recruitflow/internal/scoring"
	"recruitflow/internal/types"
	"recruitflow/internal/workflow"

	"github.com/spf13/cobra"
)

var screenCmd = &cobra.Command{
	Use:   "screen [openings-file] [candidates-file]",
	Short: "Screen candidate applications against job openings",
	Long: `Screen a batch of candidate applications against job openings and produce
a recruitment summary. Candidates that pass screening get an interview
schedule; the rest are rejected with feedback.

The openings file contains a JSON job requirement (or an array of them), for
example as produced by 'analyze'. The candidates file contains a JSON array
of applications with name, position, resumeText, coverLetter, and
experienceYears fields.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if screenConfig.OutputFormat == "" {
			screenConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(screenConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScreen,
}

var (
	screenConfig    common.CommandConfig
	screenExcelFile string
)

func init() {
	screenCmd.Flags().StringVarP(&screenConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	screenCmd.Flags().StringVar(&screenConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	screenCmd.Flags().StringVar(&screenExcelFile, "excel", "", "Also write an Excel report to the given path")

	_ = screenCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

// screeningBatch is one screen run: the openings to hire for and the
// applications to evaluate against them.
type screeningBatch struct {
	Openings     []types.JobRequirement
	Applications []types.CandidateInput
}

func runScreen(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	engine, err := buildWorkflowEngine(cfg, logger)
	if err != nil {
		return err
	}

	createInput := func(contents []string) (screeningBatch, error) {
		if len(contents) != 2 {
			return screeningBatch{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}

		openings, err := parseOpenings([]byte(contents[0]))
		if err != nil {
			return screeningBatch{}, fmt.Errorf("failed to parse openings file: %w", err)
		}

		var applications []types.CandidateInput
		if err := json.Unmarshal([]byte(contents[1]), &applications); err != nil {
			return screeningBatch{}, fmt.Errorf("failed to parse candidates file: %w", err)
		}

		return screeningBatch{Openings: openings, Applications: applications}, nil
	}

	logDetails := func(batch screeningBatch, cfg common.CommandConfig) {
		logger.Info("Starting candidate screening",
			"openings", len(batch.Openings),
			"applications", len(batch.Applications),
			"output_format", cfg.OutputFormat)
	}

	screenOperation := func(ctx context.Context, batch screeningBatch) (*types.RecruitmentSummary, *ai.TokenUsage, error) {
		for _, opening := range batch.Openings {
			engine.RegisterOpening(opening)
		}

		for _, application := range batch.Applications {
			result := engine.Apply(ctx, application)
			if result.IsError() {
				logger.Warn("Application not processed",
					"name", application.Name,
					"position", application.Position,
					"reason", result.Message)
			}
		}

		return engine.GenerateSummary(), nil, nil
	}

	err = common.RunFileCommand(
		cmd.Context(),
		logger,
		screenConfig,
		args,
		createInput,
		screenOperation,
		logDetails,
	)
	if err != nil {
		return fmt.Errorf("failed to screen candidates: %w", err)
	}

	if screenExcelFile != "" {
		if err := export.ExportWorkbook(engine.GenerateSummary(), engine.Candidates(), screenExcelFile); err != nil {
			return fmt.Errorf("failed to write Excel report: %w", err)
		}
		logger.Info("Excel report written", "path", screenExcelFile)
	}

	logger.Info("Candidate screening completed successfully")
	return nil
}

// parseOpenings accepts either a single job requirement object or an array.
func parseOpenings(data []byte) ([]types.JobRequirement, error) {
	var openings []types.JobRequirement
	if err := json.Unmarshal(data, &openings); err == nil {
		return openings, nil
	}

	var single types.JobRequirement
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []types.JobRequirement{single}, nil
}

// buildWorkflowEngine wires the scoring engine and interview planner, each
// with its own AI service, into a workflow engine.
func buildWorkflowEngine(cfg *config.Config, logger *errors.Logger) (*workflow.Engine, error) {
	feedbackAIConfig := cfg.GetFeedbackConfig()
	feedbackService, err := ai.NewService(&feedbackAIConfig, "feedback", logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback AI service: %w", err)
	}

	questionsAIConfig := cfg.GetQuestionsConfig()
	questionsService, err := ai.NewService(&questionsAIConfig, "questions", logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create questions AI service: %w", err)
	}

	scorer := scoring.NewEngine(&cfg.Recruitment, scoring.NewFeedbackGenerator(feedbackService, logger), logger)
	planner := interview.NewPlanner(&cfg.Recruitment, interview.NewQuestionGenerator(questionsService, logger), logger)

	return workflow.NewEngine(scorer, planner, logger), nil
}
