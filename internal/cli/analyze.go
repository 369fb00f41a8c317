package cli

import (
	"context"
	"fmt"
	"strings"

	"recruitflow/internal/ai"
	"recruitflow/internal/analyzer"
	"recruitflow/internal/common"
	"recruitflow/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [roster-file]",
	Short: "Analyze an employee roster for upcoming job openings",
	Long: `Analyze an employee roster CSV and derive job openings from departing
employees. Each employee with a last working day becomes an opening with
required skills, an experience level, a hiring priority, and a salary range.

The roster must contain the columns: id, name, position, department, salary,
last_working_day. A job posting is generated for each opening, using AI when
an API key is configured.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var analyzeConfig common.CommandConfig

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Create AI service for job posting generation
	postingAIConfig := cfg.GetPostingConfig()
	aiService, err := ai.NewService(&postingAIConfig, "posting", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	posting := analyzer.NewPostingGenerator(aiService, logger)
	rosterAnalyzer := analyzer.NewAnalyzer(&cfg.Recruitment.Analyzer, posting, logger)

	createInput := func(contents []string) ([]types.EmployeeRecord, error) {
		if len(contents) != 1 {
			return nil, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return analyzer.ParseRoster(strings.NewReader(contents[0]))
	}

	logDetails := func(records []types.EmployeeRecord, cfg common.CommandConfig) {
		logger.Info("Starting roster analysis",
			"records", len(records),
			"output_format", cfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, records []types.EmployeeRecord) (*analyzer.Analysis, *ai.TokenUsage, error) {
		return rosterAnalyzer.Analyze(ctx, records), nil, nil
	}

	err = common.RunFileCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args,
		createInput,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze roster: %w", err)
	}
	logger.Info("Roster analysis completed successfully")
	return nil
}
