package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"recruitflow/internal/analyzer"
	"recruitflow/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ScreeningResult", &ScreeningTextFormatter{})
	registry.RegisterFormatter("markdown", "ScreeningResult", &ScreeningMarkdownFormatter{})
	registry.RegisterFormatter("text", "RecruitmentSummary", &SummaryTextFormatter{})
	registry.RegisterFormatter("markdown", "RecruitmentSummary", &SummaryMarkdownFormatter{})
	registry.RegisterFormatter("text", "Analysis", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "Analysis", &AnalysisMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ScreeningResult, *types.ScreeningResult:
		return "ScreeningResult"
	case types.RecruitmentSummary, *types.RecruitmentSummary:
		return "RecruitmentSummary"
	case analyzer.Analysis, *analyzer.Analysis:
		return "Analysis"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

func asScreeningResult(data any) (*types.ScreeningResult, bool) {
	switch v := data.(type) {
	case types.ScreeningResult:
		return &v, true
	case *types.ScreeningResult:
		return v, true
	}
	return nil, false
}

func asSummary(data any) (*types.RecruitmentSummary, bool) {
	switch v := data.(type) {
	case types.RecruitmentSummary:
		return &v, true
	case *types.RecruitmentSummary:
		return v, true
	}
	return nil, false
}

// ScreeningTextFormatter handles text formatting for screening results
type ScreeningTextFormatter struct{}

func (stf *ScreeningTextFormatter) Format(data any) (string, error) {
	result, ok := asScreeningResult(data)
	if !ok {
		return "", fmt.Errorf("expected ScreeningResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== CANDIDATE SCREENING ===\n\n")
	output.WriteString(fmt.Sprintf("Candidate: %s\n", result.CandidateName))
	output.WriteString(fmt.Sprintf("Position: %s\n", result.Position))

	if result.Status == "error" {
		output.WriteString("\nScreening failed: ")
		output.WriteString(result.Error)
		output.WriteString("\n")
		return output.String(), nil
	}

	output.WriteString(fmt.Sprintf("Overall Score: %.2f/100\n", result.OverallScore))
	output.WriteString(fmt.Sprintf("Recommendation: %s\n\n", result.Recommendation))

	output.WriteString("=== SKILL MATCH ===\n")
	output.WriteString(fmt.Sprintf("Score: %.2f/100\n", result.SkillMatch.Score))
	output.WriteString(fmt.Sprintf("Matched: %s\n", strings.Join(result.SkillMatch.MatchedSkills, ", ")))
	output.WriteString(fmt.Sprintf("Missing: %s\n\n", strings.Join(result.SkillMatch.MissingSkills, ", ")))

	output.WriteString("=== EXPERIENCE ===\n")
	output.WriteString(fmt.Sprintf("Score: %.2f/100\n", result.Experience.Score))
	output.WriteString(fmt.Sprintf("Assessment: %s\n", result.Experience.Assessment))
	output.WriteString(fmt.Sprintf("Required Years: %.1f (gap %.1f)\n\n", result.Experience.RequiredYears, result.Experience.GapYears))

	output.WriteString("=== CULTURAL FIT ===\n")
	output.WriteString(fmt.Sprintf("Score: %.2f/100\n", result.CulturalFit.Score))
	output.WriteString(fmt.Sprintf("Assessment: %s\n", result.CulturalFit.Assessment))
	if len(result.CulturalFit.Strengths) > 0 {
		output.WriteString(fmt.Sprintf("Strengths: %s\n", strings.Join(result.CulturalFit.Strengths, ", ")))
	}
	if len(result.CulturalFit.GrowthAreas) > 0 {
		output.WriteString(fmt.Sprintf("Growth Areas: %s\n", strings.Join(result.CulturalFit.GrowthAreas, ", ")))
	}

	if result.AIFeedback != "" {
		output.WriteString("\n=== FEEDBACK ===\n")
		output.WriteString(result.AIFeedback)
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (stf *ScreeningTextFormatter) SupportedType() string {
	return "ScreeningResult"
}

// ScreeningMarkdownFormatter handles markdown formatting for screening results
type ScreeningMarkdownFormatter struct{}

func (smf *ScreeningMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asScreeningResult(data)
	if !ok {
		return "", fmt.Errorf("expected ScreeningResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Candidate Screening\n\n")
	output.WriteString(fmt.Sprintf("**Candidate:** %s\n", result.CandidateName))
	output.WriteString(fmt.Sprintf("**Position:** %s\n\n", result.Position))

	if result.Status == "error" {
		output.WriteString("## Screening Failed\n\n")
		output.WriteString(result.Error)
		output.WriteString("\n")
		return output.String(), nil
	}

	output.WriteString(fmt.Sprintf("**Overall Score:** %.2f/100\n\n", result.OverallScore))
	output.WriteString(fmt.Sprintf("**Recommendation:** %s\n\n", result.Recommendation))

	output.WriteString("## Skill Match\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %.2f/100\n\n", result.SkillMatch.Score))
	if len(result.SkillMatch.MatchedSkills) > 0 {
		output.WriteString("### Matched Skills\n")
		for _, skill := range result.SkillMatch.MatchedSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.SkillMatch.MissingSkills) > 0 {
		output.WriteString("### Missing Skills\n")
		for _, skill := range result.SkillMatch.MissingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Experience\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %.2f/100\n\n", result.Experience.Score))
	output.WriteString(fmt.Sprintf("**Assessment:** %s\n\n", result.Experience.Assessment))

	output.WriteString("## Cultural Fit\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %.2f/100\n\n", result.CulturalFit.Score))
	output.WriteString(fmt.Sprintf("**Assessment:** %s\n\n", result.CulturalFit.Assessment))

	if result.AIFeedback != "" {
		output.WriteString("## Feedback\n\n")
		output.WriteString(result.AIFeedback)
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (smf *ScreeningMarkdownFormatter) SupportedType() string {
	return "ScreeningResult"
}

// SummaryTextFormatter handles text formatting for recruitment summaries
type SummaryTextFormatter struct{}

func (stf *SummaryTextFormatter) Format(data any) (string, error) {
	result, ok := asSummary(data)
	if !ok {
		return "", fmt.Errorf("expected RecruitmentSummary, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RECRUITMENT SUMMARY ===\n\n")
	output.WriteString(fmt.Sprintf("Total Candidates: %d\n", result.TotalCandidates))
	output.WriteString(fmt.Sprintf("Interview Completion Rate: %.2f%%\n", result.CompletionRate))
	output.WriteString(fmt.Sprintf("Hiring Success Rate: %.2f%%\n", result.HireRate))
	output.WriteString(fmt.Sprintf("Average Time to Hire: %s\n\n", result.AvgTimeToHire))

	if len(result.StatusCounts) > 0 {
		output.WriteString("=== CANDIDATES BY STATUS ===\n")
		for status, count := range result.StatusCounts {
			output.WriteString(fmt.Sprintf("%s: %d\n", status, count))
		}
		output.WriteString("\n")
	}

	if len(result.TopCandidates) > 0 {
		output.WriteString("=== TOP CANDIDATES ===\n")
		for i, cand := range result.TopCandidates {
			output.WriteString(fmt.Sprintf("%d. %s (%s) - %.2f [%s]\n",
				i+1, cand.Name, cand.Position, cand.OverallScore, cand.Status))
		}
		output.WriteString("\n")
	}

	if len(result.Insights.TopMissingSkills) > 0 {
		output.WriteString("=== MOST COMMONLY MISSING SKILLS ===\n")
		for _, skill := range result.Insights.TopMissingSkills {
			output.WriteString(fmt.Sprintf("- %s (%d candidates)\n", skill.Skill, skill.Count))
		}
		output.WriteString("\n")
	}

	if len(result.Insights.ExperienceDistribution) > 0 {
		output.WriteString("=== EXPERIENCE DISTRIBUTION ===\n")
		for assessment, count := range result.Insights.ExperienceDistribution {
			output.WriteString(fmt.Sprintf("%s: %d\n", assessment, count))
		}
	}

	return output.String(), nil
}

func (stf *SummaryTextFormatter) SupportedType() string {
	return "RecruitmentSummary"
}

// SummaryMarkdownFormatter handles markdown formatting for recruitment summaries
type SummaryMarkdownFormatter struct{}

func (smf *SummaryMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asSummary(data)
	if !ok {
		return "", fmt.Errorf("expected RecruitmentSummary, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Recruitment Summary\n\n")
	output.WriteString(fmt.Sprintf("**Total Candidates:** %d\n\n", result.TotalCandidates))
	output.WriteString(fmt.Sprintf("**Interview Completion Rate:** %.2f%%\n\n", result.CompletionRate))
	output.WriteString(fmt.Sprintf("**Hiring Success Rate:** %.2f%%\n\n", result.HireRate))
	output.WriteString(fmt.Sprintf("**Average Time to Hire:** %s\n\n", result.AvgTimeToHire))

	if len(result.StatusCounts) > 0 {
		output.WriteString("## Candidates by Status\n\n")
		for status, count := range result.StatusCounts {
			output.WriteString(fmt.Sprintf("- **%s**: %d\n", status, count))
		}
		output.WriteString("\n")
	}

	if len(result.TopCandidates) > 0 {
		output.WriteString("## Top Candidates\n\n")
		for i, cand := range result.TopCandidates {
			output.WriteString(fmt.Sprintf("%d. **%s** (%s) - %.2f [%s]\n",
				i+1, cand.Name, cand.Position, cand.OverallScore, cand.Status))
		}
		output.WriteString("\n")
	}

	if len(result.Insights.TopMissingSkills) > 0 {
		output.WriteString("## Most Commonly Missing Skills\n\n")
		for _, skill := range result.Insights.TopMissingSkills {
			output.WriteString(fmt.Sprintf("- %s (%d candidates)\n", skill.Skill, skill.Count))
		}
		output.WriteString("\n")
	}

	if len(result.Insights.ExperienceDistribution) > 0 {
		output.WriteString("## Experience Distribution\n\n")
		for assessment, count := range result.Insights.ExperienceDistribution {
			output.WriteString(fmt.Sprintf("- **%s**: %d\n", assessment, count))
		}
	}

	return output.String(), nil
}

func (smf *SummaryMarkdownFormatter) SupportedType() string {
	return "RecruitmentSummary"
}

func asAnalysis(data any) (*analyzer.Analysis, bool) {
	switch v := data.(type) {
	case analyzer.Analysis:
		return &v, true
	case *analyzer.Analysis:
		return v, true
	}
	return nil, false
}

// AnalysisTextFormatter handles text formatting for roster analyses
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := asAnalysis(data)
	if !ok {
		return "", fmt.Errorf("expected Analysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ROSTER ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Status: %s\n", result.Status))
	output.WriteString(fmt.Sprintf("Openings: %d\n", len(result.Openings)))

	for _, opening := range result.Openings {
		req := opening.Requirement
		output.WriteString(fmt.Sprintf("\n%s - %s\n", req.Position, req.Department))
		output.WriteString(fmt.Sprintf("  Departing: %s (ID: %s)\n", opening.EmployeeName, opening.EmployeeID))
		output.WriteString(fmt.Sprintf("  Priority: %s\n", req.Priority))
		output.WriteString(fmt.Sprintf("  Experience: %s\n", req.ExperienceLevel))
		output.WriteString(fmt.Sprintf("  Salary Range: %s\n", opening.SalaryRange))
		output.WriteString(fmt.Sprintf("  Skills: %s\n", strings.Join(req.RequiredSkills, ", ")))
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "Analysis"
}

// AnalysisMarkdownFormatter renders the full recruitment analysis report
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asAnalysis(data)
	if !ok {
		return "", fmt.Errorf("expected Analysis, got %T", data)
	}
	return analyzer.MarkdownReport(result.Openings), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "Analysis"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
