package scoring

import (
	"context"
	"fmt"
	"strings"

	"recruitflow/internal/ai"
	"recruitflow/internal/errors"
	"recruitflow/internal/types"
)

// FeedbackGenerator produces candidate feedback narratives. When the AI
// service is unavailable or fails, it falls back to a deterministic template
// so screening results never surface provider errors to users.
type FeedbackGenerator struct {
	service *ai.Service
	logger  *errors.Logger
}

// NewFeedbackGenerator creates a feedback generator. The service may be nil.
func NewFeedbackGenerator(service *ai.Service, logger *errors.Logger) *FeedbackGenerator {
	return &FeedbackGenerator{service: service, logger: logger}
}

// Generate returns feedback text for a screened candidate. It never returns
// an error: any AI failure downgrades to the fallback template.
func (f *FeedbackGenerator) Generate(ctx context.Context, cand *types.Candidate, req types.JobRequirement, result *types.ScreeningResult) string {
	if !f.service.Available() {
		return FallbackFeedback(cand, req, result)
	}

	prompt := BuildFeedbackPrompt(cand, req, result)
	text, _, err := f.service.Generate(ctx, prompt)
	if err != nil {
		if f.logger != nil {
			f.logger.Warn("AI feedback generation failed, using fallback template",
				"candidate_id", cand.CandidateID,
				"error", err.Error())
		}
		return FallbackFeedback(cand, req, result)
	}
	return text
}

// BuildFeedbackPrompt assembles the feedback prompt from the candidate
// profile and the screening sub-scores.
func BuildFeedbackPrompt(cand *types.Candidate, req types.JobRequirement, result *types.ScreeningResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "As an AI recruitment specialist, provide constructive feedback for a candidate applying for %s position.\n\n", req.Position)
	b.WriteString("Candidate Profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", cand.Name)
	fmt.Fprintf(&b, "- Experience: %d years\n", cand.ExperienceYears)
	fmt.Fprintf(&b, "- Skills Match: %s\n", matchPercentage(result.SkillMatch.Score))
	fmt.Fprintf(&b, "- Experience Assessment: %s\n", result.Experience.Assessment)
	fmt.Fprintf(&b, "- Cultural Fit: %s\n\n", result.CulturalFit.Assessment)
	fmt.Fprintf(&b, "Required Skills: %s\n", strings.Join(req.RequiredSkills, ", "))
	fmt.Fprintf(&b, "Matched Skills: %s\n", strings.Join(result.SkillMatch.MatchedSkills, ", "))
	fmt.Fprintf(&b, "Missing Skills: %s\n\n", strings.Join(result.SkillMatch.MissingSkills, ", "))
	b.WriteString("Provide:\n")
	b.WriteString("1. Overall assessment (2-3 sentences)\n")
	b.WriteString("2. Strengths (3-4 bullet points)\n")
	b.WriteString("3. Areas for improvement (2-3 bullet points)\n")
	b.WriteString("4. Specific recommendations for skill development\n")
	b.WriteString("5. Final recommendation for next steps\n\n")
	b.WriteString("Keep it professional, constructive, and actionable.")

	return b.String()
}

// FallbackFeedback builds the deterministic feedback template from the
// screening sub-scores alone.
func FallbackFeedback(cand *types.Candidate, req types.JobRequirement, result *types.ScreeningResult) string {
	strengthsText := strings.Join(result.SkillMatch.MatchedSkills, ", ")
	if strengthsText == "" {
		strengthsText = "Communication, Collaboration"
	}
	missingText := strings.Join(result.SkillMatch.MissingSkills, ", ")
	if missingText == "" {
		missingText = "Advanced system design"
	}

	overall := fmt.Sprintf("Candidate %s shows a %s skills match for the %s role. Experience is assessed as %s with cultural fit being %s.",
		cand.Name,
		matchPercentage(result.SkillMatch.Score),
		req.Position,
		result.Experience.Assessment,
		result.CulturalFit.Assessment)

	lines := []string{
		overall,
		"- Strengths: " + strengthsText,
		"- Areas to improve: " + missingText,
		"- Recommendation: Prepare concrete examples demonstrating impact, strengthen missing skills, and tailor the resume to highlight achievements aligned with the job requirements.",
		"- Next steps: Proceed to HR interview if role requires, or assign a short technical assessment.",
	}

	return strings.Join(lines, "\n")
}

func matchPercentage(score float64) string {
	return fmt.Sprintf("%.1f%%", score)
}
