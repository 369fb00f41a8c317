package scoring

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"recruitflow/internal/config"
	"recruitflow/internal/errors"
	"recruitflow/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Engine scores candidates against job requirements. Weights, thresholds, and
// the cultural-fit keyword table are injected from configuration.
type Engine struct {
	weights    config.ScoringWeights
	thresholds config.RecommendationThresholds
	categories []config.CulturalCategory
	feedback   *FeedbackGenerator
	logger     *errors.Logger
}

// NewEngine creates a scoring engine from the recruitment configuration.
// The feedback generator may be nil, in which case screening results carry
// no narrative feedback.
func NewEngine(rc *config.RecruitmentConfig, feedback *FeedbackGenerator, logger *errors.Logger) *Engine {
	return &Engine{
		weights:    rc.Weights,
		thresholds: rc.Thresholds,
		categories: rc.CulturalCategories,
		feedback:   feedback,
		logger:     logger,
	}
}

// Screen scores one candidate against one job requirement. Failures are
// captured in the result's Status/Error fields so a bad record never aborts
// a batch.
func (e *Engine) Screen(ctx context.Context, cand *types.Candidate, req types.JobRequirement) *types.ScreeningResult {
	tracer := otel.Tracer("recruitflow.scoring")
	ctx, span := tracer.Start(ctx, "scoring.screen")
	defer span.End()

	span.SetAttributes(
		attribute.String("candidate.id", cand.CandidateID),
		attribute.String("job.position", req.Position),
	)

	result, err := e.screen(ctx, cand, req)
	if err != nil {
		span.RecordError(err)
		if e.logger != nil {
			e.logger.LogError(err, "Candidate screening failed",
				"candidate_id", cand.CandidateID,
				"position", req.Position)
		}
		return &types.ScreeningResult{
			CandidateID:   cand.CandidateID,
			CandidateName: cand.Name,
			Position:      req.Position,
			Status:        "error",
			Error:         err.Error(),
		}
	}

	span.SetAttributes(attribute.Float64("screening.overall_score", result.OverallScore))
	return result
}

func (e *Engine) screen(ctx context.Context, cand *types.Candidate, req types.JobRequirement) (*types.ScreeningResult, error) {
	if cand.ExperienceYears < 0 {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("Experience years cannot be negative: %d", cand.ExperienceYears), nil)
	}

	skillMatch := e.matchSkills(cand.ResumeText, req.RequiredSkills)
	experience := e.evaluateExperience(cand.ExperienceYears, req.ExperienceLevel)
	culturalFit := e.assessCulturalFit(cand.CoverLetter, cand.ResumeText)
	overall := e.overallScore(skillMatch.Score, experience.Score, culturalFit.Score)

	result := &types.ScreeningResult{
		CandidateID:    cand.CandidateID,
		CandidateName:  cand.Name,
		Position:       req.Position,
		Status:         "completed",
		SkillMatch:     skillMatch,
		Experience:     experience,
		CulturalFit:    culturalFit,
		OverallScore:   overall,
		Recommendation: e.Recommendation(overall),
	}

	if e.feedback != nil {
		result.AIFeedback = e.feedback.Generate(ctx, cand, req, result)
	}

	return result, nil
}

// ScreenBatch screens candidates sequentially against a shared requirement
// and returns results sorted by overall score descending. Errored entries
// sort with a score of 0.
func (e *Engine) ScreenBatch(ctx context.Context, cands []*types.Candidate, req types.JobRequirement) []*types.ScreeningResult {
	results := make([]*types.ScreeningResult, 0, len(cands))
	for _, cand := range cands {
		results = append(results, e.Screen(ctx, cand, req))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})

	return results
}

// matchSkills checks each required skill against the resume text three ways:
// exact phrase, phrase with whitespace stripped, or any individual word of
// the skill phrase.
func (e *Engine) matchSkills(resumeText string, requiredSkills []string) types.SkillMatch {
	if resumeText == "" || len(requiredSkills) == 0 {
		missing := make([]string, len(requiredSkills))
		copy(missing, requiredSkills)
		return types.SkillMatch{
			Score:         0,
			MatchedSkills: []string{},
			MissingSkills: missing,
		}
	}

	resumeLower := strings.ToLower(resumeText)
	resumeCompact := strings.ReplaceAll(resumeLower, " ", "")

	matched := []string{}
	missing := []string{}

	for _, skill := range requiredSkills {
		skillLower := strings.ToLower(skill)
		if skillMatches(skillLower, resumeLower, resumeCompact) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	score := round2(float64(len(matched)) / float64(len(requiredSkills)) * 100)

	return types.SkillMatch{
		Score:         score,
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}

func skillMatches(skillLower, resumeLower, resumeCompact string) bool {
	if strings.Contains(resumeLower, skillLower) {
		return true
	}
	if strings.Contains(resumeCompact, strings.ReplaceAll(skillLower, " ", "")) {
		return true
	}
	for _, word := range strings.Fields(skillLower) {
		if strings.Contains(resumeLower, word) {
			return true
		}
	}
	return false
}

// evaluateExperience maps the requirement's experience-level label to a
// required-years figure and scores the candidate against it.
func (e *Engine) evaluateExperience(candidateYears int, requiredLevel string) types.ExperienceMatch {
	var requiredYears float64
	switch {
	case strings.Contains(requiredLevel, "5+"):
		requiredYears = 5
	case strings.Contains(requiredLevel, "0-2"):
		requiredYears = 1
	default: // 2-5 years band
		requiredYears = 3.5
	}

	years := float64(candidateYears)
	var score float64
	if years >= requiredYears {
		score = math.Min(100, years/requiredYears*100)
	} else {
		score = math.Max(0, years/requiredYears*100)
	}

	var assessment string
	switch {
	case years >= requiredYears*1.5:
		assessment = "Overqualified"
	case years >= requiredYears:
		assessment = "Well Qualified"
	case years >= requiredYears*0.7:
		assessment = "Moderately Qualified"
	default:
		assessment = "Underqualified"
	}

	return types.ExperienceMatch{
		Score:         round2(score),
		RequiredYears: requiredYears,
		Assessment:    assessment,
		GapYears:      years - requiredYears,
	}
}

// assessCulturalFit scans the combined cover letter and resume for the
// configured keyword categories. Each category caps at 100 (5 keywords).
func (e *Engine) assessCulturalFit(coverLetter, resumeText string) types.CulturalFit {
	combined := strings.ToLower(coverLetter + " " + resumeText)

	categoryScores := make(map[string]float64, len(e.categories))
	var total float64
	for _, cat := range e.categories {
		count := 0
		for _, keyword := range cat.Keywords {
			if strings.Contains(combined, strings.ToLower(keyword)) {
				count++
			}
		}
		score := math.Min(100, float64(count*20))
		categoryScores[cat.Name] = score
		total += score
	}

	var overall float64
	if len(e.categories) > 0 {
		overall = total / float64(len(e.categories))
	}

	var assessment string
	switch {
	case overall >= 80:
		assessment = "Excellent Cultural Fit"
	case overall >= 60:
		assessment = "Good Cultural Fit"
	case overall >= 40:
		assessment = "Moderate Cultural Fit"
	default:
		assessment = "Limited Cultural Fit"
	}

	strengths := []string{}
	growthAreas := []string{}
	for _, cat := range e.categories {
		switch score := categoryScores[cat.Name]; {
		case score >= 60:
			strengths = append(strengths, cat.Name)
		case score < 40:
			growthAreas = append(growthAreas, cat.Name)
		}
	}

	return types.CulturalFit{
		Score:          round2(overall),
		CategoryScores: categoryScores,
		Assessment:     assessment,
		Strengths:      strengths,
		GrowthAreas:    growthAreas,
	}
}

// overallScore applies the configured weights to the three sub-scores.
func (e *Engine) overallScore(skillScore, experienceScore, culturalScore float64) float64 {
	return round2(skillScore*e.weights.TechnicalSkills +
		experienceScore*e.weights.Experience +
		culturalScore*e.weights.CulturalFit)
}

// Recommendation maps an overall score to its recommendation tier. Tier
// boundaries are closed on the lower bound.
func (e *Engine) Recommendation(overallScore float64) string {
	switch {
	case overallScore >= e.thresholds.StrongRecommend:
		return "Strongly Recommend - Move to Technical Assessment"
	case overallScore >= e.thresholds.Recommend:
		return "Recommend - Move to HR Interview"
	case overallScore >= e.thresholds.Consider:
		return "Consider - Additional Screening Required"
	default:
		return "Not Recommended - Does Not Meet Requirements"
	}
}

// Advances reports whether a recommendation moves the candidate forward to
// interview scheduling. This is deliberately a prefix test on the
// recommendation text, not a numeric re-check.
func Advances(recommendation string) bool {
	return strings.HasPrefix(recommendation, "Strongly Recommend") ||
		strings.HasPrefix(recommendation, "Recommend")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
