package interview

import (
	"context"
	"fmt"
	"strings"

	"recruitflow/internal/ai"
	"recruitflow/internal/errors"
)

// QuestionGenerator produces interview questions per stage. AI-generated
// where a generator is configured, with static per-stage fallback lists
// otherwise. Reference checks always use the static list.
type QuestionGenerator struct {
	service *ai.Service
	logger  *errors.Logger
}

// NewQuestionGenerator creates a question generator. The service may be nil.
func NewQuestionGenerator(service *ai.Service, logger *errors.Logger) *QuestionGenerator {
	return &QuestionGenerator{service: service, logger: logger}
}

// ForStage returns the question list for one interview stage.
func (q *QuestionGenerator) ForStage(ctx context.Context, stage, position, department string) []string {
	if stage == StageReferenceCheck {
		return FallbackQuestions(stage)
	}
	if !q.service.Available() {
		return FallbackQuestions(stage)
	}

	prompt := BuildQuestionPrompt(stage, position, department)
	if prompt == "" {
		return FallbackQuestions(stage)
	}

	text, _, err := q.service.Generate(ctx, prompt)
	if err != nil {
		if q.logger != nil {
			q.logger.Warn("AI question generation failed, using static questions",
				"stage", stage,
				"position", position,
				"error", err.Error())
		}
		return FallbackQuestions(stage)
	}

	questions := ParseQuestionLines(text)
	if len(questions) == 0 {
		return FallbackQuestions(stage)
	}
	return questions
}

// BuildQuestionPrompt returns the stage-specific generation prompt, or ""
// for stages that never use AI generation.
func BuildQuestionPrompt(stage, position, department string) string {
	switch stage {
	case StageInitialScreening:
		return fmt.Sprintf(`Generate 5-7 initial screening questions for a %s position in %s.

Include questions about:
1. Basic qualifications and experience
2. Motivation for the role
3. Availability and salary expectations
4. Basic technical knowledge (if applicable)
5. Cultural fit indicators

Keep questions concise and professional.`, position, department)

	case StageTechnicalAssessment:
		return fmt.Sprintf(`Generate 8-10 technical questions for a %s position in %s.

Include:
1. Technical knowledge questions
2. Problem-solving scenarios
3. Practical experience questions
4. Technology-specific questions
5. Code review or technical discussion topics

Make questions relevant to the specific role and department.
Include both basic and advanced questions.`, position, department)

	case StageHRInterview:
		return fmt.Sprintf(`Generate 6-8 HR interview questions for a %s position in %s.

Include questions about:
1. Work style and preferences
2. Team collaboration
3. Conflict resolution
4. Career goals and growth
5. Work-life balance
6. Company values alignment

Focus on behavioral and situational questions.`, position, department)

	case StageFinalRound:
		return fmt.Sprintf(`Generate 5-7 final round interview questions for a %s position in %s.

Include:
1. Strategic thinking questions
2. Leadership and initiative questions
3. Company-specific questions
4. Long-term vision questions
5. Questions that demonstrate deep understanding

Make these more challenging and comprehensive than previous rounds.`, position, department)
	}

	return ""
}

// ParseQuestionLines extracts question lines from generated text. Lines
// prefixed with "-", "•", or a 1-10 numeric marker count; the marker is
// stripped from the result.
func ParseQuestionLines(text string) []string {
	var questions []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !hasQuestionMarker(line) {
			continue
		}
		question := strings.TrimSpace(strings.TrimLeft(line, "-•1234567890."))
		if question != "" {
			questions = append(questions, question)
		}
	}

	return questions
}

func hasQuestionMarker(line string) bool {
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") {
		return true
	}
	for n := 1; n <= 10; n++ {
		if strings.HasPrefix(line, fmt.Sprintf("%d.", n)) {
			return true
		}
	}
	return false
}

// FallbackQuestions returns the static question list for a stage.
func FallbackQuestions(stage string) []string {
	switch stage {
	case StageInitialScreening:
		return []string{
			"Tell us about your experience in this field.",
			"What interests you about this position?",
			"What are your salary expectations?",
			"When would you be available to start?",
			"What do you know about our company?",
		}
	case StageTechnicalAssessment:
		return []string{
			"Describe your experience with relevant technologies.",
			"How do you approach debugging complex issues?",
			"Explain a challenging project you worked on.",
			"What development methodologies do you prefer?",
			"How do you stay updated with industry trends?",
		}
	case StageHRInterview:
		return []string{
			"Describe your ideal work environment.",
			"How do you handle conflicts with colleagues?",
			"What motivates you in your work?",
			"Where do you see yourself in 5 years?",
			"How do you handle stress and pressure?",
		}
	case StageFinalRound:
		return []string{
			"How would you contribute to our company's growth?",
			"What innovative ideas do you have for this role?",
			"How do you see this department evolving?",
			"What challenges do you anticipate in this role?",
			"Why should we choose you over other candidates?",
		}
	case StageReferenceCheck:
		return []string{
			"How long did the candidate work with you?",
			"What were their key responsibilities?",
			"How would you rate their technical skills?",
			"How did they work in a team environment?",
			"What are their strengths and weaknesses?",
			"Would you hire them again? Why or why not?",
			"How did they handle challenges and pressure?",
		}
	}
	return []string{
		"Tell us about your experience.",
		"What interests you about this role?",
		"How do you approach challenges?",
		"What are your career goals?",
	}
}
