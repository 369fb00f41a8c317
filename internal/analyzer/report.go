package analyzer

import (
	"fmt"
	"strings"
)

// MarkdownReport renders the recruitment analysis as a markdown document,
// one narrative section per opening.
func MarkdownReport(openings []Opening) string {
	if len(openings) == 0 {
		return "No recruitment needs identified."
	}

	var b strings.Builder

	b.WriteString("# Recruitment Analysis Report\n\n")
	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "Total job openings: %d\n\n", len(openings))
	b.WriteString("## Job Openings Details\n")

	for _, opening := range openings {
		req := opening.Requirement

		fmt.Fprintf(&b, "\n### %s - %s\n", req.Position, req.Department)
		fmt.Fprintf(&b, "- **Employee**: %s (ID: %s)\n", opening.EmployeeName, opening.EmployeeID)
		fmt.Fprintf(&b, "- **Last Working Day**: %s\n", req.LastWorkingDay)
		fmt.Fprintf(&b, "- **Salary Range**: %s\n", opening.SalaryRange)
		fmt.Fprintf(&b, "- **Priority**: %s\n", req.Priority)
		fmt.Fprintf(&b, "- **Experience Required**: %s\n\n", req.ExperienceLevel)

		b.WriteString("#### Required Skills:\n")
		for _, skill := range req.RequiredSkills {
			fmt.Fprintf(&b, "- %s\n", skill)
		}

		b.WriteString("\n#### Job Description:\n")
		b.WriteString(req.JobPosting)
		b.WriteString("\n\n---\n")
	}

	return b.String()
}
