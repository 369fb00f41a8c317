package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"recruitflow/internal/types"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet    = "Summary"
	candidatesSheet = "Candidates"
)

// ExportWorkbook writes the recruitment summary and per-candidate screening
// results to an Excel workbook at outputPath.
func ExportWorkbook(summary *types.RecruitmentSummary, candidates []*types.Candidate, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath = outputPath + ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(candidatesSheet)

	if err := writeSummarySheet(f, summary); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeCandidatesSheet(f, candidates); err != nil {
		return fmt.Errorf("failed to create candidates sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		// Fall back to a buffered write when direct save fails.
		var buf bytes.Buffer
		if writeErr := f.Write(&buf); writeErr != nil {
			return fmt.Errorf("failed to save Excel file: direct save failed (%v), buffer write also failed: %w", err, writeErr)
		}
		if fileErr := os.WriteFile(outputPath, buf.Bytes(), 0644); fileErr != nil {
			return fmt.Errorf("failed to save Excel file: direct save failed (%v), file write failed: %w", err, fileErr)
		}
	}

	return nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
}

func tierStyle(f *excelize.File, fillColor string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{fillColor}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
}

func writeSummarySheet(f *excelize.File, summary *types.RecruitmentSummary) error {
	f.SetColWidth(summarySheet, "A", "A", 30)
	f.SetColWidth(summarySheet, "B", "B", 40)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	row := 1
	setLabeled := func(label string, value any) {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), label)
		f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), value)
		row++
	}
	section := func(title string) {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), title)
		f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), titleStyle)
		f.MergeCell(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
		row++
	}

	section("Recruitment Summary Report")
	row++

	setLabeled("Generated:", summary.GeneratedAt.Format("2006-01-02 15:04:05"))
	setLabeled("Total Candidates:", summary.TotalCandidates)
	setLabeled("Interview Completion Rate:", fmt.Sprintf("%.2f%%", summary.CompletionRate))
	setLabeled("Hiring Success Rate:", fmt.Sprintf("%.2f%%", summary.HireRate))
	setLabeled("Average Time to Hire:", summary.AvgTimeToHire)
	row++

	if len(summary.StatusCounts) > 0 {
		section("Candidates by Status")
		for status, count := range summary.StatusCounts {
			setLabeled(status+":", count)
		}
		row++
	}

	if len(summary.Insights.TopMissingSkills) > 0 {
		section("Most Commonly Missing Skills")
		for _, skill := range summary.Insights.TopMissingSkills {
			setLabeled(skill.Skill+":", skill.Count)
		}
		row++
	}

	if len(summary.Insights.ExperienceDistribution) > 0 {
		section("Experience Distribution")
		for assessment, count := range summary.Insights.ExperienceDistribution {
			setLabeled(assessment+":", count)
		}
	}

	return nil
}

func writeCandidatesSheet(f *excelize.File, candidates []*types.Candidate) error {
	widths := map[string]float64{
		"A": 12, "B": 25, "C": 22, "D": 22, "E": 12, "F": 12, "G": 12, "H": 12, "I": 40,
	}
	for col, width := range widths {
		f.SetColWidth(candidatesSheet, col, col, width)
	}

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	strongStyle, _ := tierStyle(f, "C6EFCE")
	goodStyle, _ := tierStyle(f, "FFEB9C")
	fairStyle, _ := tierStyle(f, "FFC7CE")
	weakStyle, _ := tierStyle(f, "FF9999")

	headers := []string{"ID", "Candidate", "Position", "Status", "Overall", "Skills", "Experience", "Culture", "Recommendation"}
	for col, h := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+col)))
		f.SetCellValue(candidatesSheet, cell, h)
		f.SetCellStyle(candidatesSheet, cell, cell, header)
	}

	for i, cand := range candidates {
		row := i + 2
		f.SetCellValue(candidatesSheet, fmt.Sprintf("A%d", row), cand.CandidateID)
		f.SetCellValue(candidatesSheet, fmt.Sprintf("B%d", row), cand.Name)
		f.SetCellValue(candidatesSheet, fmt.Sprintf("C%d", row), cand.Position)
		f.SetCellValue(candidatesSheet, fmt.Sprintf("D%d", row), cand.Status)

		var overall float64
		if cand.Screening != nil {
			overall = cand.Screening.OverallScore
			f.SetCellValue(candidatesSheet, fmt.Sprintf("E%d", row), fmt.Sprintf("%.2f", cand.Screening.OverallScore))
			f.SetCellValue(candidatesSheet, fmt.Sprintf("F%d", row), fmt.Sprintf("%.2f", cand.Screening.SkillMatch.Score))
			f.SetCellValue(candidatesSheet, fmt.Sprintf("G%d", row), fmt.Sprintf("%.2f", cand.Screening.Experience.Score))
			f.SetCellValue(candidatesSheet, fmt.Sprintf("H%d", row), fmt.Sprintf("%.2f", cand.Screening.CulturalFit.Score))
			f.SetCellValue(candidatesSheet, fmt.Sprintf("I%d", row), cand.Screening.Recommendation)
		}

		style := weakStyle
		switch {
		case overall >= 85:
			style = strongStyle
		case overall >= 70:
			style = goodStyle
		case overall >= 55:
			style = fairStyle
		}
		f.SetCellStyle(candidatesSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("I%d", row), style)
	}

	if len(candidates) > 0 {
		f.AutoFilter(candidatesSheet, fmt.Sprintf("A1:I%d", len(candidates)+1), []excelize.AutoFilterOptions{})
	}

	f.SetPanes(candidatesSheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	return nil
}
