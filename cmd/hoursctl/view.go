// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/billable-hours/internal/hours"
	"github.com/MKhiriev/billable-hours/models"
	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 30

var (
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func renderStats(s models.CycleStats) string {
	rows := [][2]string{
		{"Logged", fmt.Sprintf("%s (%s h)", hours.Format(s.TotalHours), hours.FormatDecimal(s.TotalHours))},
		{"Goal", fmt.Sprintf("%s (%s h)", hours.Format(s.MonthlyGoal), hours.FormatDecimal(s.MonthlyGoal))},
		{"Remaining", fmt.Sprintf("%s (%s h)", hours.Format(s.RemainingHours), hours.FormatDecimal(s.RemainingHours))},
		{"Progress", progressBar(s.ProgressPercentage)},
	}
	return renderTable(s.CycleName, rows)
}

func renderTable(title string, rows [][2]string) string {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, titleStyle.Render(title), "")
	for _, r := range rows {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("%-*s", width, r[0]))+"  "+r[1])
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// progressBar draws percent as a fixed width bar, clamped to a full bar
// once the goal is exceeded.
func progressBar(percent float64) string {
	filled := int(percent / 100 * progressWidth)
	filled = min(max(filled, 0), progressWidth)

	bar := barStyle.Render(strings.Repeat("█", filled)) + strings.Repeat("░", progressWidth-filled)
	return fmt.Sprintf("%s %.1f%%", bar, percent)
}
