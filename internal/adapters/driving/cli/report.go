package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
	"github.com/medbank-labs/medbank-cli/internal/core/ports/driving"
)

// Report colours, kept to a small palette that reads on light and dark
// terminals.
var (
	reportTitleStyle   = lipgloss.NewStyle().Bold(true)
	reportSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
	reportErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	reportWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	reportSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	reportMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// renderLoadReport prints the human-readable lint report.
func renderLoadReport(cmd *cobra.Command, report *driving.LoadReport) {
	cmd.Println(reportTitleStyle.Render("Corpus Report"))
	cmd.Printf("  %d candidate records, %d loaded\n", report.Candidates, report.Loaded)
	cmd.Println()

	if len(report.SourceErrors) > 0 {
		cmd.Println(reportSectionStyle.Render("Undecodable files"))
		for _, msg := range report.SourceErrors {
			cmd.Printf("  %s %s\n", reportErrorStyle.Render("✗"), msg)
		}
		cmd.Println()
	}

	if len(report.Issues) > 0 {
		cmd.Println(reportSectionStyle.Render("Validation issues"))
		for _, issue := range report.Issues {
			cmd.Printf("  %s %s\n", renderSeverity(issue.Severity), issue.String())
		}
		cmd.Println()
	}

	if len(report.Duplicates) > 0 {
		cmd.Println(reportSectionStyle.Render("Duplicate ids"))
		for _, dup := range report.Duplicates {
			cmd.Printf("  %s %s\n", reportErrorStyle.Render("✗"), dup.Error())
		}
		cmd.Println()
	}

	if len(report.Integrity) > 0 {
		cmd.Println(reportSectionStyle.Render("Dangling cross-references"))
		for _, issue := range report.Integrity {
			cmd.Printf("  %s %s\n", reportWarningStyle.Render("!"), issue.String())
		}
		cmd.Println()
	}

	switch {
	case report.ErrorCount() > 0:
		cmd.Println(reportErrorStyle.Render("FAIL") + reportMutedStyle.Render(
			renderCounts(report.ErrorCount(), report.WarningCount(), len(report.Integrity))))
	case report.WarningCount() > 0 || len(report.Integrity) > 0:
		cmd.Println(reportSuccessStyle.Render("PASS") + reportMutedStyle.Render(
			renderCounts(0, report.WarningCount(), len(report.Integrity))))
	default:
		cmd.Println(reportSuccessStyle.Render("PASS") + reportMutedStyle.Render(" - corpus is clean"))
	}
}

func renderSeverity(sev domain.Severity) string {
	if sev == domain.SeverityError {
		return reportErrorStyle.Render("✗")
	}
	return reportWarningStyle.Render("!")
}

func renderCounts(errs, warns, dangling int) string {
	out := ""
	if errs > 0 {
		out += plural(" - %d error", errs)
	}
	if warns > 0 {
		out += plural(" - %d warning", warns)
	}
	if dangling > 0 {
		out += plural(" - %d dangling reference", dangling)
	}
	return out
}

func plural(format string, n int) string {
	if n != 1 {
		format += "s"
	}
	return fmt.Sprintf(format, n)
}
