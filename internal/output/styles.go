package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// colorCyan is used for identifiable nouns: spec names, paths.
	colorCyan = lipgloss.Color("14")

	// colorGreen is used for successful outcomes.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for prompts and skipped items.
	ColorYellow = lipgloss.Color("220")

	// colorRed is used for deletions.
	colorRed = lipgloss.Color("196")

	// colorBoldRed is used for failures (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark.
	colorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (spec names, template paths).
	StyleNoun = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim styles structural chrome (sources, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StylePrompt styles interactive questions.
	StylePrompt = lipgloss.NewStyle().Bold(true).Foreground(ColorYellow)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Status words used in command output.
const (
	StatusCreated = "Created"
	StatusDeleted = "Deleted"
	StatusSkipped = "Skipping"
	StatusValid   = "ok"
	statusFailed  = "failed"
)

// statusStyle returns the lipgloss style for a status word.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated, StatusValid:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusDeleted:
		return lipgloss.NewStyle().Foreground(colorRed)
	case statusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatStatus renders "<Status> <name>", for example "Deleted rust-cli".
func FormatStatus(status, name string) string {
	return statusStyle(status).Render(status) + " " + name
}

// FormatVetCheck renders one line of vet output: "<name>: ok" on success,
// "<name>: <issue>" otherwise.
func FormatVetCheck(name, issue string) string {
	if issue == "" {
		return StyleNoun.Render(name) + ": " + statusStyle(StatusValid).Render(StatusValid)
	}
	return StyleNoun.Render(name) + ": " + statusStyle(statusFailed).Render(issue)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}
