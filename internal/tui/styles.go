package tui

import "github.com/charmbracelet/lipgloss"

// Gradient Space palette
var (
	Ink     = lipgloss.Color("#1b1f3b")
	Paper   = lipgloss.Color("#f7f7fb")
	Violet  = lipgloss.Color("#6c5ce7")
	Teal    = lipgloss.Color("#00b894")
	Muted   = lipgloss.Color("#8a8fa8")
	Gold    = lipgloss.Color("#fdcb6e")
	Danger  = lipgloss.Color("#e17055")
	Divider = lipgloss.Color("#3d4268")
)

// Styles holds every style the model draws with
type Styles struct {
	Banner       lipgloss.Style
	Tab          lipgloss.Style
	ActiveTab    lipgloss.Style
	Title        lipgloss.Style
	Text         lipgloss.Style
	Pending      lipgloss.Style
	Card         lipgloss.Style
	CardElevated lipgloss.Style
	Price        lipgloss.Style
	Stars        lipgloss.Style
	StarsOff     lipgloss.Style
	Label        lipgloss.Style
	Focused      lipgloss.Style
	Button       lipgloss.Style
	ButtonHover  lipgloss.Style
	Error        lipgloss.Style
	Success      lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the standard styles
func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Divider).
		Padding(0, 1).
		MarginTop(1)

	button := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(Paper).
		Background(Divider)

	return Styles{
		Banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(Paper).
			Background(Ink).
			Padding(1, 2),
		Tab:       lipgloss.NewStyle().Padding(0, 2).Foreground(Muted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(Paper).Background(Violet),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(Violet).MarginTop(1),
		Text:      lipgloss.NewStyle(),
		Pending:   lipgloss.NewStyle().Faint(true),
		Card:      card,
		// Elevated cards trade the top margin for a bottom one so the row keeps its height
		CardElevated: card.
			BorderForeground(Violet).
			MarginTop(0).
			MarginBottom(1),
		Price:       lipgloss.NewStyle().Bold(true).Foreground(Teal),
		Stars:       lipgloss.NewStyle().Foreground(Gold),
		StarsOff:    lipgloss.NewStyle().Foreground(Muted),
		Label:       lipgloss.NewStyle().Foreground(Muted).Width(10),
		Focused:     lipgloss.NewStyle().Foreground(Violet).Bold(true),
		Button:      button,
		ButtonHover: button.Background(Violet).Bold(true),
		Error:       lipgloss.NewStyle().Foreground(Danger),
		Success:     lipgloss.NewStyle().Foreground(Teal).Bold(true),
		Help:        lipgloss.NewStyle().Foreground(Muted),
	}
}
