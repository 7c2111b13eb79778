package styles

import (
	"picren/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the terminal UI styles derived from one color theme.
type Styles struct {
	App        lipgloss.Style
	Title      lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Details    lipgloss.Style
	Help       lipgloss.Style
	Info       lipgloss.Style
	Error      lipgloss.Style

	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	Button       lipgloss.Style
	ActiveButton lipgloss.Style
}

// Theme holds the styles in use. Call Use to switch colors.
var Theme = New(config.GetTheme("default"))

// Use switches Theme to a color table as returned by Config.ThemeColors.
func Use(colors map[string]string) {
	Theme = New(colors)
}

// New builds styles from a theme color table as returned by config.GetTheme
// or Config.ThemeColors.
func New(colors map[string]string) Styles {
	primary := lipgloss.Color(colors["primary"])
	border := lipgloss.Color(colors["border"])

	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors["emphasis"])).
			Bold(true),
		Unselected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Details: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors["info"])),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors["error"])),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Button: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")),
		ActiveButton: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(primary),
	}
}
