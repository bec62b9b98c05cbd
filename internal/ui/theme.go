package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme and styles for the launcher
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// Status message colors
	MessageSuccess lipgloss.AdaptiveColor
	MessageError   lipgloss.AdaptiveColor
	MessageInfo    lipgloss.AdaptiveColor
	MessageLoading lipgloss.AdaptiveColor

	// Selected row colors
	SelectedForeground lipgloss.Color
	SelectedBackground lipgloss.Color

	// Component styles, derived from the colors above by applyStyles
	Results ResultStyles
	Title   lipgloss.Style
	Prompt  lipgloss.Style
	Hint    lipgloss.Style
	Help    lipgloss.Style
}

// ResultStyles defines styles for the result list
type ResultStyles struct {
	Item     lipgloss.Style
	Selected lipgloss.Style
	Subtitle lipgloss.Style
	Detail   lipgloss.Style
	Current  lipgloss.Style
	Error    lipgloss.Style
}

// applyStyles builds component styles from the theme colors
func (t *Theme) applyStyles() *Theme {
	t.Results.Item = lipgloss.NewStyle().
		Foreground(t.Foreground).
		PaddingLeft(2)

	t.Results.Selected = lipgloss.NewStyle().
		Foreground(t.SelectedForeground).
		Background(t.SelectedBackground).
		PaddingLeft(1).
		PaddingRight(1).
		Bold(true)

	t.Results.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		PaddingLeft(4)

	t.Results.Detail = lipgloss.NewStyle().
		Foreground(t.Secondary).
		PaddingLeft(4)

	t.Results.Current = lipgloss.NewStyle().
		Foreground(t.Success).
		PaddingLeft(2).
		Bold(true)

	t.Results.Error = lipgloss.NewStyle().
		Foreground(t.Error).
		PaddingLeft(2).
		Bold(true)

	t.Title = lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Bold(true)

	t.Prompt = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.Hint = lipgloss.NewStyle().
		Foreground(t.Warning).
		Italic(true)

	t.Help = lipgloss.NewStyle().
		Foreground(t.Muted)

	return t
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	t := &Theme{Name: "charm"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#F780E2", Dark: "#F780E2"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	t.Muted = lipgloss.AdaptiveColor{Light: "243", Dark: "243"}
	t.Error = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	t.Success = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFAA00"}

	t.MessageSuccess = t.Success
	t.MessageError = t.Error
	t.MessageInfo = t.Secondary
	t.MessageLoading = t.Primary

	t.SelectedForeground = lipgloss.Color("229")
	t.SelectedBackground = lipgloss.Color("57")

	return t.applyStyles()
}

// ThemeDracula returns a Dracula-inspired theme
func ThemeDracula() *Theme {
	t := &Theme{Name: "dracula"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#8be9fd", Dark: "#8be9fd"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#ff79c6", Dark: "#ff79c6"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#f8f8f2"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"}
	t.Error = lipgloss.AdaptiveColor{Light: "#ff5555", Dark: "#ff5555"}
	t.Success = lipgloss.AdaptiveColor{Light: "#50fa7b", Dark: "#50fa7b"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#f1fa8c", Dark: "#f1fa8c"}

	t.MessageSuccess = t.Success
	t.MessageError = t.Error
	t.MessageInfo = t.Secondary
	t.MessageLoading = t.Accent

	t.SelectedForeground = lipgloss.Color("#282a36")
	t.SelectedBackground = lipgloss.Color("#bd93f9")

	return t.applyStyles()
}

// ThemeNord returns a Nord-inspired theme
func ThemeNord() *Theme {
	t := &Theme{Name: "nord"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#81a1c1", Dark: "#81a1c1"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#b48ead", Dark: "#b48ead"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#eceff4"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#616e88"}
	t.Error = lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"}
	t.Success = lipgloss.AdaptiveColor{Light: "#a3be8c", Dark: "#a3be8c"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#d08770", Dark: "#ebcb8b"}

	t.MessageSuccess = t.Success
	t.MessageError = t.Error
	t.MessageInfo = t.Secondary
	t.MessageLoading = t.Primary

	t.SelectedForeground = lipgloss.Color("#2e3440")
	t.SelectedBackground = lipgloss.Color("#88c0d0")

	return t.applyStyles()
}

// GetTheme returns a theme by name, defaulting to Charm
func GetTheme(name string) *Theme {
	switch name {
	case "dracula":
		return ThemeDracula()
	case "nord":
		return ThemeNord()
	default:
		return ThemeCharm()
	}
}

// AvailableThemes returns a list of available theme names
func AvailableThemes() []string {
	return []string{"charm", "dracula", "nord"}
}
