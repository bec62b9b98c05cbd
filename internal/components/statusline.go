package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/kswitch/internal/types"
	"github.com/renato0307/kswitch/internal/ui"
)

// StatusLine shows one status message at a time. Loading messages animate a
// spinner; other messages clear themselves after StatusDisplayDuration.
type StatusLine struct {
	message     string
	messageType types.MessageType
	messageID   int
	width       int
	theme       *ui.Theme
	spinner     spinner.Model
}

// NewStatusLine creates a new status line
func NewStatusLine(theme *ui.Theme) *StatusLine {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"✽", "✻", "✶", "·", "✢"},
		FPS:    time.Second / 6,
	}
	s.Style = lipgloss.NewStyle()

	return &StatusLine{
		theme:   theme,
		spinner: s,
	}
}

// Set shows msg and returns the command that animates or clears it
func (sl *StatusLine) Set(msg types.StatusMsg) tea.Cmd {
	sl.message = msg.Message
	sl.messageType = msg.Type
	sl.messageID++

	if msg.Type == types.MessageTypeLoading {
		return sl.spinner.Tick
	}

	id := sl.messageID
	return tea.Tick(StatusDisplayDuration, func(time.Time) tea.Msg {
		return types.ClearStatusMsg{MessageID: id}
	})
}

// Clear removes the message if it is still the one identified by id
func (sl *StatusLine) Clear(id int) {
	if id != sl.messageID {
		return
	}
	sl.message = ""
	sl.messageType = types.MessageTypeInfo
}

// Message returns the current text and type
func (sl *StatusLine) Message() (string, types.MessageType) {
	return sl.message, sl.messageType
}

// IsLoading returns true if the current message is a loading message
func (sl *StatusLine) IsLoading() bool {
	return sl.message != "" && sl.messageType == types.MessageTypeLoading
}

// SetWidth sets the component width
func (sl *StatusLine) SetWidth(width int) {
	sl.width = width
}

// Update advances the spinner while a loading message is shown
func (sl *StatusLine) Update(msg tea.Msg) tea.Cmd {
	if !sl.IsLoading() {
		return nil
	}
	var cmd tea.Cmd
	sl.spinner, cmd = sl.spinner.Update(msg)
	return cmd
}

// View renders the message, or an empty line to reserve space
func (sl *StatusLine) View() string {
	if sl.message == "" {
		return lipgloss.NewStyle().Width(sl.width).Render("")
	}

	var spinnerView string
	if sl.IsLoading() {
		spinnerView = sl.spinner.View()
	}
	return ui.RenderMessage(sl.message, sl.messageType, sl.theme, spinnerView, sl.width)
}
