// Package launcher is the interactive quick-launcher: a search box over the
// kubectl contexts, ranked results, and context switching on enter.
package launcher

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/kswitch/internal/components"
	"github.com/renato0307/kswitch/internal/keyboard"
	"github.com/renato0307/kswitch/internal/logging"
	"github.com/renato0307/kswitch/internal/messages"
	"github.com/renato0307/kswitch/internal/query"
	"github.com/renato0307/kswitch/internal/types"
	"github.com/renato0307/kswitch/internal/ui"
)

// Querier produces launcher items for a search term
type Querier interface {
	Query(ctx context.Context, term string) []query.Item
	Suggest(ctx context.Context, term string) []string
}

// Dispatcher performs the action of a selected item
type Dispatcher interface {
	Dispatch(ctx context.Context, item query.Item) (string, error)
}

// Deps holds launcher dependencies
type Deps struct {
	Querier    Querier
	Dispatcher Dispatcher
	Theme      *ui.Theme
	Keys       *keyboard.Keys
	Clipboard  func(text string) error // defaults to the system clipboard
}

// Model is the launcher's Bubble Tea model
type Model struct {
	deps      Deps
	input     textinput.Model
	results   *components.ResultList
	status    *components.StatusLine
	hint      string
	switching bool
	width     int
	height    int
}

// New creates the launcher model with an optional initial search term
func New(deps Deps, term string) Model {
	if deps.Theme == nil {
		deps.Theme = ui.ThemeCharm()
	}
	if deps.Keys == nil {
		deps.Keys = keyboard.Default()
	}
	if deps.Clipboard == nil {
		deps.Clipboard = clipboard.WriteAll
	}

	input := textinput.New()
	input.Placeholder = "search contexts"
	input.Prompt = deps.Theme.Prompt.Render("❯ ")
	input.SetValue(term)
	input.Focus()

	results := components.NewResultList(deps.Theme)
	status := components.NewStatusLine(deps.Theme)

	m := Model{
		deps:    deps,
		input:   input,
		results: results,
		status:  status,
	}
	m.setWidth(80)
	return m
}

// Run starts the launcher in the alternate screen and blocks until it exits
func Run(deps Deps, term string) error {
	p := tea.NewProgram(New(deps, term), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.queryCmd(m.input.Value()))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.setWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case types.QueryResultMsg:
		// Results for an older search term arrive after newer keystrokes
		if msg.Term != m.input.Value() {
			logging.Debug("discarding stale query result", "term", msg.Term)
			return m, nil
		}
		m.results.SetItems(msg.Items)
		m.hint = ""
		if len(msg.Suggestions) > 0 {
			m.hint = "Did you mean: " + strings.Join(msg.Suggestions, ", ") + "?"
		}
		return m, nil

	case types.ContextSwitchCompleteMsg:
		m.switching = false
		return m, tea.Batch(
			m.status.Set(types.SuccessMsg(msg.Message)),
			m.queryCmd(m.input.Value()),
		)

	case types.ContextSwitchFailedMsg:
		m.switching = false
		return m, m.status.Set(types.ErrorStatusMsg(msg.Error.Error()))

	case types.StatusMsg:
		return m, m.status.Set(msg)

	case types.ClearStatusMsg:
		m.status.Clear(msg.MessageID)
		return m, nil

	case spinner.TickMsg:
		return m, m.status.Update(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.deps.Keys

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		m.results.NavigateUp()
		return m, nil

	case key.Matches(msg, keys.Down):
		m.results.NavigateDown()
		return m, nil

	case key.Matches(msg, keys.Select):
		return m.selectItem()

	case key.Matches(msg, keys.Copy):
		item, ok := m.results.Selected()
		if !ok || item.Context == "" {
			return m, nil
		}
		return m, copyContextName(m.deps.Clipboard, item.Context)

	case key.Matches(msg, keys.Clear):
		if m.input.Value() == "" {
			return m, nil
		}
		m.input.SetValue("")
		return m, m.queryCmd("")
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.queryCmd(m.input.Value()))
	}
	return m, cmd
}

// selectItem dispatches the highlighted item's action. Items without an
// action do nothing; the active context only gets an info note.
func (m Model) selectItem() (tea.Model, tea.Cmd) {
	if m.switching {
		return m, nil
	}
	item, ok := m.results.Selected()
	if !ok {
		return m, nil
	}
	if item.Action.IsNone() {
		if item.Current {
			return m, messages.InfoCmd("Already using context: %s", item.Context)
		}
		return m, nil
	}

	m.switching = true
	return m, tea.Batch(
		m.status.Set(types.LoadingMsg("Switching to " + item.Action.Context + "…")),
		m.switchCmd(item),
	)
}

// queryCmd runs the engine off the UI goroutine
func (m Model) queryCmd(term string) tea.Cmd {
	querier := m.deps.Querier
	return func() tea.Msg {
		ctx := context.Background()
		items := querier.Query(ctx, term)

		var suggestions []string
		if len(items) == 0 {
			suggestions = querier.Suggest(ctx, term)
		}
		return types.QueryResultMsg{
			Term:        term,
			Items:       items,
			Suggestions: suggestions,
		}
	}
}

func (m Model) switchCmd(item query.Item) tea.Cmd {
	dispatcher := m.deps.Dispatcher
	return func() tea.Msg {
		message, err := dispatcher.Dispatch(context.Background(), item)
		if err != nil {
			return types.ContextSwitchFailedMsg{Context: item.Action.Context, Error: err}
		}
		return types.ContextSwitchCompleteMsg{Context: item.Action.Context, Message: message}
	}
}

// copyContextName copies name to the clipboard and reports the outcome
func copyContextName(write func(string) error, name string) tea.Cmd {
	return func() tea.Msg {
		if err := write(name); err != nil {
			return messages.ErrorCmd("failed to copy to clipboard: %v", err)()
		}
		return messages.SuccessCmd("Copied context name: %s", name)()
	}
}

func (m *Model) setWidth(width int) {
	m.input.Width = max(width-6, 10)
	m.results.SetWidth(width)
	m.status.SetWidth(width)
}

func (m Model) View() string {
	theme := m.deps.Theme

	sections := []string{
		theme.Title.Render("kswitch") + theme.Help.Render("  kubectl contexts"),
		"",
		m.input.View(),
		"",
	}

	if m.results.IsEmpty() && m.input.Value() != "" {
		sections = append(sections, theme.Help.Render("  No contexts match \""+m.input.Value()+"\""))
	} else {
		sections = append(sections, m.results.View())
	}

	if m.hint != "" {
		sections = append(sections, "", theme.Hint.Render("  "+m.hint))
	}

	sections = append(sections,
		"",
		m.status.View(),
		theme.Help.Render(m.deps.Keys.ShortHelp()),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
