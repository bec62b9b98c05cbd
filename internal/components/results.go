package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/kswitch/internal/query"
	"github.com/renato0307/kswitch/internal/ui"
)

// ResultList renders query items in descending score order with a
// selection cursor and a scrolling window.
type ResultList struct {
	items        []query.Item
	index        int
	scrollOffset int // First visible item index
	theme        *ui.Theme
	width        int
}

// NewResultList creates an empty result list
func NewResultList(theme *ui.Theme) *ResultList {
	return &ResultList{
		items: []query.Item{},
		theme: theme,
	}
}

// SetWidth updates the list width
func (r *ResultList) SetWidth(width int) {
	r.width = width
}

// SetItems replaces the items, sorted by score, and resets the cursor
func (r *ResultList) SetItems(items []query.Item) {
	r.items = query.SortByScore(items)
	r.index = 0
	r.scrollOffset = 0
}

// Items returns the items in display order
func (r *ResultList) Items() []query.Item {
	return r.items
}

// NavigateUp moves selection up, scrolling if the cursor leaves the window
func (r *ResultList) NavigateUp() {
	if r.index > 0 {
		r.index--
		if r.index < r.scrollOffset {
			r.scrollOffset = r.index
		}
	}
}

// NavigateDown moves selection down, scrolling if the cursor leaves the window
func (r *ResultList) NavigateDown() {
	if r.index < len(r.items)-1 {
		r.index++
		maxVisibleIndex := r.scrollOffset + MaxVisibleResults - 1
		if r.index > maxVisibleIndex {
			r.scrollOffset = r.index - MaxVisibleResults + 1
		}
	}
}

// Selected returns the highlighted item, or false when the list is empty
func (r *ResultList) Selected() (query.Item, bool) {
	if r.index >= 0 && r.index < len(r.items) {
		return r.items[r.index], true
	}
	return query.Item{}, false
}

// IsEmpty returns true if there are no items
func (r *ResultList) IsEmpty() bool {
	return len(r.items) == 0
}

// View renders the visible window of items
func (r *ResultList) View() string {
	if r.IsEmpty() {
		return ""
	}

	visibleEnd := min(r.scrollOffset+MaxVisibleResults, len(r.items))
	sections := make([]string, 0, visibleEnd-r.scrollOffset)

	for i := r.scrollOffset; i < visibleEnd; i++ {
		sections = append(sections, r.renderItem(r.items[i], i == r.index))
	}

	if hidden := len(r.items) - visibleEnd; hidden > 0 {
		sections = append(sections, r.theme.Help.Render(fmt.Sprintf("  … %d more", hidden)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r *ResultList) renderItem(item query.Item, selected bool) string {
	var title string
	switch {
	case selected:
		title = r.theme.Results.Selected.Render("▶ " + item.Title)
	case item.IsError:
		title = r.theme.Results.Error.Render(item.Title)
	case item.Current:
		title = r.theme.Results.Current.Render(item.Title)
	default:
		title = r.theme.Results.Item.Render(item.Title)
	}

	lines := []string{title, r.theme.Results.Subtitle.Render(item.Subtitle)}
	if item.Detail != "" {
		lines = append(lines, r.theme.Results.Detail.Render(item.Detail))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
