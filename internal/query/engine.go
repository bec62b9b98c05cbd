// Package query turns the contexts reported by kubectl into ranked launcher
// items and performs the action attached to a selected item.
package query

import (
	"context"
	"strings"

	"github.com/renato0307/kswitch/internal/kubeconfig"
	"github.com/renato0307/kswitch/internal/logging"
)

// Source reports the contexts kubectl knows about
type Source interface {
	CurrentContext(ctx context.Context) (string, error)
	ListContexts(ctx context.Context) ([]string, error)
}

// DetailsProvider returns kubeconfig metadata keyed by context name
type DetailsProvider interface {
	Load() (map[string]kubeconfig.ContextInfo, error)
}

// Engine answers launcher queries
type Engine struct {
	source  Source
	details DetailsProvider
}

// NewEngine creates a query engine. details may be nil.
func NewEngine(source Source, details DetailsProvider) *Engine {
	return &Engine{
		source:  source,
		details: details,
	}
}

// Query returns the items for a search term. It never fails: a Source
// error becomes a single error item.
func (e *Engine) Query(ctx context.Context, term string) []Item {
	term = strings.TrimSpace(term)
	timing := logging.Start("query")

	var items []Item
	var err error
	if term == "" {
		items, err = e.all(ctx)
	} else {
		items, err = e.filtered(ctx, term)
	}

	if err != nil {
		logging.Warn("query failed", "term", term, "error", err)
		return []Item{errorItem(err)}
	}

	e.annotate(items)
	logging.EndWithCount(timing, len(items))
	return items
}

// all lists the active context first, then every other context
func (e *Engine) all(ctx context.Context) ([]Item, error) {
	current, err := e.source.CurrentContext(ctx)
	if err != nil {
		return nil, err
	}
	contexts, err := e.source.ListContexts(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(contexts)+1)
	items = append(items, Item{
		Title:    "Current: " + current,
		Subtitle: "Current Kubernetes context",
		Context:  current,
		Current:  true,
		Score:    ScoreCurrent,
		Action:   NoAction(),
	})

	for _, name := range contexts {
		if name == current {
			continue
		}
		items = append(items, switchItem(name))
	}

	return items, nil
}

// filtered lists contexts containing term, case-insensitively. The active
// context stays in the result but offers no switch.
func (e *Engine) filtered(ctx context.Context, term string) ([]Item, error) {
	contexts, err := e.source.ListContexts(ctx)
	if err != nil {
		return nil, err
	}
	matches := Filter(contexts, term)

	current, err := e.source.CurrentContext(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(matches))
	for _, name := range matches {
		if name == current {
			items = append(items, Item{
				Title:    name + " (current)",
				Subtitle: "Current context",
				Context:  name,
				Current:  true,
				Score:    ScoreCurrentMatch,
				Action:   NoAction(),
			})
			continue
		}
		items = append(items, switchItem(name))
	}

	return items, nil
}

// Suggest returns close fuzzy matches for a term that matched nothing.
// Errors are logged and yield no suggestions.
func (e *Engine) Suggest(ctx context.Context, term string) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	contexts, err := e.source.ListContexts(ctx)
	if err != nil {
		logging.Debug("suggest: list contexts failed", "error", err)
		return nil
	}
	return logging.TimeWithResult("suggest", func() []string {
		return Suggest(term, contexts, MaxSuggestions)
	})
}

// annotate fills in kubeconfig details. Failures leave items unchanged.
func (e *Engine) annotate(items []Item) {
	if e.details == nil || len(items) == 0 {
		return
	}

	details, err := e.details.Load()
	if err != nil {
		logging.Debug("kubeconfig details unavailable", "error", err)
		return
	}

	for i := range items {
		if info, ok := details[items[i].Context]; ok {
			items[i].Detail = info.Describe()
		}
	}
}

// Filter returns the contexts containing term case-insensitively, in order
func Filter(contexts []string, term string) []string {
	needle := strings.ToLower(term)
	matches := make([]string, 0, len(contexts))
	for _, name := range contexts {
		if strings.Contains(strings.ToLower(name), needle) {
			matches = append(matches, name)
		}
	}
	return matches
}

func switchItem(name string) Item {
	return Item{
		Title:    name,
		Subtitle: "Switch to " + name,
		Context:  name,
		Score:    ScoreSwitch,
		Action:   SwitchAction(name),
	}
}

func errorItem(err error) Item {
	return Item{
		Title:    "Error",
		Subtitle: err.Error(),
		IsError:  true,
		Score:    ScoreError,
		Action:   NoAction(),
	}
}
