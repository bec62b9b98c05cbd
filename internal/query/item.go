package query

import "sort"

// Scores used to rank items. Consumers render items in descending score
// order; the engine itself never sorts.
const (
	ScoreCurrent      = 100 // Active context, empty search
	ScoreSwitch       = 90  // Any context that can be switched to
	ScoreCurrentMatch = 80  // Active context matched by a search term
	ScoreError        = 0
)

// ActionKind tells what selecting an item does
type ActionKind int

const (
	ActionNone   ActionKind = iota // Selecting the item is a no-op
	ActionSwitch                   // Selecting the item switches context
)

// Action describes the effect of selecting an item. It carries data only;
// Dispatcher performs the effect.
type Action struct {
	Kind    ActionKind
	Context string // Target context for ActionSwitch
}

// NoAction returns an action that does nothing
func NoAction() Action {
	return Action{Kind: ActionNone}
}

// SwitchAction returns an action that switches to the named context
func SwitchAction(name string) Action {
	return Action{Kind: ActionSwitch, Context: name}
}

// IsNone returns true when selecting the item does nothing
func (a Action) IsNone() bool {
	return a.Kind == ActionNone
}

// Item is a single query result. Items are created per query and never kept.
type Item struct {
	Title    string
	Subtitle string
	Detail   string // Kubeconfig summary, empty when unavailable
	Context  string // Context name, empty for the error item
	Current  bool
	IsError  bool
	Score    int
	Action   Action
}

// SortByScore returns a copy of items in descending score order, keeping
// the engine's order among equal scores
func SortByScore(items []Item) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted
}
