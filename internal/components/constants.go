package components

import "time"

// UI component constants
const (
	// MaxVisibleResults is the number of results shown before the list
	// scrolls. Each result takes up to three lines.
	MaxVisibleResults = 8

	// StatusDisplayDuration is how long success, error and info messages stay
	// on screen before clearing. Loading messages stay until replaced.
	StatusDisplayDuration = 5 * time.Second
)
