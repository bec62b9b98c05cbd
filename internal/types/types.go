package types

import (
	"github.com/renato0307/kswitch/internal/query"
)

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
	MessageTypeLoading // Loading state with spinner
)

type StatusMsg struct {
	Message string
	Type    MessageType
}

type ClearStatusMsg struct {
	MessageID int // Only clear if this matches the current message ID
}

// Helper functions for creating status messages

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}

// LoadingMsg creates a loading status message (with spinner)
func LoadingMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeLoading}
}

// Query messages

// QueryResultMsg carries the items for a search term
type QueryResultMsg struct {
	Term        string
	Items       []query.Item
	Suggestions []string // Fuzzy hints when a search matched nothing
}

// Context management messages

// ContextSwitchCompleteMsg signals a successful context switch
type ContextSwitchCompleteMsg struct {
	Context string
	Message string
}

// ContextSwitchFailedMsg signals a failed context switch
type ContextSwitchFailedMsg struct {
	Context string
	Error   error
}
