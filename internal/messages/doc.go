// Package messages defines how results and errors travel between the layers
// of kswitch.
//
// # Tool layer (internal/kubectl)
//
// Return *kubectl.ToolError for every failed kubectl invocation. The message
// is what the user sees, so it carries kubectl's stderr verbatim:
//
//	if err := cmd.Wait(); err != nil {
//	    return "", &ToolError{Op: op, Message: "kubectl error: " + stderr, Err: err}
//	}
//
// # Query layer (internal/query)
//
// The engine is the only place errors are swallowed: any Source failure is
// turned into a single "Error" item so launchers always get a result list.
// Dispatch returns switch errors untouched; it does not decide how to show
// them.
//
// # Launcher layer (internal/launcher)
//
// Return a tea.Cmd that produces a StatusMsg. Use the helpers in this package
// rather than building StatusMsg values by hand:
//
//	message, err := dispatcher.Dispatch(ctx, item)
//	if err != nil {
//	    return messages.ErrorCmd("%v", err)
//	}
//	return messages.SuccessCmd("%s", message)
//
// # CLI layer (internal/cli)
//
// Return errors from RunE, wrapped with context via WrapError. main prints
// them in red and exits with status 1.
package messages
