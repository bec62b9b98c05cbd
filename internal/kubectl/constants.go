package kubectl

// DefaultCommand is the bare executable name, resolved through PATH
const DefaultCommand = "kubectl"

// Subcommand arguments. The exact spelling matters: other tools parse the
// same output, and kubectl rejects unknown spellings.
var (
	currentContextArgs = []string{"config", "current-context"}
	getContextsArgs    = []string{"config", "get-contexts", "-o", "name"}
)

func useContextArgs(name string) []string {
	return []string{"config", "use-context", name}
}
