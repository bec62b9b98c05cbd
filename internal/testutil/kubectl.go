package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// FakeKubectl is a shell script standing in for kubectl. It understands the
// three config subcommands kswitch uses and keeps its active context in a
// file next to the script.
type FakeKubectl struct {
	Path      string // Script path, pass to kubectl.NewExecutor
	stateFile string
	argsFile  string
}

const fakeKubectlScript = `#!/bin/sh
state="{{STATE}}"
printf '%s\n' "$*" > "{{ARGS}}"
if [ "$1" != "config" ]; then
  echo "error: unknown command \"$1\"" >&2
  exit 1
fi
case "$2" in
current-context)
  if [ -s "$state" ]; then
    cat "$state"
  else
    echo "error: current-context is not set" >&2
    exit 1
  fi
  ;;
get-contexts)
  printf '{{CONTEXTS}}'
  ;;
use-context)
  for c in {{NAMES}}; do
    if [ "$c" = "$3" ]; then
      printf '%s\n' "$3" > "$state"
      echo "Switched to context \"$3\"."
      exit 0
    fi
  done
  echo "error: no context exists with the name: \"$3\"" >&2
  exit 1
  ;;
*)
  echo "error: unknown config subcommand \"$2\"" >&2
  exit 1
  ;;
esac
`

// NewFakeKubectl writes a fake kubectl into a temp dir. contexts are printed
// by get-contexts in the given order; current may be empty to simulate a
// kubeconfig without current-context. Context names must not contain
// whitespace or quotes.
func NewFakeKubectl(t *testing.T, contexts []string, current string) *FakeKubectl {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake kubectl requires a POSIX shell")
	}

	dir := t.TempDir()
	fake := &FakeKubectl{
		Path:      filepath.Join(dir, "kubectl"),
		stateFile: filepath.Join(dir, "current-context"),
		argsFile:  filepath.Join(dir, "last-args"),
	}

	listing := ""
	for _, c := range contexts {
		listing += c + `\n`
	}

	script := strings.NewReplacer(
		"{{STATE}}", fake.stateFile,
		"{{ARGS}}", fake.argsFile,
		"{{CONTEXTS}}", listing,
		"{{NAMES}}", strings.Join(contexts, " "),
	).Replace(fakeKubectlScript)

	if err := os.WriteFile(fake.Path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake kubectl: %v", err)
	}
	if current != "" {
		if err := os.WriteFile(fake.stateFile, []byte(current+"\n"), 0o644); err != nil {
			t.Fatalf("write fake kubectl state: %v", err)
		}
	}

	return fake
}

// Current returns the context the fake considers active
func (f *FakeKubectl) Current(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.stateFile)
	if os.IsNotExist(err) {
		return ""
	}
	if err != nil {
		t.Fatalf("read fake kubectl state: %v", err)
	}
	return strings.TrimSpace(string(data))
}

// LastArgs returns the arguments of the most recent invocation
func (f *FakeKubectl) LastArgs(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.argsFile)
	if err != nil {
		t.Fatalf("read fake kubectl args: %v", err)
	}
	return strings.TrimSpace(string(data))
}

// MissingKubectl returns a path that does not exist, for start-failure tests
func MissingKubectl(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "no-such-kubectl")
}
