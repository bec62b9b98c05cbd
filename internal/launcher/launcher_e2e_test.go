package launcher

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/renato0307/kswitch/internal/kubectl"
	"github.com/renato0307/kswitch/internal/query"
	"github.com/renato0307/kswitch/internal/testutil"
)

func TestLauncher_SwitchEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping launcher e2e test in short mode")
	}

	fake := testutil.NewFakeKubectl(t, []string{"dev", "staging", "prod"}, "staging")
	client := kubectl.NewClient(kubectl.NewExecutor(fake.Path, kubectl.ExecutorOptions{}))
	model := New(Deps{
		Querier:    query.NewEngine(client, nil),
		Dispatcher: query.NewDispatcher(client),
		Clipboard:  func(string) error { return nil },
	}, "")

	tp := testutil.NewTestProgram(t, model, 100, 30)

	if !tp.WaitForOutput("Current: staging", 5*time.Second) {
		t.Fatalf("initial results not rendered:\n%s", tp.Output())
	}

	tp.Type("prod")
	if !tp.WaitForOutput("Switch to prod", 5*time.Second) {
		t.Fatalf("filtered results not rendered:\n%s", tp.Output())
	}

	tp.SendKey(tea.KeyEnter)
	if !tp.WaitForOutput("Switched to context: prod", 5*time.Second) {
		t.Fatalf("switch confirmation not rendered:\n%s", tp.Output())
	}
	assert.Equal(t, "prod", fake.Current(t))

	// The list is re-queried after the switch
	assert.True(t, tp.WaitForOutput("prod (current)", 5*time.Second))
}
