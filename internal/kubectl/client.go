package kubectl

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/renato0307/kswitch/internal/logging"
)

// Client reads and switches kubectl contexts. Nothing is cached: every call
// re-runs kubectl so results reflect the live kubeconfig.
type Client struct {
	runner Runner
}

// NewClient creates a client backed by the given runner
func NewClient(runner Runner) *Client {
	return &Client{runner: runner}
}

// CurrentContext returns the active context name
func (c *Client) CurrentContext(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, currentContextArgs...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ListContexts returns all context names in the order kubectl prints them
func (c *Client) ListContexts(ctx context.Context) ([]string, error) {
	out, err := c.runner.Run(ctx, getContextsArgs...)
	if err != nil {
		return nil, err
	}
	contexts := parseLines(out)
	logging.Debug("listed contexts", "count", len(contexts))
	return contexts, nil
}

// SwitchTo makes name the active context. The name is not validated here;
// kubectl rejects unknown contexts and that rejection is returned as a
// *ToolError.
func (c *Client) SwitchTo(ctx context.Context, name string) error {
	if _, err := c.runner.Run(ctx, useContextArgs(name)...); err != nil {
		return withPrefix(err, "failed to switch context")
	}
	logging.Info("switched context", "context", name)
	return nil
}

// parseLines splits output into trimmed, non-empty lines
func parseLines(output string) []string {
	lines := strings.Split(output, "\n")
	return lo.Compact(lo.Map(lines, func(line string, _ int) string {
		return strings.TrimSpace(line)
	}))
}
