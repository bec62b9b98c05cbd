// Package kubeconfig reads context metadata (cluster, user, namespace) from
// kubeconfig files. It never decides which contexts exist or which one is
// active; kubectl stays the source of truth for that.
package kubeconfig

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"k8s.io/client-go/tools/clientcmd"
)

// ContextInfo holds context metadata from kubeconfig
type ContextInfo struct {
	Name      string
	Cluster   string
	User      string
	Namespace string
	Server    string
}

// Reader loads kubeconfig using kubectl's precedence: an explicit path,
// then $KUBECONFIG, then ~/.kube/config
type Reader struct {
	path string
}

// NewReader creates a reader. An empty path uses the default loading rules.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Load returns context details keyed by context name
func (r *Reader) Load() (map[string]ContextInfo, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if r.path != "" {
		rules.ExplicitPath = r.path
	}

	config, err := rules.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	details := make(map[string]ContextInfo, len(config.Contexts))
	for name, ctx := range config.Contexts {
		info := ContextInfo{
			Name:      name,
			Cluster:   ctx.Cluster,
			User:      ctx.AuthInfo,
			Namespace: ctx.Namespace,
		}
		if cluster, ok := config.Clusters[ctx.Cluster]; ok && cluster != nil {
			info.Server = cluster.Server
		}
		details[name] = info
	}

	return details, nil
}

// Contexts returns all contexts sorted by name
func (r *Reader) Contexts() ([]ContextInfo, error) {
	details, err := r.Load()
	if err != nil {
		return nil, err
	}

	// Sort alphabetically so map iteration order never leaks into output
	contexts := lo.Values(details)
	sort.Slice(contexts, func(i, j int) bool {
		return contexts[i].Name < contexts[j].Name
	})
	return contexts, nil
}

// Describe renders a one-line summary, e.g. "cluster: prod-eu  namespace: web".
// Empty fields are left out.
func (c ContextInfo) Describe() string {
	parts := make([]string, 0, 2)
	if c.Cluster != "" {
		parts = append(parts, "cluster: "+c.Cluster)
	}
	if c.Namespace != "" {
		parts = append(parts, "namespace: "+c.Namespace)
	}
	return strings.Join(parts, "  ")
}
