package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"

	"github.com/renato0307/kswitch/internal/config"
	"github.com/renato0307/kswitch/internal/launcher"
	"github.com/renato0307/kswitch/internal/testutil"
)

// execute runs the root command with args and returns its output
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))
	setTerminal(t, false)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func setTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func() bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}

func newFake(t *testing.T) *testutil.FakeKubectl {
	return testutil.NewFakeKubectl(t, []string{"dev", "staging", "prod"}, "staging")
}

func writeKubeconfig(t *testing.T) string {
	t.Helper()
	cfg := clientcmdapi.NewConfig()
	cfg.Clusters["eu-1"] = &clientcmdapi.Cluster{Server: "https://eu-1.example.com"}
	cfg.AuthInfos["admin"] = &clientcmdapi.AuthInfo{Token: "t"}
	cfg.Contexts["dev"] = &clientcmdapi.Context{Cluster: "eu-1", AuthInfo: "admin", Namespace: "apps"}
	cfg.Contexts["staging"] = &clientcmdapi.Context{Cluster: "eu-1", AuthInfo: "admin"}
	cfg.Contexts["prod"] = &clientcmdapi.Context{Cluster: "eu-1", AuthInfo: "admin", Namespace: "web"}

	path := filepath.Join(t.TempDir(), "kubeconfig")
	require.NoError(t, clientcmd.WriteToFile(*cfg, path))
	return path
}

func TestCurrentCommand(t *testing.T) {
	fake := newFake(t)

	stdout, _, err := execute(t, "current", "--kubectl", fake.Path)
	require.NoError(t, err)
	assert.Equal(t, "staging\n", stdout)
	assert.Equal(t, "config current-context", fake.LastArgs(t))
}

func TestCurrentCommand_NotSet(t *testing.T) {
	fake := testutil.NewFakeKubectl(t, []string{"dev"}, "")

	_, _, err := execute(t, "current", "--kubectl", fake.Path)
	require.Error(t, err)
	assert.Equal(t, "kubectl error: error: current-context is not set", err.Error())
}

func TestUseCommand(t *testing.T) {
	fake := newFake(t)

	stdout, _, err := execute(t, "use", "prod", "--kubectl", fake.Path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Switched to context: prod")
	assert.Equal(t, "prod", fake.Current(t))
}

func TestUseCommand_UnknownContextSuggests(t *testing.T) {
	fake := newFake(t)

	_, stderr, err := execute(t, "use", "stagng", "--kubectl", fake.Path)
	require.Error(t, err)
	assert.Equal(t, `failed to switch context: error: no context exists with the name: "stagng"`, err.Error())
	assert.Contains(t, stderr, "Did you mean: staging?")
	assert.Equal(t, "staging", fake.Current(t))
}

func TestUseCommand_RequiresName(t *testing.T) {
	_, _, err := execute(t, "use")
	require.Error(t, err)
}

func TestListCommand(t *testing.T) {
	fake := newFake(t)
	kubeconfigPath := writeKubeconfig(t)

	stdout, _, err := execute(t, "list", "--kubectl", fake.Path, "--kubeconfig", kubeconfigPath)
	require.NoError(t, err)

	assert.Contains(t, stdout, "CURRENT")
	assert.Contains(t, stdout, "NAMESPACE")
	assert.Contains(t, stdout, "apps")
	assert.Contains(t, stdout, "web")
	assert.Contains(t, stdout, "*")
	assert.Contains(t, fake.LastArgs(t), "--kubeconfig "+kubeconfigPath)
}

func TestListCommand_NameOutputKeepsToolOrder(t *testing.T) {
	fake := newFake(t)

	stdout, _, err := execute(t, "list", "-o", "name", "--kubectl", fake.Path)
	require.NoError(t, err)
	assert.Equal(t, "dev\nstaging\nprod\n", stdout)
}

func TestListCommand_YAML(t *testing.T) {
	fake := newFake(t)

	stdout, _, err := execute(t, "list", "-o", "yaml", "--kubectl", fake.Path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: staging")
	assert.Contains(t, stdout, "current: true")
}

func TestListCommand_WithoutCurrentContext(t *testing.T) {
	fake := testutil.NewFakeKubectl(t, []string{"dev", "prod"}, "")

	stdout, _, err := execute(t, "list", "-o", "json", "--kubectl", fake.Path)
	require.NoError(t, err)
	assert.NotContains(t, stdout, `"current": true`)
	assert.Contains(t, stdout, `"name": "prod"`)
}

func TestQueryCommand(t *testing.T) {
	fake := newFake(t)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"all contexts by name", []string{"query", "-o", "name"}, "staging\ndev\nprod\n"},
		{"filtered by name", []string{"query", "PRO", "-o", "name"}, "prod\n"},
		{"filtered current", []string{"query", "stag", "-o", "name"}, "staging\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, append(tt.args, "--kubectl", fake.Path)...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestQueryCommand_JSON(t *testing.T) {
	fake := newFake(t)

	stdout, _, err := execute(t, "query", "stag", "-o", "json", "--kubectl", fake.Path)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"title": "staging (current)"`)
	assert.Contains(t, stdout, `"score": 80`)
	assert.Contains(t, stdout, `"action": "none"`)
}

func TestQueryCommand_NoMatchSuggests(t *testing.T) {
	fake := newFake(t)

	_, stderr, err := execute(t, "query", "prd", "--kubectl", fake.Path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Did you mean: prod?")
}

func TestQueryCommand_MissingKubectlYieldsErrorItem(t *testing.T) {
	stdout, _, err := execute(t, "query", "--kubectl", testutil.MissingKubectl(t))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Error")
	assert.Contains(t, stdout, "failed to start kubectl process")
}

func TestQueryCommand_BadFormat(t *testing.T) {
	fake := newFake(t)

	_, _, err := execute(t, "query", "-o", "xml", "--kubectl", fake.Path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format: xml")
}

func TestRootCommand_PlainOutputWithoutTerminal(t *testing.T) {
	fake := newFake(t)

	stdout, _, err := execute(t, "--kubectl", fake.Path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Current: staging")
	assert.Contains(t, stdout, "Switch to prod")
}

func TestRootCommand_LaunchesOnTerminal(t *testing.T) {
	fake := newFake(t)
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))
	setTerminal(t, true)

	var gotTerm string
	var gotDeps launcher.Deps
	original := runLauncher
	runLauncher = func(deps launcher.Deps, term string) error {
		gotDeps = deps
		gotTerm = term
		return nil
	}
	t.Cleanup(func() { runLauncher = original })

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"prod", "--kubectl", fake.Path, "--theme", "nord"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Equal(t, "prod", gotTerm)
	require.NotNil(t, gotDeps.Querier)
	require.NotNil(t, gotDeps.Dispatcher)
	require.NotNil(t, gotDeps.Theme)

	items := gotDeps.Querier.Query(context.Background(), "prod")
	require.Len(t, items, 1)
	assert.Equal(t, "prod", items[0].Title)
}

func TestConfigFile(t *testing.T) {
	fake := newFake(t)
	kubeconfigPath := writeKubeconfig(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "kubectl: " + fake.Path + "\nkubeconfig: " + kubeconfigPath + "\ntimeout: 5s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	stdout, _, err := execute(t, "current", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "staging\n", stdout)
	assert.Contains(t, fake.LastArgs(t), "--kubeconfig "+kubeconfigPath)
}

func TestConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unknownField: true\n"), 0o644))

	_, _, err := execute(t, "current", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestOptionsApply(t *testing.T) {
	cmd := NewRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{
		"--kubectl", "/opt/kubectl",
		"--kubeconfig", "/tmp/kc",
		"--theme", "dracula",
		"--timeout", "3s",
		"--log-level", "debug",
	}))

	opts := &options{}
	opts.kubectl, _ = cmd.Flags().GetString("kubectl")
	opts.kubeconfig, _ = cmd.Flags().GetString("kubeconfig")
	opts.theme, _ = cmd.Flags().GetString("theme")
	opts.timeout, _ = cmd.Flags().GetDuration("timeout")
	opts.logLevel, _ = cmd.Flags().GetString("log-level")

	cfg := config.Default()
	cfg.Timeout.Duration = time.Minute
	opts.apply(cmd, cfg)

	assert.Equal(t, "/opt/kubectl", cfg.Kubectl)
	assert.Equal(t, "/tmp/kc", cfg.Kubeconfig)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.Equal(t, 3*time.Second, cfg.KubectlTimeout())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestOptionsApply_KeepsFileTimeout(t *testing.T) {
	cmd := NewRootCommand()
	require.NoError(t, cmd.ParseFlags(nil))

	cfg := config.Default()
	cfg.Timeout.Duration = time.Minute
	(&options{}).apply(cmd, cfg)

	assert.Equal(t, time.Minute, cfg.KubectlTimeout())
}
