package kubectl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestResolver builds a resolver with fixed candidates and fake lookups
func newTestResolver(t *testing.T, candidates []string, files map[string]bool, onPath map[string]bool) *Resolver {
	t.Helper()

	regular := filepath.Join(t.TempDir(), "regular")
	require.NoError(t, os.WriteFile(regular, nil, 0o644))
	info, err := os.Stat(regular)
	require.NoError(t, err)

	return &Resolver{
		candidates: candidates,
		stat: func(path string) (os.FileInfo, error) {
			if files[path] {
				return info, nil
			}
			return nil, os.ErrNotExist
		},
		lookPath: func(name string) (string, error) {
			if onPath[name] {
				return "/resolved/" + name, nil
			}
			return "", errors.New("not found")
		},
	}
}

func TestResolver_Resolve(t *testing.T) {
	candidates := []string{"kubectl", "/usr/local/bin/kubectl", "/snap/bin/kubectl"}

	tests := []struct {
		name     string
		files    map[string]bool
		onPath   map[string]bool
		expected string
	}{
		{
			name:     "bare name on PATH wins",
			onPath:   map[string]bool{"kubectl": true},
			files:    map[string]bool{"/usr/local/bin/kubectl": true},
			expected: "kubectl",
		},
		{
			name:     "first existing file wins",
			files:    map[string]bool{"/usr/local/bin/kubectl": true, "/snap/bin/kubectl": true},
			expected: "/usr/local/bin/kubectl",
		},
		{
			name:     "later candidate found by lookup",
			onPath:   map[string]bool{"/snap/bin/kubectl": true},
			expected: "/snap/bin/kubectl",
		},
		{
			name:     "nothing matches falls back to bare name",
			expected: DefaultCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(t, candidates, tt.files, tt.onPath)
			assert.Equal(t, tt.expected, r.Resolve())
		})
	}
}

func TestResolver_DirectoryIsNotAMatch(t *testing.T) {
	dir := t.TempDir()
	r := &Resolver{
		candidates: []string{dir},
		stat:       os.Stat,
		lookPath:   func(string) (string, error) { return "", errors.New("not found") },
	}
	assert.Equal(t, DefaultCommand, r.Resolve())
}

func TestResolver_RealFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubectl")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

	r := NewResolver(path)
	r.lookPath = func(string) (string, error) { return "", errors.New("not found") }

	assert.Equal(t, path, r.Candidates()[0])
	assert.Equal(t, path, r.Resolve())
}

func TestNewResolver_ExtraCandidatesFirst(t *testing.T) {
	t.Setenv("KSWITCH_TEST_BIN", "/custom/bin")

	r := NewResolver("$KSWITCH_TEST_BIN/kubectl", "")
	candidates := r.Candidates()

	require.NotEmpty(t, candidates)
	assert.Equal(t, "/custom/bin/kubectl", candidates[0])
	assert.Equal(t, DefaultCommand, candidates[1])
}

func TestDefaultCandidates(t *testing.T) {
	t.Setenv("USERNAME", "alice")

	tests := []struct {
		goos     string
		contains string
	}{
		{"linux", "/usr/local/bin/kubectl"},
		{"darwin", "/opt/homebrew/bin/kubectl"},
		{"windows", `C:\Program Files\Docker\Docker\resources\bin\kubectl.exe`},
		{"windows", `C:\Users\alice\AppData\Local\Microsoft\WinGet\Packages\Kubernetes.kubectl_Microsoft.Winget.Source_8wekyb3d8bbwe\kubectl.exe`},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			candidates := DefaultCandidates(tt.goos)
			require.NotEmpty(t, candidates)
			assert.Equal(t, DefaultCommand, candidates[0], "bare name is always tried first")
			assert.Contains(t, candidates, tt.contains)
		})
	}
}
