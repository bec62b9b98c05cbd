package kubectl

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/renato0307/kswitch/internal/logging"
)

// Resolver finds the kubectl binary by trying candidates in order
type Resolver struct {
	candidates []string
	stat       func(string) (os.FileInfo, error)
	lookPath   func(string) (string, error)
}

// NewResolver creates a resolver that tries extra first, then the default
// candidates for the running OS
func NewResolver(extra ...string) *Resolver {
	candidates := make([]string, 0, len(extra)+8)
	for _, c := range extra {
		if c = os.ExpandEnv(c); c != "" {
			candidates = append(candidates, c)
		}
	}
	candidates = append(candidates, DefaultCandidates(runtime.GOOS)...)

	return &Resolver{
		candidates: candidates,
		stat:       os.Stat,
		lookPath:   exec.LookPath,
	}
}

// Candidates returns the ordered candidate list
func (r *Resolver) Candidates() []string {
	return r.candidates
}

// Resolve returns the first candidate that is a regular file or is found by
// a PATH lookup. When nothing matches it falls back to the bare command name,
// so the first real invocation reports a clear "failed to start" error.
func (r *Resolver) Resolve() string {
	for _, candidate := range r.candidates {
		if r.isFile(candidate) || r.isOnPath(candidate) {
			logging.Debug("resolved kubectl", "path", candidate)
			return candidate
		}
	}
	logging.Warn("kubectl not found in any candidate location, using bare name",
		"candidates", len(r.candidates))
	return DefaultCommand
}

func (r *Resolver) isFile(path string) bool {
	info, err := r.stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (r *Resolver) isOnPath(name string) bool {
	found, err := r.lookPath(name)
	return err == nil && found != ""
}

// DefaultCandidates returns the bare command followed by well-known install
// locations for goos
func DefaultCandidates(goos string) []string {
	candidates := []string{DefaultCommand}

	switch goos {
	case "windows":
		candidates = append(candidates, `C:\Program Files\Docker\Docker\resources\bin\kubectl.exe`)
		if user := os.Getenv("USERNAME"); user != "" {
			candidates = append(candidates,
				`C:\Users\`+user+`\AppData\Local\Microsoft\WinGet\Packages\Kubernetes.kubectl_Microsoft.Winget.Source_8wekyb3d8bbwe\kubectl.exe`)
		}
	case "darwin":
		candidates = append(candidates,
			"/opt/homebrew/bin/kubectl",
			"/usr/local/bin/kubectl",
			"/Applications/Docker.app/Contents/Resources/bin/kubectl",
		)
	default:
		candidates = append(candidates,
			"/usr/local/bin/kubectl",
			"/usr/bin/kubectl",
			"/snap/bin/kubectl",
		)
	}

	return candidates
}
