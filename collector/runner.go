package collector

import (
	"bytes"
	"fmt"
	"os/exec"
)

// Runner abstracts the external WireGuard tools so the registry and tests
// can substitute their own command execution.
type Runner interface {
	// Dump returns the stdout of `wg show all dump`. A non-zero exit is an
	// error carrying the tool's stderr diagnostics.
	Dump() (string, error)
	// Activate runs `wg-quick up|down <name>` and returns the tool's stderr
	// text regardless of outcome. The error is non-nil on non-zero exit.
	Activate(name string, up bool) (string, error)
}

// ToolRunner runs the real wg and wg-quick binaries.
type ToolRunner struct {
	WgPath      string
	WgQuickPath string
}

// NewToolRunner creates a runner for the given binaries. Empty paths fall
// back to resolving "wg" and "wg-quick" from PATH.
func NewToolRunner(wgPath, wgQuickPath string) *ToolRunner {
	if wgPath == "" {
		wgPath = "wg"
	}
	if wgQuickPath == "" {
		wgQuickPath = "wg-quick"
	}
	return &ToolRunner{WgPath: wgPath, WgQuickPath: wgQuickPath}
}

func (r *ToolRunner) Dump() (string, error) {
	cmd := exec.Command(r.WgPath, "show", "all", "dump")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s show all dump: %w: %s",
			r.WgPath, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.String(), nil
}

func (r *ToolRunner) Activate(name string, up bool) (string, error) {
	verb := "down"
	if up {
		verb = "up"
	}
	cmd := exec.Command(r.WgQuickPath, verb, name)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		err = fmt.Errorf("%s %s %s: %w", r.WgQuickPath, verb, name, err)
	}
	return stderr.String(), err
}
