// Package hub wraps the external clawhub registry CLI. The registry backend
// is an opaque collaborator: each operation is one synchronous subprocess
// invocation with no retries and no timeout of its own.
package hub

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// DefaultBin is the registry CLI invoked when none is configured.
const DefaultBin = "clawhub"

// ErrHubNotFound indicates the registry CLI is not present on PATH. Detect it
// with errors.Is to distinguish a missing tool from a failed invocation.
var ErrHubNotFound = errors.New("registry CLI not found")

// runner executes the registry CLI. It is a seam so tests can fake the
// subprocess without spawning anything.
type runner interface {
	run(ctx context.Context, bin string, args ...string) (stdout, stderr string, err error)
}

// execRunner is the production runner backed by os/exec.
type execRunner struct{}

func (execRunner) run(ctx context.Context, bin string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Client invokes the external skill registry CLI.
type Client struct {
	bin    string
	runner runner
}

// NewClient creates a Client for the given registry binary. An empty bin
// falls back to DefaultBin.
func NewClient(bin string) *Client {
	if bin == "" {
		bin = DefaultBin
	}
	return &Client{bin: bin, runner: execRunner{}}
}

// Search runs the registry's search subcommand and returns its trimmed
// standard output. An empty return with a nil error means no results.
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	out, err := c.invoke(ctx, "search", query)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Install runs the registry's install subcommand and returns its standard
// output verbatim.
func (c *Client) Install(ctx context.Context, slug string) (string, error) {
	return c.invoke(ctx, "install", slug)
}

func (c *Client) invoke(ctx context.Context, args ...string) (string, error) {
	stdout, stderr, err := c.runner.run(ctx, c.bin, args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", errors.Wrapf(ErrHubNotFound, "%q", c.bin)
		}
		if diag := strings.TrimSpace(stderr); diag != "" {
			return "", errors.Wrapf(err, "%s %s failed: %s", c.bin, args[0], diag)
		}
		return "", errors.Wrapf(err, "%s %s failed", c.bin, args[0])
	}
	return stdout, nil
}
