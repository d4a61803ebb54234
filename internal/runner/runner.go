// Package runner executes external probe and install commands for sf-preflight.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/Avinava/sf-preflight/internal/derrors"
)

// DefaultTimeout bounds every external command. Version probes are expected to
// return in well under a second; a hung tool must not block startup forever.
const DefaultTimeout = 30 * time.Second

// Output holds best-effort captured output of a command. Err records the
// command failure itself (not found, non-zero exit, timeout); captured output
// is still populated alongside it.
type Output struct {
	Stdout string
	Stderr string
	Err    error
}

// Runner abstracts command execution for testability
type Runner interface {
	// Run executes a command and returns its trimmed standard output.
	// On non-zero exit it returns a derrors.CommandError whose message is the
	// captured stdout when non-empty, else the underlying failure description,
	// so callers that pattern-match on output still work when the exit code
	// signals absence.
	Run(ctx context.Context, command string) (string, error)
	// RunFull executes a command and always returns whatever output was
	// captured, trimmed; a failure of the command itself is reported through
	// Output.Err instead of a separate error return.
	RunFull(ctx context.Context, command string) Output
}

// ShellRunner implements Runner using the user's shell
type ShellRunner struct {
	Shell   string        // defaults to $SHELL, then "sh"
	Timeout time.Duration // defaults to DefaultTimeout
}

// New creates a ShellRunner with defaults
func New() *ShellRunner {
	return &ShellRunner{}
}

func (r *ShellRunner) shell() string {
	if r.Shell != "" {
		return r.Shell
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "sh"
}

func (r *ShellRunner) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return DefaultTimeout
}

// Run executes a command via the shell and returns its trimmed stdout
func (r *ShellRunner) Run(ctx context.Context, command string) (string, error) {
	stdout, _, err := r.execute(ctx, command)
	if err != nil {
		return "", err
	}
	return stdout, nil
}

// RunFull executes a command via the shell and always returns captured output
func (r *ShellRunner) RunFull(ctx context.Context, command string) Output {
	stdout, stderr, err := r.execute(ctx, command)
	if err != nil {
		var cmdErr *derrors.CommandError
		if errors.As(err, &cmdErr) {
			return Output{Stdout: strings.TrimSpace(cmdErr.Output), Stderr: stderr, Err: err}
		}
		return Output{Stderr: stderr, Err: err}
	}
	return Output{Stdout: stdout, Stderr: stderr}
}

func (r *ShellRunner) execute(ctx context.Context, command string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, r.shell(), "-c", command)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := strings.TrimSpace(outBuf.String())
	stderr := strings.TrimSpace(errBuf.String())

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return stdout, stderr, derrors.NewTimeoutError(command,
				"command timed out after "+r.timeout().String())
		}
		// Prefer captured stdout as the message so callers that scan probe
		// output for a package name still see it on non-zero exit.
		message := stdout
		if message == "" {
			message = err.Error()
			if stderr != "" {
				message = stderr
			}
		}
		return stdout, stderr, derrors.NewCommandError(command, stdout, message, err)
	}

	return stdout, stderr, nil
}
