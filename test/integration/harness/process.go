package harness

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"
)

// RunningCommand is a gitsync process started in the background
type RunningCommand struct {
	cmd    *exec.Cmd
	done   chan struct{}
	stderr *syncBuffer
	stdout *syncBuffer
	tb     testing.TB
}

// StartCommand starts the gitsync binary without waiting for it to exit.
// The process is interrupted when the test completes.
func StartCommand(tb testing.TB, env *TestEnvironment, args ...string) *RunningCommand {
	tb.Helper()

	rc := &RunningCommand{
		cmd:    exec.Command(binaryPath, args...),
		done:   make(chan struct{}),
		stderr: &syncBuffer{},
		stdout: &syncBuffer{},
		tb:     tb,
	}
	rc.cmd.Env = env.Environ()
	rc.cmd.Stdout = rc.stdout
	rc.cmd.Stderr = rc.stderr

	if err := rc.cmd.Start(); err != nil {
		tb.Fatalf("Failed to start %v: %v", args, err)
	}
	go func() {
		_ = rc.cmd.Wait()
		close(rc.done)
	}()
	tb.Cleanup(func() { rc.Stop() })
	return rc
}

// WaitForStdout polls stdout until it contains expected or timeout passes.
func (rc *RunningCommand) WaitForStdout(expected string, timeout time.Duration) bool {
	rc.tb.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(rc.stdout.String(), expected) {
			return true
		}
		select {
		case <-rc.done:
			return strings.Contains(rc.stdout.String(), expected)
		case <-time.After(50 * time.Millisecond):
		}
	}
	return false
}

// Stop interrupts the process and waits for it to exit, killing it after
// the default timeout. Returns the collected output.
func (rc *RunningCommand) Stop() CommandResult {
	select {
	case <-rc.done:
	default:
		_ = rc.cmd.Process.Signal(os.Interrupt)
		select {
		case <-rc.done:
		case <-time.After(commandTimeout):
			_ = rc.cmd.Process.Kill()
			<-rc.done
		}
	}

	return CommandResult{
		ExitCode: rc.cmd.ProcessState.ExitCode(),
		Stderr:   rc.stderr.String(),
		Stdout:   rc.stdout.String(),
	}
}

type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
