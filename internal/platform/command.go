package platform

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/alessio/shellescape"
	"github.com/ytget/yt-thumbnailer/internal/logger"
	"github.com/ytget/yt-thumbnailer/internal/model"
)

var log = logger.Get("Command")

// MaxCapturedStderr bounds the stderr kept for error messages
const MaxCapturedStderr = 8 * 1024

// Runner starts external tools and waits for them to exit
type Runner interface {
	// Output runs the tool and returns its standard output
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// Run runs the tool with its output streamed to the runner's writers
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs tools as OS processes
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner that streams tool output to the process's stdout/stderr
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Output runs the tool, capturing stdout; stderr is still streamed so yt-dlp warnings stay visible
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout bytes.Buffer
	if err := r.run(ctx, &stdout, name, args); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

// Run runs the tool with stdout streamed to r.Stdout
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	return r.run(ctx, r.Stdout, name, args)
}

func (r *ExecRunner) run(ctx context.Context, stdout io.Writer, name string, args []string) error {
	tool := filepath.Base(name)
	log.Emit(logger.DEBUG, "running %s", CommandLine(name, args...))

	stderr := &tailBuffer{max: MaxCapturedStderr}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = orDiscard(stdout)
	cmd.Stderr = io.MultiWriter(orDiscard(r.Stderr), stderr)

	if err := cmd.Start(); err != nil {
		return &model.ToolExecutionError{Tool: tool, Err: err}
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &model.ToolFailureError{Tool: tool, ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		return &model.ToolFailureError{Tool: tool, ExitCode: -1, Stderr: stderr.String(), Err: err}
	}

	log.Emit(logger.DEBUG, "%s finished", tool)
	return nil
}

// CommandLine renders a command the way it would be typed in a shell
func CommandLine(name string, args ...string) string {
	return shellescape.QuoteCommand(append([]string{name}, args...))
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// tailBuffer keeps only the last max bytes written to it
type tailBuffer struct {
	buf []byte
	max int
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return string(t.buf)
}
