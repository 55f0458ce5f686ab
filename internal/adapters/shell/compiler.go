// Package shell provides the adapter that runs the external compiler.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/py2sec/internal/core/domain"
	"go.trai.ch/py2sec/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler using os/exec.
type Compiler struct {
	logger ports.Logger

	mu     sync.RWMutex
	stdout io.Writer
	stderr io.Writer
}

// NewCompiler creates a Compiler streaming to the process standard streams.
func NewCompiler(logger ports.Logger) *Compiler {
	return &Compiler{
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetOutput changes where compiler output is streamed when not in quiet mode.
// Nil writers select the process standard streams.
func (c *Compiler) SetOutput(stdout, stderr io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	c.stdout, c.stderr = stdout, stderr
}

// Compile runs `<command> <script> build_ext` in the request's work dir and waits for it.
// In quiet mode both streams are appended to log.txt in the work dir.
func (c *Compiler) Compile(ctx context.Context, req domain.CompileRequest) error {
	commandLine := strings.Join(append([]string{req.Command}, req.Args()...), " ")
	c.logger.Info("> " + commandLine)

	cmd := exec.CommandContext(ctx, req.Command, req.Args()...) //nolint:gosec // interpreter is configured by the user
	cmd.Dir = req.WorkDir

	stdout, stderr, closeOutput, err := c.outputs(ctx, req)
	if err != nil {
		return err
	}
	defer closeOutput()
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return errors.Join(domain.ErrCompilerFailed,
			zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode), "command", commandLine))
	}
	return nil
}

func (c *Compiler) outputs(ctx context.Context, req domain.CompileRequest) (io.Writer, io.Writer, func(), error) {
	c.mu.RLock()
	stdout, stderr := c.stdout, c.stderr
	c.mu.RUnlock()
	closeFn := func() {}

	if req.Quiet {
		path := domain.LogFilePath(req.WorkDir)
		//nolint:gosec // log path is derived from the work dir
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.FilePerm)
		if err != nil {
			return nil, nil, nil, errors.Join(domain.ErrCompilerFailed,
				zerr.With(zerr.Wrap(err, "failed to open log file"), "path", path))
		}
		stdout, stderr = f, f
		closeFn = func() { _ = f.Close() }
	}

	if v, ok := ports.VertexFromContext(ctx); ok {
		stdout = io.MultiWriter(stdout, v.Stdout())
		stderr = io.MultiWriter(stderr, v.Stderr())
	}
	return stdout, stderr, closeFn, nil
}
