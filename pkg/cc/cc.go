// Package cc runs the system C preprocessor over a translation unit.
package cc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"cfront/pkg/utils"
)

// DefaultCommand is used when neither Preprocessor.Command nor $CC is set.
const DefaultCommand = "gcc"

// ExitError reports a preprocessor run that exited with a non-zero status.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("preprocessor %s exited with status %d", e.Command, e.Code)
}

// Preprocessor invokes "<Command> -E -P <src> -o <stem>.i".
type Preprocessor struct {
	Command string
	Stdout  io.Writer // receives the tool's stdout; nil means os.Stdout
	Stderr  io.Writer // receives the tool's stderr; nil means os.Stderr
}

// New returns a Preprocessor using $CC when set, DefaultCommand otherwise.
func New() *Preprocessor {
	cmd := os.Getenv("CC")
	if cmd == "" {
		cmd = DefaultCommand
	}
	return &Preprocessor{Command: cmd}
}

// Preprocess writes the preprocessed unit next to srcPath and returns the
// path of the written file. The tool's output is echoed even on success.
func (p *Preprocessor) Preprocess(ctx context.Context, srcPath string) (string, error) {
	command := p.Command
	if command == "" {
		command = DefaultCommand
	}
	outPath := utils.PreprocessedPath(srcPath)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, command, "-E", "-P", srcPath, "-o", outPath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	if _, err := io.Copy(writerOr(p.Stdout, os.Stdout), &stdout); err != nil {
		return "", err
	}
	if _, err := io.Copy(writerOr(p.Stderr, os.Stderr), &stderr); err != nil {
		return "", err
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return "", &ExitError{Command: command, Code: exitErr.ExitCode()}
		}
		return "", fmt.Errorf("failed to run preprocessor %s: %w", command, runErr)
	}
	return outPath, nil
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
