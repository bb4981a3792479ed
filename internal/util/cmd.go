package util

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// CmdSpec describes a subprocess to run.
type CmdSpec struct {
	Path    string   // Binary path
	Args    []string // Arguments
	Verbose bool     // Stream stdout/stderr while capturing

	// Passthrough attaches the process to this terminal's stdin/stdout/stderr
	// instead of capturing. Used for ffmpeg so its own status line stays visible.
	Passthrough bool

	StderrLine    func(string) // Called for each stderr line (if non-nil)
	CaptureStdout bool         // Buffer stdout into CmdResult
}

// CmdResult contains captured output and exit status.
type CmdResult struct {
	Stdout  []byte
	Stderr  []byte
	Code    int
	Started bool // false when the binary could not be launched
	Err     error
}

// CmdRunner runs subprocesses. Tests substitute fakes for ffprobe/ffmpeg.
type CmdRunner interface {
	Run(ctx context.Context, spec CmdSpec) (CmdResult, error)
}

type defaultRunner struct{}

// NewDefaultRunner returns a CmdRunner backed by os/exec.
func NewDefaultRunner() CmdRunner {
	return defaultRunner{}
}

func (defaultRunner) Run(ctx context.Context, spec CmdSpec) (CmdResult, error) {
	return Run(ctx, spec)
}

// Run executes the command, optionally streaming output if Verbose is true.
// It always captures stderr. Stdout is buffered only when CaptureStdout is set.
// On non-zero exit, returns an error describing the exit code, while also
// populating CmdResult.Code and captured buffers.
func Run(ctx context.Context, spec CmdSpec) (CmdResult, error) {
	var stdoutBuf, stderrBuf bytes.Buffer

	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)

	if spec.Verbose {
		// Print the command line before execution
		fmt.Fprintf(os.Stderr, "+ %s\n", ShellQuote(spec.Path, spec.Args))
	}

	if spec.Passthrough {
		return runPassthrough(cmd)
	}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return CmdResult{Stdout: nil, Stderr: nil, Code: -1, Err: err}, err
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return CmdResult{Stdout: nil, Stderr: nil, Code: -1, Err: err}, err
	}

	if err := cmd.Start(); err != nil {
		return CmdResult{Stdout: nil, Stderr: nil, Code: -1, Err: err}, err
	}

	var wg sync.WaitGroup
	wg.Add(2)

	// stdout reader goroutine
	go func() {
		defer wg.Done()
		sc := bufio.NewScanner(stdoutPipe)
		// ffprobe JSON for files with many attachments can exceed the default 64KB line limit
		const maxCapacity = 1024 * 1024 // 1 MB
		buf := make([]byte, 0, 64*1024)  // initial buffer
		sc.Buffer(buf, maxCapacity)
		for sc.Scan() {
			line := sc.Text()
			if spec.Verbose {
				fmt.Fprintln(os.Stdout, line)
			}
			if spec.CaptureStdout {
				stdoutBuf.WriteString(line)
				stdoutBuf.WriteByte('\n')
			}
		}
		// If the scanner errors, preserve it in buffers for debugging
		if err := sc.Err(); err != nil {
			// Do not fail outright; command exit will reflect errors
			if spec.Verbose {
				fmt.Fprintf(os.Stderr, "stdout scan error: %v\n", err)
			}
		}
	}()

	// stderr reader goroutine
	go func() {
		defer wg.Done()
		sc := bufio.NewScanner(stderrPipe)
		// Increase buffer size for large stderr outputs
		const maxCapacity = 1024 * 1024 // 1 MB
		buf := make([]byte, 0, 64*1024)
		sc.Buffer(buf, maxCapacity)
		for sc.Scan() {
			line := sc.Text()
			if spec.StderrLine != nil {
				spec.StderrLine(line)
			}
			if spec.Verbose {
				fmt.Fprintln(os.Stderr, line)
			}
			// Always capture stderr
			stderrBuf.WriteString(line)
			stderrBuf.WriteByte('\n')
		}
		if err := sc.Err(); err != nil {
			if spec.Verbose {
				fmt.Fprintf(os.Stderr, "stderr scan error: %v\n", err)
			}
		}
	}()

	waitErr := cmd.Wait()
	// Ensure readers drain remaining data
	wg.Wait()

	code := exitCode(waitErr)

	res := CmdResult{
		Stdout:  stdoutBuf.Bytes(),
		Stderr:  stderrBuf.Bytes(),
		Code:    code,
		Started: true,
		Err:     waitErr,
	}

	if waitErr != nil {
		return res, fmt.Errorf("command failed (exit %d): %w", code, waitErr)
	}
	return res, nil
}

func runPassthrough(cmd *exec.Cmd) (CmdResult, error) {
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return CmdResult{Code: -1, Err: err}, err
	}
	waitErr := cmd.Wait()
	code := exitCode(waitErr)
	res := CmdResult{Code: code, Started: true, Err: waitErr}
	if waitErr != nil {
		return res, fmt.Errorf("command failed (exit %d): %w", code, waitErr)
	}
	return res, nil
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// ShellQuote returns a printable shell-like command string.
func ShellQuote(path string, args []string) string {
	b := &strings.Builder{}
	b.WriteString(quote(path))
	for _, a := range args {
		b.WriteByte(' ')
		b.WriteString(quote(a))
	}
	return b.String()
}

func quote(s string) string {
	if s == "" {
		return "''"
	}
	// Simple quoting: wrap in single quotes and escape existing single quotes.
	if strings.ContainsAny(s, " \t\n\"'\\$`(){}[]*&;|<>?!") {
		return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
	}
	return s
}
