package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"opsintel/internal/config"
)

var (
	ErrEmptyResponse = errors.New("language model returned an empty response")
	ErrTimeout       = errors.New("language model call timed out")
	ErrDisabled      = errors.New("language model is disabled")
)

// Generator turns a prompt into completion text
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CommandGenerator runs a local model process with the prompt on stdin
// and returns its trimmed stdout.
type CommandGenerator struct {
	command string
	args    []string
	timeout time.Duration
	logger  *slog.Logger
}

// NewCommandGenerator creates a generator running command with args
func NewCommandGenerator(command string, args []string, timeout time.Duration, logger *slog.Logger) *CommandGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommandGenerator{
		command: command,
		args:    args,
		timeout: timeout,
		logger:  logger,
	}
}

// NewOllamaGenerator creates a generator running `<command> run <model>`
func NewOllamaGenerator(cfg config.LLMConfig, logger *slog.Logger) *CommandGenerator {
	return NewCommandGenerator(cfg.Command, []string{"run", cfg.Model}, cfg.Timeout, logger)
}

// Generate runs the model process once. Any failure returns no partial output.
func (g *CommandGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, g.command, g.args...)
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			g.logger.Warn("language model call timed out",
				slog.String("command", g.command),
				slog.Duration("timeout", g.timeout),
			)
			return "", fmt.Errorf("%w after %s", ErrTimeout, g.timeout)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%s exited with code %d: %s", g.command, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("failed to run %s: %w", g.command, err)
	}

	output := strings.TrimSpace(stdout.String())
	if output == "" {
		return "", ErrEmptyResponse
	}

	g.logger.Debug("language model call completed",
		slog.String("command", g.command),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return output, nil
}

// Disabled is a generator that always fails with ErrDisabled
type Disabled struct{}

// Generate returns ErrDisabled
func (Disabled) Generate(context.Context, string) (string, error) {
	return "", ErrDisabled
}
