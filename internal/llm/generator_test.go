package llm

import (
	"context"
	"testing"
	"time"

	"opsintel/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandGenerator_EchoesStdin(t *testing.T) {
	g := NewCommandGenerator("cat", nil, time.Second, nil)

	out, err := g.Generate(context.Background(), "  SELECT 1;\n")

	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;", out)
}

func TestCommandGenerator_EmptyResponse(t *testing.T) {
	g := NewCommandGenerator("cat", nil, time.Second, nil)

	out, err := g.Generate(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Empty(t, out)
}

func TestCommandGenerator_Timeout(t *testing.T) {
	g := NewCommandGenerator("sleep", []string{"5"}, 50*time.Millisecond, nil)

	start := time.Now()
	_, err := g.Generate(context.Background(), "")

	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestCommandGenerator_NonZeroExit(t *testing.T) {
	g := NewCommandGenerator("sh", []string{"-c", "echo model not found >&2; exit 3"}, time.Second, nil)

	_, err := g.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exited with code 3")
	assert.Contains(t, err.Error(), "model not found")
}

func TestCommandGenerator_MissingBinary(t *testing.T) {
	g := NewCommandGenerator("definitely-not-a-model-binary", nil, time.Second, nil)

	_, err := g.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run")
}

func TestNewOllamaGenerator(t *testing.T) {
	g := NewOllamaGenerator(config.LLMConfig{Command: "ollama", Model: "llama3.2", Timeout: time.Minute}, nil)

	assert.Equal(t, "ollama", g.command)
	assert.Equal(t, []string{"run", "llama3.2"}, g.args)
	assert.Equal(t, time.Minute, g.timeout)
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, ErrDisabled)
}
