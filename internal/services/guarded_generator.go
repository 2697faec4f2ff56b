package services

import (
	"context"
	"time"

	"opsintel/internal/llm"
)

// guardedGenerator short-circuits language model calls while the breaker is open
type guardedGenerator struct {
	generator      llm.Generator
	circuitBreaker CircuitBreakerInterface
	metrics        MetricsRecorderInterface
}

func NewGuardedGenerator(generator llm.Generator, circuitBreaker CircuitBreakerInterface, metrics MetricsRecorderInterface) llm.Generator {
	return &guardedGenerator{
		generator:      generator,
		circuitBreaker: circuitBreaker,
		metrics:        metrics,
	}
}

func (g *guardedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.circuitBreaker.IsOpen() {
		g.metrics.IncrementCounter("llm.request", map[string]string{"status": "rejected"})
		return "", ErrCircuitBreakerOpen
	}

	start := time.Now()
	output, err := g.generator.Generate(ctx, prompt)
	g.metrics.RecordProcessingTime("llm.request", time.Since(start))

	if err != nil {
		g.circuitBreaker.RecordFailure()
		g.metrics.IncrementCounter("llm.request", map[string]string{"status": "failed"})
		return "", err
	}

	g.circuitBreaker.RecordSuccess()
	g.metrics.IncrementCounter("llm.request", map[string]string{"status": "success"})
	return output, nil
}
