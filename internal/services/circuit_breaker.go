package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"opsintel/internal/config"
	"opsintel/internal/models"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

type CircuitBreakerConfig struct {
	Name            string
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:            "llm",
		MaxFailures:     3,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 1,
	}
}

// LLMCircuitBreakerConfig derives the breaker settings guarding the language model
func LLMCircuitBreakerConfig(cfg config.LLMConfig) CircuitBreakerConfig {
	breaker := DefaultCircuitBreakerConfig()
	if cfg.MaxFailures > 0 {
		breaker.MaxFailures = cfg.MaxFailures
	}
	if cfg.ResetTimeout > 0 {
		breaker.ResetTimeout = cfg.ResetTimeout
	}
	return breaker
}

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	alertLogger       AlertLoggerInterface
	metrics           MetricsRecorderInterface
}

func NewCircuitBreaker(config CircuitBreakerConfig, alertLogger AlertLoggerInterface, metrics MetricsRecorderInterface) CircuitBreakerInterface {
	return &CircuitBreaker{
		config:      config,
		state:       StateClosed,
		alertLogger: alertLogger,
		metrics:     metrics,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && time.Since(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.transition(StateHalfOpen)
		return false
	}

	return cb.state == StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.transition(StateClosed)
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = time.Now()

	switch cb.state {
	case StateHalfOpen:
		cb.transition(StateOpen)
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.transition(StateOpen)
		}
	}
}

// transition must be called with mu held
func (cb *CircuitBreaker) transition(to models.CircuitBreakerState) {
	from := cb.state
	cb.state = to
	cb.halfOpenSuccesses = 0
	if to == StateClosed {
		cb.failures = 0
	}

	if from == to {
		return
	}
	if cb.alertLogger != nil {
		cb.alertLogger.LogCircuitBreakerStateChange(context.Background(), cb.config.Name, from.String(), to.String())
	}
	if cb.metrics != nil {
		cb.metrics.RecordGauge("circuit_breaker.state", float64(to), map[string]string{
			"service": cb.config.Name,
		})
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.transition(StateClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}
