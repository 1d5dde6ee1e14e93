package services

import (
	"log/slog"
	"sync"
	"time"

	"ledger-analytics/internal/models"
)

type CircuitBreakerConfig struct {
	Name            string
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:            name,
		MaxFailures:     3,
		ResetTimeout:    time.Minute,
		HalfOpenMaxSucc: 1,
	}
}

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

// CircuitBreaker guards calls to an external collaborator. It opens after
// MaxFailures consecutive failures and probes again after ResetTimeout.
type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	metrics           MetricsRecorderInterface
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig, metrics MetricsRecorderInterface) CircuitBreakerInterface {
	if config.MaxFailures <= 0 {
		config.MaxFailures = 1
	}
	if config.HalfOpenMaxSucc <= 0 {
		config.HalfOpenMaxSucc = 1
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &CircuitBreaker{
		config:  config,
		metrics: metrics,
		state:   StateClosed,
		now:     time.Now,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.setState(StateHalfOpen)
		cb.halfOpenSuccesses = 0
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
			cb.transitionToClosed()
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateHalfOpen:
		cb.transitionToOpen()
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.transitionToOpen()
		}
	}
}

func (cb *CircuitBreaker) transitionToClosed() {
	cb.setState(StateClosed)
	cb.failures = 0
	cb.halfOpenSuccesses = 0
	cb.metrics.IncrementCounter(MetricCircuitBreakerShut, map[string]string{"service": cb.config.Name})
}

func (cb *CircuitBreaker) transitionToOpen() {
	cb.setState(StateOpen)
	cb.halfOpenSuccesses = 0
	cb.metrics.IncrementCounter(MetricCircuitBreakerOpen, map[string]string{"service": cb.config.Name})
}

func (cb *CircuitBreaker) setState(next models.CircuitBreakerState) {
	if cb.state == next {
		return
	}
	slog.Info("circuit breaker state change",
		"service", cb.config.Name,
		"from", cb.state.String(),
		"to", next.String(),
		"failures", cb.failures,
	)
	cb.state = next
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.transitionToClosed()
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}
