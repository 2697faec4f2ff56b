package services_test

import (
	"testing"
	"time"

	"opsintel/internal/config"
	"opsintel/internal/models"
	"opsintel/internal/services"
	"opsintel/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CircuitBreakerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	alertLogger *service_mocks.MockAlertLoggerInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
}

func TestCircuitBreakerSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerTestSuite))
}

func (s *CircuitBreakerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.alertLogger = service_mocks.NewMockAlertLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
}

func (s *CircuitBreakerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CircuitBreakerTestSuite) newBreaker(resetTimeout time.Duration) services.CircuitBreakerInterface {
	return services.NewCircuitBreaker(services.CircuitBreakerConfig{
		Name:            "llm",
		MaxFailures:     2,
		ResetTimeout:    resetTimeout,
		HalfOpenMaxSucc: 1,
	}, s.alertLogger, s.metrics)
}

func (s *CircuitBreakerTestSuite) expectTransition(from, to models.CircuitBreakerState) {
	s.alertLogger.EXPECT().LogCircuitBreakerStateChange(gomock.Any(), "llm", from.String(), to.String())
	s.metrics.EXPECT().RecordGauge("circuit_breaker.state", float64(to), map[string]string{"service": "llm"})
}

func (s *CircuitBreakerTestSuite) TestOpensAfterMaxFailures() {
	s.expectTransition(services.StateClosed, services.StateOpen)
	cb := s.newBreaker(time.Hour)

	cb.RecordFailure()
	s.False(cb.IsOpen())
	s.Equal(1, cb.GetFailureCount())

	cb.RecordFailure()
	s.True(cb.IsOpen())
	s.Equal(services.StateOpen, cb.GetState())
}

func (s *CircuitBreakerTestSuite) TestSuccessResetsFailures() {
	cb := s.newBreaker(time.Hour)

	cb.RecordFailure()
	cb.RecordSuccess()

	s.Equal(0, cb.GetFailureCount())
	s.Equal(services.StateClosed, cb.GetState())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenThenClosed() {
	gomock.InOrder(
		s.alertLogger.EXPECT().LogCircuitBreakerStateChange(gomock.Any(), "llm", "closed", "open"),
		s.alertLogger.EXPECT().LogCircuitBreakerStateChange(gomock.Any(), "llm", "open", "half-open"),
		s.alertLogger.EXPECT().LogCircuitBreakerStateChange(gomock.Any(), "llm", "half-open", "closed"),
	)
	s.metrics.EXPECT().RecordGauge("circuit_breaker.state", gomock.Any(), gomock.Any()).Times(3)
	cb := s.newBreaker(10 * time.Millisecond)

	cb.RecordFailure()
	cb.RecordFailure()
	time.Sleep(20 * time.Millisecond)

	s.False(cb.IsOpen())
	s.Equal(services.StateHalfOpen, cb.GetState())

	cb.RecordSuccess()
	s.Equal(services.StateClosed, cb.GetState())
	s.Equal(0, cb.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenFailureReopens() {
	s.alertLogger.EXPECT().LogCircuitBreakerStateChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(3)
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).Times(3)
	cb := s.newBreaker(10 * time.Millisecond)

	cb.RecordFailure()
	cb.RecordFailure()
	time.Sleep(20 * time.Millisecond)
	s.False(cb.IsOpen())

	cb.RecordFailure()
	s.Equal(services.StateOpen, cb.GetState())
}

func (s *CircuitBreakerTestSuite) TestReset() {
	s.alertLogger.EXPECT().LogCircuitBreakerStateChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
	cb := s.newBreaker(time.Hour)

	cb.RecordFailure()
	cb.RecordFailure()
	cb.Reset()

	s.False(cb.IsOpen())
	s.Equal(0, cb.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestNilCollaborators() {
	cb := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig(), nil, nil)

	for i := 0; i < 3; i++ {
		cb.RecordFailure()
	}

	s.True(cb.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestLLMCircuitBreakerConfig() {
	cfg := services.LLMCircuitBreakerConfig(config.LLMConfig{MaxFailures: 7, ResetTimeout: time.Minute})

	s.Equal(7, cfg.MaxFailures)
	s.Equal(time.Minute, cfg.ResetTimeout)
	s.Equal("llm", cfg.Name)

	defaults := services.LLMCircuitBreakerConfig(config.LLMConfig{})
	s.Equal(services.DefaultCircuitBreakerConfig(), defaults)
}
