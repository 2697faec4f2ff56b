package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"opsintel/internal/llm"
	"opsintel/internal/models"
)

var (
	ErrEmptyQuestion     = errors.New("question is required")
	ErrInvalidMode       = errors.New("mode must be auto, sql or tabular")
	ErrEngineUnavailable = errors.New("no query engine available")
	ErrQueryGeneration   = errors.New("failed to generate query")
	ErrQueryRejected     = errors.New("generated query was rejected")
	ErrQueryExecution    = errors.New("query execution failed")
	ErrInvalidQuerySpec  = errors.New("invalid tabular query plan")
)

const interpretationFailurePrefix = "Não foi possível gerar interpretação: "

type assistantService struct {
	router      EngineRouterInterface
	engines     map[models.EngineMode]QueryEngineInterface
	generator   llm.Generator
	alertLogger AlertLoggerInterface
	metrics     MetricsRecorderInterface
}

// NewAssistantService wires the router and the available engines. A nil engine is
// treated as not configured and questions for it fall back to the other engine.
func NewAssistantService(
	router EngineRouterInterface,
	generator llm.Generator,
	alertLogger AlertLoggerInterface,
	metrics MetricsRecorderInterface,
	engines ...QueryEngineInterface,
) AssistantServiceInterface {
	registered := make(map[models.EngineMode]QueryEngineInterface, len(engines))
	for _, engine := range engines {
		if engine != nil {
			registered[engine.Mode()] = engine
		}
	}

	return &assistantService{
		router:      router,
		engines:     registered,
		generator:   generator,
		alertLogger: alertLogger,
		metrics:     metrics,
	}
}

func (s *assistantService) Ask(ctx context.Context, question string, mode models.EngineMode, interpret bool) (*models.AssistantAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	if mode == "" {
		mode = models.EngineAuto
	}
	if !mode.IsValid() {
		return nil, ErrInvalidMode
	}

	answer := &models.AssistantAnswer{Question: question}

	chosen := mode
	if mode == models.EngineAuto {
		chosen = s.router.Route(question)
		answer.Routed = true
	}

	engine, ok := s.engines[chosen]
	if !ok {
		chosen = otherEngine(chosen)
		if engine, ok = s.engines[chosen]; !ok {
			return nil, ErrEngineUnavailable
		}
		answer.Fallback = true
	}
	answer.Engine = chosen
	s.alertLogger.LogQueryRouted(ctx, mode, chosen, answer.Fallback)

	outcome, err := s.run(ctx, engine, question)
	if err != nil {
		return nil, err
	}
	answer.Outcome = *outcome

	if interpret {
		answer.Interpretation = s.interpret(ctx, question, outcome.Result)
	}

	return answer, nil
}

// CompareEngines runs the question on both engines; engine failures are reported in the outcomes
func (s *assistantService) CompareEngines(ctx context.Context, question string) (*models.EngineComparison, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	sqlEngine, hasSQL := s.engines[models.EngineSQL]
	tabularEngine, hasTabular := s.engines[models.EngineTabular]
	if !hasSQL || !hasTabular {
		return nil, ErrEngineUnavailable
	}

	comparison := &models.EngineComparison{Question: question}
	comparison.SQL, _ = s.run(ctx, sqlEngine, question)
	comparison.Tabular, _ = s.run(ctx, tabularEngine, question)

	return comparison, nil
}

func (s *assistantService) run(ctx context.Context, engine QueryEngineInterface, question string) (*models.EngineOutcome, error) {
	start := time.Now()
	outcome, err := engine.Run(ctx, question)
	duration := time.Since(start)

	if outcome == nil {
		outcome = &models.EngineOutcome{Engine: engine.Mode()}
	}

	s.metrics.RecordProcessingTime("query.duration", duration)
	if err != nil {
		if outcome.Error == "" {
			outcome.Error = err.Error()
		}
		s.metrics.IncrementCounter("query.request", map[string]string{
			"engine": string(engine.Mode()),
			"status": "failed",
		})
		s.alertLogger.LogQueryFailed(ctx, engine.Mode(), err.Error())
		return outcome, err
	}

	s.metrics.IncrementCounter("query.request", map[string]string{
		"engine": string(engine.Mode()),
		"status": "success",
	})
	s.alertLogger.LogQueryExecuted(ctx, engine.Mode(), outcome.Query, outcome.Result.RowCount(), duration.Milliseconds())
	return outcome, nil
}

// interpret never fails the answer; a model failure degrades to a message
func (s *assistantService) interpret(ctx context.Context, question string, result *models.QueryResult) string {
	prompt := buildInterpretationPrompt(question, result.Render(models.MaxPromptRows))

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return interpretationFailurePrefix + err.Error()
	}
	return text
}

func otherEngine(mode models.EngineMode) models.EngineMode {
	if mode == models.EngineSQL {
		return models.EngineTabular
	}
	return models.EngineSQL
}
