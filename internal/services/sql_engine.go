package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"opsintel/internal/llm"
	"opsintel/internal/models"
	"opsintel/internal/repositories"
)

type sqlEngine struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       llm.Generator
}

func NewSQLEngine(transactionRepo repositories.TransactionRepositoryInterface, generator llm.Generator) QueryEngineInterface {
	return &sqlEngine{
		transactionRepo: transactionRepo,
		generator:       generator,
	}
}

func (e *sqlEngine) Mode() models.EngineMode {
	return models.EngineSQL
}

// Run asks the language model for a query and executes it against the query store
func (e *sqlEngine) Run(ctx context.Context, question string) (*models.EngineOutcome, error) {
	outcome := &models.EngineOutcome{Engine: models.EngineSQL}

	generated, err := e.generator.Generate(ctx, buildSQLPrompt(question))
	if err != nil {
		return failOutcome(outcome, fmt.Errorf("%w: %v", ErrQueryGeneration, err))
	}

	outcome.Query = CleanGeneratedSQL(generated)
	if outcome.Query == "" {
		return failOutcome(outcome, fmt.Errorf("%w: empty query", ErrQueryGeneration))
	}

	result, err := e.transactionRepo.RunReadOnlyQuery(ctx, outcome.Query)
	if err != nil {
		if errors.Is(err, repositories.ErrNotReadOnly) ||
			errors.Is(err, repositories.ErrMultipleStatement) ||
			errors.Is(err, repositories.ErrEmptyQuery) {
			return failOutcome(outcome, fmt.Errorf("%w: %v", ErrQueryRejected, err))
		}
		return failOutcome(outcome, fmt.Errorf("%w: %v", ErrQueryExecution, err))
	}

	outcome.Result = result
	return outcome, nil
}

// CleanGeneratedSQL strips markdown fences and keeps only the first statement
// when the model emitted several.
func CleanGeneratedSQL(generated string) string {
	query := strings.ReplaceAll(generated, "```sql", "")
	query = strings.ReplaceAll(query, "```", "")
	query = strings.TrimSpace(query)

	if strings.Count(query, ";") > 1 {
		query = strings.SplitN(query, ";", 2)[0] + ";"
	}
	return query
}

func failOutcome(outcome *models.EngineOutcome, err error) (*models.EngineOutcome, error) {
	outcome.Error = err.Error()
	return outcome, err
}
