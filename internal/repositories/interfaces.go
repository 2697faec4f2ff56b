package repositories

import (
	"context"

	"opsintel/internal/models"
)

// TransactionRepositoryInterface defines the contract for the relational query store
type TransactionRepositoryInterface interface {
	ReplaceAll(ctx context.Context, rows []models.TransactionRow) error
	Count(ctx context.Context) (int64, error)
	DailyTotals(ctx context.Context) ([]models.DailyTotal, error)
	RunReadOnlyQuery(ctx context.Context, query string) (*models.QueryResult, error)
}
