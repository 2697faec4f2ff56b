package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"opsintel/internal/models"

	"gorm.io/gorm"
)

const insertBatchSize = 500

var (
	ErrEmptyQuery        = errors.New("query is empty")
	ErrMultipleStatement = errors.New("only a single statement is allowed")
	ErrNotReadOnly       = errors.New("only SELECT or WITH queries are allowed")
)

var writeKeywords = regexp.MustCompile(`(?i)\b(insert|update|delete|drop|alter|create|truncate|attach|detach|pragma|vacuum|grant|revoke)\b`)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// ReplaceAll swaps the whole table content for rows in one transaction
func (r *transactionRepository) ReplaceAll(ctx context.Context, rows []models.TransactionRow) error {
	batch := make([]models.TransactionRow, len(rows))
	copy(batch, rows)
	for i := range batch {
		batch[i].ID = 0
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.TransactionRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear transactions: %w", err)
		}

		if len(batch) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(batch, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert transactions: %w", err)
		}
		return nil
	})
}

// Count returns the number of stored rows
func (r *transactionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.TransactionRow{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// DailyTotals aggregates volume and counts per day in the database
func (r *transactionRepository) DailyTotals(ctx context.Context) ([]models.DailyTotal, error) {
	var totals []models.DailyTotal
	err := r.db.WithContext(ctx).
		Model(&models.TransactionRow{}).
		Select("day, SUM(amount_transacted) AS tpv, SUM(quantity_transactions) AS total_transactions, SUM(quantity_of_merchants) AS total_merchants").
		Group("day").
		Order("day").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily totals: %w", err)
	}
	return totals, nil
}

// RunReadOnlyQuery executes a single SELECT or WITH statement and returns its rows
func (r *transactionRepository) RunReadOnlyQuery(ctx context.Context, query string) (*models.QueryResult, error) {
	statement, err := ValidateReadOnlyQuery(query)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).Raw(statement).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	result := &models.QueryResult{Columns: columns, Rows: [][]any{}}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return result, nil
}

// ValidateReadOnlyQuery trims a trailing semicolon and rejects anything but one read-only statement
func ValidateReadOnlyQuery(query string) (string, error) {
	statement := strings.TrimSpace(query)
	statement = strings.TrimSpace(strings.TrimSuffix(statement, ";"))
	if statement == "" {
		return "", ErrEmptyQuery
	}

	if strings.Contains(statement, ";") {
		return "", ErrMultipleStatement
	}

	fields := strings.Fields(statement)
	switch strings.ToLower(fields[0]) {
	case "select", "with":
	default:
		return "", ErrNotReadOnly
	}

	if writeKeywords.MatchString(statement) {
		return "", ErrNotReadOnly
	}

	return statement, nil
}
