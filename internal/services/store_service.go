package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"opsintel/internal/dataset"
	"opsintel/internal/models"
	"opsintel/internal/repositories"

	"github.com/shopspring/decimal"
)

// reconcileTolerance absorbs the float rounding of SQL SUM over decimal columns
var reconcileTolerance = decimal.New(1, -2)

type storeService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	kpiService      KPIServiceInterface
	alertLogger     AlertLoggerInterface
	metrics         MetricsRecorderInterface
}

func NewStoreService(
	transactionRepo repositories.TransactionRepositoryInterface,
	kpiService KPIServiceInterface,
	alertLogger AlertLoggerInterface,
	metrics MetricsRecorderInterface,
) StoreServiceInterface {
	return &storeService{
		transactionRepo: transactionRepo,
		kpiService:      kpiService,
		alertLogger:     alertLogger,
		metrics:         metrics,
	}
}

// Sync replaces the query store content with the snapshot records
func (s *storeService) Sync(ctx context.Context, snapshot *dataset.Snapshot) (int64, error) {
	rows := make([]models.TransactionRow, 0, snapshot.Len())
	snapshot.ForEach(func(r models.TransactionRecord) {
		rows = append(rows, r.ToRow())
	})

	if err := s.transactionRepo.ReplaceAll(ctx, rows); err != nil {
		return 0, fmt.Errorf("failed to load query store: %w", err)
	}

	count, err := s.transactionRepo.Count(ctx)
	if err != nil {
		return 0, err
	}

	s.metrics.RecordGauge("dataset.records", float64(count), nil)
	s.alertLogger.LogDatasetLoaded(ctx, snapshot.Len(), snapshot.SkippedRows(), len(snapshot.Days()))
	return count, nil
}

// Reconcile returns the days whose store totals differ from the in-memory KPIs
func (s *storeService) Reconcile(ctx context.Context) ([]string, error) {
	totals, err := s.transactionRepo.DailyTotals(ctx)
	if err != nil {
		return nil, err
	}

	stored := make(map[string]models.DailyTotal, len(totals))
	for _, total := range totals {
		stored[total.Day] = total
	}

	mismatched := []string{}
	kpis := s.kpiService.DailyKPIs()
	for _, kpi := range kpis {
		day := kpi.Day.String()
		total, ok := stored[day]
		delete(stored, day)

		if !ok ||
			total.TotalTransactions != kpi.TotalTransactions ||
			total.TotalMerchants != kpi.TotalMerchants ||
			total.TPV.Sub(kpi.TPV).Abs().GreaterThan(reconcileTolerance) {
			mismatched = append(mismatched, day)
		}
	}
	for day := range stored {
		mismatched = append(mismatched, day)
	}
	sort.Strings(mismatched)

	if len(mismatched) > 0 {
		slog.Warn("query store out of sync with dataset",
			"mismatched_days", len(mismatched),
			"dataset_days", len(kpis))
	}
	return mismatched, nil
}
