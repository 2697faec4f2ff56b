package services_test

import (
	"context"
	"errors"
	"testing"

	"opsintel/internal/database"
	"opsintel/internal/models"
	"opsintel/internal/repositories"
	"opsintel/internal/repositories/repository_mocks"
	"opsintel/internal/services"
	"opsintel/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StoreServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	db          *database.DB
	alertLogger *service_mocks.MockAlertLoggerInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
}

func TestStoreServiceSuite(t *testing.T) {
	suite.Run(t, new(StoreServiceTestSuite))
}

func (s *StoreServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.db = database.SetupTestDB(s.T())
	s.alertLogger = service_mocks.NewMockAlertLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
}

func (s *StoreServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
	s.ctrl.Finish()
}

func (s *StoreServiceTestSuite) TestSyncThenReconcile() {
	snapshot := snapshotOf(
		record("2024-01-01", models.ProductPix, "1000.10", 10),
		record("2024-01-01", models.ProductPOS, "250.25", 3),
		record("2024-01-02", models.ProductLink, "99.99", 0),
	)
	service := services.NewStoreService(
		repositories.NewTransactionRepository(s.db.DB),
		services.NewKPIService(snapshot),
		s.alertLogger,
		s.metrics,
	)
	s.metrics.EXPECT().RecordGauge("dataset.records", float64(3), gomock.Nil())
	s.alertLogger.EXPECT().LogDatasetLoaded(s.ctx, 3, 0, 2)

	count, err := service.Sync(s.ctx, snapshot)

	s.Require().NoError(err)
	s.Equal(int64(3), count)

	mismatched, err := service.Reconcile(s.ctx)
	s.Require().NoError(err)
	s.Empty(mismatched)
}

func (s *StoreServiceTestSuite) TestReconcile_ReportsDrift() {
	repo := repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	snapshot := snapshotOf(
		record("2024-01-01", models.ProductPix, "100", 1),
		record("2024-01-02", models.ProductPix, "200", 1),
	)
	repo.EXPECT().DailyTotals(s.ctx).Return([]models.DailyTotal{
		{Day: "2024-01-01", TPV: decimal.RequireFromString("100.004"), TotalTransactions: 1, TotalMerchants: 1},
		{Day: "2024-01-03", TPV: decimal.RequireFromString("5"), TotalTransactions: 1, TotalMerchants: 1},
	}, nil)

	service := services.NewStoreService(repo, services.NewKPIService(snapshot), s.alertLogger, s.metrics)
	mismatched, err := service.Reconcile(s.ctx)

	s.Require().NoError(err)
	s.Equal([]string{"2024-01-02", "2024-01-03"}, mismatched)
}

func (s *StoreServiceTestSuite) TestSync_StoreFailure() {
	repo := repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	repo.EXPECT().ReplaceAll(s.ctx, gomock.Len(1)).Return(errors.New("disk full"))

	service := services.NewStoreService(repo, services.NewKPIService(snapshotOf()), s.alertLogger, s.metrics)
	_, err := service.Sync(s.ctx, snapshotOf(record("2024-01-01", models.ProductPix, "1", 1)))

	s.Error(err)
	s.Contains(err.Error(), "failed to load query store")
}
