package services_test

import (
	"testing"

	"opsintel/internal/models"
	"opsintel/internal/services"

	"github.com/stretchr/testify/suite"
)

type KPIServiceTestSuite struct {
	suite.Suite
}

func TestKPIServiceSuite(t *testing.T) {
	suite.Run(t, new(KPIServiceTestSuite))
}

func (s *KPIServiceTestSuite) TestDailyKPIs_AggregatesPerDayInOrder() {
	snapshot := snapshotOf(
		record("2024-01-02", models.ProductPix, "300", 3),
		record("2024-01-01", models.ProductPix, "100", 1),
		record("2024-01-01", models.ProductPOS, "100.50", 4),
	)

	kpis := services.NewKPIService(snapshot).DailyKPIs()

	s.Require().Len(kpis, 2)
	s.Equal(mustDay("2024-01-01"), kpis[0].Day)
	s.True(kpis[0].TPV.Equal(dec("200.50")))
	s.Equal(int64(5), kpis[0].TotalTransactions)
	s.Equal(int64(2), kpis[0].TotalMerchants)
	s.True(kpis[0].AvgTicket.Valid)
	s.True(kpis[0].AvgTicket.Decimal.Equal(dec("40.1")))
	s.Equal(mustDay("2024-01-02"), kpis[1].Day)
	s.True(kpis[1].AvgTicket.Decimal.Equal(dec("100")))
}

func (s *KPIServiceTestSuite) TestDailyKPIs_ZeroTransactionsHasNullTicket() {
	snapshot := snapshotOf(record("2024-01-01", models.ProductPix, "0", 0))

	kpis := services.NewKPIService(snapshot).DailyKPIs()

	s.Require().Len(kpis, 1)
	s.False(kpis[0].AvgTicket.Valid)
	s.True(kpis[0].TPV.IsZero())
}

func (s *KPIServiceTestSuite) TestDailyKPIs_EmptyDataset() {
	kpis := services.NewKPIService(snapshotOf()).DailyKPIs()

	s.NotNil(kpis)
	s.Empty(kpis)
}

func (s *KPIServiceTestSuite) TestDailyKPIs_RepeatedCallsAreEqual() {
	service := services.NewKPIService(snapshotOf(dailySeries("2024-01-01", "100", "200", "300")...))

	s.Equal(service.DailyKPIs(), service.DailyKPIs())
}

func (s *KPIServiceTestSuite) TestSegmentBreakdowns_DefaultsToLatestDay() {
	snapshot := snapshotOf(
		record("2024-01-01", models.ProductTap, "999", 1),
		record("2024-01-02", models.ProductPix, "100", 2),
		record("2024-01-02", models.ProductPOS, "300", 3),
		record("2024-01-02", models.ProductPix, "150", 1),
	)

	breakdowns, err := services.NewKPIService(snapshot).SegmentBreakdowns(nil)

	s.Require().NoError(err)
	s.Equal(mustDay("2024-01-02"), breakdowns.Day)
	s.Require().Len(breakdowns.Product, 2)
	s.Equal(models.ProductPOS, breakdowns.Product[0].Value)
	s.True(breakdowns.Product[0].TPV.Equal(dec("300")))
	s.Equal(models.ProductPix, breakdowns.Product[1].Value)
	s.True(breakdowns.Product[1].TPV.Equal(dec("250")))
	s.Equal(int64(3), breakdowns.Product[1].Transactions)
}

func (s *KPIServiceTestSuite) TestSegmentBreakdowns_TiesOrderedByValue() {
	snapshot := snapshotOf(
		record("2024-01-01", models.ProductTap, "100", 1),
		record("2024-01-01", models.ProductLink, "100", 1),
	)

	breakdowns, err := services.NewKPIService(snapshot).SegmentBreakdowns(nil)

	s.Require().NoError(err)
	s.Equal(models.ProductLink, breakdowns.Product[0].Value)
	s.Equal(models.ProductTap, breakdowns.Product[1].Value)
}

func (s *KPIServiceTestSuite) TestSegmentBreakdowns_AllGroupings() {
	pj := record("2024-01-01", models.ProductPix, "100", 1)
	pj.Entity = models.EntityBusiness
	pj.PaymentMethod = models.PaymentMethodCredit
	pf := record("2024-01-01", models.ProductPix, "50", 0)
	pf.Entity = models.EntityIndividual
	pf.PaymentMethod = models.PaymentMethodDebit

	breakdowns, err := services.NewKPIService(snapshotOf(pj, pf)).SegmentBreakdowns(nil)

	s.Require().NoError(err)
	s.Require().Len(breakdowns.Entity, 2)
	s.Equal(models.EntityBusiness, breakdowns.Entity[0].Value)
	s.Equal(models.EntityIndividual, breakdowns.Entity[1].Value)
	s.False(breakdowns.Entity[1].AvgTicket.Valid)
	s.Require().Len(breakdowns.PaymentMethod, 2)
	s.Equal(models.PaymentMethodCredit, breakdowns.PaymentMethod[0].Value)
}

func (s *KPIServiceTestSuite) TestSegmentBreakdowns_BlankValuesExcluded() {
	blank := record("2024-01-01", "", "500", 5)
	snapshot := snapshotOf(blank, record("2024-01-01", models.ProductPix, "100", 1))

	breakdowns, err := services.NewKPIService(snapshot).SegmentBreakdowns(nil)

	s.Require().NoError(err)
	s.Require().Len(breakdowns.Product, 1)
	s.Equal(models.ProductPix, breakdowns.Product[0].Value)
}

func (s *KPIServiceTestSuite) TestSegmentBreakdowns_DayWithoutRecords() {
	snapshot := snapshotOf(record("2024-01-01", models.ProductPix, "100", 1))

	breakdowns, err := services.NewKPIService(snapshot).SegmentBreakdowns(dayPtr("2023-12-25"))

	s.Require().NoError(err)
	s.Equal(mustDay("2023-12-25"), breakdowns.Day)
	s.Empty(breakdowns.Product)
	s.Empty(breakdowns.Entity)
	s.Empty(breakdowns.PaymentMethod)
}

func (s *KPIServiceTestSuite) TestSegmentBreakdowns_EmptyDataset() {
	_, err := services.NewKPIService(snapshotOf()).SegmentBreakdowns(nil)

	s.ErrorIs(err, services.ErrEmptyDataset)
}
