package services_test

import (
	"testing"

	"opsintel/internal/models"
	"opsintel/internal/services"
	"opsintel/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type VarianceServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
}

func TestVarianceServiceSuite(t *testing.T) {
	suite.Run(t, new(VarianceServiceTestSuite))
}

func (s *VarianceServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
}

func (s *VarianceServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *VarianceServiceTestSuite) varianceOf(records ...models.TransactionRecord) services.VarianceServiceInterface {
	return services.NewVarianceService(services.NewKPIService(snapshotOf(records...)))
}

func (s *VarianceServiceTestSuite) TestVariances_PreviousDayIncrease() {
	service := s.varianceOf(dailySeries("2024-01-01", "1000", "1200")...)

	record, err := service.Variances(nil)

	s.Require().NoError(err)
	s.Equal(mustDay("2024-01-02"), record.Day)
	s.True(record.TPVCurrent.Equal(dec("1200")))
	s.True(record.TPVD1.Valid)
	s.True(record.TPVD1.Decimal.Equal(dec("1000")))
	s.True(record.VarD1Pct.Decimal.Equal(dec("20")), "got %s", record.VarD1Pct.Decimal)
	s.False(record.TPVD7.Valid)
	s.False(record.VarD7Pct.Valid)
	s.Equal(1, record.DaysInWindow)
	s.True(record.TPVAvg30d.Decimal.Equal(dec("1000")))
	s.True(record.Var30dPct.Decimal.Equal(dec("20")))
	s.False(record.ZScore30d.Valid)
}

func (s *VarianceServiceTestSuite) TestVariances_WeekAgo() {
	records := dailySeries("2024-01-01", "800", "1", "1", "1", "1", "1", "1", "1000")
	service := s.varianceOf(records...)

	record, err := service.Variances(dayPtr("2024-01-08"))

	s.Require().NoError(err)
	s.True(record.TPVD7.Decimal.Equal(dec("800")))
	s.True(record.VarD7Pct.Decimal.Equal(dec("25")))
}

func (s *VarianceServiceTestSuite) TestVariances_GapMakesD1Null() {
	service := s.varianceOf(
		record("2024-01-01", models.ProductPix, "100", 1),
		record("2024-01-03", models.ProductPix, "200", 1),
	)

	record, err := service.Variances(nil)

	s.Require().NoError(err)
	s.False(record.TPVD1.Valid)
	s.False(record.VarD1Pct.Valid)
	s.Equal(1, record.DaysInWindow)
	s.True(record.Var30dPct.Decimal.Equal(dec("100")))
}

func (s *VarianceServiceTestSuite) TestVariances_ZeroReferenceIsNull() {
	service := s.varianceOf(dailySeries("2024-01-01", "0", "500")...)

	record, err := service.Variances(nil)

	s.Require().NoError(err)
	s.True(record.TPVD1.Valid)
	s.True(record.TPVD1.Decimal.IsZero())
	s.False(record.VarD1Pct.Valid)
	s.False(record.Var30dPct.Valid)
}

func (s *VarianceServiceTestSuite) TestVariances_WindowIsClosedOverThirtyPriorDays() {
	service := s.varianceOf(
		record("2024-01-01", models.ProductPix, "999999", 1), // D-31, outside
		record("2024-01-02", models.ProductPix, "100", 1),    // D-30, inside
		record("2024-01-31", models.ProductPix, "300", 1),    // D-1, inside
		record("2024-02-01", models.ProductPix, "400", 1),
	)

	record, err := service.Variances(nil)

	s.Require().NoError(err)
	s.Equal(2, record.DaysInWindow)
	s.True(record.TPVAvg30d.Decimal.Equal(dec("200")))
	s.True(record.Var30dPct.Decimal.Equal(dec("100")))
}

func (s *VarianceServiceTestSuite) TestVariances_EmptyWindowIsNull() {
	service := s.varianceOf(record("2024-01-01", models.ProductPix, "100", 1))

	record, err := service.Variances(nil)

	s.Require().NoError(err)
	s.Equal(0, record.DaysInWindow)
	s.False(record.TPVAvg30d.Valid)
	s.False(record.Var30dPct.Valid)
	s.False(record.ZScore30d.Valid)
}

func (s *VarianceServiceTestSuite) TestVariances_LeapDay() {
	service := s.varianceOf(
		record("2024-02-22", models.ProductPix, "50", 1),
		record("2024-02-29", models.ProductPix, "100", 1),
		record("2024-03-01", models.ProductPix, "150", 1),
	)

	record, err := service.Variances(dayPtr("2024-03-01"))

	s.Require().NoError(err)
	s.True(record.TPVD1.Decimal.Equal(dec("100")))
	s.True(record.VarD1Pct.Decimal.Equal(dec("50")))
	s.False(record.TPVD7.Valid)

	record, err = service.Variances(dayPtr("2024-02-29"))

	s.Require().NoError(err)
	s.True(record.TPVD7.Decimal.Equal(dec("50")))
	s.True(record.VarD7Pct.Decimal.Equal(dec("100")))
}

func (s *VarianceServiceTestSuite) TestVariances_ZScore() {
	service := s.varianceOf(dailySeries("2024-01-01", "100", "200", "300")...)

	record, err := service.Variances(nil)

	s.Require().NoError(err)
	s.Require().True(record.ZScore30d.Valid)
	s.True(record.ZScore30d.Decimal.Equal(dec("2.1213")), "got %s", record.ZScore30d.Decimal)
}

func (s *VarianceServiceTestSuite) TestVariances_FlatWindowHasNullZScore() {
	service := s.varianceOf(dailySeries("2024-01-01", "100", "100", "100", "500")...)

	record, err := service.Variances(nil)

	s.Require().NoError(err)
	s.True(record.Var30dPct.Decimal.Equal(dec("400")))
	s.False(record.ZScore30d.Valid)
}

func (s *VarianceServiceTestSuite) TestVariances_DayWithoutData() {
	service := s.varianceOf(dailySeries("2024-01-01", "100")...)

	_, err := service.Variances(dayPtr("2024-06-01"))

	s.ErrorIs(err, services.ErrNoData)
}

func (s *VarianceServiceTestSuite) TestVariances_NoKPIs() {
	kpiService := service_mocks.NewMockKPIServiceInterface(s.ctrl)
	kpiService.EXPECT().DailyKPIs().Return([]models.DailyKPI{})

	_, err := services.NewVarianceService(kpiService).Variances(nil)

	s.ErrorIs(err, services.ErrNoData)
}

func (s *VarianceServiceTestSuite) TestVariances_UsesKPIRows() {
	kpiService := service_mocks.NewMockKPIServiceInterface(s.ctrl)
	kpiService.EXPECT().DailyKPIs().Return([]models.DailyKPI{
		{Day: mustDay("2024-05-01"), TPV: decimal.NewFromInt(400)},
		{Day: mustDay("2024-05-02"), TPV: decimal.NewFromInt(300)},
	})

	record, err := services.NewVarianceService(kpiService).Variances(nil)

	s.Require().NoError(err)
	s.True(record.VarD1Pct.Decimal.Equal(dec("-25")))
}
