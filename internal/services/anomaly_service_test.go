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

type AnomalyServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	alertLogger *service_mocks.MockAlertLoggerInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
}

func TestAnomalyServiceSuite(t *testing.T) {
	suite.Run(t, new(AnomalyServiceTestSuite))
}

func (s *AnomalyServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.alertLogger = service_mocks.NewMockAlertLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.alertLogger.EXPECT().LogDetectionCompleted(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime("anomaly.detection", gomock.Any()).AnyTimes()
}

func (s *AnomalyServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AnomalyServiceTestSuite) serviceFor(records ...models.TransactionRecord) services.AnomalyServiceInterface {
	kpiService := services.NewKPIService(snapshotOf(records...))
	return services.NewAnomalyService(kpiService, services.NewVarianceService(kpiService), s.alertLogger, s.metrics)
}

func (s *AnomalyServiceTestSuite) expectAnomalies(n int) {
	s.alertLogger.EXPECT().LogAnomalyDetected(gomock.Any(), gomock.Any(), gomock.Any()).Times(n)
	s.metrics.EXPECT().IncrementCounter("anomaly.detected", gomock.Any()).Times(n)
}

func withThreshold(pct int64) models.DetectionOptions {
	return models.DetectionOptions{ThresholdPct: decimal.NewFromInt(pct)}
}

func (s *AnomalyServiceTestSuite) TestDetect_TwentyPercentIsModerate() {
	s.expectAnomalies(2)
	service := s.serviceFor(dailySeries("2024-01-01", "1000", "1200")...)

	result, err := service.DetectAnomalies(models.DefaultDetectionOptions())

	s.Require().NoError(err)
	s.Require().Len(result.Anomalies, 2)

	d1 := result.Anomalies[0]
	s.Equal(models.PeriodPreviousDay, d1.Period)
	s.Equal(models.DirectionIncrease, d1.Direction)
	s.Equal(models.SeverityModerate, d1.Severity)
	s.Equal(models.MetricTPV, d1.Metric)
	s.True(d1.PctDelta.Equal(dec("20")))
	s.False(d1.ZScore.Valid)
	s.Require().NotNil(d1.Attribution)
	s.Equal(models.SegmentProduct, d1.Attribution.Dimension)
	s.Equal(models.ProductPix, d1.Attribution.Segment)
	s.True(d1.Attribution.TPV.Equal(dec("1200")))

	s.Equal(models.PeriodTrailing30d, result.Anomalies[1].Period)
	s.Equal(mustDay("2024-01-02"), result.Variance.Day)
}

func (s *AnomalyServiceTestSuite) TestDetect_ElevatedDecrease() {
	s.expectAnomalies(2)
	service := s.serviceFor(dailySeries("2024-01-01", "1000", "700")...)

	result, err := service.DetectAnomalies(models.DefaultDetectionOptions())

	s.Require().NoError(err)
	s.Require().Len(result.Anomalies, 2)
	s.Equal(models.DirectionDecrease, result.Anomalies[0].Direction)
	s.Equal(models.SeverityElevated, result.Anomalies[0].Severity)
	s.True(result.Anomalies[0].PctDelta.Equal(dec("-30")))
}

func (s *AnomalyServiceTestSuite) TestDetect_ThresholdIsStrict() {
	s.expectAnomalies(0)
	service := s.serviceFor(dailySeries("2024-01-01", "1000", "1150")...)

	result, err := service.DetectAnomalies(models.DefaultDetectionOptions())

	s.Require().NoError(err)
	s.NotNil(result.Anomalies)
	s.Empty(result.Anomalies)
	s.True(result.Variance.VarD1Pct.Decimal.Equal(dec("15")))
}

func (s *AnomalyServiceTestSuite) TestDetect_CustomThreshold() {
	s.expectAnomalies(2)
	service := s.serviceFor(dailySeries("2024-01-01", "1000", "1150")...)

	result, err := service.DetectAnomalies(withThreshold(10))

	s.Require().NoError(err)
	s.Len(result.Anomalies, 2)
}

func (s *AnomalyServiceTestSuite) TestDetect_AttributionSharedAcrossAnomalies() {
	s.expectAnomalies(2)
	records := dailySeries("2024-01-01", "1000")
	records = append(records,
		record("2024-01-02", models.ProductPOS, "900", 5),
		record("2024-01-02", models.ProductPix, "600", 5),
	)
	service := s.serviceFor(records...)

	result, err := service.DetectAnomalies(models.DefaultDetectionOptions())

	s.Require().NoError(err)
	s.Require().Len(result.Anomalies, 2)
	for _, anomaly := range result.Anomalies {
		s.Require().NotNil(anomaly.Attribution)
		s.Equal(models.ProductPOS, anomaly.Attribution.Segment)
		s.True(anomaly.Attribution.TPV.Equal(dec("900")))
	}
	s.NotSame(result.Anomalies[0].Attribution, result.Anomalies[1].Attribution)
}

func (s *AnomalyServiceTestSuite) TestDetect_ExplicitDay() {
	s.expectAnomalies(2)
	service := s.serviceFor(dailySeries("2024-01-01", "1000", "2000", "2000")...)

	day := mustDay("2024-01-02")
	opts := models.DefaultDetectionOptions()
	opts.Day = &day
	result, err := service.DetectAnomalies(opts)

	s.Require().NoError(err)
	s.Equal(day, result.Variance.Day)
	s.Require().Len(result.Anomalies, 2)
	s.True(result.Anomalies[0].PctDelta.Equal(dec("100")))
}

func (s *AnomalyServiceTestSuite) TestDetect_ZScoreGateSuppressesTrailingAnomaly() {
	s.expectAnomalies(1)
	service := s.serviceFor(dailySeries("2024-01-01", "100", "200", "300")...)

	opts := models.DefaultDetectionOptions()
	opts.ZScoreThreshold = decimal.NewNullDecimal(dec("3"))
	result, err := service.DetectAnomalies(opts)

	s.Require().NoError(err)
	s.Require().Len(result.Anomalies, 1)
	s.Equal(models.PeriodPreviousDay, result.Anomalies[0].Period)
}

func (s *AnomalyServiceTestSuite) TestDetect_ZScoreGatePassesAndAttachesScore() {
	s.expectAnomalies(2)
	service := s.serviceFor(dailySeries("2024-01-01", "100", "200", "300")...)

	opts := models.DefaultDetectionOptions()
	opts.ZScoreThreshold = decimal.NewNullDecimal(dec("2"))
	result, err := service.DetectAnomalies(opts)

	s.Require().NoError(err)
	s.Require().Len(result.Anomalies, 2)
	trailing := result.Anomalies[1]
	s.Equal(models.PeriodTrailing30d, trailing.Period)
	s.True(trailing.ZScore.Valid)
	s.True(trailing.ZScore.Decimal.Equal(dec("2.1213")))
}

func (s *AnomalyServiceTestSuite) TestDetect_MissingZScoreSuppressesWhenGated() {
	s.expectAnomalies(1)
	service := s.serviceFor(dailySeries("2024-01-01", "1000", "1200")...)

	opts := models.DefaultDetectionOptions()
	opts.ZScoreThreshold = decimal.NewNullDecimal(decimal.Zero)
	result, err := service.DetectAnomalies(opts)

	s.Require().NoError(err)
	s.Require().Len(result.Anomalies, 1)
	s.Equal(models.PeriodPreviousDay, result.Anomalies[0].Period)
}

func (s *AnomalyServiceTestSuite) TestDetect_NegativeThreshold() {
	service := s.serviceFor(dailySeries("2024-01-01", "1000", "1200")...)

	_, err := service.DetectAnomalies(withThreshold(-1))

	s.ErrorIs(err, services.ErrInvalidThreshold)
}

func (s *AnomalyServiceTestSuite) TestDetect_NoData() {
	service := s.serviceFor()

	_, err := service.DetectAnomalies(models.DefaultDetectionOptions())

	s.ErrorIs(err, services.ErrNoData)
}

func (s *AnomalyServiceTestSuite) TestDetect_Idempotent() {
	s.expectAnomalies(4)
	service := s.serviceFor(dailySeries("2024-01-01", "1000", "1300")...)

	first, err := service.DetectAnomalies(models.DefaultDetectionOptions())
	s.Require().NoError(err)
	second, err := service.DetectAnomalies(models.DefaultDetectionOptions())
	s.Require().NoError(err)

	s.Equal(first, second)
}
