package handlers

import (
	"fmt"
	"net/http"

	"opsintel/internal/dto"
	"opsintel/internal/models"
	"opsintel/internal/services"

	"cloud.google.com/go/civil"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// KPIHandler serves the KPI, variance, alert and report endpoints
type KPIHandler struct {
	kpiService      services.KPIServiceInterface
	varianceService services.VarianceServiceInterface
	anomalyService  services.AnomalyServiceInterface
	formatter       services.AlertFormatterInterface
	reportService   services.ReportServiceInterface
	defaults        models.DetectionOptions
}

// NewKPIHandler creates a new KPI handler; defaults apply when a request omits detection options
func NewKPIHandler(
	kpiService services.KPIServiceInterface,
	varianceService services.VarianceServiceInterface,
	anomalyService services.AnomalyServiceInterface,
	formatter services.AlertFormatterInterface,
	reportService services.ReportServiceInterface,
	defaults models.DetectionOptions,
) *KPIHandler {
	return &KPIHandler{
		kpiService:      kpiService,
		varianceService: varianceService,
		anomalyService:  anomalyService,
		formatter:       formatter,
		reportService:   reportService,
		defaults:        defaults,
	}
}

// DailyKPIs lists the daily KPI rows
// @Summary Daily KPIs
// @Description TPV, transactions, merchants and average ticket for every day of the dataset
// @Tags KPIs
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.DailyKPIsResponse}
// @Router /api/v1/kpis/daily [get]
func (h *KPIHandler) DailyKPIs(c echo.Context) error {
	days := h.kpiService.DailyKPIs()

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.DailyKPIsResponse{Days: days, Count: len(days)},
	})
}

// SegmentBreakdowns returns the product, entity and payment method breakdowns of a day
// @Summary Segment breakdowns
// @Tags KPIs
// @Produce json
// @Param day query string false "Day (YYYY-MM-DD), latest day when omitted"
// @Success 200 {object} SuccessResponse{data=models.SegmentBreakdowns}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid date"
// @Failure 404 {object} errors.ErrorResponse "KPI_002 - Empty dataset"
// @Router /api/v1/kpis/segments [get]
func (h *KPIHandler) SegmentBreakdowns(c echo.Context) error {
	day, err := bindDayQuery(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	breakdowns, err := h.kpiService.SegmentBreakdowns(day)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: breakdowns})
}

// Variances returns the D-1, D-7 and trailing 30-day variances of a day
// @Summary TPV variances
// @Tags KPIs
// @Produce json
// @Param day query string false "Day (YYYY-MM-DD), latest day when omitted"
// @Success 200 {object} SuccessResponse{data=models.VarianceRecord}
// @Failure 404 {object} errors.ErrorResponse "KPI_001 - No data for the day"
// @Router /api/v1/kpis/variances [get]
func (h *KPIHandler) Variances(c echo.Context) error {
	day, err := bindDayQuery(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	variance, err := h.varianceService.Variances(day)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: variance})
}

// Alerts runs anomaly detection and returns the anomalies with their alert texts
// @Summary TPV alerts
// @Tags Alerts
// @Produce json
// @Param day query string false "Day (YYYY-MM-DD), latest day when omitted"
// @Param threshold query number false "Absolute percentage threshold" default(15)
// @Param zscore query number false "Minimum absolute z-score for the 30-day anomaly"
// @Success 200 {object} SuccessResponse{data=dto.AlertsResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid options"
// @Failure 404 {object} errors.ErrorResponse "KPI_001 - No data for the day"
// @Router /api/v1/alerts [get]
func (h *KPIHandler) Alerts(c echo.Context) error {
	opts, err := h.detectionOptions(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	result, err := h.anomalyService.DetectAnomalies(opts)
	if err != nil {
		return sendServiceError(c, err)
	}

	alerts := h.formatter.FormatAlerts(result)
	if alerts == nil {
		alerts = []string{}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.AlertsResponse{Detection: result, Alerts: alerts},
		Meta: map[string]interface{}{"anomalies": len(result.Anomalies)},
	})
}

// DailyReport builds the daily report of a day
// @Summary Daily report
// @Tags Reports
// @Produce json
// @Param day query string false "Day (YYYY-MM-DD), latest day when omitted"
// @Success 200 {object} SuccessResponse{data=dto.DailyReportResponse}
// @Failure 404 {object} errors.ErrorResponse "KPI_001 - No data for the day"
// @Router /api/v1/reports/daily [get]
func (h *KPIHandler) DailyReport(c echo.Context) error {
	opts, err := h.detectionOptions(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	report, err := h.reportService.DailyReport(opts.Day, opts)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.DailyReportResponse{Report: report, Text: h.reportService.RenderReport(report)},
	})
}

// detectionOptions binds the alert query parameters over the configured defaults
func (h *KPIHandler) detectionOptions(c echo.Context) (models.DetectionOptions, error) {
	opts := h.defaults

	var q dto.AlertsQuery
	if err := c.Bind(&q); err != nil {
		return opts, fmt.Errorf("%w: %v", errInvalidQuery, err)
	}
	if err := c.Validate(q); err != nil {
		return opts, err
	}

	day, err := parseDayParam(q.Day)
	if err != nil {
		return opts, err
	}
	opts.Day = day

	if q.Threshold != "" {
		threshold, err := decimal.NewFromString(q.Threshold)
		if err != nil {
			return opts, fmt.Errorf("%w: threshold must be a number", errInvalidQuery)
		}
		opts.ThresholdPct = threshold
	}

	if q.ZScore != "" {
		zscore, err := decimal.NewFromString(q.ZScore)
		if err != nil {
			return opts, fmt.Errorf("%w: zscore must be a number", errInvalidQuery)
		}
		opts.ZScoreThreshold = decimal.NewNullDecimal(zscore)
	}

	return opts, nil
}

func bindDayQuery(c echo.Context) (*civil.Date, error) {
	var q dto.DayQuery
	if err := c.Bind(&q); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidQuery, err)
	}
	if err := c.Validate(q); err != nil {
		return nil, err
	}
	return parseDayParam(q.Day)
}
