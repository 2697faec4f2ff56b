package services

import (
	"errors"
	"math"

	"opsintel/internal/models"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

var (
	ErrNoData = errors.New("no KPI data for the requested day")
)

const zScorePrecision = 4

type varianceService struct {
	kpiService KPIServiceInterface
}

func NewVarianceService(kpiService KPIServiceInterface) VarianceServiceInterface {
	return &varianceService{
		kpiService: kpiService,
	}
}

// Variances compares the day against D-1, D-7 and the mean of [D-30, D-1].
// A nil day resolves to the latest day with data.
func (s *varianceService) Variances(day *civil.Date) (*models.VarianceRecord, error) {
	kpis := s.kpiService.DailyKPIs()
	if len(kpis) == 0 {
		return nil, ErrNoData
	}

	byDay := make(map[civil.Date]decimal.Decimal, len(kpis))
	for _, kpi := range kpis {
		byDay[kpi.Day] = kpi.TPV
	}

	target := kpis[len(kpis)-1].Day
	if day != nil {
		target = *day
	}

	current, ok := byDay[target]
	if !ok {
		return nil, ErrNoData
	}

	record := &models.VarianceRecord{
		Day:        target,
		TPVCurrent: current,
	}

	if tpv, ok := byDay[target.AddDays(-1)]; ok {
		record.TPVD1 = decimal.NewNullDecimal(tpv)
		record.VarD1Pct = models.PercentChange(current, tpv)
	}

	if tpv, ok := byDay[target.AddDays(-7)]; ok {
		record.TPVD7 = decimal.NewNullDecimal(tpv)
		record.VarD7Pct = models.PercentChange(current, tpv)
	}

	window := trailingWindow(byDay, target)
	record.DaysInWindow = len(window)
	if len(window) > 0 {
		mean := sumDecimals(window).Div(decimal.NewFromInt(int64(len(window))))
		record.TPVAvg30d = decimal.NewNullDecimal(mean)
		record.Var30dPct = models.PercentChange(current, mean)
		record.ZScore30d = zScore(current, mean, window)
	}

	return record, nil
}

// trailingWindow collects the volumes of the days in [target-30, target-1] that have data
func trailingWindow(byDay map[civil.Date]decimal.Decimal, target civil.Date) []decimal.Decimal {
	window := make([]decimal.Decimal, 0, models.TrailingWindowDays)
	for offset := models.TrailingWindowDays; offset >= 1; offset-- {
		if tpv, ok := byDay[target.AddDays(-offset)]; ok {
			window = append(window, tpv)
		}
	}
	return window
}

func sumDecimals(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// zScore uses the sample standard deviation; null when it is undefined or zero
func zScore(current, mean decimal.Decimal, window []decimal.Decimal) decimal.NullDecimal {
	if len(window) < 2 {
		return decimal.NullDecimal{}
	}

	squares := decimal.Zero
	for _, v := range window {
		diff := v.Sub(mean)
		squares = squares.Add(diff.Mul(diff))
	}
	variance, _ := squares.Div(decimal.NewFromInt(int64(len(window) - 1))).Float64()
	std := math.Sqrt(variance)
	if std == 0 || math.IsNaN(std) {
		return decimal.NullDecimal{}
	}

	diff, _ := current.Sub(mean).Float64()
	return decimal.NewNullDecimal(decimal.NewFromFloat(diff / std).Round(zScorePrecision))
}
