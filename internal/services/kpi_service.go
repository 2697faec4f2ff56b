package services

import (
	"errors"
	"sort"

	"opsintel/internal/dataset"
	"opsintel/internal/models"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDataset = errors.New("dataset has no records")
)

type kpiService struct {
	snapshot *dataset.Snapshot
}

func NewKPIService(snapshot *dataset.Snapshot) KPIServiceInterface {
	return &kpiService{
		snapshot: snapshot,
	}
}

// DailyKPIs returns one row per distinct day in ascending day order
func (s *kpiService) DailyKPIs() []models.DailyKPI {
	days := s.snapshot.Days()
	kpis := make([]models.DailyKPI, 0, len(days))

	for _, day := range days {
		kpi := models.DailyKPI{Day: day, TPV: decimal.Zero}
		s.snapshot.ForDay(day, func(r models.TransactionRecord) {
			kpi.TPV = kpi.TPV.Add(r.AmountTransacted)
			kpi.TotalTransactions += r.QuantityTransactions
			kpi.TotalMerchants += r.QuantityOfMerchants
		})
		kpi.AvgTicket = models.AverageTicket(kpi.TPV, kpi.TotalTransactions)
		kpis = append(kpis, kpi)
	}

	return kpis
}

// SegmentBreakdowns groups a day by product, entity and payment method.
// A nil day resolves to the latest day of the snapshot.
func (s *kpiService) SegmentBreakdowns(day *civil.Date) (*models.SegmentBreakdowns, error) {
	target, err := s.resolveDay(day)
	if err != nil {
		return nil, err
	}

	return &models.SegmentBreakdowns{
		Day:           target,
		Product:       s.breakdown(target, models.ColumnProduct),
		Entity:        s.breakdown(target, models.ColumnEntity),
		PaymentMethod: s.breakdown(target, models.ColumnPaymentMethod),
	}, nil
}

func (s *kpiService) resolveDay(day *civil.Date) (civil.Date, error) {
	if day != nil {
		return *day, nil
	}

	latest, ok := s.snapshot.LatestDay()
	if !ok {
		return civil.Date{}, ErrEmptyDataset
	}
	return latest, nil
}

type segmentTotals struct {
	tpv          decimal.Decimal
	transactions int64
}

func (s *kpiService) breakdown(day civil.Date, column string) []models.SegmentRow {
	totals := make(map[string]*segmentTotals)

	s.snapshot.ForDay(day, func(r models.TransactionRecord) {
		value, _ := r.Dimension(column)
		if value == "" {
			return
		}

		t, ok := totals[value]
		if !ok {
			t = &segmentTotals{tpv: decimal.Zero}
			totals[value] = t
		}
		t.tpv = t.tpv.Add(r.AmountTransacted)
		t.transactions += r.QuantityTransactions
	})

	rows := make([]models.SegmentRow, 0, len(totals))
	for value, t := range totals {
		rows = append(rows, models.SegmentRow{
			Value:        value,
			TPV:          t.tpv,
			Transactions: t.transactions,
			AvgTicket:    models.AverageTicket(t.tpv, t.transactions),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if cmp := rows[i].TPV.Cmp(rows[j].TPV); cmp != 0 {
			return cmp > 0
		}
		return rows[i].Value < rows[j].Value
	})

	return rows
}
