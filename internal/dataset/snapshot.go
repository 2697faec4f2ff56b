package dataset

import (
	"sort"

	"opsintel/internal/models"

	"cloud.google.com/go/civil"
)

// Snapshot is the loaded dataset. It is built once and never mutated, so it can
// be shared by every aggregation service.
type Snapshot struct {
	records []models.TransactionRecord
	byDay   map[civil.Date][]int
	days    []civil.Date
	skipped int
}

// NewSnapshot copies the records and indexes them by day
func NewSnapshot(records []models.TransactionRecord) *Snapshot {
	return newSnapshot(records, 0)
}

func newSnapshot(records []models.TransactionRecord, skipped int) *Snapshot {
	s := &Snapshot{
		records: make([]models.TransactionRecord, len(records)),
		byDay:   make(map[civil.Date][]int),
		skipped: skipped,
	}
	copy(s.records, records)

	for i := range s.records {
		day := s.records[i].Day
		if _, ok := s.byDay[day]; !ok {
			s.days = append(s.days, day)
		}
		s.byDay[day] = append(s.byDay[day], i)
	}

	sort.Slice(s.days, func(i, j int) bool {
		return s.days[i].Before(s.days[j])
	})

	return s
}

// Records returns a copy of every record in load order
func (s *Snapshot) Records() []models.TransactionRecord {
	out := make([]models.TransactionRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records
func (s *Snapshot) Len() int {
	return len(s.records)
}

// SkippedRows returns how many input rows were dropped during load
func (s *Snapshot) SkippedRows() int {
	return s.skipped
}

// Days returns the distinct days in ascending order
func (s *Snapshot) Days() []civil.Date {
	out := make([]civil.Date, len(s.days))
	copy(out, s.days)
	return out
}

// LatestDay returns the most recent day, false when the snapshot is empty
func (s *Snapshot) LatestDay() (civil.Date, bool) {
	if len(s.days) == 0 {
		return civil.Date{}, false
	}
	return s.days[len(s.days)-1], true
}

// HasDay reports whether any record falls on the day
func (s *Snapshot) HasDay(day civil.Date) bool {
	_, ok := s.byDay[day]
	return ok
}

// ForEach calls fn with a copy of each record in load order
func (s *Snapshot) ForEach(fn func(models.TransactionRecord)) {
	for i := range s.records {
		fn(s.records[i])
	}
}

// ForDay calls fn with a copy of each record of the day
func (s *Snapshot) ForDay(day civil.Date, fn func(models.TransactionRecord)) {
	for _, i := range s.byDay[day] {
		fn(s.records[i])
	}
}
