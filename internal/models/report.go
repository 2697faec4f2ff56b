package models

import (
	"time"

	"cloud.google.com/go/civil"
)

// TopProductsInReport is the number of products listed in the daily report
const TopProductsInReport = 3

// DailyReport gathers KPIs, variances, alerts and top products of one day
type DailyReport struct {
	Day         civil.Date      `json:"day"`
	Variance    *VarianceRecord `json:"variance"`
	Anomalies   []Anomaly       `json:"anomalies"`
	Alerts      []string        `json:"alerts"`
	TopProducts []SegmentRow    `json:"top_products"`
	GeneratedAt time.Time       `json:"generated_at"`
}
