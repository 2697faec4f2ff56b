package dto

import (
	"opsintel/internal/models"
)

// DayQuery selects a calendar day; empty means the latest day of the dataset
type DayQuery struct {
	Day string `query:"day" validate:"omitempty,iso_date"`
}

// AlertsQuery contains the anomaly detection options
type AlertsQuery struct {
	Day       string `query:"day" validate:"omitempty,iso_date"`
	Threshold string `query:"threshold" validate:"omitempty,non_negative_decimal"`
	ZScore    string `query:"zscore" validate:"omitempty,non_negative_decimal"`
}

// DailyKPIsResponse lists the KPI rows ordered by day
type DailyKPIsResponse struct {
	Days  []models.DailyKPI `json:"days"`
	Count int               `json:"count"`
}

// AlertsResponse contains the detected anomalies and their rendered alert texts
type AlertsResponse struct {
	Detection *models.DetectionResult `json:"detection"`
	Alerts    []string                `json:"alerts"`
}

// DailyReportResponse carries the structured report and its text rendering
type DailyReportResponse struct {
	Report *models.DailyReport `json:"report"`
	Text   string              `json:"text"`
}
