package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Segment dimensions used for attribution and breakdowns
const (
	SegmentProduct       = "product"
	SegmentEntity        = "entity"
	SegmentPaymentMethod = "payment_method"
)

// DailyKPI holds the aggregate metrics of a single calendar day.
// AvgTicket is null when the day has no transactions.
type DailyKPI struct {
	Day               civil.Date          `json:"day"`
	TPV               decimal.Decimal     `json:"tpv"`
	TotalTransactions int64               `json:"total_transactions"`
	TotalMerchants    int64               `json:"total_merchants"`
	AvgTicket         decimal.NullDecimal `json:"avg_ticket"`
}

// SegmentRow is one category of a segment breakdown
type SegmentRow struct {
	Value        string              `json:"value"`
	TPV          decimal.Decimal     `json:"tpv"`
	Transactions int64               `json:"transactions"`
	AvgTicket    decimal.NullDecimal `json:"avg_ticket"`
}

// SegmentBreakdowns groups a single day by product, entity and payment method
type SegmentBreakdowns struct {
	Day           civil.Date   `json:"day"`
	Product       []SegmentRow `json:"product"`
	Entity        []SegmentRow `json:"entity"`
	PaymentMethod []SegmentRow `json:"payment_method"`
}

// TopProduct returns the first row of the product breakdown, false when it is empty
func (b *SegmentBreakdowns) TopProduct() (SegmentRow, bool) {
	if b == nil || len(b.Product) == 0 {
		return SegmentRow{}, false
	}
	return b.Product[0], true
}

// AverageTicket divides volume by transaction count, null when count is zero
func AverageTicket(tpv decimal.Decimal, transactions int64) decimal.NullDecimal {
	if transactions == 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(tpv.Div(decimal.NewFromInt(transactions)))
}
