package models

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
)

// EngineMode selects the query engine used by the assistant
type EngineMode string

const (
	EngineAuto    EngineMode = "auto"
	EngineSQL     EngineMode = "sql"
	EngineTabular EngineMode = "tabular"
)

// Tabular query measures
const (
	MeasureAmount       = ColumnAmountTransacted
	MeasureTransactions = ColumnQuantityTransactions
	MeasureMerchants    = ColumnQuantityOfMerchants
	MeasureAvgTicket    = "avg_ticket"
)

// Tabular query aggregations
const (
	AggregationSum   = "sum"
	AggregationMean  = "mean"
	AggregationCount = "count"
	AggregationMin   = "min"
	AggregationMax   = "max"
)

const (
	SortDesc = "desc"
	SortAsc  = "asc"

	// MaxPromptRows bounds the result rows rendered into an interpretation prompt
	MaxPromptRows = 20
)

var (
	ErrUnknownMeasure     = errors.New("unknown measure")
	ErrUnknownAggregation = errors.New("unknown aggregation")
	ErrUnknownDimension   = errors.New("unknown group_by dimension")
	ErrInvalidSort        = errors.New("sort must be asc or desc")
	ErrInvalidLimit       = errors.New("limit cannot be negative")
)

// IsValid reports whether the mode is one of auto, sql or tabular
func (m EngineMode) IsValid() bool {
	switch m {
	case EngineAuto, EngineSQL, EngineTabular:
		return true
	default:
		return false
	}
}

// QueryResult is a generic tabular result returned by both engines
type QueryResult struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// RowCount returns the number of rows
func (r *QueryResult) RowCount() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// Render formats the result as an aligned text table truncated to maxRows rows.
// A non-positive maxRows renders every row.
func (r *QueryResult) Render(maxRows int) string {
	if r == nil || len(r.Columns) == 0 {
		return "(empty result)"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(r.Columns, "\t"))

	rows := r.Rows
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatCell(v)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()

	if hidden := len(r.Rows) - len(rows); hidden > 0 {
		fmt.Fprintf(&b, "... (%d more rows)\n", hidden)
	}
	return b.String()
}

func formatCell(v any) string {
	switch value := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(value)
	case decimal.Decimal:
		return value.String()
	case decimal.NullDecimal:
		if !value.Valid {
			return "NULL"
		}
		return value.Decimal.String()
	default:
		return fmt.Sprint(value)
	}
}

// TabularQuerySpec is the JSON query plan the language model produces for the tabular engine
type TabularQuerySpec struct {
	GroupBy     []string          `json:"group_by"`
	Measure     string            `json:"measure"`
	Aggregation string            `json:"aggregation"`
	Filters     map[string]string `json:"filters,omitempty"`
	DayFrom     string            `json:"day_from,omitempty"`
	DayTo       string            `json:"day_to,omitempty"`
	Sort        string            `json:"sort,omitempty"`
	Limit       int               `json:"limit,omitempty"`
}

// Normalize lower-cases names and applies the sum and descending defaults
func (q *TabularQuerySpec) Normalize() {
	q.Measure = strings.ToLower(strings.TrimSpace(q.Measure))
	q.Aggregation = strings.ToLower(strings.TrimSpace(q.Aggregation))
	q.Sort = strings.ToLower(strings.TrimSpace(q.Sort))
	for i, dim := range q.GroupBy {
		q.GroupBy[i] = strings.ToLower(strings.TrimSpace(dim))
	}
	if q.Measure == "" {
		q.Measure = MeasureAmount
	}
	if q.Aggregation == "" {
		q.Aggregation = AggregationSum
	}
	if q.Sort == "" {
		q.Sort = SortDesc
	}
}

// Validate checks measures, aggregations and dimensions against the dataset schema
func (q *TabularQuerySpec) Validate() error {
	switch q.Measure {
	case MeasureAmount, MeasureTransactions, MeasureMerchants, MeasureAvgTicket:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMeasure, q.Measure)
	}

	switch q.Aggregation {
	case AggregationSum, AggregationMean, AggregationCount, AggregationMin, AggregationMax:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAggregation, q.Aggregation)
	}

	probe := TransactionRecord{}
	for _, dim := range q.GroupBy {
		if _, ok := probe.Dimension(dim); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownDimension, dim)
		}
	}
	for dim := range q.Filters {
		if _, ok := probe.Dimension(dim); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownDimension, dim)
		}
	}

	if q.Sort != SortAsc && q.Sort != SortDesc {
		return ErrInvalidSort
	}
	if q.Limit < 0 {
		return ErrInvalidLimit
	}
	return nil
}

// EngineOutcome is the result of one engine run
type EngineOutcome struct {
	Engine EngineMode   `json:"engine"`
	Query  string       `json:"query"`
	Result *QueryResult `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// AssistantAnswer is the assistant's response to a question
type AssistantAnswer struct {
	Question       string        `json:"question"`
	Engine         EngineMode    `json:"engine"`
	Routed         bool          `json:"routed"`
	Fallback       bool          `json:"fallback"`
	Outcome        EngineOutcome `json:"outcome"`
	Interpretation string        `json:"interpretation,omitempty"`
}

// EngineComparison holds the outcomes of running a question on both engines
type EngineComparison struct {
	Question string         `json:"question"`
	SQL      *EngineOutcome `json:"sql"`
	Tabular  *EngineOutcome `json:"tabular"`
}

// DailyTotal is one row of the relational GROUP BY day aggregation
type DailyTotal struct {
	Day               string          `json:"day"`
	TPV               decimal.Decimal `json:"tpv"`
	TotalTransactions int64           `json:"total_transactions"`
	TotalMerchants    int64           `json:"total_merchants"`
}
