package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"opsintel/internal/dataset"
	"opsintel/internal/llm"
	"opsintel/internal/models"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

const groupKeySeparator = "\x1f"

type tabularEngine struct {
	snapshot  *dataset.Snapshot
	generator llm.Generator
}

func NewTabularEngine(snapshot *dataset.Snapshot, generator llm.Generator) QueryEngineInterface {
	return &tabularEngine{
		snapshot:  snapshot,
		generator: generator,
	}
}

func (e *tabularEngine) Mode() models.EngineMode {
	return models.EngineTabular
}

// Run asks the language model for a JSON query plan and computes it over the snapshot
func (e *tabularEngine) Run(ctx context.Context, question string) (*models.EngineOutcome, error) {
	outcome := &models.EngineOutcome{Engine: models.EngineTabular}

	generated, err := e.generator.Generate(ctx, buildTabularPrompt(question))
	if err != nil {
		return failOutcome(outcome, fmt.Errorf("%w: %v", ErrQueryGeneration, err))
	}

	spec, err := ParseTabularQuerySpec(generated)
	if err != nil {
		outcome.Query = strings.TrimSpace(generated)
		return failOutcome(outcome, fmt.Errorf("%w: %v", ErrInvalidQuerySpec, err))
	}

	if encoded, err := json.Marshal(spec); err == nil {
		outcome.Query = string(encoded)
	}

	result, err := ExecuteTabularQuery(e.snapshot, spec)
	if err != nil {
		return failOutcome(outcome, fmt.Errorf("%w: %v", ErrInvalidQuerySpec, err))
	}

	outcome.Result = result
	return outcome, nil
}

// ParseTabularQuerySpec extracts the first JSON object of the model output,
// normalizes it and validates it against the dataset schema.
func ParseTabularQuerySpec(generated string) (*models.TabularQuerySpec, error) {
	text := strings.ReplaceAll(generated, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var spec models.TabularQuerySpec
	if err := json.Unmarshal([]byte(text[start:end+1]), &spec); err != nil {
		return nil, fmt.Errorf("failed to decode query plan: %w", err)
	}

	spec.Normalize()
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

type groupAccumulator struct {
	keys         []string
	amount       decimal.Decimal
	transactions int64
	rows         int64
	observed     int64
	valueSum     decimal.Decimal
	min          decimal.NullDecimal
	max          decimal.NullDecimal
}

func (g *groupAccumulator) observe(value decimal.NullDecimal) {
	if !value.Valid {
		return
	}
	g.observed++
	g.valueSum = g.valueSum.Add(value.Decimal)
	if !g.min.Valid || value.Decimal.LessThan(g.min.Decimal) {
		g.min = value
	}
	if !g.max.Valid || value.Decimal.GreaterThan(g.max.Decimal) {
		g.max = value
	}
}

// result returns the aggregated value of the group, nil when undefined
func (g *groupAccumulator) result(measure, aggregation string) any {
	switch aggregation {
	case models.AggregationCount:
		return g.rows
	case models.AggregationMin:
		return nullableValue(g.min)
	case models.AggregationMax:
		return nullableValue(g.max)
	case models.AggregationMean:
		if g.observed == 0 {
			return nil
		}
		return g.valueSum.Div(decimal.NewFromInt(g.observed)).Round(2)
	default:
		if measure == models.MeasureAvgTicket {
			return nullableValue(models.AverageTicket(g.amount, g.transactions))
		}
		return g.valueSum.Round(2)
	}
}

func nullableValue(value decimal.NullDecimal) any {
	if !value.Valid {
		return nil
	}
	return value.Decimal.Round(2)
}

func measureValue(r *models.TransactionRecord, measure string) decimal.NullDecimal {
	switch measure {
	case models.MeasureTransactions:
		return decimal.NewNullDecimal(decimal.NewFromInt(r.QuantityTransactions))
	case models.MeasureMerchants:
		return decimal.NewNullDecimal(decimal.NewFromInt(r.QuantityOfMerchants))
	case models.MeasureAvgTicket:
		return models.AverageTicket(r.AmountTransacted, r.QuantityTransactions)
	default:
		return decimal.NewNullDecimal(r.AmountTransacted)
	}
}

// ExecuteTabularQuery filters, groups and aggregates the snapshot as the plan describes
func ExecuteTabularQuery(snapshot *dataset.Snapshot, spec *models.TabularQuerySpec) (*models.QueryResult, error) {
	from, to, err := dayRange(spec)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*groupAccumulator)
	snapshot.ForEach(func(r models.TransactionRecord) {
		if from != nil && r.Day.Before(*from) {
			return
		}
		if to != nil && r.Day.After(*to) {
			return
		}
		for column, want := range spec.Filters {
			value, _ := r.Dimension(column)
			if !strings.EqualFold(value, want) {
				return
			}
		}

		keys := make([]string, len(spec.GroupBy))
		for i, column := range spec.GroupBy {
			keys[i], _ = r.Dimension(column)
		}
		key := strings.Join(keys, groupKeySeparator)

		g, ok := groups[key]
		if !ok {
			g = &groupAccumulator{keys: keys, amount: decimal.Zero, valueSum: decimal.Zero}
			groups[key] = g
		}
		g.rows++
		g.amount = g.amount.Add(r.AmountTransacted)
		g.transactions += r.QuantityTransactions
		g.observe(measureValue(&r, spec.Measure))
	})

	columns := append(append([]string{}, spec.GroupBy...), spec.Aggregation+"_"+spec.Measure)
	result := &models.QueryResult{Columns: columns, Rows: [][]any{}}
	if len(groups) == 0 {
		return result, nil
	}

	type aggregated struct {
		keys  []string
		value any
	}
	rows := make([]aggregated, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, aggregated{keys: g.keys, value: g.result(spec.Measure, spec.Aggregation)})
	}

	sort.Slice(rows, func(i, j int) bool {
		if cmp := compareValues(rows[i].value, rows[j].value); cmp != 0 {
			if spec.Sort == models.SortAsc {
				return cmp < 0
			}
			return cmp > 0
		}
		return strings.Join(rows[i].keys, groupKeySeparator) < strings.Join(rows[j].keys, groupKeySeparator)
	})

	if spec.Limit > 0 && len(rows) > spec.Limit {
		rows = rows[:spec.Limit]
	}

	for _, row := range rows {
		cells := make([]any, 0, len(columns))
		for _, key := range row.keys {
			cells = append(cells, key)
		}
		result.Rows = append(result.Rows, append(cells, row.value))
	}
	return result, nil
}

func dayRange(spec *models.TabularQuerySpec) (*civil.Date, *civil.Date, error) {
	var from, to *civil.Date
	if spec.DayFrom != "" {
		day, err := dataset.ParseDay(spec.DayFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid day_from: %w", err)
		}
		from = &day
	}
	if spec.DayTo != "" {
		day, err := dataset.ParseDay(spec.DayTo)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid day_to: %w", err)
		}
		to = &day
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, fmt.Errorf("day_to is before day_from")
	}
	return from, to, nil
}

// compareValues orders aggregated values; nil sorts below any number
func compareValues(a, b any) int {
	da, aok := toDecimal(a)
	db, bok := toDecimal(b)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	default:
		return da.Cmp(db)
	}
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch value := v.(type) {
	case decimal.Decimal:
		return value, true
	case int64:
		return decimal.NewFromInt(value), true
	default:
		return decimal.Decimal{}, false
	}
}
