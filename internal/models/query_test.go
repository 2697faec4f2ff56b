package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTabularQuerySpec_NormalizeAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    TabularQuerySpec
		wantErr error
	}{
		{
			name: "defaults applied",
			spec: TabularQuerySpec{GroupBy: []string{" Product "}},
		},
		{
			name: "avg ticket by entity",
			spec: TabularQuerySpec{GroupBy: []string{"entity"}, Measure: "avg_ticket", Aggregation: "MEAN", Sort: "ASC", Limit: 3},
		},
		{
			name:    "unknown measure",
			spec:    TabularQuerySpec{Measure: "profit"},
			wantErr: ErrUnknownMeasure,
		},
		{
			name:    "unknown aggregation",
			spec:    TabularQuerySpec{Aggregation: "median"},
			wantErr: ErrUnknownAggregation,
		},
		{
			name:    "numeric column is not a dimension",
			spec:    TabularQuerySpec{GroupBy: []string{"amount_transacted"}},
			wantErr: ErrUnknownDimension,
		},
		{
			name:    "unknown filter column",
			spec:    TabularQuerySpec{Filters: map[string]string{"city": "SP"}},
			wantErr: ErrUnknownDimension,
		},
		{
			name:    "bad sort",
			spec:    TabularQuerySpec{Sort: "random"},
			wantErr: ErrInvalidSort,
		},
		{
			name:    "negative limit",
			spec:    TabularQuerySpec{Limit: -1},
			wantErr: ErrInvalidLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := tt.spec
			spec.Normalize()
			err := spec.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTabularQuerySpec_NormalizeDefaults(t *testing.T) {
	spec := TabularQuerySpec{GroupBy: []string{" Product "}}
	spec.Normalize()

	assert.Equal(t, []string{"product"}, spec.GroupBy)
	assert.Equal(t, MeasureAmount, spec.Measure)
	assert.Equal(t, AggregationSum, spec.Aggregation)
	assert.Equal(t, SortDesc, spec.Sort)
}

func TestQueryResult_Render(t *testing.T) {
	result := &QueryResult{
		Columns: []string{"product", "tpv"},
		Rows: [][]any{
			{"pix", decimal.NewFromInt(300)},
			{"pos", nil},
			{[]byte("tap"), 12.5},
		},
	}

	out := result.Render(2)
	assert.Contains(t, out, "product")
	assert.Contains(t, out, "pix")
	assert.Contains(t, out, "NULL")
	assert.NotContains(t, out, "tap")
	assert.Contains(t, out, "(1 more rows)")

	assert.Contains(t, result.Render(0), "tap")
	assert.Equal(t, 3, result.RowCount())
	assert.Equal(t, "(empty result)", (*QueryResult)(nil).Render(5))
}

func TestEngineMode_IsValid(t *testing.T) {
	assert.True(t, EngineAuto.IsValid())
	assert.True(t, EngineTabular.IsValid())
	assert.False(t, EngineMode("pandas").IsValid())
}
