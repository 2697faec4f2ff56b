package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Mode      string `json:"mode" validate:"omitempty,engine_mode"`
	Day       string `query:"day" validate:"omitempty,iso_date"`
	Threshold string `query:"threshold" validate:"omitempty,non_negative_decimal"`
}

func TestValidator_CustomRules(t *testing.T) {
	v := GetValidator().GetValidate()

	tests := []struct {
		name    string
		request sampleRequest
		wantErr bool
	}{
		{"empty request", sampleRequest{}, false},
		{"valid values", sampleRequest{Mode: "SQL", Day: "2024-02-29", Threshold: "15.5"}, false},
		{"tabular mode", sampleRequest{Mode: "tabular"}, false},
		{"unknown mode", sampleRequest{Mode: "python"}, true},
		{"day first date", sampleRequest{Day: "29/02/2024"}, true},
		{"impossible date", sampleRequest{Day: "2023-02-29"}, true},
		{"date with time", sampleRequest{Day: "2024-02-29 10:00"}, true},
		{"negative threshold", sampleRequest{Threshold: "-1"}, true},
		{"non numeric threshold", sampleRequest{Threshold: "abc"}, true},
		{"zero threshold", sampleRequest{Threshold: "0"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.request)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_FieldNamesFromTags(t *testing.T) {
	err := NewValidator().GetValidate().Struct(sampleRequest{Mode: "python", Day: "bad"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'mode'")
	assert.Contains(t, err.Error(), "'day'")
}
