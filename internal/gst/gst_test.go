package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		company      Registration
		counterparty Registration
		want         Type
	}{
		{
			name:         "SameState",
			company:      "27AAPFU0939F1ZV",
			counterparty: "27AABCU9603R1ZM",
			want:         IntraState,
		},
		{
			name:         "DifferentStates",
			company:      "27AAPFU0939F1ZV",
			counterparty: "06BZAHM6385P6Z2",
			want:         InterState,
		},
		{
			name:         "MissingCounterparty",
			company:      "27AAPFU0939F1ZV",
			counterparty: "",
			want:         Undetermined,
		},
		{
			name:         "MissingCompany",
			company:      "",
			counterparty: "06BZAHM6385P6Z2",
			want:         Undetermined,
		},
		{
			name:         "ShortID",
			company:      "27AAPFU0939F1ZV",
			counterparty: "27AAB",
			want:         Undetermined,
		},
		{
			name:         "OverlongID",
			company:      "27AAPFU0939F1ZVXX",
			counterparty: "27AABCU9603R1ZM",
			want:         Undetermined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.company, tt.counterparty))
		})
	}
}

func TestRegistration_StateCode(t *testing.T) {
	assert.Equal(t, "27", Registration("27AAPFU0939F1ZV").StateCode())
	assert.Equal(t, "27", Registration(" 27AAPFU0939F1ZV ").StateCode())
	assert.Equal(t, "", Registration("bad").StateCode())
}
