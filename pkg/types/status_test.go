package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveOverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     string
	}{
		{
			name:     "empty list derives not_achieved",
			statuses: nil,
			want:     StatusNotAchieved,
		},
		{
			name:     "single achieved derives achieved",
			statuses: []string{StatusAchieved},
			want:     StatusAchieved,
		},
		{
			name:     "all achieved derives achieved",
			statuses: []string{StatusAchieved, StatusAchieved, StatusAchieved},
			want:     StatusAchieved,
		},
		{
			name:     "mixture derives partial",
			statuses: []string{StatusAchieved, StatusPartial},
			want:     StatusPartial,
		},
		{
			name:     "achieved plus not_achieved derives partial",
			statuses: []string{StatusAchieved, StatusNotAchieved},
			want:     StatusPartial,
		},
		{
			name:     "none achieved derives not_achieved",
			statuses: []string{StatusNotAchieved, StatusNotAchieved},
			want:     StatusNotAchieved,
		},
		{
			name:     "all partial derives not_achieved",
			statuses: []string{StatusPartial, StatusPartial},
			want:     StatusNotAchieved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveOverallStatus(tt.statuses))
		})
	}
}

func TestDeriveOverallStatusOrderIndependent(t *testing.T) {
	a := DeriveOverallStatus([]string{StatusPartial, StatusAchieved, StatusNotAchieved})
	b := DeriveOverallStatus([]string{StatusNotAchieved, StatusPartial, StatusAchieved})
	assert.Equal(t, a, b)
}
