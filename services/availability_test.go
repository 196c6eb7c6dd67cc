package services

import (
	"testing"

	"boilertech/models"

	"github.com/stretchr/testify/assert"
)

func TestSlotsFor(t *testing.T) {
	tech := models.Technician{
		ID: "tech-1",
		Availability: map[string]models.DayWindow{
			"monday":   {Start: "08:00", End: "12:00"},
			"tuesday":  {Start: "14:00", End: "14:00"},
			"saturday": {EmergencyOnly: true},
		},
	}
	svc := &DefaultAvailabilityService{}

	tests := []struct {
		name string
		date string
		want []string
	}{
		{
			// 2025-03-10 is a Monday.
			name: "working interval yields hourly slots",
			date: "2025-03-10",
			want: []string{"08:00", "09:00", "10:00", "11:00"},
		},
		{
			name: "emergency-only day yields the sentinel",
			date: "2025-03-15",
			want: []string{models.EmergencyOnly},
		},
		{
			name: "missing weekday yields nothing",
			date: "2025-03-12",
			want: nil,
		},
		{
			name: "empty interval yields nothing",
			date: "2025-03-11",
			want: nil,
		},
		{
			name: "invalid date yields nothing",
			date: "10/03/2025",
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.SlotsFor(tech, tc.date))
		})
	}
}

func TestSlotsForEndExclusive(t *testing.T) {
	tech := models.Technician{
		Availability: map[string]models.DayWindow{
			"monday": {Start: "09:00", End: "11:00"},
		},
	}
	svc := &DefaultAvailabilityService{}

	slots := svc.SlotsFor(tech, "2025-03-10")
	assert.Equal(t, []string{"09:00", "10:00"}, slots)
	assert.NotContains(t, slots, "11:00")
}
