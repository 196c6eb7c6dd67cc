// services/availability.go
package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"boilertech/models"
)

// AvailabilityService defines methods for resolving a technician's weekly
// template into concrete slots for a calendar date.
type AvailabilityService interface {
	SlotsFor(technician models.Technician, date string) []string
}

// DefaultAvailabilityService is a concrete implementation.
type DefaultAvailabilityService struct{}

// SlotsFor resolves the technician's template entry for the date's weekday
// into an ordered sequence of "HH:MM" slots at one-hour granularity.
// An emergency-only day yields the sentinel alone; a missing entry yields an
// empty sequence, which is a normal outcome, not an error.
func (s *DefaultAvailabilityService) SlotsFor(technician models.Technician, date string) []string {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}
	weekday := strings.ToLower(day.Weekday().String())

	window, ok := technician.Availability[weekday]
	if !ok {
		return nil
	}
	if window.EmergencyOnly {
		return []string{models.EmergencyOnly}
	}

	start, okStart := parseHour(window.Start)
	end, okEnd := parseHour(window.End)
	if !okStart || !okEnd || end <= start {
		return nil
	}

	slots := make([]string, 0, end-start)
	for hour := start; hour < end; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}
	return slots
}

// parseHour extracts the hour component of an "HH:MM" time.
func parseHour(t string) (int, bool) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) == 0 || parts[0] == "" {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}
