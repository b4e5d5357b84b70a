package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendarSlot(t *testing.T) {
	threePerDay := &Calendar{ShiftsPerDay: 3, DayStartHour: 7, Location: time.UTC}
	fourPerDay := &Calendar{ShiftsPerDay: 4, DayStartHour: 6, Location: time.UTC}
	bogota := &Calendar{ShiftsPerDay: 3, DayStartHour: 7, Location: time.FixedZone("COT", -5*3600)}

	tests := []struct {
		name       string
		calendar   *Calendar
		at         time.Time
		date       string
		designator int
	}{
		{"day start", threePerDay, time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC), "2024-03-01", 1},
		{"end of first slot", threePerDay, time.Date(2024, 3, 1, 14, 59, 59, 0, time.UTC), "2024-03-01", 1},
		{"second slot", threePerDay, time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC), "2024-03-01", 2},
		{"night slot", threePerDay, time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC), "2024-03-01", 3},
		{"before day start belongs to previous day", threePerDay, time.Date(2024, 3, 2, 6, 59, 0, 0, time.UTC), "2024-03-01", 3},
		{"month boundary", threePerDay, time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC), "2024-02-29", 3},
		{"four slots", fourPerDay, time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC), "2024-03-01", 2},
		{"local time zone", bogota, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), "2024-03-01", 1},
		{"local time zone previous day", bogota, time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC), "2024-02-29", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, designator := tt.calendar.Slot(tt.at)
			assert.Equal(t, tt.date, date.Format("2006-01-02"))
			assert.Equal(t, tt.designator, designator)
		})
	}
}

func TestCalendarShiftLength(t *testing.T) {
	assert.Equal(t, 8*time.Hour, (&Calendar{ShiftsPerDay: 3}).ShiftLength())
	assert.Equal(t, 12*time.Hour, (&Calendar{ShiftsPerDay: 2}).ShiftLength())
}
