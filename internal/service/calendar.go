package service

import (
	"time"

	"control-room-backend/internal/config"
)

// Calendar splits the operational day into equal shift slots. A day starts at
// DayStartHour local time; instants before it belong to the previous day.
type Calendar struct {
	ShiftsPerDay int
	DayStartHour int
	Location     *time.Location
}

// NewCalendar creates a calendar from the shift settings in cfg
func NewCalendar(cfg *config.Config) *Calendar {
	return &Calendar{
		ShiftsPerDay: cfg.ShiftsPerDay,
		DayStartHour: cfg.ShiftDayStartHour,
		Location:     cfg.ShiftLocation(),
	}
}

// ShiftLength returns the nominal duration of one slot
func (c *Calendar) ShiftLength() time.Duration {
	return 24 * time.Hour / time.Duration(c.ShiftsPerDay)
}

// Slot returns the operational date (midnight UTC) and the 1-based designator of the slot containing t
func (c *Calendar) Slot(t time.Time) (time.Time, int) {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)

	dayStart := time.Date(local.Year(), local.Month(), local.Day(), c.DayStartHour, 0, 0, 0, loc)
	if local.Before(dayStart) {
		dayStart = dayStart.AddDate(0, 0, -1)
	}

	designator := int(local.Sub(dayStart)/c.ShiftLength()) + 1
	// DST days are 23 or 25 hours long
	if designator > c.ShiftsPerDay {
		designator = c.ShiftsPerDay
	}

	date := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), 0, 0, 0, 0, time.UTC)
	return date, designator
}
