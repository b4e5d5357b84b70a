package service

import (
	"time"

	apperrors "control-room-backend/internal/errors"
)

// RampResult is the server side evaluation of a generation ramp
type RampResult struct {
	ActualRateMWPerMin float64
	IsCompliant        bool
}

// ComputeRamp returns the achieved ramp rate in MW per minute and whether it
// meets the target rate requested by the grid operator
func ComputeRamp(start, end time.Time, initialMW, finalMW, targetRate float64) (*RampResult, error) {
	minutes := end.Sub(start).Minutes()
	if minutes <= 0 {
		return nil, apperrors.NewValidationError("end_time", "must be after start_time")
	}

	rate := (finalMW - initialMW) / minutes
	return &RampResult{
		ActualRateMWPerMin: rate,
		IsCompliant:        rate >= targetRate,
	}, nil
}
