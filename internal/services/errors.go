package services

import (
	"errors"
	"fmt"
)

var (
	ErrRefreshFailed      = errors.New("aggregate refresh failed")
	ErrUnknownView        = errors.New("unknown aggregate view")
	ErrInvalidFilter      = errors.New("invalid view filter")
	ErrGoalExpired        = errors.New("goal target date has passed")
	ErrNoModelsAvailable  = errors.New("no forecast model has enough data")
	ErrInvalidHorizon     = errors.New("invalid forecast horizon")
	ErrInvalidGoal        = errors.New("invalid goal")
	ErrNarrativeDisabled  = errors.New("narrative generation is disabled")
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

// RefreshError reports which view failed a refresh pass. The store keeps
// serving RetainedVersion when this is returned.
type RefreshError struct {
	View            string
	Err             error
	RetainedVersion uint64
}

func (e *RefreshError) Error() string {
	if e.View == "" {
		return fmt.Sprintf("refresh failed, version %d retained: %v", e.RetainedVersion, e.Err)
	}
	return fmt.Sprintf("refresh of view %s failed, version %d retained: %v", e.View, e.RetainedVersion, e.Err)
}

func (e *RefreshError) Unwrap() []error {
	return []error{ErrRefreshFailed, e.Err}
}
