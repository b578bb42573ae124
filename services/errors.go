package services

import "errors"

var (
	// ErrMemberNotFound is returned when a member id does not resolve
	ErrMemberNotFound = errors.New("member not found")

	// ErrRewardNotFound is returned when a reward id does not resolve
	ErrRewardNotFound = errors.New("reward not found")

	// ErrBookingNotFound is returned when a booking id does not resolve
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingNotCompleted is returned when earning is attempted on a
	// booking that has not been completed
	ErrBookingNotCompleted = errors.New("booking is not completed")

	// ErrAlreadyEarned is returned when a booking has already been credited
	ErrAlreadyEarned = errors.New("points already earned for this booking")

	// ErrDataUnavailable wraps storage failures surfaced to the caller
	ErrDataUnavailable = errors.New("data unavailable")
)
