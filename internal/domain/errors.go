package domain

import "errors"

var (
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrVehicleUnavailable = errors.New("vehicle unavailable")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrAgreementNotFound  = errors.New("agreement not found")
	ErrDuplicateVehicleID = errors.New("duplicate vehicle id")
	ErrInvalidRentalDays  = errors.New("rental days must be positive")

	// ErrSourceUnreadable wraps load failures of a persisted inventory
	// source. Callers degrade to an empty inventory instead of aborting.
	ErrSourceUnreadable = errors.New("inventory source unreadable")
)
