package errs

import "errors"

// Sentinel errors shared by the usecase layers.
var (
	// Search / offer errors
	ErrOfferNotFound   = errors.New("offer not found")
	ErrVehicleNotFound = errors.New("vehicle not found")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("reservation conflict")

	// Validation errors
	ErrInvalidPeriod = errors.New("invalid rental period")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
