package scheduling

import "errors"

var (
	// ErrCustomerNotFound marks requests naming an unknown customer.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrTechnicianNotFound marks lookups naming an unknown technician.
	ErrTechnicianNotFound = errors.New("technician not found")
	// ErrBookingNotFound marks status changes naming an unknown booking.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidStatus marks status changes to a value outside the known set.
	ErrInvalidStatus = errors.New("invalid booking status")
)
