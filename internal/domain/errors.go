package domain

import "errors"

var (
	// ErrConflict is returned by repositories on a unique constraint violation.
	ErrConflict = errors.New("data conflicts with existing data in unique column")
	// ErrOrderNumberTaken is the unique violation on orders.order_number.
	ErrOrderNumberTaken = errors.New("order number already taken")
)
