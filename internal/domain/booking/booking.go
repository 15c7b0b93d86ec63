package booking

import "time"

// Status enumerates the lifecycle states a booking can be in.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
	StatusRefunded   Status = "REFUNDED"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut,
		StatusCompleted, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// PaymentMethod describes how a booking was paid for.
type PaymentMethod string

const (
	PaymentCreditCard    PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard     PaymentMethod = "DEBIT_CARD"
	PaymentDigitalWallet PaymentMethod = "DIGITAL_WALLET"
	PaymentBankTransfer  PaymentMethod = "BANK_TRANSFER"
	PaymentCash          PaymentMethod = "CASH"
)

// Booking is the raw record the analytics pipeline consumes. Only the fields
// the aggregation engine reads are modelled; the store may carry more.
type Booking struct {
	ID            string
	UserID        string
	HotelID       string
	RoomID        string
	Guests        int
	Price         float64
	TotalPrice    float64
	Status        Status
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Cancelled reports whether the booking counts toward cancellation rates.
func (b Booking) Cancelled() bool {
	return b.Status == StatusCancelled
}

// RevenueExcluded reports whether the booking contributes nothing to revenue
// sums. Cancelled and refunded bookings still count toward booking totals.
func (b Booking) RevenueExcluded() bool {
	return b.Status == StatusCancelled || b.Status == StatusRefunded
}
