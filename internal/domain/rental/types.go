package rental

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type PaymentStatus string

const (
	PaymentPaid PaymentStatus = "PAID"
	PaymentDebt PaymentStatus = "DEBT"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	return p == PaymentPaid || p == PaymentDebt
}

type BookingType string

const (
	BookingDaily  BookingType = "DAILY"
	BookingHourly BookingType = "HOURLY"
)

func (b BookingType) String() string {
	return string(b)
}

func (b BookingType) IsValid() bool {
	return b == BookingDaily || b == BookingHourly
}
