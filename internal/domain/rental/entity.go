package rental

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotActive            = errors.New("rental is not active")
	ErrNotReservation       = errors.New("rental is not a reservation")
	ErrNotInDebt            = errors.New("rental is not in debt")
	ErrEndNotAfterCurrent   = errors.New("new end must be after current end")
	ErrInvalidBookingType   = errors.New("invalid booking type")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

// Extension is one append-only prolongation step. The rental's end always
// equals the latest extension's end, and totalAmount equals the initial quote
// plus all extension amounts.
type Extension struct {
	EndAt     time.Time
	Amount    int64
	CreatedAt time.Time
}

type Rental struct {
	id             uuid.UUID
	ownerID        uuid.UUID
	vehicleID      uuid.UUID
	clientID       uuid.UUID
	period         Period
	status         Status
	paymentStatus  PaymentStatus
	bookingType    BookingType
	isReservation  bool
	totalAmount    int64
	prepayment     int64
	contractNumber string
	extensions     []Extension
	createdAt      time.Time
	updatedAt      time.Time
}

type NewRentalParams struct {
	OwnerID       uuid.UUID
	VehicleID     uuid.UUID
	ClientID      uuid.UUID
	Period        Period
	BookingType   BookingType
	DayRate       int64
	HourRate      int64
	PaymentChoice PaymentStatus
	IsReservation bool
	Prepayment    int64
}

// NewRental prices the period and builds an ACTIVE rental. A reservation whose
// prepayment covers the full amount is forced to PAID regardless of the
// caller's payment choice. Availability is the caller's concern: the schedule
// must be checked (under a vehicle lock) before constructing.
func NewRental(p NewRentalParams, now time.Time) (*Rental, error) {
	if !p.BookingType.IsValid() {
		return nil, ErrInvalidBookingType
	}
	if !p.PaymentChoice.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}

	amount := Quote(p.DayRate, p.HourRate, p.Period, p.BookingType)

	payment := p.PaymentChoice
	if p.IsReservation && p.Prepayment >= amount {
		payment = PaymentPaid
	}

	id := uuid.New()

	return &Rental{
		id:             id,
		ownerID:        p.OwnerID,
		vehicleID:      p.VehicleID,
		clientID:       p.ClientID,
		period:         p.Period,
		status:         StatusActive,
		paymentStatus:  payment,
		bookingType:    p.BookingType,
		isReservation:  p.IsReservation,
		totalAmount:    amount,
		prepayment:     p.Prepayment,
		contractNumber: formatContractNumber(id, now),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// Contract numbers are display identifiers. Deriving the suffix from the
// rental UUID keeps them collision-resistant without a dedicated sequence.
func formatContractNumber(id uuid.UUID, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:6]
	return fmt.Sprintf("R-%s-%s", now.Format("060102"), suffix)
}

func ReconstructRental(
	id, ownerID, vehicleID, clientID uuid.UUID,
	period Period,
	status Status,
	paymentStatus PaymentStatus,
	bookingType BookingType,
	isReservation bool,
	totalAmount, prepayment int64,
	contractNumber string,
	extensions []Extension,
	createdAt, updatedAt time.Time,
) *Rental {
	return &Rental{
		id:             id,
		ownerID:        ownerID,
		vehicleID:      vehicleID,
		clientID:       clientID,
		period:         period,
		status:         status,
		paymentStatus:  paymentStatus,
		bookingType:    bookingType,
		isReservation:  isReservation,
		totalAmount:    totalAmount,
		prepayment:     prepayment,
		contractNumber: contractNumber,
		extensions:     extensions,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Extend prolongs an active rental to newEnd, pricing the delta from the
// current end with the rental's existing booking type. Debt is sticky: once
// DEBT, a PAID extension does not clear it, only explicit settlement does.
// Returns the added amount.
func (r *Rental) Extend(newEnd time.Time, choice PaymentStatus, dayRate, hourRate int64, now time.Time) (int64, error) {
	if r.status != StatusActive {
		return 0, ErrNotActive
	}
	if !choice.IsValid() {
		return 0, ErrInvalidPaymentStatus
	}
	if !newEnd.After(r.period.End()) {
		return 0, ErrEndNotAfterCurrent
	}

	delta, err := NewPeriod(r.period.End(), newEnd)
	if err != nil {
		return 0, err
	}
	added := Quote(dayRate, hourRate, delta, r.bookingType)

	r.extensions = append(r.extensions, Extension{
		EndAt:     newEnd,
		Amount:    added,
		CreatedAt: now,
	})
	r.period = ReconstructPeriod(r.period.Start(), newEnd)
	r.totalAmount += added

	if choice == PaymentDebt || r.paymentStatus == PaymentDebt {
		r.paymentStatus = PaymentDebt
	}
	r.updatedAt = now

	return added, nil
}

func (r *Rental) Complete(now time.Time) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	r.status = StatusCompleted
	r.updatedAt = now
	return nil
}

// Issue hands a reserved vehicle over: the schedule is untouched, only the
// reservation flag flips.
func (r *Rental) Issue(now time.Time) error {
	if !r.isReservation {
		return ErrNotReservation
	}
	if r.status != StatusActive {
		return ErrNotActive
	}
	r.isReservation = false
	r.updatedAt = now
	return nil
}

// SettleDebt clears DEBT and returns the amount still owed (total minus any
// reservation prepayment).
func (r *Rental) SettleDebt(now time.Time) (int64, error) {
	if r.paymentStatus != PaymentDebt {
		return 0, ErrNotInDebt
	}
	outstanding := r.totalAmount - r.prepayment
	if outstanding < 0 {
		outstanding = 0
	}
	r.paymentStatus = PaymentPaid
	r.updatedAt = now
	return outstanding, nil
}

func (r *Rental) ScheduleEntry() ScheduleEntry {
	return ScheduleEntry{
		RentalID:      r.id,
		Period:        r.period,
		Status:        r.status,
		IsReservation: r.isReservation,
	}
}

func (r *Rental) ID() uuid.UUID                { return r.id }
func (r *Rental) OwnerID() uuid.UUID           { return r.ownerID }
func (r *Rental) VehicleID() uuid.UUID         { return r.vehicleID }
func (r *Rental) ClientID() uuid.UUID          { return r.clientID }
func (r *Rental) Period() Period               { return r.period }
func (r *Rental) Status() Status               { return r.status }
func (r *Rental) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Rental) BookingType() BookingType     { return r.bookingType }
func (r *Rental) IsReservation() bool          { return r.isReservation }
func (r *Rental) TotalAmount() int64           { return r.totalAmount }
func (r *Rental) Prepayment() int64            { return r.prepayment }
func (r *Rental) ContractNumber() string       { return r.contractNumber }
func (r *Rental) Extensions() []Extension      { return r.extensions }
func (r *Rental) CreatedAt() time.Time         { return r.createdAt }
func (r *Rental) UpdatedAt() time.Time         { return r.updatedAt }
