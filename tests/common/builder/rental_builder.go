//go:build unit || e2e

package builder

import (
	"time"

	domrental "fleetrent/internal/domain/rental"
	reqdto "fleetrent/internal/handler/dto/request"
	"fleetrent/internal/usecase/commands"

	"github.com/google/uuid"
)

type RentalBuilder struct {
	OwnerID       uuid.UUID
	VehicleID     uuid.UUID
	ClientID      uuid.UUID
	Start         time.Time
	End           time.Time
	BookingType   domrental.BookingType
	PaymentChoice domrental.PaymentStatus
	IsReservation bool
	Prepayment    int64
	DayRate       int64
	HourRate      int64
	Now           time.Time
}

func NewRentalBuilder() *RentalBuilder {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	return &RentalBuilder{
		OwnerID:       uuid.New(),
		VehicleID:     uuid.New(),
		ClientID:      uuid.New(),
		Start:         start,
		End:           start.Add(48 * time.Hour),
		BookingType:   domrental.BookingDaily,
		PaymentChoice: domrental.PaymentPaid,
		IsReservation: false,
		Prepayment:    0,
		DayRate:       10000,
		HourRate:      500,
		Now:           start.Add(-time.Hour),
	}
}

func (b *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(b)
	return b
}

func (b *RentalBuilder) BuildDomain() (*domrental.Rental, error) {
	period, err := domrental.NewPeriod(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return domrental.NewRental(domrental.NewRentalParams{
		OwnerID:       b.OwnerID,
		VehicleID:     b.VehicleID,
		ClientID:      b.ClientID,
		Period:        period,
		BookingType:   b.BookingType,
		DayRate:       b.DayRate,
		HourRate:      b.HourRate,
		PaymentChoice: b.PaymentChoice,
		IsReservation: b.IsReservation,
		Prepayment:    b.Prepayment,
	}, b.Now)
}

func (b *RentalBuilder) BuildParams() commands.CreateRentalParams {
	return commands.CreateRentalParams{
		VehicleID:     b.VehicleID,
		ClientID:      b.ClientID,
		Start:         b.Start,
		End:           b.End,
		BookingType:   b.BookingType,
		PaymentChoice: b.PaymentChoice,
		IsReservation: b.IsReservation,
		Prepayment:    b.Prepayment,
	}
}

func (b *RentalBuilder) BuildCreateRequestDTO() reqdto.CreateRentalRequest {
	return reqdto.CreateRentalRequest{
		VehicleID:     b.VehicleID,
		ClientID:      b.ClientID,
		StartAt:       b.Start,
		EndAt:         b.End,
		BookingType:   b.BookingType.String(),
		PaymentStatus: b.PaymentChoice.String(),
		IsReservation: b.IsReservation,
		Prepayment:    b.Prepayment,
	}
}
