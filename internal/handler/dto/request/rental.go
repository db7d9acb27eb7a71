package request

import (
	"time"

	"fleetrent/internal/domain/rental"
	"fleetrent/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	VehicleID     uuid.UUID `json:"vehicle_id" binding:"required"`
	ClientID      uuid.UUID `json:"client_id" binding:"required"`
	StartAt       time.Time `json:"start_at" binding:"required"`
	EndAt         time.Time `json:"end_at" binding:"required"`
	BookingType   string    `json:"booking_type" binding:"required,oneof=DAILY HOURLY"`
	PaymentStatus string    `json:"payment_status" binding:"required,oneof=PAID DEBT"`
	IsReservation bool      `json:"is_reservation"`
	Prepayment    int64     `json:"prepayment" binding:"min=0"`
}

func (r CreateRentalRequest) ToParams() commands.CreateRentalParams {
	return commands.CreateRentalParams{
		VehicleID:     r.VehicleID,
		ClientID:      r.ClientID,
		Start:         r.StartAt,
		End:           r.EndAt,
		BookingType:   rental.BookingType(r.BookingType),
		PaymentChoice: rental.PaymentStatus(r.PaymentStatus),
		IsReservation: r.IsReservation,
		Prepayment:    r.Prepayment,
	}
}

type ExtendRentalRequest struct {
	NewEndAt      time.Time `json:"new_end_at" binding:"required"`
	PaymentStatus string    `json:"payment_status" binding:"required,oneof=PAID DEBT"`
}
