//go:build unit || e2e

package builder

import (
	"time"

	domrental "fleetrent/internal/domain/rental"
	domrequest "fleetrent/internal/domain/request"
	reqdto "fleetrent/internal/handler/dto/request"
	"fleetrent/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingRequestBuilder struct {
	OwnerID      uuid.UUID
	VehicleID    uuid.UUID
	ClientID     *uuid.UUID
	ContactName  string
	ContactPhone string
	ContactEmail *string
	Start        time.Time
	End          time.Time
	Now          time.Time
}

func NewBookingRequestBuilder() *BookingRequestBuilder {
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	email := "guest@example.com"
	return &BookingRequestBuilder{
		OwnerID:      uuid.New(),
		VehicleID:    uuid.New(),
		ClientID:     nil,
		ContactName:  "Aram Petrosyan",
		ContactPhone: "+37491000000",
		ContactEmail: &email,
		Start:        start,
		End:          start.Add(72 * time.Hour),
		Now:          start.Add(-24 * time.Hour),
	}
}

func (b *BookingRequestBuilder) With(mutate func(*BookingRequestBuilder)) *BookingRequestBuilder {
	mutate(b)
	return b
}

func (b *BookingRequestBuilder) BuildDomain() (*domrequest.BookingRequest, error) {
	period, err := domrental.NewPeriod(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return domrequest.NewBookingRequest(
		b.OwnerID, b.VehicleID, b.ClientID,
		b.ContactName, b.ContactPhone, b.ContactEmail,
		period, b.Now,
	)
}

func (b *BookingRequestBuilder) BuildParams() commands.SubmitRequestParams {
	return commands.SubmitRequestParams{
		VehicleID:    b.VehicleID,
		ClientID:     b.ClientID,
		ContactName:  b.ContactName,
		ContactPhone: b.ContactPhone,
		ContactEmail: b.ContactEmail,
		Start:        b.Start,
		End:          b.End,
	}
}

func (b *BookingRequestBuilder) BuildSubmitRequestDTO() reqdto.SubmitBookingRequest {
	return reqdto.SubmitBookingRequest{
		VehicleID:    b.VehicleID,
		ClientID:     b.ClientID,
		ContactName:  b.ContactName,
		ContactPhone: b.ContactPhone,
		ContactEmail: b.ContactEmail,
		StartAt:      b.Start,
		EndAt:        b.End,
	}
}
