package request

import (
	"strings"
	"time"

	"fleetrent/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitBookingRequest struct {
	VehicleID    uuid.UUID  `json:"vehicle_id" binding:"required"`
	ClientID     *uuid.UUID `json:"client_id,omitempty"`
	ContactName  string     `json:"contact_name"`
	ContactPhone string     `json:"contact_phone"`
	ContactEmail *string    `json:"contact_email,omitempty" binding:"omitempty,email"`
	StartAt      time.Time  `json:"start_at" binding:"required"`
	EndAt        time.Time  `json:"end_at" binding:"required"`
}

func (r SubmitBookingRequest) ToParams() commands.SubmitRequestParams {
	return commands.SubmitRequestParams{
		VehicleID:    r.VehicleID,
		ClientID:     r.ClientID,
		ContactName:  strings.TrimSpace(r.ContactName),
		ContactPhone: strings.TrimSpace(r.ContactPhone),
		ContactEmail: r.ContactEmail,
		Start:        r.StartAt,
		End:          r.EndAt,
	}
}

type ApproveBookingRequest struct {
	ClientID *uuid.UUID `json:"client_id,omitempty"`
}
