package response

import (
	"time"

	"fleetrent/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingRequestResponse struct {
	ID           uuid.UUID  `json:"id"`
	VehicleID    uuid.UUID  `json:"vehicleId"`
	VehicleName  string     `json:"vehicleName"`
	ClientID     *uuid.UUID `json:"clientId,omitempty"`
	ContactName  string     `json:"contactName"`
	ContactPhone string     `json:"contactPhone"`
	ContactEmail *string    `json:"contactEmail,omitempty"`
	StartAt      time.Time  `json:"startAt"`
	EndAt        time.Time  `json:"endAt"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type ApprovedResponse struct {
	RentalID uuid.UUID `json:"rentalId"`
}

func FromRequestView(rm *queries.RequestView) *BookingRequestResponse {
	var resp BookingRequestResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
