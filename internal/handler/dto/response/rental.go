package response

import (
	"time"

	"fleetrent/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RentalResponse struct {
	ID             uuid.UUID           `json:"id"`
	VehicleID      uuid.UUID           `json:"vehicleId"`
	VehicleName    string              `json:"vehicleName"`
	PlateNumber    string              `json:"plateNumber"`
	ClientID       uuid.UUID           `json:"clientId"`
	ClientName     string              `json:"clientName"`
	StartAt        time.Time           `json:"startAt"`
	EndAt          time.Time           `json:"endAt"`
	Status         string              `json:"status"`
	PaymentStatus  string              `json:"paymentStatus"`
	BookingType    string              `json:"bookingType"`
	IsReservation  bool                `json:"isReservation"`
	TotalAmount    int64               `json:"totalAmount"`
	Prepayment     int64               `json:"prepayment"`
	ContractNumber string              `json:"contractNumber"`
	Extensions     []ExtensionResponse `json:"extensions"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

type ExtensionResponse struct {
	EndAt     time.Time `json:"endAt"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

type RentalListResponse struct {
	ID             uuid.UUID `json:"id"`
	VehicleID      uuid.UUID `json:"vehicleId"`
	VehicleName    string    `json:"vehicleName"`
	ClientName     string    `json:"clientName"`
	StartAt        time.Time `json:"startAt"`
	EndAt          time.Time `json:"endAt"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"paymentStatus"`
	IsReservation  bool      `json:"isReservation"`
	TotalAmount    int64     `json:"totalAmount"`
	ContractNumber string    `json:"contractNumber"`
}

type ScheduleItemResponse struct {
	RentalID       uuid.UUID `json:"rentalId"`
	ContractNumber string    `json:"contractNumber"`
	StartAt        time.Time `json:"startAt"`
	EndAt          time.Time `json:"endAt"`
	Status         string    `json:"status"`
	IsReservation  bool      `json:"isReservation"`
	Timeframe      string    `json:"timeframe"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type ExtendedResponse struct {
	ID          uuid.UUID `json:"id"`
	AddedAmount int64     `json:"addedAmount"`
}

type ReconcileResponse struct {
	VehicleID uuid.UUID `json:"vehicleId"`
	Status    string    `json:"status"`
}

func FromRentalView(rm *queries.RentalView) *RentalResponse {
	var resp RentalResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromRentalListItem(rm *queries.RentalListItem) *RentalListResponse {
	var resp RentalListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromScheduleItem(rm *queries.ScheduleItem) *ScheduleItemResponse {
	var resp ScheduleItemResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
