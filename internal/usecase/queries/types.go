package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type RentalView struct {
	ID             uuid.UUID       `json:"id"`
	VehicleID      uuid.UUID       `json:"vehicle_id"`
	VehicleName    string          `json:"vehicle_name"`
	PlateNumber    string          `json:"plate_number"`
	ClientID       uuid.UUID       `json:"client_id"`
	ClientName     string          `json:"client_name"`
	StartAt        time.Time       `json:"start_at"`
	EndAt          time.Time       `json:"end_at"`
	Status         string          `json:"status"`
	PaymentStatus  string          `json:"payment_status"`
	BookingType    string          `json:"booking_type"`
	IsReservation  bool            `json:"is_reservation"`
	TotalAmount    int64           `json:"total_amount"`
	Prepayment     int64           `json:"prepayment"`
	ContractNumber string          `json:"contract_number"`
	Extensions     []ExtensionView `json:"extensions"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type ExtensionView struct {
	EndAt     time.Time `json:"end_at"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type RentalListItem struct {
	ID             uuid.UUID `json:"id"`
	VehicleID      uuid.UUID `json:"vehicle_id"`
	VehicleName    string    `json:"vehicle_name"`
	ClientName     string    `json:"client_name"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	IsReservation  bool      `json:"is_reservation"`
	TotalAmount    int64     `json:"total_amount"`
	ContractNumber string    `json:"contract_number"`
}

// Timeframe classification for the per-vehicle calendar view. Display-only:
// the availability check never looks at the clock.
const (
	TimeframePast     = "PAST"
	TimeframeCurrent  = "CURRENT"
	TimeframeUpcoming = "UPCOMING"
)

type ScheduleItem struct {
	RentalID       uuid.UUID `json:"rental_id"`
	ContractNumber string    `json:"contract_number"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	Status         string    `json:"status"`
	IsReservation  bool      `json:"is_reservation"`
	Timeframe      string    `json:"timeframe"`
}

type RequestView struct {
	ID           uuid.UUID  `json:"id"`
	VehicleID    uuid.UUID  `json:"vehicle_id"`
	VehicleName  string     `json:"vehicle_name"`
	ClientID     *uuid.UUID `json:"client_id,omitempty"`
	ContactName  string     `json:"contact_name"`
	ContactPhone string     `json:"contact_phone"`
	ContactEmail *string    `json:"contact_email,omitempty"`
	StartAt      time.Time  `json:"start_at"`
	EndAt        time.Time  `json:"end_at"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}
