package request

import (
	"errors"
	"strings"
	"time"

	"fleetrent/internal/domain/rental"

	"github.com/google/uuid"
)

var (
	ErrNotPending     = errors.New("request is not pending")
	ErrMissingContact = errors.New("guest request requires a contact name and phone")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// BookingRequest is a guest- or client-submitted rental request awaiting admin
// triage. Pending requests may overlap each other; only approval is exclusive.
type BookingRequest struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	vehicleID    uuid.UUID
	clientID     *uuid.UUID // nil for guests
	contactName  string
	contactPhone string
	contactEmail *string
	period       rental.Period
	status       Status
	createdAt    time.Time
}

func NewBookingRequest(
	ownerID, vehicleID uuid.UUID,
	clientID *uuid.UUID,
	contactName, contactPhone string,
	contactEmail *string,
	period rental.Period,
	now time.Time,
) (*BookingRequest, error) {
	contactName = strings.TrimSpace(contactName)
	contactPhone = strings.TrimSpace(contactPhone)

	if clientID == nil && (contactName == "" || contactPhone == "") {
		return nil, ErrMissingContact
	}

	return &BookingRequest{
		id:           uuid.New(),
		ownerID:      ownerID,
		vehicleID:    vehicleID,
		clientID:     clientID,
		contactName:  contactName,
		contactPhone: contactPhone,
		contactEmail: contactEmail,
		period:       period,
		status:       StatusPending,
		createdAt:    now,
	}, nil
}

func Reconstruct(
	id, ownerID, vehicleID uuid.UUID,
	clientID *uuid.UUID,
	contactName, contactPhone string,
	contactEmail *string,
	period rental.Period,
	status Status,
	createdAt time.Time,
) *BookingRequest {
	return &BookingRequest{
		id:           id,
		ownerID:      ownerID,
		vehicleID:    vehicleID,
		clientID:     clientID,
		contactName:  contactName,
		contactPhone: contactPhone,
		contactEmail: contactEmail,
		period:       period,
		status:       status,
		createdAt:    createdAt,
	}
}

func (b *BookingRequest) Reject() error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusRejected
	return nil
}

func (b *BookingRequest) IsPending() bool {
	return b.status == StatusPending
}

func (b *BookingRequest) ID() uuid.UUID          { return b.id }
func (b *BookingRequest) OwnerID() uuid.UUID     { return b.ownerID }
func (b *BookingRequest) VehicleID() uuid.UUID   { return b.vehicleID }
func (b *BookingRequest) ClientID() *uuid.UUID   { return b.clientID }
func (b *BookingRequest) ContactName() string    { return b.contactName }
func (b *BookingRequest) ContactPhone() string   { return b.contactPhone }
func (b *BookingRequest) ContactEmail() *string  { return b.contactEmail }
func (b *BookingRequest) Period() rental.Period  { return b.period }
func (b *BookingRequest) Status() Status         { return b.status }
func (b *BookingRequest) CreatedAt() time.Time   { return b.createdAt }
