package commands

import (
	"context"
	"errors"
	"time"

	"fleetrent/internal/domain/rental"
	"fleetrent/internal/domain/request"
	"fleetrent/internal/domain/vehicle"
	"fleetrent/internal/infra"
	"fleetrent/internal/pkg/clock"
	"fleetrent/internal/pkg/errs"
	"fleetrent/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound     = errs.New("booking request not found")
	ErrRequestNotPending   = errs.New("booking request is not pending")
	ErrMissingContact      = errs.New("guest request requires contact details")
	ErrGuestRequiresClient = errs.New("approving a guest request requires a client")
)

type SubmitRequestParams struct {
	VehicleID    uuid.UUID
	ClientID     *uuid.UUID
	ContactName  string
	ContactPhone string
	ContactEmail *string
	Start        time.Time
	End          time.Time
}

type RequestCommands interface {
	// Submit is the public entry point: the tenant is derived from the vehicle.
	Submit(ctx context.Context, p SubmitRequestParams) (uuid.UUID, error)
	// Approve converts the request into a rental (daily billing at the
	// vehicle's current day rate, marked PAID) and deletes the request. The
	// rental becomes the record of truth. clientID substitutes for the
	// requester on guest requests.
	Approve(ctx context.Context, ownerID, requestID uuid.UUID, clientID *uuid.UUID) (uuid.UUID, error)
	Reject(ctx context.Context, ownerID, requestID uuid.UUID) error
	Delete(ctx context.Context, ownerID, requestID uuid.UUID) error
}

type requestCommandsImpl struct {
	uow    shared.UnitOfWork
	ledger shared.CashLedger
	clock  clock.Clock
}

func NewRequestCommands(uow shared.UnitOfWork, ledger shared.CashLedger, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{
		uow:    uow,
		ledger: ledger,
		clock:  clk,
	}
}

func (c *requestCommandsImpl) Submit(ctx context.Context, p SubmitRequestParams) (uuid.UUID, error) {
	period, err := rental.NewPeriod(p.Start, p.End)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidPeriod)
	}

	var req *request.BookingRequest

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		veh, txErr := tx.Reads().VehicleByID(ctx, p.VehicleID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		if veh.Status == vehicle.StatusMaintenance {
			return ErrVehicleInMaintenance
		}

		// A supplied client must exist within the vehicle's tenant; the FK on
		// booking_requests would otherwise reject the insert at commit.
		if p.ClientID != nil {
			if _, txErr := tx.Reads().ClientByID(ctx, veh.OwnerID, *p.ClientID); txErr != nil {
				if infra.IsKind(txErr, infra.KindNotFound) {
					return ErrClientNotFound
				}
				return errs.Mark(txErr, ErrDatabaseOperationFailed)
			}
		}

		// Validated against active rentals only. Pending requests may overlap
		// each other; approval is the exclusive step.
		entries, txErr := tx.Rentals().ActiveByVehicle(ctx, veh.OwnerID, p.VehicleID)
		if txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		if _, conflict := rental.FindConflict(period, entries); conflict {
			return ErrVehicleUnavailable
		}

		req, txErr = request.NewBookingRequest(
			veh.OwnerID, p.VehicleID, p.ClientID,
			p.ContactName, p.ContactPhone, p.ContactEmail,
			period, c.clock.Now(),
		)
		if txErr != nil {
			if errors.Is(txErr, request.ErrMissingContact) {
				return ErrMissingContact
			}
			return errs.Mark(txErr, ErrDomainValidation)
		}

		if txErr = tx.Requests().Create(ctx, req); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return req.ID(), nil
}

func (c *requestCommandsImpl) Approve(ctx context.Context, ownerID, requestID uuid.UUID, clientID *uuid.UUID) (uuid.UUID, error) {
	var created *rental.Rental

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, txErr := lockRequest(ctx, tx, ownerID, requestID)
		if txErr != nil {
			return txErr
		}
		if !req.IsPending() {
			return ErrRequestNotPending
		}

		rentalClient := req.ClientID()
		if rentalClient == nil {
			rentalClient = clientID
		}
		if rentalClient == nil {
			return ErrGuestRequiresClient
		}

		// Availability may have changed since submission; createRentalInTx
		// re-validates under the vehicle lock. A conflict leaves the request
		// PENDING.
		created, txErr = createRentalInTx(ctx, tx, c.clock.Now(), ownerID, CreateRentalParams{
			VehicleID:     req.VehicleID(),
			ClientID:      *rentalClient,
			Start:         req.Period().Start(),
			End:           req.Period().End(),
			BookingType:   rental.BookingDaily,
			PaymentChoice: rental.PaymentPaid,
		})
		if txErr != nil {
			return txErr
		}

		if txErr = tx.Requests().Delete(ctx, ownerID, requestID); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	recordIncome(ctx, c.ledger, created, created.TotalAmount(), ledgerCategoryRental)

	return created.ID(), nil
}

func (c *requestCommandsImpl) Reject(ctx context.Context, ownerID, requestID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := lockRequest(ctx, tx, ownerID, requestID)
		if err != nil {
			return err
		}
		if err := req.Reject(); err != nil {
			return ErrRequestNotPending
		}
		return tx.Requests().UpdateStatus(ctx, ownerID, requestID, req.Status())
	})
}

func (c *requestCommandsImpl) Delete(ctx context.Context, ownerID, requestID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := lockRequest(ctx, tx, ownerID, requestID); err != nil {
			return err
		}
		return tx.Requests().Delete(ctx, ownerID, requestID)
	})
}

func lockRequest(ctx context.Context, tx shared.Tx, ownerID, requestID uuid.UUID) (*request.BookingRequest, error) {
	req, err := tx.Requests().LockByID(ctx, ownerID, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return req, nil
}
