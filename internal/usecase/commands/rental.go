package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fleetrent/internal/domain/rental"
	"fleetrent/internal/domain/vehicle"
	"fleetrent/internal/infra"
	"fleetrent/internal/pkg/clock"
	"fleetrent/internal/pkg/errs"
	"fleetrent/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound      = errs.New("vehicle not found")
	ErrClientNotFound       = errs.New("client not found")
	ErrRentalNotFound       = errs.New("rental not found")
	ErrVehicleUnavailable   = errs.New("vehicle unavailable for requested period")
	ErrVehicleInMaintenance = errs.New("vehicle is under maintenance")
	ErrInvalidPeriod        = errs.New("invalid rental period")
	ErrRentalNotActive      = errs.New("rental is not active")
	ErrNotReservation       = errs.New("rental is not an open reservation")
	ErrNotInDebt            = errs.New("rental has no outstanding debt")
	ErrDomainValidation     = errs.New("domain validation error")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const (
	ledgerCategoryRental     = "rental"
	ledgerCategoryExtension  = "rental_extension"
	ledgerCategorySettlement = "debt_settlement"
)

type CreateRentalParams struct {
	VehicleID     uuid.UUID
	ClientID      uuid.UUID
	Start         time.Time
	End           time.Time
	BookingType   rental.BookingType
	PaymentChoice rental.PaymentStatus
	IsReservation bool
	Prepayment    int64
}

type RentalCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, p CreateRentalParams) (uuid.UUID, error)
	Extend(ctx context.Context, ownerID, rentalID uuid.UUID, newEnd time.Time, choice rental.PaymentStatus) (int64, error)
	Complete(ctx context.Context, ownerID, rentalID uuid.UUID) error
	Issue(ctx context.Context, ownerID, rentalID uuid.UUID) error
	Delete(ctx context.Context, ownerID, rentalID uuid.UUID) error
	SettleDebt(ctx context.Context, ownerID, rentalID uuid.UUID) error
	ReconcileVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) (vehicle.Status, error)
}

type rentalCommandsImpl struct {
	uow    shared.UnitOfWork
	ledger shared.CashLedger
	clock  clock.Clock
}

func NewRentalCommands(uow shared.UnitOfWork, ledger shared.CashLedger, clk clock.Clock) RentalCommands {
	return &rentalCommandsImpl{
		uow:    uow,
		ledger: ledger,
		clock:  clk,
	}
}

// createRentalInTx is the single create path shared by manual booking and
// request approval. It must run inside a transaction: the vehicle lock it
// takes serializes the availability check against concurrent creates.
func createRentalInTx(
	ctx context.Context,
	tx shared.Tx,
	now time.Time,
	ownerID uuid.UUID,
	p CreateRentalParams,
) (*rental.Rental, error) {
	period, err := rental.NewPeriod(p.Start, p.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPeriod)
	}

	veh, err := tx.Vehicles().LockByID(ctx, ownerID, p.VehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if veh.Status == vehicle.StatusMaintenance {
		return nil, ErrVehicleInMaintenance
	}

	if _, err := tx.Reads().ClientByID(ctx, ownerID, p.ClientID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entries, err := tx.Rentals().ActiveByVehicle(ctx, ownerID, p.VehicleID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if _, conflict := rental.FindConflict(period, entries); conflict {
		return nil, ErrVehicleUnavailable
	}

	created, err := rental.NewRental(rental.NewRentalParams{
		OwnerID:       ownerID,
		VehicleID:     p.VehicleID,
		ClientID:      p.ClientID,
		Period:        period,
		BookingType:   p.BookingType,
		DayRate:       veh.DayRate,
		HourRate:      veh.HourRate,
		PaymentChoice: p.PaymentChoice,
		IsReservation: p.IsReservation,
		Prepayment:    p.Prepayment,
	}, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := tx.Rentals().Create(ctx, created); err != nil {
		// The exclusion constraint is the backstop behind the in-transaction check
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrVehicleUnavailable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entries = append(entries, created.ScheduleEntry())
	next := rental.ResolveVehicleStatus(now, veh.Status, entries)
	if err := tx.Vehicles().UpdateStatus(ctx, ownerID, p.VehicleID, next); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return created, nil
}

func (c *rentalCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, p CreateRentalParams) (uuid.UUID, error) {
	var created *rental.Rental

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		created, txErr = createRentalInTx(ctx, tx, c.clock.Now(), ownerID, p)
		return txErr
	})
	if err != nil {
		return uuid.Nil, err
	}

	if created.PaymentStatus() == rental.PaymentPaid && !created.IsReservation() {
		recordIncome(ctx, c.ledger, created, created.TotalAmount(), ledgerCategoryRental)
	}

	return created.ID(), nil
}

func (c *rentalCommandsImpl) Extend(ctx context.Context, ownerID, rentalID uuid.UUID, newEnd time.Time, choice rental.PaymentStatus) (int64, error) {
	var (
		rent  *rental.Rental
		added int64
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		rent, txErr = lockRental(ctx, tx, ownerID, rentalID)
		if txErr != nil {
			return txErr
		}

		veh, txErr := tx.Vehicles().LockByID(ctx, ownerID, rent.VehicleID())
		if txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		added, txErr = rent.Extend(newEnd, choice, veh.DayRate, veh.HourRate, c.clock.Now())
		if txErr != nil {
			return mapDomainErr(txErr)
		}

		if txErr = tx.Rentals().Update(ctx, rent); txErr != nil {
			if infra.IsKind(txErr, infra.KindConflict) {
				return ErrVehicleUnavailable
			}
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		exts := rent.Extensions()
		if txErr = tx.Rentals().AppendExtension(ctx, rent.ID(), exts[len(exts)-1]); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if choice == rental.PaymentPaid {
		recordIncome(ctx, c.ledger, rent, added, ledgerCategoryExtension)
	}

	return added, nil
}

func (c *rentalCommandsImpl) Complete(ctx context.Context, ownerID, rentalID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rent, err := lockRental(ctx, tx, ownerID, rentalID)
		if err != nil {
			return err
		}

		veh, err := tx.Vehicles().LockByID(ctx, ownerID, rent.VehicleID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := rent.Complete(c.clock.Now()); err != nil {
			return mapDomainErr(err)
		}
		if err := tx.Rentals().Update(ctx, rent); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return refreshVehicleStatus(ctx, tx, c.clock.Now(), ownerID, rent.VehicleID(), veh.Status)
	})
}

func (c *rentalCommandsImpl) Issue(ctx context.Context, ownerID, rentalID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rent, err := lockRental(ctx, tx, ownerID, rentalID)
		if err != nil {
			return err
		}

		veh, err := tx.Vehicles().LockByID(ctx, ownerID, rent.VehicleID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := rent.Issue(c.clock.Now()); err != nil {
			return mapDomainErr(err)
		}
		if err := tx.Rentals().Update(ctx, rent); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return refreshVehicleStatus(ctx, tx, c.clock.Now(), ownerID, rent.VehicleID(), veh.Status)
	})
}

func (c *rentalCommandsImpl) Delete(ctx context.Context, ownerID, rentalID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rent, err := lockRental(ctx, tx, ownerID, rentalID)
		if err != nil {
			return err
		}

		veh, err := tx.Vehicles().LockByID(ctx, ownerID, rent.VehicleID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Rentals().Delete(ctx, ownerID, rentalID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return refreshVehicleStatus(ctx, tx, c.clock.Now(), ownerID, rent.VehicleID(), veh.Status)
	})
}

func (c *rentalCommandsImpl) SettleDebt(ctx context.Context, ownerID, rentalID uuid.UUID) error {
	var (
		rent        *rental.Rental
		outstanding int64
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		rent, txErr = lockRental(ctx, tx, ownerID, rentalID)
		if txErr != nil {
			return txErr
		}

		outstanding, txErr = rent.SettleDebt(c.clock.Now())
		if txErr != nil {
			return mapDomainErr(txErr)
		}
		if txErr = tx.Rentals().Update(ctx, rent); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if outstanding > 0 {
		recordIncome(ctx, c.ledger, rent, outstanding, ledgerCategorySettlement)
	}

	return nil
}

func (c *rentalCommandsImpl) ReconcileVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) (vehicle.Status, error) {
	var next vehicle.Status

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		veh, txErr := tx.Vehicles().LockByID(ctx, ownerID, vehicleID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		entries, txErr := tx.Rentals().ActiveByVehicle(ctx, ownerID, vehicleID)
		if txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		next = rental.ResolveVehicleStatus(c.clock.Now(), veh.Status, entries)
		if next == veh.Status {
			return nil
		}
		return tx.Vehicles().UpdateStatus(ctx, ownerID, vehicleID, next)
	})
	if err != nil {
		return "", err
	}

	return next, nil
}

func lockRental(ctx context.Context, tx shared.Tx, ownerID, rentalID uuid.UUID) (*rental.Rental, error) {
	rent, err := tx.Rentals().LockByID(ctx, ownerID, rentalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rent, nil
}

func refreshVehicleStatus(ctx context.Context, tx shared.Tx, now time.Time, ownerID, vehicleID uuid.UUID, current vehicle.Status) error {
	entries, err := tx.Rentals().ActiveByVehicle(ctx, ownerID, vehicleID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	next := rental.ResolveVehicleStatus(now, current, entries)
	if next == current {
		return nil
	}
	if err := tx.Vehicles().UpdateStatus(ctx, ownerID, vehicleID, next); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func mapDomainErr(err error) error {
	switch {
	case errors.Is(err, rental.ErrNotActive):
		return ErrRentalNotActive
	case errors.Is(err, rental.ErrNotReservation):
		return ErrNotReservation
	case errors.Is(err, rental.ErrNotInDebt):
		return ErrNotInDebt
	case errors.Is(err, rental.ErrEndNotAfterCurrent), errors.Is(err, rental.ErrInvalidPeriod):
		return ErrInvalidPeriod
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}

// recordIncome is deliberately best-effort: ledger failures are logged and
// suppressed, never surfaced as a rental operation failure.
func recordIncome(ctx context.Context, ledger shared.CashLedger, rent *rental.Rental, amount int64, category string) {
	clientID := rent.ClientID()
	entry := shared.LedgerEntry{
		OwnerID:     rent.OwnerID(),
		Amount:      amount,
		Category:    category,
		Description: fmt.Sprintf("Contract %s", rent.ContractNumber()),
		ClientID:    &clientID,
		VehicleID:   rent.VehicleID(),
	}
	if err := ledger.RecordIncome(ctx, entry); err != nil {
		slog.Warn("failed to record ledger income",
			"contract_number", rent.ContractNumber(),
			"category", category,
			"amount", amount,
			"error", err.Error())
	}
}
