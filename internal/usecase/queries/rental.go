package queries

import (
	"context"

	"fleetrent/internal/infra"
	"fleetrent/internal/pkg/clock"
	"fleetrent/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRentalNotFound  = errs.New("rental not found")
	ErrVehicleNotFound = errs.New("vehicle not found")
)

type RentalQueries interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*RentalView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RentalListItem, error)
	// VehicleSchedule is the calendar view: all rentals of a vehicle with a
	// past/current/upcoming classification relative to the caller's clock.
	VehicleSchedule(ctx context.Context, ownerID, vehicleID uuid.UUID) ([]*ScheduleItem, error)
}

type RentalReadStore interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*RentalView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RentalListItem, error)
	ScheduleByVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) ([]*ScheduleItem, error)
}

type rentalQueriesImpl struct {
	store RentalReadStore
	clock clock.Clock
}

func NewRentalQueries(store RentalReadStore, clk clock.Clock) RentalQueries {
	return &rentalQueriesImpl{store: store, clock: clk}
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*RentalView, error) {
	view, err := q.store.FindByID(ctx, ownerID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, errs.Wrap(err, "failed to find rental")
	}
	return view, nil
}

func (q *rentalQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RentalListItem, error) {
	items, err := q.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rentals")
	}
	return items, nil
}

func (q *rentalQueriesImpl) VehicleSchedule(ctx context.Context, ownerID, vehicleID uuid.UUID) ([]*ScheduleItem, error) {
	items, err := q.store.ScheduleByVehicle(ctx, ownerID, vehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, errs.Wrap(err, "failed to load vehicle schedule")
	}

	now := q.clock.Now()
	for _, item := range items {
		switch {
		case !item.EndAt.After(now):
			item.Timeframe = TimeframePast
		case item.StartAt.After(now):
			item.Timeframe = TimeframeUpcoming
		default:
			item.Timeframe = TimeframeCurrent
		}
	}
	return items, nil
}
