//go:build unit

package commands_test

import (
	"context"

	"fleetrent/internal/domain/rental"
	"fleetrent/internal/domain/request"
	"fleetrent/internal/domain/vehicle"
	"fleetrent/internal/infra"
	"fleetrent/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the persistence layer. Every fake
// repository shares it, mirroring how the real ones share one transaction.
type fakeStore struct {
	vehicles map[uuid.UUID]*shared.VehicleSnapshot
	clients  map[uuid.UUID]*shared.ClientSnapshot
	rentals  map[uuid.UUID]*rental.Rental
	requests map[uuid.UUID]*request.BookingRequest

	extensionCount int
	statusUpdates  []vehicle.Status
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		vehicles: make(map[uuid.UUID]*shared.VehicleSnapshot),
		clients:  make(map[uuid.UUID]*shared.ClientSnapshot),
		rentals:  make(map[uuid.UUID]*rental.Rental),
		requests: make(map[uuid.UUID]*request.BookingRequest),
	}
}

func (s *fakeStore) addVehicle(ownerID uuid.UUID, dayRate, hourRate int64, status vehicle.Status) uuid.UUID {
	id := uuid.New()
	s.vehicles[id] = &shared.VehicleSnapshot{
		ID:          id,
		OwnerID:     ownerID,
		Name:        "Toyota Camry",
		PlateNumber: "01 AA 111",
		DayRate:     dayRate,
		HourRate:    hourRate,
		Status:      status,
	}
	return id
}

func (s *fakeStore) addClient(ownerID uuid.UUID) uuid.UUID {
	id := uuid.New()
	s.clients[id] = &shared.ClientSnapshot{
		ID:       id,
		OwnerID:  ownerID,
		FullName: "Test Client",
		Phone:    "+37491000000",
	}
	return id
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Rentals() shared.RentalRepository   { return &fakeRentals{store: t.store} }
func (t *fakeTx) Vehicles() shared.VehicleRepository { return &fakeVehicles{store: t.store} }
func (t *fakeTx) Requests() shared.RequestRepository { return &fakeRequests{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads         { return &fakeReads{store: t.store} }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) ClientByID(_ context.Context, ownerID, id uuid.UUID) (*shared.ClientSnapshot, error) {
	c, ok := r.store.clients[id]
	if !ok || c.OwnerID != ownerID {
		return nil, notFound("client not found")
	}
	return c, nil
}

func (r *fakeReads) VehicleByID(_ context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	v, ok := r.store.vehicles[id]
	if !ok {
		return nil, notFound("vehicle not found")
	}
	return v, nil
}

type fakeVehicles struct {
	store *fakeStore
}

func (r *fakeVehicles) LockByID(_ context.Context, ownerID, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	v, ok := r.store.vehicles[id]
	if !ok || v.OwnerID != ownerID {
		return nil, notFound("vehicle not found")
	}
	return v, nil
}

func (r *fakeVehicles) UpdateStatus(_ context.Context, ownerID, id uuid.UUID, status vehicle.Status) error {
	v, ok := r.store.vehicles[id]
	if !ok || v.OwnerID != ownerID {
		return notFound("vehicle not found")
	}
	v.Status = status
	r.store.statusUpdates = append(r.store.statusUpdates, status)
	return nil
}

type fakeRentals struct {
	store *fakeStore
}

func (r *fakeRentals) Create(_ context.Context, rent *rental.Rental) error {
	r.store.rentals[rent.ID()] = rent
	return nil
}

func (r *fakeRentals) Update(_ context.Context, rent *rental.Rental) error {
	if _, ok := r.store.rentals[rent.ID()]; !ok {
		return notFound("rental not found")
	}
	r.store.rentals[rent.ID()] = rent
	return nil
}

func (r *fakeRentals) AppendExtension(_ context.Context, rentalID uuid.UUID, _ rental.Extension) error {
	if _, ok := r.store.rentals[rentalID]; !ok {
		return notFound("rental not found")
	}
	r.store.extensionCount++
	return nil
}

func (r *fakeRentals) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	rent, ok := r.store.rentals[id]
	if !ok || rent.OwnerID() != ownerID {
		return notFound("rental not found")
	}
	delete(r.store.rentals, id)
	return nil
}

func (r *fakeRentals) LockByID(_ context.Context, ownerID, id uuid.UUID) (*rental.Rental, error) {
	rent, ok := r.store.rentals[id]
	if !ok || rent.OwnerID() != ownerID {
		return nil, notFound("rental not found")
	}
	return rent, nil
}

func (r *fakeRentals) ActiveByVehicle(_ context.Context, ownerID, vehicleID uuid.UUID) ([]rental.ScheduleEntry, error) {
	var entries []rental.ScheduleEntry
	for _, rent := range r.store.rentals {
		if rent.OwnerID() == ownerID && rent.VehicleID() == vehicleID && rent.Status() == rental.StatusActive {
			entries = append(entries, rent.ScheduleEntry())
		}
	}
	return entries, nil
}

type fakeRequests struct {
	store *fakeStore
}

func (r *fakeRequests) Create(_ context.Context, req *request.BookingRequest) error {
	r.store.requests[req.ID()] = req
	return nil
}

func (r *fakeRequests) LockByID(_ context.Context, ownerID, id uuid.UUID) (*request.BookingRequest, error) {
	req, ok := r.store.requests[id]
	if !ok || req.OwnerID() != ownerID {
		return nil, notFound("booking request not found")
	}
	return req, nil
}

func (r *fakeRequests) UpdateStatus(_ context.Context, ownerID, id uuid.UUID, status request.Status) error {
	req, ok := r.store.requests[id]
	if !ok || req.OwnerID() != ownerID {
		return notFound("booking request not found")
	}
	_ = status
	return nil
}

func (r *fakeRequests) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	req, ok := r.store.requests[id]
	if !ok || req.OwnerID() != ownerID {
		return notFound("booking request not found")
	}
	delete(r.store.requests, id)
	return nil
}

type fakeLedger struct {
	entries []shared.LedgerEntry
	err     error
}

func (l *fakeLedger) RecordIncome(_ context.Context, entry shared.LedgerEntry) error {
	if l.err != nil {
		return l.err
	}
	l.entries = append(l.entries, entry)
	return nil
}
