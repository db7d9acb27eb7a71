package queries

import (
	"context"

	"fleetrent/internal/infra"
	"fleetrent/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errs.New("booking request not found")

type RequestQueries interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*RequestView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RequestView, error)
}

type RequestReadStore interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*RequestView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	store RequestReadStore
}

func NewRequestQueries(store RequestReadStore) RequestQueries {
	return &requestQueriesImpl{store: store}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*RequestView, error) {
	view, err := q.store.FindByID(ctx, ownerID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking request")
	}
	return view, nil
}

func (q *requestQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RequestView, error) {
	views, err := q.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list booking requests")
	}
	return views, nil
}
