package store

import (
	"context"

	"github.com/phrazzld/camiones-api/internal/domain"
)

// TruckStore defines persistence operations for the truck entity.
// Write operations report the number of rows affected so the service layer
// can distinguish an applied change from a soft no-op; they never turn a
// zero count into an error themselves.
type TruckStore interface {
	// List returns every truck in the table. An empty table yields an
	// empty slice and no error.
	List(ctx context.Context) ([]domain.Truck, error)

	// GetByID returns the truck with the given primary key.
	// Returns ErrTruckNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*domain.Truck, error)

	// Create inserts a new truck with the complete field set and returns
	// the server-generated ID.
	Create(ctx context.Context, fields domain.TruckFields) (int64, error)

	// UpdatePartial applies the given fields to the truck with the given
	// ID and returns the number of rows affected.
	// Returns ErrNoFieldsProvided when the field set is empty.
	UpdatePartial(ctx context.Context, id int64, fields []domain.FieldValue) (int64, error)

	// UpdateFull replaces all eight mutable columns of the truck with the
	// given ID and returns the number of rows affected.
	UpdateFull(ctx context.Context, id int64, fields domain.TruckFields) (int64, error)

	// Delete removes the truck with the given ID and returns the number
	// of rows affected.
	Delete(ctx context.Context, id int64) (int64, error)
}
